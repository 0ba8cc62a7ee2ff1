package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dangtv/coinclub/internal/client/models"
)

// Market lists open listings, optionally filtered by item code. Public
// endpoint.
func (c *Client) Market(ctx context.Context, code string) ([]models.MarketRow, error) {
	var query url.Values
	if code != "" {
		query = url.Values{"code": {code}}
	}
	var res struct {
		Rows []models.MarketRow `json:"rows"`
	}
	if err := c.do(ctx, http.MethodGet, "/market", query, nil, &res); err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// MarketCreate puts qty units of an inventory item up for sale.
func (c *Client) MarketCreate(ctx context.Context, code string, qty, pricePerUnit int64) (string, error) {
	body := struct {
		Code         string `json:"code"`
		Qty          int64  `json:"qty"`
		PricePerUnit int64  `json:"pricePerUnit"`
	}{code, qty, pricePerUnit}

	var res messageResponse
	if err := c.do(ctx, http.MethodPost, "/private/market/list", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// MarketBuy purchases qty units from a listing.
func (c *Client) MarketBuy(ctx context.Context, listingID uint64, qty int64) (string, error) {
	body := struct {
		ListingID uint64 `json:"listingId"`
		Qty       int64  `json:"qty"`
	}{listingID, qty}

	var res messageResponse
	if err := c.do(ctx, http.MethodPost, "/private/market/buy", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// MarketWithdraw pulls a listing (or part of it) off the market. qty 0
// withdraws everything.
func (c *Client) MarketWithdraw(ctx context.Context, listingID uint64, qty int64) (string, error) {
	body := struct {
		ListingID uint64 `json:"listingId"`
		Qty       int64  `json:"qty,omitempty"`
	}{listingID, qty}

	var res messageResponse
	if err := c.do(ctx, http.MethodPost, "/private/market/withdraw", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

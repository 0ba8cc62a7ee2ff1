package api

import (
	"context"
	"net/http"

	"github.com/dangtv/coinclub/internal/client/models"
)

// Wallet fetches the caller's balance snapshot.
func (c *Client) Wallet(ctx context.Context) (*models.Wallet, error) {
	var res models.Wallet
	if err := c.do(ctx, http.MethodGet, "/private/wallet", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TransferRequest sends coins to another member. The transaction PIN
// authorizes the debit.
type TransferRequest struct {
	ToUsername string `json:"toUsername"`
	Amount     int64  `json:"amount"`
	Note       string `json:"note,omitempty"`
	TxnPin     string `json:"txnPin"`
}

// TransferResult reports the fee charged and the total debit.
type TransferResult struct {
	Message string `json:"message"`
	Fee     int64  `json:"fee"`
	Debit   int64  `json:"debit"`
}

// Transfer moves coins peer to peer.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*TransferResult, error) {
	var res TransferResult
	if err := c.do(ctx, http.MethodPost, "/private/transfer", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// BuyVipResult reports the purchased level and the remaining balance.
type BuyVipResult struct {
	Message string `json:"message"`
	Level   int    `json:"level"`
	Coins   int64  `json:"coins"`
}

// BuyVip purchases the next VIP tier.
func (c *Client) BuyVip(ctx context.Context) (*BuyVipResult, error) {
	var res BuyVipResult
	if err := c.do(ctx, http.MethodPost, "/private/buy-vip", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ReferralInfo fetches the caller's referral code, link, and earnings.
func (c *Client) ReferralInfo(ctx context.Context) (*models.ReferralInfo, error) {
	var res models.ReferralInfo
	if err := c.do(ctx, http.MethodGet, "/private/referral-info", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func historyRows[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	var res struct {
		Rows []T `json:"rows"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// TopupHistory lists admin top-ups credited to the caller.
func (c *Client) TopupHistory(ctx context.Context) ([]models.TopupRow, error) {
	return historyRows[models.TopupRow](c, ctx, "/private/history/topups")
}

// WithdrawHistory lists admin withdrawals debited from the caller.
func (c *Client) WithdrawHistory(ctx context.Context) ([]models.WithdrawRow, error) {
	return historyRows[models.WithdrawRow](c, ctx, "/private/history/withdraws")
}

// TransferHistory lists peer transfers in both directions.
func (c *Client) TransferHistory(ctx context.Context) ([]models.TransferRow, error) {
	return historyRows[models.TransferRow](c, ctx, "/private/history/transfers")
}

// VipHistory lists VIP tier purchases.
func (c *Client) VipHistory(ctx context.Context) ([]models.VipRow, error) {
	return historyRows[models.VipRow](c, ctx, "/private/history/vip")
}

// Commissions lists referral commissions earned by the caller.
func (c *Client) Commissions(ctx context.Context) ([]models.CommissionRow, error) {
	return historyRows[models.CommissionRow](c, ctx, "/private/history/commissions")
}

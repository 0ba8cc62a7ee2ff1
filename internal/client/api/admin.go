package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dangtv/coinclub/internal/client/models"
)

// AdminUserFilter narrows the /admin/users listing. Zero values are omitted
// from the query.
type AdminUserFilter struct {
	VipLevel *int
	Username string
	Nickname string
}

func (f AdminUserFilter) query() url.Values {
	q := url.Values{}
	if f.VipLevel != nil {
		q.Set("vipLevel", strconv.Itoa(*f.VipLevel))
	}
	if f.Username != "" {
		q.Set("username", f.Username)
	}
	if f.Nickname != "" {
		q.Set("nickname", f.Nickname)
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// AdminUsers lists members for the admin panel.
func (c *Client) AdminUsers(ctx context.Context, filter AdminUserFilter) ([]models.AdminUserRow, error) {
	var res struct {
		Rows []models.AdminUserRow `json:"rows"`
	}
	if err := c.do(ctx, http.MethodGet, "/admin/users", filter.query(), nil, &res); err != nil {
		return nil, err
	}
	return res.Rows, nil
}

// AdminUserDetail fetches one member's full record including KYC state.
func (c *Client) AdminUserDetail(ctx context.Context, id uint64) (*models.AdminUserDetail, error) {
	var res struct {
		User *models.AdminUserDetail `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/admin/users/%d", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

type adminAmountRequest struct {
	UserID uint64 `json:"userId"`
	Amount int64  `json:"amount"`
	Note   string `json:"note,omitempty"`
}

// AdminTopup credits coins to a member's wallet.
func (c *Client) AdminTopup(ctx context.Context, userID uint64, amount int64, note string) (string, error) {
	var res messageResponse
	err := c.do(ctx, http.MethodPost, "/admin/topup", nil, adminAmountRequest{userID, amount, note}, &res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// AdminWithdraw debits coins from a member's wallet.
func (c *Client) AdminWithdraw(ctx context.Context, userID uint64, amount int64, note string) (string, error) {
	var res messageResponse
	err := c.do(ctx, http.MethodPost, "/admin/withdraw", nil, adminAmountRequest{userID, amount, note}, &res)
	if err != nil {
		return "", err
	}
	return res.Message, nil
}

// AdminDeleteUser removes a member account.
func (c *Client) AdminDeleteUser(ctx context.Context, id uint64) (string, error) {
	var res messageResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), nil, nil, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// KycSide selects which identity document image to fetch.
type KycSide string

const (
	KycFront KycSide = "front"
	KycBack  KycSide = "back"
)

// AdminKycImage downloads a member's identity document image. Returns the
// raw bytes and the content type.
func (c *Client) AdminKycImage(ctx context.Context, userID uint64, side KycSide) ([]byte, string, error) {
	return c.doRaw(ctx, fmt.Sprintf("/admin/kyc-file/%d/%s", userID, side))
}

package api

import (
	"context"
	"net/http"

	"github.com/dangtv/coinclub/internal/client/models"
)

// messageResponse is the plain acknowledgment most mutating endpoints
// return.
type messageResponse struct {
	Message string `json:"message"`
}

// LoginResult carries the credentials issued by /login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RegisterRequest creates a new account. Ref is the one-time referral code
// captured from an invite link, empty when the user signed up directly.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Ref      string `json:"ref,omitempty"`
}

// Login authenticates and returns the issued token and user record. The
// caller installs them into the session (SetAuth); the client itself stays
// stateless.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password}

	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an account and returns the server's acknowledgment.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var res messageResponse
	if err := c.do(ctx, http.MethodPost, "/register", nil, req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// ForgotPassword resets the login password using the second password as
// proof of ownership.
func (c *Client) ForgotPassword(ctx context.Context, username, secPassword, newPassword string) (string, error) {
	body := struct {
		Username    string `json:"username"`
		SecPassword string `json:"secPassword"`
		NewPassword string `json:"newPassword"`
	}{username, secPassword, newPassword}

	var res messageResponse
	if err := c.do(ctx, http.MethodPost, "/forgot-password", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// Me fetches the caller's identity. Satisfies session.IdentityFetcher.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var res struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/private/me", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// VipTiers lists the purchasable VIP levels. Public endpoint.
func (c *Client) VipTiers(ctx context.Context) ([]models.VipTier, error) {
	var res struct {
		Tiers []models.VipTier `json:"tiers"`
	}
	if err := c.do(ctx, http.MethodGet, "/vip-tiers", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Tiers, nil
}

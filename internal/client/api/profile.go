package api

import (
	"context"
	"io"
	"net/http"

	"github.com/dangtv/coinclub/internal/client/models"
)

// ProfileUpdate edits the display fields of the caller's account.
type ProfileUpdate struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// UpdateProfile saves the profile and returns the refreshed user record.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var res struct {
		User    *models.User `json:"user"`
		Message string       `json:"message"`
	}
	if err := c.do(ctx, http.MethodPut, "/private/profile", nil, upd, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

// ChangePassword rotates the login password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) (string, error) {
	body := struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}{oldPassword, newPassword}

	var res messageResponse
	if err := c.do(ctx, http.MethodPut, "/private/change-password", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

// UploadAvatar sends the image as multipart form data and returns the URL
// the server stored it under.
func (c *Client) UploadAvatar(ctx context.Context, filename string, content io.Reader) (string, error) {
	var res struct {
		URL string `json:"url"`
	}
	if err := c.doMultipart(ctx, "/private/upload", "file", filename, content, &res); err != nil {
		return "", err
	}
	return res.URL, nil
}

// SubmitKyc registers the uploaded identity document images.
func (c *Client) SubmitKyc(ctx context.Context, frontPath, backPath string) (string, error) {
	body := struct {
		FrontPath string `json:"frontPath"`
		BackPath  string `json:"backPath"`
	}{frontPath, backPath}

	var res messageResponse
	if err := c.do(ctx, http.MethodPut, "/private/kyc", nil, body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

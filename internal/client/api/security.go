package api

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"
)

// SecurityUpdate is the canonical input of PUT /private/security: rotating
// the second password and/or the six-digit transaction PIN. Older UIs
// submitted the same intent under two other field vocabularies; those are
// mapped here by the explicit adapter constructors below instead of
// duck-typed field probing.
type SecurityUpdate struct {
	OldSecondPassword string `json:"oldSecondPassword,omitempty"`
	NewSecondPassword string `json:"newSecondPassword,omitempty"`
	NewTxnPin         string `json:"newTxnPin,omitempty"`
}

// SecurityUpdateFromPanelForm maps the current panel form, which only knows
// "secondPassword" and "txnPin" and always means "set a new one".
func SecurityUpdateFromPanelForm(secondPassword, txnPin string) SecurityUpdate {
	return SecurityUpdate{
		NewSecondPassword: strings.TrimSpace(secondPassword),
		NewTxnPin:         strings.TrimSpace(txnPin),
	}
}

// SecurityUpdateFromLegacyForm maps the oldest alias set:
// oldPassword2/newPassword2/newPin.
func SecurityUpdateFromLegacyForm(oldPassword2, newPassword2, newPin string) SecurityUpdate {
	return SecurityUpdate{
		OldSecondPassword: strings.TrimSpace(oldPassword2),
		NewSecondPassword: strings.TrimSpace(newPassword2),
		NewTxnPin:         strings.TrimSpace(newPin),
	}
}

var pinPattern = regexp.MustCompile(`^\d{6}$`)

// Validate applies the client-side checks the server would reject anyway:
// a new PIN must be exactly six digits, and the update must change
// something.
func (u SecurityUpdate) Validate() error {
	if u.NewTxnPin != "" && !pinPattern.MatchString(u.NewTxnPin) {
		return errors.New("transaction PIN must be exactly six digits")
	}
	if u.NewSecondPassword == "" && u.NewTxnPin == "" {
		return errors.New("nothing to update")
	}
	return nil
}

// UpdateSecurity submits the canonical payload.
func (c *Client) UpdateSecurity(ctx context.Context, upd SecurityUpdate) (string, error) {
	if err := upd.Validate(); err != nil {
		return "", err
	}
	var res messageResponse
	if err := c.do(ctx, http.MethodPut, "/private/security", nil, upd, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

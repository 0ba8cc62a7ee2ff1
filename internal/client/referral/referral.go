// Package referral captures the referral code a user arrived with. The code
// comes in once via an invite link's "ref" query parameter, is persisted in
// the client database, and is consumed by the registration call.
package referral

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	"github.com/dangtv/coinclub/internal/dbx"
)

const storageKey = "ref"

// CodeFromLink extracts the referral code from an invite link. Empty when
// the link is not a URL or carries no ref parameter.
func CodeFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	return u.Query().Get("ref")
}

// Tracker persists the captured code in the credentials key-value table.
type Tracker struct {
	db dbx.DBTX
}

func NewTracker(db dbx.DBTX) *Tracker {
	return &Tracker{db: db}
}

// Capture stores the code unless one was already captured: the first
// referrer wins, matching the capture-at-first-load behavior of the web
// client.
func (t *Tracker) Capture(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	_, err := t.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO NOTHING
	`, storageKey, []byte(code))
	if err != nil {
		return fmt.Errorf("failed to capture referral code: %w", err)
	}
	return nil
}

// Code returns the captured code, "" when none.
func (t *Tracker) Code(ctx context.Context) (string, error) {
	var value []byte
	err := t.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ?`, storageKey).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read referral code: %w", err)
	}
	return string(value), nil
}

// Consume returns the captured code and removes it, so it is sent with at
// most one registration.
func (t *Tracker) Consume(ctx context.Context) (string, error) {
	code, err := t.Code(ctx)
	if err != nil || code == "" {
		return "", err
	}
	if _, err := t.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE key = ?`, storageKey); err != nil {
		return "", fmt.Errorf("failed to consume referral code: %w", err)
	}
	return code, nil
}

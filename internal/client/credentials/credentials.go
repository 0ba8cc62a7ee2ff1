// Package credentials persists the bearer token and the cached user record
// between client runs. The durable backend is the client SQLite database;
// when that database cannot be opened the store degrades to an in-memory
// one so the session still works for the life of the process.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/dangtv/coinclub/internal/client/migrations"
	"github.com/dangtv/coinclub/internal/client/models"
)

// Storage keys. Kept separate so the token can be cleared or adopted
// independently of the cached user record.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Credential is the persisted session material.
type Credential struct {
	Token string
	User  *models.User
}

// Store is the durable credential storage.
//
// Get never fails on bad cached data: a malformed user record is reported
// as absent, and a cached user without a token is reported as absent too
// (a stale record must never surface without a valid token).
type Store interface {
	Get(ctx context.Context) (Credential, error)
	Set(ctx context.Context, token string, user *models.User) error
	SetUser(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error

	// Snapshot returns the raw stored values: the token and the user bytes
	// exactly as persisted (nil when the key is absent). The sync watcher
	// uses this to tell "removed" apart from "unparseable".
	Snapshot(ctx context.Context) (token string, userRaw []byte, err error)
}

// OpenDB opens (creating if needed) the client database and applies the
// schema. The caller owns the returned handle.
func OpenDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrations.Run(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// decodeUser is the shared soft-fail decode: absent or malformed bytes both
// come back as nil.
func decodeUser(raw []byte) *models.User {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dangtv/coinclub/internal/client/models"
	"github.com/dangtv/coinclub/internal/dbx"
)

// SQLiteStore keeps credentials in the key-value table of the client
// database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) get(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, q dbx.DBTX, key string) error {
	_, err := q.ExecContext(ctx, `DELETE FROM credentials WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete credentials[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) (Credential, error) {
	token, raw, err := s.Snapshot(ctx)
	if err != nil {
		return Credential{}, err
	}
	if token == "" {
		// Whatever user record is cached, without a token it is stale.
		return Credential{}, nil
	}
	return Credential{Token: token, User: decodeUser(raw)}, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.set(ctx, tx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return s.set(ctx, tx, KeyUser, raw)
	})
}

func (s *SQLiteStore) SetUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.set(ctx, s.db, KeyUser, raw)
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.delete(ctx, tx, KeyToken); err != nil {
			return err
		}
		return s.delete(ctx, tx, KeyUser)
	})
}

func (s *SQLiteStore) Snapshot(ctx context.Context) (string, []byte, error) {
	tokenRaw, err := s.get(ctx, s.db, KeyToken)
	if err != nil {
		return "", nil, err
	}
	userRaw, err := s.get(ctx, s.db, KeyUser)
	if err != nil {
		return "", nil, err
	}
	return string(tokenRaw), userRaw, nil
}

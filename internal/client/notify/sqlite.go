package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dangtv/coinclub/internal/dbx"
)

// SQLiteRepository stores notifications in the notifications table of the
// client database.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, userID uint64, n Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (user_id, id, title, body, created_at, read)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, id) DO NOTHING
	`, userID, n.ID, n.Title, n.Body, n.CreatedAt.UTC().Format(time.RFC3339Nano), n.Read)
	if err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID uint64) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, body, created_at, read FROM notifications
		WHERE user_id = ? ORDER BY created_at DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var result []Notification
	for rows.Next() {
		var n Notification
		var createdAt string
		if err := rows.Scan(&n.ID, &n.Title, &n.Body, &createdAt, &n.Read); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) MarkAllRead(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, userID uint64, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to remove notification: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, userID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM notifications WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear notifications: %w", err)
	}
	return nil
}

// Package notify keeps per-user local notification lists in the client
// database. Notifications are client-side only (welcome messages, transfer
// receipts); the server never sees them. Lists are scoped by user id, so
// switching accounts switches lists.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Notification is one entry of a user's list.
type Notification struct {
	ID        string
	Title     string
	Body      string
	CreatedAt time.Time
	Read      bool
}

// Repository is the storage behind the per-user lists.
type Repository interface {
	// Add inserts the notification for the user. Inserting an id that
	// already exists is a no-op, so fixed-id notifications ("welcome") are
	// naturally deduplicated.
	Add(ctx context.Context, userID uint64, n Notification) error

	// List returns the user's notifications, newest first.
	List(ctx context.Context, userID uint64) ([]Notification, error)

	MarkAllRead(ctx context.Context, userID uint64) error
	Remove(ctx context.Context, userID uint64, id string) error
	Clear(ctx context.Context, userID uint64) error
}

// Service adds id generation and unread counting on top of a Repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Push stores a notification for the user. An empty id gets a generated
// one; a fixed id deduplicates.
func (s *Service) Push(ctx context.Context, userID uint64, id, title, body string) error {
	if id == "" {
		id = uuid.NewString()
	}
	return s.repo.Add(ctx, userID, Notification{
		ID:        id,
		Title:     title,
		Body:      body,
		CreatedAt: s.now().UTC(),
	})
}

// List returns the user's notifications, newest first.
func (s *Service) List(ctx context.Context, userID uint64) ([]Notification, error) {
	return s.repo.List(ctx, userID)
}

// UnreadCount returns how many notifications are unread.
func (s *Service) UnreadCount(ctx context.Context, userID uint64) (int, error) {
	list, err := s.repo.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// MarkAllRead flags every notification of the user as read.
func (s *Service) MarkAllRead(ctx context.Context, userID uint64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// Remove deletes one notification.
func (s *Service) Remove(ctx context.Context, userID uint64, id string) error {
	return s.repo.Remove(ctx, userID, id)
}

// Clear deletes the user's whole list.
func (s *Service) Clear(ctx context.Context, userID uint64) error {
	return s.repo.Clear(ctx, userID)
}

package notify

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository is the degraded-storage counterpart used when the client
// database is unavailable.
type MemoryRepository struct {
	mu    sync.Mutex
	lists map[uint64][]Notification
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{lists: make(map[uint64][]Notification)}
}

func (r *MemoryRepository) Add(ctx context.Context, userID uint64, n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.lists[userID] {
		if existing.ID == n.ID {
			return nil
		}
	}
	r.lists[userID] = append(r.lists[userID], n)
	return nil
}

func (r *MemoryRepository) List(ctx context.Context, userID uint64) ([]Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]Notification, len(r.lists[userID]))
	copy(list, r.lists[userID])
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *MemoryRepository) MarkAllRead(ctx context.Context, userID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.lists[userID]
	for i := range list {
		list[i].Read = true
	}
	return nil
}

func (r *MemoryRepository) Remove(ctx context.Context, userID uint64, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.lists[userID]
	for i, n := range list {
		if n.ID == id {
			r.lists[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context, userID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, userID)
	return nil
}

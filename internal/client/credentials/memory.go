package credentials

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dangtv/coinclub/internal/client/models"
)

// MemoryStore is the degraded mode used when the client database cannot be
// opened: the session works normally but nothing survives a restart.
type MemoryStore struct {
	mu      sync.Mutex
	token   string
	userRaw []byte
	hasUser bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return Credential{}, nil
	}
	return Credential{Token: s.token, User: decodeUser(s.userRaw)}, nil
}

func (s *MemoryStore) Set(ctx context.Context, token string, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userRaw = raw
	s.hasUser = true
	return nil
}

func (s *MemoryStore) SetUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userRaw = raw
	s.hasUser = true
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.userRaw = nil
	s.hasUser = false
	return nil
}

func (s *MemoryStore) Snapshot(ctx context.Context) (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasUser {
		return s.token, nil, nil
	}
	raw := make([]byte, len(s.userRaw))
	copy(raw, s.userRaw)
	return s.token, raw, nil
}

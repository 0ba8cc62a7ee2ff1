// Package session holds the process-wide authentication state: the bearer
// token and the cached user record, mirrored to the credential store on
// every mutation. It is the single source of truth the HTTP client, the
// route guard, and the UI read from.
//
// The state machine is small: Anonymous (no token) and Authenticated (token
// present, user possibly still loading). Login moves to Authenticated via
// SetAuth; ClearAuth moves back to Anonymous, either explicitly (logout) or
// as the HTTP client's reaction to a 401 from any endpoint.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dangtv/coinclub/internal/client/credentials"
	"github.com/dangtv/coinclub/internal/client/models"
	"github.com/dangtv/coinclub/internal/logging"
)

// IdentityFetcher performs the "who am I" call (GET /private/me). The HTTP
// client satisfies this; the indirection keeps the session free of a direct
// dependency on the transport.
type IdentityFetcher interface {
	Me(ctx context.Context) (*models.User, error)
}

// Snapshot is the immutable view handed to observers.
type Snapshot struct {
	Token string
	User  *models.User
}

// Authenticated reports whether the snapshot carries a token.
func (s Snapshot) Authenticated() bool { return s.Token != "" }

// State is the process-wide session. All mutation goes through its methods;
// a mutex guards the fields because the sync watcher runs on its own
// goroutine.
type State struct {
	mu        sync.Mutex
	store     credentials.Store
	log       logging.Logger
	fetcher   IdentityFetcher
	token     string
	user      *models.User
	gen       uint64
	observers []func(Snapshot)
}

// NewState creates an empty session backed by store. Call Hydrate to load
// persisted credentials.
func NewState(store credentials.Store, log logging.Logger) *State {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &State{store: store, log: log}
}

// BindFetcher wires the identity fetcher used by Refresh. Done after
// construction because the HTTP client itself needs the state for tokens.
func (s *State) BindFetcher(f IdentityFetcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetcher = f
}

// Hydrate loads the persisted credential into memory. A store read failure
// leaves the session anonymous rather than failing startup.
func (s *State) Hydrate(ctx context.Context) {
	cred, err := s.store.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential hydrate failed, starting anonymous", "error", err)
		return
	}
	s.mu.Lock()
	s.token = cred.Token
	s.user = cred.User
	s.mu.Unlock()
}

// Subscribe registers an observer invoked synchronously after every state
// change, with the snapshot that change produced.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *State) snapshotLocked() Snapshot {
	return Snapshot{Token: s.token, User: s.user}
}

// notify fires observers outside the lock so they can read state freely.
func (s *State) notify(snap Snapshot, observers []func(Snapshot)) {
	for _, fn := range observers {
		fn(snap)
	}
}

// Token returns the current bearer token, "" when anonymous.
func (s *State) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// CurrentUser returns the cached user record, nil when unknown.
func (s *State) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a token is installed.
func (s *State) IsAuthenticated() bool {
	return s.Token() != ""
}

// SetAuth installs a fresh login or registration result: write-through to
// the store, then memory, then observers.
func (s *State) SetAuth(ctx context.Context, token string, user *models.User) error {
	if err := s.store.Set(ctx, token, user); err != nil {
		// Degraded storage keeps the in-memory session alive.
		s.log.Warn(ctx, "credential persist failed, session is memory-only", "error", err)
	}
	s.mu.Lock()
	s.token = token
	s.user = user
	s.gen++
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	s.notify(snap, observers)
	return nil
}

// SetUser replaces the cached user record (profile edit, wallet refresh)
// without touching the token.
func (s *State) SetUser(ctx context.Context, user *models.User) error {
	if err := s.store.SetUser(ctx, user); err != nil {
		s.log.Warn(ctx, "user persist failed", "error", err)
	}
	s.mu.Lock()
	s.user = user
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	s.notify(snap, observers)
	return nil
}

// ClearAuth tears the session down: store, memory, observers. Idempotent;
// clearing an anonymous session changes nothing observable.
func (s *State) ClearAuth(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "credential clear failed", "error", err)
	}
	s.mu.Lock()
	changed := s.token != "" || s.user != nil
	s.token = ""
	s.user = nil
	s.gen++
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	if changed {
		s.notify(snap, observers)
	}
	return nil
}

// Refresh re-fetches the identity from the server.
//
// With no token it only drops the cached user and never touches the network:
// "no token" and "invalid token" are different states. With a token, a
// successful fetch updates and re-persists the user; any failure tears the
// session down. A generation counter taken at the start is compared before
// the success write, so a refresh that resolves after an explicit logout (or
// after a newer login) cannot resurrect or overwrite the later session.
func (s *State) Refresh(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	startGen := s.gen
	fetcher := s.fetcher
	if token == "" {
		changed := s.user != nil
		s.user = nil
		snap := s.snapshotLocked()
		observers := s.observers
		s.mu.Unlock()
		if changed {
			s.notify(snap, observers)
		}
		return nil
	}
	s.mu.Unlock()

	if fetcher == nil {
		return fmt.Errorf("session: no identity fetcher bound")
	}

	user, err := fetcher.Me(ctx)

	s.mu.Lock()
	stale := s.gen != startGen
	s.mu.Unlock()

	if err != nil {
		// When the generation moved, either our own 401 already tore the
		// session down or a newer login replaced it; clearing again would
		// wipe the newer session. Otherwise tear down now.
		if !stale {
			if clearErr := s.ClearAuth(ctx); clearErr != nil {
				s.log.Warn(ctx, "teardown after failed refresh", "error", clearErr)
			}
		}
		return fmt.Errorf("refresh identity: %w", err)
	}

	if stale {
		// A success that resolved after an explicit logout or a newer login
		// must not resurrect or overwrite the later session.
		s.log.Debug(ctx, "stale identity refresh discarded")
		return nil
	}

	if err := s.store.SetUser(ctx, user); err != nil {
		s.log.Warn(ctx, "user persist failed", "error", err)
	}
	s.mu.Lock()
	if s.gen != startGen {
		s.mu.Unlock()
		return nil
	}
	s.user = user
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	s.notify(snap, observers)
	return nil
}

// AdoptToken applies a token change that originated in another process
// sharing the credential store. Memory and observers only: the durable write
// already happened on the other side. An empty token is an external logout
// and drops the cached user as well.
func (s *State) AdoptToken(token string) {
	s.mu.Lock()
	if s.token == token {
		s.mu.Unlock()
		return
	}
	s.token = token
	if token == "" {
		s.user = nil
	}
	s.gen++
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	s.notify(snap, observers)
}

// AdoptUser applies an externally-originated user record change, without
// write-through.
func (s *State) AdoptUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	snap := s.snapshotLocked()
	observers := s.observers
	s.mu.Unlock()

	s.notify(snap, observers)
}

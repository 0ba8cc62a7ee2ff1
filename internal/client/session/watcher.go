package session

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dangtv/coinclub/internal/client/credentials"
	"github.com/dangtv/coinclub/internal/client/models"
	"github.com/dangtv/coinclub/internal/logging"
)

// Watcher keeps the session consistent with other client processes sharing
// the same credential database. It reacts to filesystem change notifications
// on the database file and additionally re-checks on a ticker, then adopts
// whatever changed into the State without re-running the write-through (the
// originating process already wrote).
//
// This is best-effort and eventually consistent: last storage write wins,
// and a brief window of disagreement between processes is acceptable.
type Watcher struct {
	state    *State
	store    credentials.Store
	dbPath   string // empty disables fsnotify, leaving the ticker only
	interval time.Duration
	log      logging.Logger

	lastToken   string
	lastUserRaw []byte
}

// NewWatcher builds a watcher over state's backing store. dbPath is the
// credential database file to watch for external writes; pass "" when the
// store is memory-only. interval is the polling fallback period.
func NewWatcher(state *State, store credentials.Store, dbPath string, interval time.Duration, log logging.Logger) *Watcher {
	if log == nil {
		log = logging.NewNopLogger()
	}
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Watcher{state: state, store: store, dbPath: dbPath, interval: interval, log: log}
}

// Run blocks until ctx is cancelled. Start it on its own goroutine after
// the state has been hydrated.
func (w *Watcher) Run(ctx context.Context) {
	w.prime(ctx)

	var events chan fsnotify.Event
	var errs chan error
	if w.dbPath != "" {
		fw, err := fsnotify.NewWatcher()
		if err != nil {
			w.log.Warn(ctx, "fsnotify unavailable, polling only", "error", err)
		} else {
			defer fw.Close()
			// Watch the directory: SQLite rewrites the file and its -wal
			// sibling, and directory watches survive those replacements.
			if err := fw.Add(filepath.Dir(w.dbPath)); err != nil {
				w.log.Warn(ctx, "watch failed, polling only", "path", w.dbPath, "error", err)
			} else {
				events = fw.Events
				errs = fw.Errors
			}
		}
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	base := filepath.Base(w.dbPath)
	for {
		select {
		case ev := <-events:
			if strings.HasPrefix(filepath.Base(ev.Name), base) {
				w.check(ctx)
			}
		case err := <-errs:
			w.log.Warn(ctx, "fsnotify error", "error", err)
		case <-ticker.C:
			w.check(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// prime records the store contents at startup so only subsequent external
// writes are adopted.
func (w *Watcher) prime(ctx context.Context) {
	token, userRaw, err := w.store.Snapshot(ctx)
	if err != nil {
		w.log.Warn(ctx, "initial credential snapshot failed", "error", err)
		return
	}
	w.lastToken = token
	w.lastUserRaw = userRaw
}

// check diffs the stored credential against the last seen snapshot and
// adopts the differences.
func (w *Watcher) check(ctx context.Context) {
	token, userRaw, err := w.store.Snapshot(ctx)
	if err != nil {
		w.log.Warn(ctx, "credential snapshot failed", "error", err)
		return
	}

	if token != w.lastToken {
		w.log.Info(ctx, "adopting external token change", "cleared", token == "")
		w.state.AdoptToken(token)
		w.lastToken = token
		if token == "" {
			// AdoptToken("") dropped the user too; resync our baseline so a
			// lingering user row does not read as a fresh change.
			w.lastUserRaw = userRaw
			return
		}
	}

	if !bytes.Equal(userRaw, w.lastUserRaw) {
		w.adoptUserRaw(ctx, userRaw)
	}
}

// adoptUserRaw applies an external change to the stored user record.
// Only an explicit removal clears the cached user; unparseable bytes are
// treated as no change.
func (w *Watcher) adoptUserRaw(ctx context.Context, userRaw []byte) {
	if len(userRaw) == 0 || string(userRaw) == "null" {
		w.state.AdoptUser(nil)
		w.lastUserRaw = userRaw
		return
	}
	var u models.User
	if err := json.Unmarshal(userRaw, &u); err != nil {
		w.log.Warn(ctx, "external user record unparseable, keeping current", "error", err)
		w.lastUserRaw = userRaw
		return
	}
	w.state.AdoptUser(&u)
	w.lastUserRaw = userRaw
}

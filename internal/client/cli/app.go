package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/dangtv/coinclub/internal/client/api"
	"github.com/dangtv/coinclub/internal/client/config"
	"github.com/dangtv/coinclub/internal/client/credentials"
	"github.com/dangtv/coinclub/internal/client/guard"
	"github.com/dangtv/coinclub/internal/client/notify"
	"github.com/dangtv/coinclub/internal/client/referral"
	"github.com/dangtv/coinclub/internal/client/session"
	"github.com/dangtv/coinclub/internal/logging"

	_ "modernc.org/sqlite"
)

// routeTable declares every REPL view and its access requirements. The
// guard resolves navigation against it before a command runs.
var routeTable = []guard.Route{
	{Name: "home"},
	{Name: "tiers"},
	{Name: "market"},
	{Name: "profile", RequiresAuth: true},
	{Name: "password", RequiresAuth: true},
	{Name: "security", RequiresAuth: true},
	{Name: "kyc", RequiresAuth: true},
	{Name: "avatar", RequiresAuth: true},
	{Name: "wallet", RequiresAuth: true},
	{Name: "transfer", RequiresAuth: true},
	{Name: "buyvip", RequiresAuth: true},
	{Name: "history", RequiresAuth: true},
	{Name: "referral", RequiresAuth: true},
	{Name: "chest", RequiresAuth: true},
	{Name: "inv", RequiresAuth: true},
	{Name: "merge", RequiresAuth: true},
	{Name: "sell", RequiresAuth: true},
	{Name: "buy", RequiresAuth: true},
	{Name: "cancel", RequiresAuth: true},
	{Name: "notices", RequiresAuth: true},
	{Name: "admin", RequiresAuth: true, RequiresAdmin: true},
}

// App is the terminal client: session, API, guard, notifications, and the
// interactive reader.
type App struct {
	config  *config.Config
	state   *session.State
	client  *api.Client
	guard   *guard.Guard
	notices *notify.Service
	refs    *referral.Tracker
	watcher *session.Watcher
	log     logging.Logger
	reader  *bufio.Reader

	// observers may fire from the watcher goroutine
	wasAuthenticated atomic.Bool
}

// NewApp wires the client together. A broken client database degrades to
// memory-only storage instead of failing startup.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.NewDefault()
	}

	var store credentials.Store
	var noticeRepo notify.Repository
	var refs *referral.Tracker
	watchPath := ""

	db, err := credentials.OpenDB(ctx, cfg.DatabasePath)
	if err != nil {
		log.Warn(ctx, "client database unavailable, session will not persist",
			"path", cfg.DatabasePath, "error", err)
		store = credentials.NewMemoryStore()
		noticeRepo = notify.NewMemoryRepository()
	} else {
		store = credentials.NewSQLiteStore(db)
		noticeRepo = notify.NewSQLiteRepository(db)
		refs = referral.NewTracker(db)
		watchPath = cfg.DatabasePath
	}

	state := session.NewState(store, log)
	state.Hydrate(ctx)

	client := api.New(cfg.ServerBaseURL, state, log)
	state.BindFetcher(client)

	a := &App{
		config:  cfg,
		state:   state,
		client:  client,
		guard:   guard.New(state, guard.ModePrompt, "home", "home", routeTable),
		notices: notify.NewService(noticeRepo),
		refs:    refs,
		watcher: session.NewWatcher(state, store, watchPath, cfg.SyncPollInterval, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}
	a.wasAuthenticated.Store(state.IsAuthenticated())

	state.Subscribe(a.onSessionChange)

	if refs != nil && cfg.InviteLink != "" {
		if code := referral.CodeFromLink(cfg.InviteLink); code != "" {
			if err := refs.Capture(ctx, code); err != nil {
				log.Warn(ctx, "referral capture failed", "error", err)
			}
		}
	}

	return a, nil
}

// onSessionChange reports a session that ended underneath the user, e.g.
// a 401 teardown or a logout in another window.
func (a *App) onSessionChange(snap session.Snapshot) {
	if a.wasAuthenticated.Swap(snap.Authenticated()) && !snap.Authenticated() {
		fmt.Println("(session ended, please log in again)")
	}
}

// Run starts the sync watcher, fires the startup identity refresh, and
// blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.watcher.Run(ctx)

	if a.config.RefreshOnStart && a.state.IsAuthenticated() {
		go func() {
			rctx, rcancel := context.WithTimeout(ctx, 10*time.Second)
			defer rcancel()
			if err := a.state.Refresh(rctx); err != nil {
				a.log.Warn(rctx, "startup identity refresh failed", "error", err)
			}
		}()
	}

	fmt.Println("Welcome to coinclub (type 'help' for commands)")
	a.repl(ctx, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.state.IsAuthenticated()
}

// getStatus renders the prompt suffix: username, VIP level, and token
// expiry when the token is a readable JWT.
func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := ""
	if u := a.state.CurrentUser(); u != nil {
		s = fmt.Sprintf("%s vip%d", u.Username, u.VipLevel)
	}
	if exp, ok := session.TokenExpiry(a.state.Token()); ok {
		left := time.Until(exp).Truncate(time.Minute)
		if left > 0 {
			s += fmt.Sprintf(" %s left", left)
		} else {
			s += " expired"
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s
}

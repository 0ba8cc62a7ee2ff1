package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dangtv/coinclub/internal/client/api"
	"github.com/dangtv/coinclub/internal/client/config"
	"github.com/dangtv/coinclub/internal/client/credentials"
	"github.com/dangtv/coinclub/internal/client/guard"
	"github.com/dangtv/coinclub/internal/client/models"
	"github.com/dangtv/coinclub/internal/client/notify"
	"github.com/dangtv/coinclub/internal/client/session"
	"github.com/dangtv/coinclub/internal/logging"
)

// newTestApp wires an App against the given server with memory-only
// storage, the way NewApp does when the database is unavailable.
func newTestApp(t *testing.T, baseURL string) *App {
	t.Helper()

	log := logging.NewNopLogger()
	store := credentials.NewMemoryStore()
	state := session.NewState(store, log)
	client := api.New(baseURL, state, log)
	state.BindFetcher(client)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:  cfg,
		state:   state,
		client:  client,
		guard:   guard.New(state, guard.ModePrompt, "home", "home", routeTable),
		notices: notify.NewService(notify.NewMemoryRepository()),
		log:     log,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// stubInput overrides the prompt seams for the lifetime of one test:
// every text prompt answers from lines in order, every password prompt
// answers pw.
func stubInput(t *testing.T, pw string, lines ...string) {
	t.Helper()

	var mu sync.Mutex
	i := 0
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		if i >= len(lines) {
			return "", nil
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(io.Writer, string) ([]byte, error) {
		return []byte(pw), nil
	}
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })
}

func silencePrintln(t *testing.T) *[]string {
	t.Helper()
	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, len(a))
		for i, v := range a {
			parts[i] = fmt.Sprint(v)
		}
		printed = append(printed, strings.Join(parts, " "))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &printed
}

func TestDispatch_PromptsLoginAndReplaysCommand(t *testing.T) {
	var walletHits int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  models.User{ID: 7, Username: "alice", Name: "Alice"},
		})
	})
	mux.HandleFunc("GET /private/wallet", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		walletHits++
		json.NewEncoder(w).Encode(models.Wallet{Coins: 100, VipLevel: 1})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	stubInput(t, "pass", "alice")
	silencePrintln(t)

	app.dispatch(context.Background(), "wallet", nil)

	require.True(t, app.isLoggedIn())
	require.Equal(t, 1, walletHits, "the originally requested command should run after login")
}

func TestDispatch_FailedLoginDropsPendingCommand(t *testing.T) {
	var walletHits int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad credentials"})
	})
	mux.HandleFunc("GET /private/wallet", func(w http.ResponseWriter, r *http.Request) {
		walletHits++
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	stubInput(t, "wrong", "alice")
	silencePrintln(t)

	app.dispatch(context.Background(), "wallet", nil)

	require.False(t, app.isLoggedIn())
	require.Zero(t, walletHits)

	// the pending command must not leak into a later login
	require.Empty(t, app.guard.ConsumePending())
}

func TestDispatch_AdminRequiresAdminRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	}))
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	require.NoError(t, app.state.SetAuth(context.Background(), "tok",
		&models.User{ID: 1, Username: "bob", Role: models.RoleUser}))
	printed := silencePrintln(t)

	app.dispatch(context.Background(), "admin", []string{"users"})

	require.NotEmpty(t, *printed)
}

func TestExec_LoginStoresWelcomeNotification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  models.User{ID: 7, Username: "alice", Name: "Alice"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	stubInput(t, "pass", "alice")

	ctx := context.Background()
	require.NoError(t, app.Login(ctx))
	require.NoError(t, app.Login(ctx)) // second login must not duplicate it

	items, err := app.notices.List(ctx, 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "Welcome", items[0].Title)
}

func TestHistory_UnknownKind(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	err := app.History(context.Background(), []string{"bogus"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bogus")
}

func TestGetStatus(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	require.Equal(t, "", app.getStatus())

	require.NoError(t, app.state.SetAuth(context.Background(), "opaque-token",
		&models.User{ID: 1, Username: "alice", VipLevel: 3}))
	require.Contains(t, app.getStatus(), "alice vip3")
}

package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dangtv/coinclub/internal/client/models"
)

func TestRepl_HelpLoginAndExit(t *testing.T) {
	var walletHits int
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  models.User{ID: 7, Username: "alice", Name: "Alice"},
		})
	})
	mux.HandleFunc("GET /private/wallet", func(w http.ResponseWriter, r *http.Request) {
		walletHits++
		json.NewEncoder(w).Encode(models.Wallet{Coins: 5})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	app := newTestApp(t, srv.URL)
	stubInput(t, "pass", "alice")
	printed := silencePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"wallet",
		"bogus",
		"exit",
		"wallet", // never reached
	}, "\n")
	app.repl(context.Background(), bufio.NewScanner(strings.NewReader(input)))

	require.True(t, app.isLoggedIn())
	require.Equal(t, 1, walletHits)

	out := strings.Join(*printed, "\n")
	require.Contains(t, out, helpPublic)
	require.Contains(t, out, helpPrivate)
	require.Contains(t, out, "Unknown command: bogus")
	require.Contains(t, out, "Bye!")
}

func TestRepl_BlankLinesIgnored(t *testing.T) {
	app := newTestApp(t, "http://unused.invalid")
	silencePrintln(t)

	app.repl(context.Background(), bufio.NewScanner(strings.NewReader("\n\n   \n")))
	require.False(t, app.isLoggedIn())
}

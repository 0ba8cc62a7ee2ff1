// Package guard gates navigation on the session state. Every navigation is
// resolved BEFORE it commits: a protected target is denied up front rather
// than granted and revoked.
package guard

import (
	"sync"

	"github.com/dangtv/coinclub/internal/client/models"
)

// Route declares one navigation target and its access requirements.
type Route struct {
	Name          string
	RequiresAuth  bool
	RequiresAdmin bool
}

// Session is the read side of the session state the guard consults.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() *models.User
}

// Mode selects what happens when an unauthenticated user hits a protected
// route.
type Mode int

const (
	// ModeRedirect sends the user to the public home route.
	ModeRedirect Mode = iota
	// ModePrompt opens the authentication prompt and remembers the requested
	// destination for replay after login.
	ModePrompt
)

// Decision is the outcome of resolving a navigation.
type Decision struct {
	// Allowed means the navigation may commit.
	Allowed bool
	// RedirectTo is the route to go to instead when denied (empty when the
	// answer is a prompt).
	RedirectTo string
	// PromptLogin asks the UI to open the authentication prompt; the denied
	// destination is remembered for replay.
	PromptLogin bool
}

// Guard resolves navigations against a route table.
type Guard struct {
	mu       sync.Mutex
	routes   map[string]Route
	session  Session
	mode     Mode
	home     string // public landing route
	fallback string // safe route for role denials
	pending  string
}

// New builds a guard. home is the public landing route used for auth
// redirects; fallback is where role denials land (typically the same).
func New(session Session, mode Mode, home, fallback string, routes []Route) *Guard {
	table := make(map[string]Route, len(routes))
	for _, r := range routes {
		table[r.Name] = r
	}
	return &Guard{routes: table, session: session, mode: mode, home: home, fallback: fallback}
}

// Resolve decides whether navigation to target may commit. Unknown targets
// are treated as public.
func (g *Guard) Resolve(target string) Decision {
	route, ok := g.routes[target]
	if !ok {
		return Decision{Allowed: true}
	}

	if route.RequiresAuth && !g.session.IsAuthenticated() {
		if g.mode == ModePrompt {
			g.mu.Lock()
			g.pending = target
			g.mu.Unlock()
			return Decision{PromptLogin: true}
		}
		return Decision{RedirectTo: g.home}
	}

	if route.RequiresAdmin && !g.session.CurrentUser().IsAdmin() {
		// Checked before the navigation commits: an ordinary user never sees
		// the admin view, not even for a tick.
		return Decision{RedirectTo: g.fallback}
	}

	return Decision{Allowed: true}
}

// ConsumePending returns the destination remembered by the last prompt
// decision and forgets it. Empty when nothing is pending.
func (g *Guard) ConsumePending() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	p := g.pending
	g.pending = ""
	return p
}

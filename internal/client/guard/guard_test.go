package guard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dangtv/coinclub/internal/client/models"
)

type fakeSession struct {
	token string
	user  *models.User
}

func (f *fakeSession) IsAuthenticated() bool     { return f.token != "" }
func (f *fakeSession) CurrentUser() *models.User { return f.user }

var routes = []Route{
	{Name: "home"},
	{Name: "market"},
	{Name: "wallet", RequiresAuth: true},
	{Name: "profile", RequiresAuth: true},
	{Name: "admin", RequiresAuth: true, RequiresAdmin: true},
}

func TestGuard_PublicRoutesAlwaysAllowed(t *testing.T) {
	g := New(&fakeSession{}, ModeRedirect, "home", "home", routes)

	require.True(t, g.Resolve("home").Allowed)
	require.True(t, g.Resolve("market").Allowed)
	require.True(t, g.Resolve("unknown-route").Allowed)
}

func TestGuard_RedirectMode(t *testing.T) {
	g := New(&fakeSession{}, ModeRedirect, "home", "home", routes)

	d := g.Resolve("wallet")
	require.False(t, d.Allowed)
	require.False(t, d.PromptLogin)
	require.Equal(t, "home", d.RedirectTo)
}

func TestGuard_PromptModeRemembersDestination(t *testing.T) {
	sess := &fakeSession{}
	g := New(sess, ModePrompt, "home", "home", routes)

	d := g.Resolve("wallet")
	require.False(t, d.Allowed)
	require.True(t, d.PromptLogin)

	// Post-login the UI replays the remembered destination, once.
	sess.token = "T1"
	sess.user = &models.User{ID: 1, Role: models.RoleUser}
	require.Equal(t, "wallet", g.ConsumePending())
	require.Empty(t, g.ConsumePending())
	require.True(t, g.Resolve("wallet").Allowed)
}

func TestGuard_AdminRoleCheckedBeforeCommit(t *testing.T) {
	sess := &fakeSession{token: "T1", user: &models.User{ID: 1, Role: models.RoleUser}}
	g := New(sess, ModePrompt, "home", "home", routes)

	d := g.Resolve("admin")
	require.False(t, d.Allowed)
	require.False(t, d.PromptLogin, "a logged-in non-admin gets a redirect, not a login prompt")
	require.Equal(t, "home", d.RedirectTo)

	sess.user.Role = models.RoleAdmin
	require.True(t, g.Resolve("admin").Allowed)
}

func TestGuard_AdminRouteWithMissingUserRecord(t *testing.T) {
	// Authenticated but the user record hasn't loaded yet: deny rather than
	// grant-and-revoke.
	sess := &fakeSession{token: "T1", user: nil}
	g := New(sess, ModePrompt, "home", "home", routes)

	d := g.Resolve("admin")
	require.False(t, d.Allowed)
	require.Equal(t, "home", d.RedirectTo)
}

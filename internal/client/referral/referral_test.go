package referral

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dangtv/coinclub/internal/client/credentials"

	_ "modernc.org/sqlite"
)

func newTracker(t *testing.T) *Tracker {
	t.Helper()
	db, err := credentials.OpenDB(context.Background(), t.TempDir()+"/client.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTracker(db)
}

func TestCodeFromLink(t *testing.T) {
	require.Equal(t, "AB12", CodeFromLink("https://coinclub.example/?ref=AB12"))
	require.Equal(t, "AB12", CodeFromLink("https://coinclub.example/signup?x=1&ref=AB12"))
	require.Empty(t, CodeFromLink("https://coinclub.example/"))
	require.Empty(t, CodeFromLink("::not a url::"))
}

func TestTracker_FirstReferrerWins(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t)

	require.NoError(t, tr.Capture(ctx, "FIRST"))
	require.NoError(t, tr.Capture(ctx, "SECOND"))

	code, err := tr.Code(ctx)
	require.NoError(t, err)
	require.Equal(t, "FIRST", code)
}

func TestTracker_EmptyCaptureIsNoOp(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t)

	require.NoError(t, tr.Capture(ctx, ""))
	code, err := tr.Code(ctx)
	require.NoError(t, err)
	require.Empty(t, code)
}

func TestTracker_ConsumeIsOneShot(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(t)

	require.NoError(t, tr.Capture(ctx, "AB12"))

	code, err := tr.Consume(ctx)
	require.NoError(t, err)
	require.Equal(t, "AB12", code)

	code, err = tr.Consume(ctx)
	require.NoError(t, err)
	require.Empty(t, code)
}

package dbx

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:dbxtest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(2)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS rows_ (id INTEGER PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM rows_`)
	require.NoError(t, err)
	return db
}

func rowCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM rows_`).Scan(&n))
	return n
}

func TestWithTx_Commit(t *testing.T) {
	db := newDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO rows_(v) VALUES ('a')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, rowCount(t, db))
}

func TestWithTx_ErrorRollsBack(t *testing.T) {
	db := newDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO rows_(v) VALUES ('a')`); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Zero(t, rowCount(t, db))
}

func TestWithTx_PanicRollsBackAndRethrows(t *testing.T) {
	db := newDB(t)

	defer func() {
		require.NotNil(t, recover(), "panic must propagate")
		require.Zero(t, rowCount(t, db))
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO rows_(v) VALUES ('a')`); err != nil {
			return err
		}
		panic("kaput")
	})
}

func TestWithTx_BeginFails(t *testing.T) {
	db := newDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err)
}

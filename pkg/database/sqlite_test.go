package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(Config{
		Path:            filepath.Join(t.TempDir(), "data", "test.db"),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrator_RunMigrations(t *testing.T) {
	db := openTestDB(t)
	m := NewMigrator(db, zap.NewNop())

	require.NoError(t, m.RunMigrations())
	// a second run is a no-op
	require.NoError(t, m.RunMigrations())

	for _, table := range []string{"processing_runs", "run_files"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestDB_WithTransaction(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, err := db.Exec("CREATE TABLE notes (body TEXT)")
	require.NoError(t, err)

	err = db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.Exec("INSERT INTO notes (body) VALUES ('kept')")
		return err
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("INSERT INTO notes (body) VALUES ('dropped')"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestDSN(t *testing.T) {
	dsn := DSN("/tmp/runs.db")

	assert.True(t, strings.HasPrefix(dsn, "file:/tmp/runs.db?"))
	assert.Contains(t, dsn, "_journal_mode=WAL")
	assert.Contains(t, dsn, "_busy_timeout=5000")
	assert.Contains(t, dsn, "_foreign_keys=on")
}

func TestDSN_EscapesURIDelimiters(t *testing.T) {
	dsn := DSN("/tmp/a?b#c%d.db")

	assert.True(t, strings.HasPrefix(dsn, "file:/tmp/a%3fb%23c%25d.db?"), dsn)
	assert.Equal(t, 1, strings.Count(dsn, "?"))
	assert.NotContains(t, dsn, "#")
}

func TestNew_PathWithURIDelimiters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs?v=1#x%20.db")

	db, err := New(Config{Path: path}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, NewMigrator(db, zap.NewNop()).RunMigrations())

	assert.FileExists(t, path)
	assert.NoError(t, db.Check(context.Background()))
}

func TestDB_Check(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	assert.Error(t, db.Check(ctx))

	require.NoError(t, NewMigrator(db, zap.NewNop()).RunMigrations())
	assert.NoError(t, db.Check(ctx))
}

func TestNew_DefaultsPoolToSingleConnection(t *testing.T) {
	db, err := New(Config{Path: filepath.Join(t.TempDir(), "pool.db")}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

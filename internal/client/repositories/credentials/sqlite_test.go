package credentials

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestGet_AbsentKeyIsEmpty(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))

	v, err := repo.Get(context.Background(), "jwt-token")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSetGetDelete_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Set(ctx, "jwt-token", "tok-1"))

	v, err := repo.Get(ctx, "jwt-token")
	require.NoError(t, err)
	require.Equal(t, "tok-1", v)

	// overwrite
	require.NoError(t, repo.Set(ctx, "jwt-token", "tok-2"))
	v, err = repo.Get(ctx, "jwt-token")
	require.NoError(t, err)
	require.Equal(t, "tok-2", v)

	require.NoError(t, repo.Delete(ctx, "jwt-token"))
	v, err = repo.Get(ctx, "jwt-token")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestDelete_AbsentKeyIsNoop(t *testing.T) {
	repo := NewSQLiteRepository(setupDB(t))
	require.NoError(t, repo.Delete(context.Background(), "jwt-token"))
}

func TestOpen_MigratesSchema(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "creds.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Set(ctx, "jwt-token", "tok"))

	v, err := repo.Get(ctx, "jwt-token")
	require.NoError(t, err)
	require.Equal(t, "tok", v)
}

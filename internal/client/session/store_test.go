package session

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/yuyuwang/yuyu-cli/internal/client/models"
	"github.com/yuyuwang/yuyu-cli/internal/client/repositories/credentials"
	"github.com/yuyuwang/yuyu-cli/internal/common"
	"github.com/yuyuwang/yuyu-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

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

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newStore(t *testing.T) (*Store, credentials.Repository) {
	t.Helper()
	repo := credentials.NewSQLiteRepository(setupDB(t))
	return NewStore(repo, testLogger()), repo
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

// ---- TESTS ----

func TestIsLoggedIn_TracksTokenAfterEveryMutator(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	require.False(t, s.IsLoggedIn())

	require.NoError(t, s.SetToken(ctx, "tok"))
	require.True(t, s.IsLoggedIn())

	s.SetProfile(models.User{Username: "bob", FishBalance: 5})
	require.True(t, s.IsLoggedIn())

	s.RecordDailyClaim(15)
	require.True(t, s.IsLoggedIn())

	s.RecordSpend(1)
	require.True(t, s.IsLoggedIn())

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.IsLoggedIn())
}

func TestLogout_ResetsEverything(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)

	require.NoError(t, s.SetToken(ctx, "tok"))
	s.SetProfile(models.User{Username: "bob", FishBalance: 100, CanClaimDaily: true})

	require.NoError(t, s.Logout(ctx))

	require.Empty(t, s.Token())
	p := s.Profile()
	require.Zero(t, p.FishBalance)
	require.False(t, p.CanClaimDaily)
	require.Empty(t, p.Username)

	stored, err := repo.Get(ctx, common.CredentialKey)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestSetToken_Persists(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)

	require.NoError(t, s.SetToken(ctx, "tok-1"))

	stored, err := repo.Get(ctx, common.CredentialKey)
	require.NoError(t, err)
	require.Equal(t, "tok-1", stored)
}

func TestRecordDailyClaim_SetsBalanceAndClearsFlag(t *testing.T) {
	s, _ := newStore(t)
	s.SetProfile(models.User{FishBalance: 3, CanClaimDaily: true})

	s.RecordDailyClaim(13)

	p := s.Profile()
	require.Equal(t, int64(13), p.FishBalance)
	require.False(t, p.CanClaimDaily)
}

func TestRecordSpend_ClampsAtBalance(t *testing.T) {
	s, _ := newStore(t)
	s.SetProfile(models.User{FishBalance: 5})

	s.RecordSpend(3)
	require.Equal(t, int64(2), s.Profile().FishBalance)

	// amount > balance is a silent no-op
	s.RecordSpend(10)
	require.Equal(t, int64(2), s.Profile().FishBalance)
}

func TestRestore_RehydratesLiveToken(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)

	token := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, repo.Set(ctx, common.CredentialKey, token))

	require.NoError(t, s.Restore(ctx))
	require.True(t, s.IsLoggedIn())
	require.Equal(t, token, s.Token())
}

func TestRestore_DropsExpiredToken(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)

	token := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, repo.Set(ctx, common.CredentialKey, token))

	require.NoError(t, s.Restore(ctx))
	require.False(t, s.IsLoggedIn())

	stored, err := repo.Get(ctx, common.CredentialKey)
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestRestore_KeepsOpaqueToken(t *testing.T) {
	ctx := context.Background()
	s, repo := newStore(t)

	require.NoError(t, repo.Set(ctx, common.CredentialKey, "not-a-jwt"))

	require.NoError(t, s.Restore(ctx))
	require.True(t, s.IsLoggedIn())
}

func TestSubscribe_RunsAfterMutations(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	calls := 0
	s.Subscribe(func() { calls++ })

	require.NoError(t, s.SetToken(ctx, "tok"))
	s.SetProfile(models.User{})
	s.RecordSpend(0)
	require.NoError(t, s.Logout(ctx))

	require.Equal(t, 4, calls)
}

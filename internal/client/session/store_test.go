package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/repositories/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (Store, *sql.DB) {
	t.Helper()
	db, err := kvstore.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db), db
}

func TestStore_SetGet(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, models.Session{Token: "tok", UserID: "7"}))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Session{Token: "tok", UserID: "7"}, got)

	all, err := kvstore.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyToken: "tok", KeyUserID: "7"}, all)
}

func TestStore_GetEmpty(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.Get(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStore_SetRejectsHalfSession(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.Set(ctx, models.Session{Token: "tok"}), ErrIncompleteSession)
	require.ErrorIs(t, s.Set(ctx, models.Session{UserID: "1"}), ErrIncompleteSession)

	all, err := kvstore.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_GetTreatsHalfAsAbsent(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	require.NoError(t, kvstore.NewSQLiteRepository(db).Set(ctx, KeyToken, "orphan"))

	_, err := s.Get(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

func TestStore_ClearRemovesEverything(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()
	repo := kvstore.NewSQLiteRepository(db)

	require.NoError(t, s.Set(ctx, models.Session{Token: "tok", UserID: "7"}))
	require.NoError(t, repo.Set(ctx, "unrelated", "x"))

	require.NoError(t, s.Clear(ctx))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = s.Get(ctx)
	require.ErrorIs(t, err, ErrNoSession)
}

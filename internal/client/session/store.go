// Package session persists the authenticated identity of the client.
//
// A session is two flat strings, the bearer token and the user id, stored
// under fixed keys of the local key-value store. Both are written in one
// transaction so a reader never observes one without the other.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/repositories/kvstore"
)

const (
	KeyToken  = "userToken"
	KeyUserID = "userId"
)

var (
	// ErrNoSession means the store holds no complete session.
	ErrNoSession = errors.New("no session")
	// ErrIncompleteSession is returned by Set when a field is empty.
	ErrIncompleteSession = errors.New("session requires both token and user id")
)

// Store is the session store contract used by the client services.
type Store interface {
	Set(ctx context.Context, s models.Session) error
	Get(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}

type sqliteStore struct {
	db *sql.DB
}

// NewStore returns a Store over a database opened with kvstore.Open.
func NewStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Set(ctx context.Context, sess models.Session) error {
	if !sess.Valid() {
		return ErrIncompleteSession
	}
	err := kvstore.WithTx(ctx, s.db, func(ctx context.Context, repo kvstore.Repository) error {
		if err := repo.Set(ctx, KeyToken, sess.Token); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUserID, sess.UserID)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get returns ErrNoSession unless both values are present and non-empty.
func (s *sqliteStore) Get(ctx context.Context) (models.Session, error) {
	repo := kvstore.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return models.Session{}, ErrNoSession
	}
	userID, ok, err := repo.Get(ctx, KeyUserID)
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return models.Session{}, ErrNoSession
	}

	sess := models.Session{Token: token, UserID: userID}
	if !sess.Valid() {
		return models.Session{}, ErrNoSession
	}
	return sess, nil
}

// Clear wipes the whole store, not only the session keys.
func (s *sqliteStore) Clear(ctx context.Context) error {
	if err := kvstore.NewSQLiteRepository(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Package services contains the application services of the reservation
// client. Each service resolves the identity from the session store and
// delegates to the API client; none keeps state of its own.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/reservas/internal/client/client"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/session"
)

// AuthService defines the login/logout operations of the CLI.
//
// Contract:
//   - CurrentSession: the persisted session, or session.ErrNoSession.
//   - Login: authenticate and persist token and user id together.
//   - Logout: wipe the session store.
type AuthService interface {
	CurrentSession(ctx context.Context) (models.Session, error)
	Login(ctx context.Context, email string, password []byte) (models.Session, error)
	Logout(ctx context.Context) error
}

type authService struct {
	client client.Client
	store  session.Store
}

func NewAuthService(c client.Client, s session.Store) AuthService {
	return &authService{client: c, store: s}
}

func (a *authService) CurrentSession(ctx context.Context) (models.Session, error) {
	return a.store.Get(ctx)
}

// Login persists nothing unless the backend returned both a token and a
// user id.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	res, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return models.Session{}, fmt.Errorf("login error: %w", err)
	}

	sess := models.Session{Token: res.Token, UserID: strconv.FormatInt(res.UserID, 10)}
	if err := a.store.Set(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}
	return sess, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

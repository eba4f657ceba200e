package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/reservas/internal/client/client"
	"github.com/dmitrijs2005/reservas/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Start routes to home when a session is persisted, otherwise to login.
func (a *App) Start(ctx context.Context) {
	sess, err := a.authService.CurrentSession(ctx)
	switch {
	case err == nil:
		a.loggedIn = true
		a.router.Reset(RouteHome)
		a.logger.Debug(ctx, "session restored", "user_id", sess.UserID)
	case errors.Is(err, session.ErrNoSession):
		a.router.Reset(RouteLogin)
	default:
		a.logger.Error(ctx, "reading session", "error", err)
		a.router.Reset(RouteLogin)
	}
	_ = a.render(ctx)
}

// Login prompts for credentials and authenticates. On success the history
// becomes [home]; on failure a generic alert is shown and the route stays.
func (a *App) Login(ctx context.Context) error {
	if a.loggedIn {
		a.printf("Already logged in.\n")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if _, err := a.authService.Login(ctx, email, password); err != nil {
		a.logger.Warn(ctx, "login unsuccessful", "error", err)
		switch {
		case errors.Is(err, client.ErrUnavailable):
			a.alert("Error", "Server unavailable, try again later")
		default:
			a.alert("Error", "Invalid credentials")
		}
		return err
	}

	a.logger.Info(ctx, "login successful")
	a.loggedIn = true
	a.router.Reset(RouteHome)
	return a.render(ctx)
}

// Logout navigates to the logout screen, which ends at the login route.
func (a *App) Logout(ctx context.Context) error {
	return a.navigate(ctx, RouteLogout, nil)
}

// logoutScreen wipes the session store. A failed wipe is logged only; the
// navigation reset happens regardless.
func (a *App) logoutScreen(ctx context.Context) error {
	a.screens.leave()
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "clearing session", "error", err)
	}
	a.loggedIn = false
	a.notice.Clear()
	a.router.Reset(RouteLogin)
	a.printf("Logged out.\n")
	return a.render(ctx)
}

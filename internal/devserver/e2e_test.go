package devserver_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/reservas/internal/client/client"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/reservas/internal/client/services"
	"github.com/dmitrijs2005/reservas/internal/client/session"
	"github.com/dmitrijs2005/reservas/internal/devserver"
	"github.com/dmitrijs2005/reservas/internal/devserver/config"
	"github.com/dmitrijs2005/reservas/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientStack struct {
	auth         services.AuthService
	profile      services.ProfileService
	reservations services.ReservationService
	store        session.Store
}

func newStack(t *testing.T, policy client.AuthPolicy) clientStack {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	app, err := devserver.NewApp(ctx, cfg, logging.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	httpClient, err := client.NewHTTPClient(srv.URL, client.WithAuthPolicy(policy))
	require.NoError(t, err)

	db, err := kvstore.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewStore(db)
	return clientStack{
		auth:         services.NewAuthService(httpClient, store),
		profile:      services.NewProfileService(httpClient, store),
		reservations: services.NewReservationService(httpClient, store, []int64{13}),
		store:        store,
	}
}

func TestEndToEnd_ReservationRoundTrip(t *testing.T) {
	for name, policy := range map[string]client.AuthPolicy{
		"observed": client.ObservedAuthPolicy(),
		"all":      client.AllEndpointsAuthPolicy(),
	} {
		t.Run(name, func(t *testing.T) {
			s := newStack(t, policy)
			ctx := context.Background()

			sess, err := s.auth.Login(ctx, "demo@reservas.dev", []byte("demo1234"))
			require.NoError(t, err)
			assert.Equal(t, "12", sess.UserID)

			stored, err := s.store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, sess, stored)

			userID, err := s.reservations.UserID(ctx)
			require.NoError(t, err)

			require.NoError(t, s.reservations.Create(ctx, models.ReservationInput{
				VehiculoID: 5, SucursalID: 2, Fechar: "2025-06-01", UserID: userID,
			}))

			list, err := s.reservations.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			row := list[1]
			assert.EqualValues(t, 5, row.VehiculoID)
			assert.EqualValues(t, 2, row.SucursalID)
			assert.Equal(t, "2025-06-01", row.Fechar)
			require.NotNil(t, row.Vehiculo)
			assert.Equal(t, "CDE-301", row.Vehiculo.Placa)

			got, err := s.reservations.Get(ctx, row.ID)
			require.NoError(t, err)
			assert.Equal(t, "2025-06-01", got.Fechar)

			require.NoError(t, s.reservations.Update(ctx, row.ID, models.ReservationInput{
				VehiculoID: 6, SucursalID: 3, Fechar: "2025-07-01", UserID: userID,
			}))

			require.NoError(t, s.reservations.Delete(ctx, row.ID))
			err = s.reservations.Delete(ctx, row.ID)
			require.ErrorIs(t, err, client.ErrNotFound)

			list, err = s.reservations.List(ctx)
			require.NoError(t, err)
			assert.Len(t, list, 1)

			require.NoError(t, s.auth.Logout(ctx))
			_, err = s.store.Get(ctx)
			require.ErrorIs(t, err, session.ErrNoSession)
		})
	}
}

func TestEndToEnd_ReferenceData(t *testing.T) {
	s := newStack(t, client.ObservedAuthPolicy())
	ctx := context.Background()

	_, err := s.auth.Login(ctx, "demo@reservas.dev", []byte("demo1234"))
	require.NoError(t, err)

	branches, err := s.reservations.Branches(ctx)
	require.NoError(t, err)
	var internal []int64
	for _, b := range branches {
		if b.Internal {
			internal = append(internal, b.ID)
		}
	}
	assert.Equal(t, []int64{13}, internal)

	vehicles, err := s.reservations.AvailableVehicles(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, vehicles)

	p, err := s.profile.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "demo@reservas.dev", p.Email)
	assert.EqualValues(t, 1, p.TipoDocumentoID)

	p.Name = "Ana"
	p.Email = "other@reservas.dev"
	require.NoError(t, s.profile.Save(ctx, p))

	p, err = s.profile.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "demo@reservas.dev", p.Email)

	docs, err := s.profile.DocumentTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 3)
}

func TestEndToEnd_BadLogin(t *testing.T) {
	s := newStack(t, client.ObservedAuthPolicy())
	ctx := context.Background()

	_, err := s.auth.Login(ctx, "demo@reservas.dev", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrUnauthorized)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "invalid credentials", apiErr.Message)

	_, err = s.store.Get(ctx)
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestEndToEnd_ExpiredToken(t *testing.T) {
	s := newStack(t, client.ObservedAuthPolicy())
	ctx := context.Background()

	tok, err := devserver.GenerateToken(12, []byte("secretKey"), -time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.store.Set(ctx, models.Session{Token: tok, UserID: "12"}))

	_, err = s.reservations.List(ctx)
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/reservas/internal/client/session"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupStore(t *testing.T) session.Store {
	t.Helper()
	db, err := kvstore.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return session.NewStore(db)
}

func loggedInStore(t *testing.T) session.Store {
	t.Helper()
	s := setupStore(t)
	require.NoError(t, s.Set(context.Background(), models.Session{Token: "tok", UserID: "12"}))
	return s
}

// ---- fake client ----

// fakeClient implements client.Client for service unit tests.
type fakeClient struct {
	LoginRet models.LoginResult
	LoginErr error

	ProfileRet models.Profile
	ProfileErr error
	UpdateErr  error
	DocTypes   []models.DocumentType
	DocTypeErr error

	Reservations   []models.Reservation
	ListErr        error
	ReservationRet models.Reservation
	GetErr         error
	CreateErr      error
	UpdateResErr   error
	DeleteErr      error

	Vehicles   []models.Vehicle
	VehicleErr error
	Branches   []models.Branch
	BranchErr  error

	// argument capture
	LastToken   string
	LastUserID  string
	LastID      int64
	LastEmail   string
	LastPass    string
	LastProfile *models.ProfileUpdate
	LastInput   *models.ReservationInput
	Calls       []string
}

func (f *fakeClient) Login(_ context.Context, email, password string) (models.LoginResult, error) {
	f.Calls = append(f.Calls, "login")
	f.LastEmail, f.LastPass = email, password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) GetProfile(_ context.Context, token, userID string) (models.Profile, error) {
	f.Calls = append(f.Calls, "get_profile")
	f.LastToken, f.LastUserID = token, userID
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(_ context.Context, token, userID string, p models.ProfileUpdate) error {
	f.Calls = append(f.Calls, "update_profile")
	f.LastToken, f.LastUserID = token, userID
	f.LastProfile = &p
	return f.UpdateErr
}

func (f *fakeClient) ListDocumentTypes(_ context.Context, token string) ([]models.DocumentType, error) {
	f.Calls = append(f.Calls, "document_types")
	f.LastToken = token
	return f.DocTypes, f.DocTypeErr
}

func (f *fakeClient) ListReservations(_ context.Context, token, userID string) ([]models.Reservation, error) {
	f.Calls = append(f.Calls, "list_reservations")
	f.LastToken, f.LastUserID = token, userID
	return append([]models.Reservation(nil), f.Reservations...), f.ListErr
}

func (f *fakeClient) GetReservation(_ context.Context, token string, id int64) (models.Reservation, error) {
	f.Calls = append(f.Calls, "get_reservation")
	f.LastToken, f.LastID = token, id
	return f.ReservationRet, f.GetErr
}

func (f *fakeClient) CreateReservation(_ context.Context, token string, in models.ReservationInput) error {
	f.Calls = append(f.Calls, "create_reservation")
	f.LastToken = token
	f.LastInput = &in
	return f.CreateErr
}

func (f *fakeClient) UpdateReservation(_ context.Context, token string, id int64, in models.ReservationInput) error {
	f.Calls = append(f.Calls, "update_reservation")
	f.LastToken, f.LastID = token, id
	f.LastInput = &in
	return f.UpdateResErr
}

func (f *fakeClient) DeleteReservation(_ context.Context, token string, id int64) error {
	f.Calls = append(f.Calls, "delete_reservation")
	f.LastToken, f.LastID = token, id
	return f.DeleteErr
}

func (f *fakeClient) ListAvailableVehicles(_ context.Context, token string) ([]models.Vehicle, error) {
	f.Calls = append(f.Calls, "vehicles")
	f.LastToken = token
	return f.Vehicles, f.VehicleErr
}

func (f *fakeClient) ListBranches(_ context.Context, token string) ([]models.Branch, error) {
	f.Calls = append(f.Calls, "branches")
	f.LastToken = token
	return append([]models.Branch(nil), f.Branches...), f.BranchErr
}

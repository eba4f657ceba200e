package client

import (
	"context"

	"github.com/dmitrijs2005/reservas/internal/client/models"
)

// Client is the transport-agnostic contract of the reservation backend.
//
// Every call except Login receives the session token; whether it is sent
// is decided by the implementation's AuthPolicy.
type Client interface {
	Login(ctx context.Context, email, password string) (models.LoginResult, error)

	GetProfile(ctx context.Context, token, userID string) (models.Profile, error)
	UpdateProfile(ctx context.Context, token, userID string, p models.ProfileUpdate) error
	ListDocumentTypes(ctx context.Context, token string) ([]models.DocumentType, error)

	ListReservations(ctx context.Context, token, userID string) ([]models.Reservation, error)
	GetReservation(ctx context.Context, token string, id int64) (models.Reservation, error)
	CreateReservation(ctx context.Context, token string, in models.ReservationInput) error
	UpdateReservation(ctx context.Context, token string, id int64, in models.ReservationInput) error
	DeleteReservation(ctx context.Context, token string, id int64) error

	ListAvailableVehicles(ctx context.Context, token string) ([]models.Vehicle, error)
	ListBranches(ctx context.Context, token string) ([]models.Branch, error)
}

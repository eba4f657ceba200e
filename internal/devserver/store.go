package devserver

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/reservas/internal/client/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("unknown vehicle, branch or user")
)

// User is an account of the development backend.
type User struct {
	ID           int64
	Email        string
	PasswordHash []byte
	Profile      models.Profile
}

// Store is the persistence surface of the handlers. Reservations returned
// by ReservationsByUser carry their nested vehiculo, usuario and sucursal.
type Store interface {
	UserByEmail(ctx context.Context, email string) (User, error)
	Profile(ctx context.Context, userID int64) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, p models.ProfileUpdate) error
	DocumentTypes(ctx context.Context) ([]models.DocumentType, error)

	ReservationsByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
	Reservation(ctx context.Context, id int64) (models.Reservation, error)
	CreateReservation(ctx context.Context, in models.ReservationInput) (models.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, in models.ReservationInput) error
	DeleteReservation(ctx context.Context, id int64) error

	// AvailableVehicles lists the vehicles without any reservation.
	AvailableVehicles(ctx context.Context) ([]models.Vehicle, error)
	Branches(ctx context.Context) ([]models.Branch, error)

	Close() error
}

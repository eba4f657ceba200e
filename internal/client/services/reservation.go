package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/reservas/internal/client/client"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/session"
)

// ReservationService covers the reservation list and form screens.
type ReservationService interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Get(ctx context.Context, id int64) (models.Reservation, error)
	Create(ctx context.Context, in models.ReservationInput) error
	Update(ctx context.Context, id int64, in models.ReservationInput) error
	Delete(ctx context.Context, id int64) error

	AvailableVehicles(ctx context.Context) ([]models.Vehicle, error)
	// Branches returns every branch with Internal set either by the backend
	// or by the configured internal ids.
	Branches(ctx context.Context) ([]models.Branch, error)
	// UserID is the numeric id of the logged-in user.
	UserID(ctx context.Context) (int64, error)
}

type reservationService struct {
	client   client.Client
	store    session.Store
	internal map[int64]struct{}
}

func NewReservationService(c client.Client, s session.Store, internalBranchIDs []int64) ReservationService {
	internal := make(map[int64]struct{}, len(internalBranchIDs))
	for _, id := range internalBranchIDs {
		internal[id] = struct{}{}
	}
	return &reservationService{client: c, store: s, internal: internal}
}

func (r *reservationService) List(ctx context.Context) ([]models.Reservation, error) {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	list, err := r.client.ListReservations(ctx, sess.Token, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return list, nil
}

func (r *reservationService) Get(ctx context.Context, id int64) (models.Reservation, error) {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return models.Reservation{}, err
	}
	res, err := r.client.GetReservation(ctx, sess.Token, id)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return res, nil
}

func (r *reservationService) Create(ctx context.Context, in models.ReservationInput) error {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	if err := r.client.CreateReservation(ctx, sess.Token, in); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *reservationService) Update(ctx context.Context, id int64, in models.ReservationInput) error {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	if err := r.client.UpdateReservation(ctx, sess.Token, id, in); err != nil {
		return fmt.Errorf("update reservation %d: %w", id, err)
	}
	return nil
}

func (r *reservationService) Delete(ctx context.Context, id int64) error {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	if err := r.client.DeleteReservation(ctx, sess.Token, id); err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	return nil
}

func (r *reservationService) AvailableVehicles(ctx context.Context) ([]models.Vehicle, error) {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	vs, err := r.client.ListAvailableVehicles(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("get vehicles: %w", err)
	}
	return vs, nil
}

func (r *reservationService) Branches(ctx context.Context) ([]models.Branch, error) {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	bs, err := r.client.ListBranches(ctx, sess.Token)
	if err != nil {
		return nil, fmt.Errorf("get branches: %w", err)
	}
	for i := range bs {
		if _, ok := r.internal[bs[i].ID]; ok {
			bs[i].Internal = true
		}
	}
	return bs, nil
}

func (r *reservationService) UserID(ctx context.Context) (int64, error) {
	sess, err := r.store.Get(ctx)
	if err != nil {
		return 0, err
	}
	return sess.NumericUserID()
}

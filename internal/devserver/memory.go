package devserver

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"golang.org/x/crypto/bcrypt"
)

// MemoryStore keeps every record in process memory. It starts seeded with
// the reference data and one demo user.
type MemoryStore struct {
	mu sync.RWMutex

	users        map[int64]*User
	docTypes     []models.DocumentType
	vehicles     map[int64]models.Vehicle
	branches     map[int64]models.Branch
	reservations map[int64]models.Reservation
	nextID       int64
}

// NewMemoryStore seeds the store with a demo user identified by email and
// password, and one reservation of that user.
func NewMemoryStore(email, password string) (*MemoryStore, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	s := &MemoryStore{
		users:        map[int64]*User{},
		docTypes:     append([]models.DocumentType(nil), seedDocumentTypes...),
		vehicles:     map[int64]models.Vehicle{},
		branches:     map[int64]models.Branch{},
		reservations: map[int64]models.Reservation{},
		nextID:       firstReservationID,
	}
	for _, v := range seedVehicles {
		s.vehicles[v.ID] = v
	}
	for _, b := range seedBranches {
		s.branches[b.ID] = b
	}

	profile := seedProfile
	profile.Email = email
	s.users[seedUserID] = &User{ID: seedUserID, Email: email, PasswordHash: hash, Profile: profile}

	s.reservations[s.nextID] = models.Reservation{
		ID: s.nextID, VehiculoID: 1, SucursalID: 1, UserID: seedUserID, Fechar: seedReservationDate,
	}
	s.nextID++

	return s, nil
}

func (s *MemoryStore) UserByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return *u, nil
		}
	}
	return User{}, ErrNotFound
}

func (s *MemoryStore) Profile(_ context.Context, userID int64) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[userID]
	if !ok {
		return models.Profile{}, ErrNotFound
	}
	return u.Profile, nil
}

func (s *MemoryStore) UpdateProfile(_ context.Context, userID int64, p models.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}
	if p.TipoDocumentoID != 0 && !s.hasDocTypeLocked(p.TipoDocumentoID) {
		return ErrInvalidReference
	}
	u.Profile.Name = p.Name
	u.Profile.Apellido = p.Apellido
	u.Profile.NumeroDocumento = p.NumeroDocumento
	u.Profile.NumeroTelefonico = p.NumeroTelefonico
	u.Profile.TipoDocumentoID = p.TipoDocumentoID
	return nil
}

func (s *MemoryStore) DocumentTypes(context.Context) ([]models.DocumentType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DocumentType(nil), s.docTypes...), nil
}

func (s *MemoryStore) ReservationsByUser(_ context.Context, userID int64) ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Reservation, 0)
	for _, r := range s.reservations {
		if r.UserID != userID {
			continue
		}
		out = append(out, s.expandLocked(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Reservation(_ context.Context, id int64) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) CreateReservation(_ context.Context, in models.ReservationInput) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkRefsLocked(in); err != nil {
		return models.Reservation{}, err
	}

	r := models.Reservation{
		ID:         s.nextID,
		VehiculoID: in.VehiculoID,
		SucursalID: in.SucursalID,
		UserID:     in.UserID,
		Fechar:     in.Fechar,
	}
	s.reservations[r.ID] = r
	s.nextID++
	return r, nil
}

func (s *MemoryStore) UpdateReservation(_ context.Context, id int64, in models.ReservationInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return ErrNotFound
	}
	if err := s.checkRefsLocked(in); err != nil {
		return err
	}
	s.reservations[id] = models.Reservation{
		ID:         id,
		VehiculoID: in.VehiculoID,
		SucursalID: in.SucursalID,
		UserID:     in.UserID,
		Fechar:     in.Fechar,
	}
	return nil
}

func (s *MemoryStore) DeleteReservation(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(s.reservations, id)
	return nil
}

func (s *MemoryStore) AvailableVehicles(context.Context) ([]models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taken := make(map[int64]bool, len(s.reservations))
	for _, r := range s.reservations {
		taken[r.VehiculoID] = true
	}

	out := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if !taken[v.ID] {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Branches(context.Context) ([]models.Branch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Branch, 0, len(s.branches))
	for _, b := range s.branches {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) checkRefsLocked(in models.ReservationInput) error {
	if _, ok := s.vehicles[in.VehiculoID]; !ok {
		return fmt.Errorf("vehicle %d: %w", in.VehiculoID, ErrInvalidReference)
	}
	if _, ok := s.branches[in.SucursalID]; !ok {
		return fmt.Errorf("branch %d: %w", in.SucursalID, ErrInvalidReference)
	}
	if _, ok := s.users[in.UserID]; !ok {
		return fmt.Errorf("user %d: %w", in.UserID, ErrInvalidReference)
	}
	return nil
}

func (s *MemoryStore) hasDocTypeLocked(id int64) bool {
	for _, d := range s.docTypes {
		if d.ID == id {
			return true
		}
	}
	return false
}

func (s *MemoryStore) expandLocked(r models.Reservation) models.Reservation {
	if v, ok := s.vehicles[r.VehiculoID]; ok {
		r.Vehiculo = &v
	}
	if b, ok := s.branches[r.SucursalID]; ok {
		r.Sucursal = &b
	}
	if u, ok := s.users[r.UserID]; ok {
		r.Usuario = &models.UserSummary{ID: u.ID, Name: u.Profile.Name, Apellido: u.Profile.Apellido}
	}
	return r
}

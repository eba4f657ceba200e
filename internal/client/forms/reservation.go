package forms

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/reservas/internal/client/models"
)

// ReservationForm is the state of the create/edit reservation screens.
//
// The zero value of every selection means "empty". Lists and selections
// can arrive in any order: whenever both a list and a selection are known,
// a selection absent from the list is reset to empty. All methods are safe
// for concurrent use.
type ReservationForm struct {
	mu sync.Mutex

	now             func() time.Time
	excludeInternal bool

	vehicles       []models.Vehicle
	vehiclesLoaded bool
	branches       []models.Branch
	branchesLoaded bool

	vehicleID int64
	branchID  int64
	date      time.Time
	userID    int64
}

type ReservationOption func(*ReservationForm)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) ReservationOption {
	return func(f *ReservationForm) { f.now = now }
}

// ExcludeInternalBranches hides internal branches from the branch list.
// Used by the create screen.
func ExcludeInternalBranches() ReservationOption {
	return func(f *ReservationForm) { f.excludeInternal = true }
}

// NewReservationForm returns an empty form whose date defaults to now.
func NewReservationForm(opts ...ReservationOption) *ReservationForm {
	f := &ReservationForm{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	f.date = f.now()
	return f
}

// ReservationState is a read-only snapshot of the form.
type ReservationState struct {
	VehicleID int64
	BranchID  int64
	Date      time.Time
	UserID    int64
	Vehicles  []models.Vehicle
	Branches  []models.Branch
}

func (f *ReservationForm) State() ReservationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ReservationState{
		VehicleID: f.vehicleID,
		BranchID:  f.branchID,
		Date:      f.date,
		UserID:    f.userID,
		Vehicles:  append([]models.Vehicle(nil), f.vehicles...),
		Branches:  append([]models.Branch(nil), f.branches...),
	}
}

func (f *ReservationForm) SetUserID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.userID = id
}

// SetVehicles installs a freshly fetched vehicle list.
func (f *ReservationForm) SetVehicles(vs []models.Vehicle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicles = append([]models.Vehicle(nil), vs...)
	f.vehiclesLoaded = true
	f.reconcileLocked()
}

// SetBranches installs a freshly fetched branch list.
func (f *ReservationForm) SetBranches(bs []models.Branch) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.branches = make([]models.Branch, 0, len(bs))
	for _, b := range bs {
		if f.excludeInternal && b.Internal {
			continue
		}
		f.branches = append(f.branches, b)
	}
	f.branchesLoaded = true
	f.reconcileLocked()
}

// Load pre-populates the form from a stored reservation. An unparseable
// date silently becomes now.
func (f *ReservationForm) Load(r models.Reservation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vehicleID = r.VehiculoID
	f.branchID = r.SucursalID
	if d, err := models.ParseDate(r.Fechar); err == nil {
		f.date = d
	} else {
		f.date = f.now()
	}
	f.reconcileLocked()
}

func (f *ReservationForm) reconcileLocked() {
	if f.vehiclesLoaded && f.vehicleID != 0 && !hasVehicle(f.vehicles, f.vehicleID) {
		f.vehicleID = 0
	}
	if f.branchesLoaded && f.branchID != 0 && !hasBranch(f.branches, f.branchID) {
		f.branchID = 0
	}
}

// SelectVehicle picks a vehicle from the current list; 0 clears it.
func (f *ReservationForm) SelectVehicle(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != 0 && !hasVehicle(f.vehicles, id) {
		return ErrUnknownOption
	}
	f.vehicleID = id
	return nil
}

// SelectBranch picks a branch from the current list; 0 clears it.
func (f *ReservationForm) SelectBranch(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id != 0 && !hasBranch(f.branches, id) {
		return ErrUnknownOption
	}
	f.branchID = id
	return nil
}

// PickDate accepts t unless its day is before today. On ErrPastDate the
// previous date is kept.
func (f *ReservationForm) PickDate(t time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	today := models.Day(f.now())
	if models.Day(t.In(today.Location())).Before(today) {
		return ErrPastDate
	}
	f.date = t
	return nil
}

// Input validates the form and builds the submission payload.
func (f *ReservationForm) Input() (models.ReservationInput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var missing []string
	if f.vehicleID == 0 {
		missing = append(missing, "vehiculoid")
	}
	if f.date.IsZero() {
		missing = append(missing, "fechar")
	}
	if f.branchID == 0 {
		missing = append(missing, "sucursalid")
	}
	if f.userID == 0 {
		missing = append(missing, "userId")
	}
	if len(missing) > 0 {
		return models.ReservationInput{}, &MissingFieldsError{Fields: missing}
	}

	return models.ReservationInput{
		VehiculoID: f.vehicleID,
		Fechar:     models.FormatDate(f.date),
		SucursalID: f.branchID,
		UserID:     f.userID,
	}, nil
}

func hasVehicle(vs []models.Vehicle, id int64) bool {
	for _, v := range vs {
		if v.ID == id {
			return true
		}
	}
	return false
}

func hasBranch(bs []models.Branch, id int64) bool {
	for _, b := range bs {
		if b.ID == id {
			return true
		}
	}
	return false
}

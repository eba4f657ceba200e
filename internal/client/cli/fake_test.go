package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/reservas/internal/client/config"
	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/client/session"
	"github.com/dmitrijs2005/reservas/internal/logging"
)

// ------------ helpers ------------

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.Local)

func stubNow(t *testing.T) {
	t.Helper()
	orig := nowFn
	nowFn = func() time.Time { return testNow }
	t.Cleanup(func() { nowFn = orig })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

type testApp struct {
	*App
	auth *fakeAuth
	prof *fakeProfile
	res  *fakeReservations
	buf  *bytes.Buffer
}

func newTestApp(lines ...string) *testApp {
	buf := &bytes.Buffer{}
	ta := &testApp{
		auth: &fakeAuth{},
		prof: &fakeProfile{},
		res:  &fakeReservations{userID: 12},
		buf:  buf,
	}
	ta.App = &App{
		config:             &config.Config{NoticeDelay: time.Hour},
		logger:             logging.Nop(),
		authService:        ta.auth,
		profileService:     ta.prof,
		reservationService: ta.res,
		router:             NewRouter(),
		notice:             NewNotice(time.Hour),
		reader:             readerFromLines(lines...),
		out:                buf,
	}
	return ta
}

// asUser puts the app on the given history as an authenticated user.
func (ta *testApp) asUser(routes ...Route) *testApp {
	ta.App.loggedIn = true
	if len(routes) == 0 {
		routes = []Route{RouteHome}
	}
	ta.router.Reset(routes...)
	return ta
}

func (ta *testApp) output() string { return ta.buf.String() }

// ------------ fake auth ------------

type fakeAuth struct {
	current    models.Session
	currentErr error

	loginEmail string
	loginPass  []byte
	loginErr   error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) CurrentSession(context.Context) (models.Session, error) {
	if f.currentErr != nil {
		return models.Session{}, f.currentErr
	}
	if !f.current.Valid() {
		return models.Session{}, session.ErrNoSession
	}
	return f.current, nil
}

func (f *fakeAuth) Login(_ context.Context, email string, password []byte) (models.Session, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), password...)
	if f.loginErr != nil {
		return models.Session{}, f.loginErr
	}
	f.current = models.Session{Token: "tok", UserID: "12"}
	return f.current, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	f.current = models.Session{}
	return f.logoutErr
}

// ------------ fake profile ------------

type fakeProfile struct {
	profile    models.Profile
	profileErr error
	docTypes   []models.DocumentType
	docErr     error

	saved   *models.Profile
	saveErr error
}

func (f *fakeProfile) Profile(context.Context) (models.Profile, error) {
	return f.profile, f.profileErr
}

func (f *fakeProfile) DocumentTypes(context.Context) ([]models.DocumentType, error) {
	return f.docTypes, f.docErr
}

func (f *fakeProfile) Save(_ context.Context, p models.Profile) error {
	f.saved = &p
	return f.saveErr
}

// ------------ fake reservations ------------

type fakeReservations struct {
	mu sync.Mutex

	list    []models.Reservation
	listErr error
	get     models.Reservation
	getErr  error

	vehicles   []models.Vehicle
	vehicleErr error
	branches   []models.Branch
	branchErr  error

	createErr error
	updateErr error
	deleteErr error

	userID int64

	created  []models.ReservationInput
	updated  map[int64]models.ReservationInput
	deleted  []int64
	listHits int
}

func (f *fakeReservations) List(context.Context) ([]models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listHits++
	return f.list, f.listErr
}

func (f *fakeReservations) Get(_ context.Context, _ int64) (models.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.get, f.getErr
}

func (f *fakeReservations) Create(_ context.Context, in models.ReservationInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeReservations) Update(_ context.Context, id int64, in models.ReservationInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.updated == nil {
		f.updated = map[int64]models.ReservationInput{}
	}
	f.updated[id] = in
	return nil
}

func (f *fakeReservations) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeReservations) AvailableVehicles(context.Context) ([]models.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.vehicles, f.vehicleErr
}

func (f *fakeReservations) Branches(context.Context) ([]models.Branch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.branches, f.branchErr
}

func (f *fakeReservations) UserID(context.Context) (int64, error) {
	if f.userID == 0 {
		return 0, session.ErrNoSession
	}
	return f.userID, nil
}

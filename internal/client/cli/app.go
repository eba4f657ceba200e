package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/reservas/internal/client/client"
	"github.com/dmitrijs2005/reservas/internal/client/config"
	"github.com/dmitrijs2005/reservas/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/reservas/internal/client/services"
	"github.com/dmitrijs2005/reservas/internal/client/session"
	"github.com/dmitrijs2005/reservas/internal/logging"
)

// nowFn is a test seam for the clock used by the reservation forms.
var nowFn = time.Now

type App struct {
	config             *config.Config
	logger             logging.Logger
	authService        services.AuthService
	profileService     services.ProfileService
	reservationService services.ReservationService

	router  *Router
	notice  *Notice
	screens screens

	loggedIn bool

	reader *bufio.Reader
	outMu  sync.Mutex
	out    io.Writer

	closeFn func() error
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := kvstore.Open(ctx, c.SessionDB)
	if err != nil {
		logger.Error(ctx, "error initializing session store", "path", c.SessionDB, "error", err)
		return nil, err
	}

	policy := client.ObservedAuthPolicy()
	if c.AuthAllEndpoints {
		policy = client.AllEndpointsAuthPolicy()
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithAuthPolicy(policy),
		client.WithLogger(logger.With("component", "api")),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := session.NewStore(db)

	return &App{
		config:             c,
		logger:             logger,
		authService:        services.NewAuthService(apiClient, store),
		profileService:     services.NewProfileService(apiClient, store),
		reservationService: services.NewReservationService(apiClient, store, c.InternalBranchIDs),
		router:             NewRouter(),
		notice:             NewNotice(c.NoticeDelay),
		reader:             bufio.NewReader(os.Stdin),
		out:                os.Stdout,
		closeFn:            db.Close,
	}, nil
}

// Run restores the session, then blocks in the REPL until the user exits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.printf("Reservas CLI (type 'help' for commands)\n")
	a.Start(ctx)
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) close() {
	a.screens.leave()
	a.notice.Clear()
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			a.logger.Warn(context.Background(), "closing session store", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// status is shown in the REPL prompt: current route and pending notice.
func (a *App) status() string {
	s := string(a.router.Current().Route)
	if n := a.notice.Text(); n != "" {
		s += " | " + n
	}
	return s
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

// render shows the screen of the current location.
func (a *App) render(ctx context.Context) error {
	loc := a.router.Current()
	switch loc.Route {
	case RouteLogin:
		a.screens.leave()
		a.printf("Please log in (type 'login').\n")
		return nil
	case RouteHome:
		a.screens.leave()
		a.printf("Home: reservations | new | profile | logout\n")
		return nil
	case RouteReservations:
		return a.reservationsScreen(ctx)
	case RouteReservationNew:
		return a.reservationFormScreen(ctx, 0)
	case RouteReservationEdit:
		id, err := parseID(loc.Params[ParamID])
		if err != nil {
			a.alert("Error", "Invalid reservation id")
			return a.back(ctx)
		}
		return a.reservationFormScreen(ctx, id)
	case RouteProfile:
		return a.profileScreen(ctx)
	case RouteLogout:
		return a.logoutScreen(ctx)
	}
	return nil
}

// navigate pushes route unless it is already current, then renders it.
func (a *App) navigate(ctx context.Context, route Route, params map[string]string) error {
	cur := a.router.Current()
	if cur.Route != route || cur.Params[ParamID] != params[ParamID] {
		a.router.Push(route, params)
	}
	return a.render(ctx)
}

func (a *App) back(ctx context.Context) error {
	if _, ok := a.router.Back(); !ok {
		a.printf("Nothing to go back to.\n")
		return nil
	}
	return a.render(ctx)
}

func (a *App) requireLogin() bool {
	if !a.loggedIn {
		a.printf("Please log in first.\n")
		return false
	}
	return true
}

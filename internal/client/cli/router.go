package cli

import (
	"maps"
	"sync"
)

// Route names a screen of the client.
type Route string

const (
	RouteLogin           Route = "login"
	RouteHome            Route = "home"
	RouteReservations    Route = "reservations"
	RouteReservationNew  Route = "reservation-new"
	RouteReservationEdit Route = "reservation-edit"
	RouteProfile         Route = "profile"
	RouteLogout          Route = "logout"
)

// ParamID is the navigation parameter carrying a reservation id.
const ParamID = "id"

// Location is one entry of the navigation history.
type Location struct {
	Route  Route
	Params map[string]string
}

// Router is a minimal navigation stack. The zero value is empty; Current on
// an empty router reports RouteLogin.
type Router struct {
	mu    sync.Mutex
	stack []Location
}

func NewRouter() *Router {
	return &Router{}
}

// Reset replaces the whole history, so Back cannot return past it.
func (r *Router) Reset(routes ...Route) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stack = r.stack[:0]
	for _, route := range routes {
		r.stack = append(r.stack, Location{Route: route})
	}
}

func (r *Router) Push(route Route, params map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stack = append(r.stack, Location{Route: route, Params: maps.Clone(params)})
}

// Back pops the current location. The root is never popped; ok is false
// when there was nothing to go back to.
func (r *Router) Back() (Location, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.stack) <= 1 {
		return r.currentLocked(), false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return r.currentLocked(), true
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentLocked()
}

// History lists the routes from the root to the current one.
func (r *Router) History() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Route, len(r.stack))
	for i, l := range r.stack {
		out[i] = l.Route
	}
	return out
}

func (r *Router) currentLocked() Location {
	if len(r.stack) == 0 {
		return Location{Route: RouteLogin}
	}
	l := r.stack[len(r.stack)-1]
	l.Params = maps.Clone(l.Params)
	return l
}

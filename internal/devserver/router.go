package devserver

import (
	"net/http"

	"github.com/dmitrijs2005/reservas/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the API under /api.
//
// Routes (auth = bearer token required):
//
//	POST   /api/login
//	GET    /api/perfil/{userId}
//	PUT    /api/perfil/{userId}
//	GET    /api/tipo-documentos
//	GET    /api/reservas/{id}        auth, list when {id} is the caller
//	POST   /api/reservas
//	PUT    /api/reservas/{id}
//	DELETE /api/reservas/{id}        auth
//	GET    /api/vehiculos-libres
//	GET    /api/sucursales
func NewRouter(h *Handler, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Get("/perfil/{userId}", h.GetProfile)
		r.Put("/perfil/{userId}", h.UpdateProfile)
		r.Get("/tipo-documentos", h.DocumentTypes)
		r.Post("/reservas", h.CreateReservation)
		r.Put("/reservas/{id}", h.UpdateReservation)
		r.Get("/vehiculos-libres", h.AvailableVehicles)
		r.Get("/sucursales", h.Branches)

		r.Group(func(r chi.Router) {
			r.Use(Authenticator(h.secret, logger))
			r.Get("/reservas/{id}", h.GetReservations)
			r.Delete("/reservas/{id}", h.DeleteReservation)
		})
	})

	return r
}

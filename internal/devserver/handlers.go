package devserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/logging"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

// Handler serves the REST API consumed by the reservation client.
type Handler struct {
	store    Store
	secret   []byte
	tokenTTL time.Duration
	logger   logging.Logger
}

func NewHandler(store Store, secret []byte, tokenTTL time.Duration, logger logging.Logger) *Handler {
	return &Handler{store: store, secret: secret, tokenTTL: tokenTTL, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID int64 `json:"id"`
	} `json:"user"`
}

type documentTypeRef struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre,omitempty"`
}

// profileData is the GET /api/perfil shape: the document type is nested.
type profileData struct {
	Name             string           `json:"name"`
	Apellido         string           `json:"apellido"`
	NumeroDocumento  string           `json:"numero_documento"`
	NumeroTelefonico string           `json:"numero_telefonico"`
	Email            string           `json:"email"`
	TipoDocumento    *documentTypeRef `json:"tipo_documento"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		h.internal(w, r, err)
		return
	}
	if err != nil || bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := GenerateToken(u.ID, h.secret, h.tokenTTL)
	if err != nil {
		h.internal(w, r, err)
		return
	}

	var resp loginResponse
	resp.Token = token
	resp.User.ID = u.ID
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	p, err := h.store.Profile(r.Context(), userID)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	data := profileData{
		Name:             p.Name,
		Apellido:         p.Apellido,
		NumeroDocumento:  p.NumeroDocumento,
		NumeroTelefonico: p.NumeroTelefonico,
		Email:            p.Email,
	}
	if p.TipoDocumentoID != 0 {
		data.TipoDocumento = &documentTypeRef{ID: p.TipoDocumentoID}
		if types, err := h.store.DocumentTypes(r.Context()); err == nil {
			for _, d := range types {
				if d.ID == p.TipoDocumentoID {
					data.TipoDocumento.Nombre = d.Nombre
				}
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// UpdateProfile ignores any email in the body: ProfileUpdate has none.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	var p models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := h.store.UpdateProfile(r.Context(), userID, p); err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}

func (h *Handler) DocumentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.store.DocumentTypes(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tipo_documentos": types})
}

// GetReservations serves both GET /api/reservas/{userId} and
// GET /api/reservas/{reservaId}: the caller's own id lists, anything else
// fetches one reservation.
func (h *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if id == userIDFromContext(r.Context()) {
		list, err := h.store.ReservationsByUser(r.Context(), id)
		if err != nil {
			h.internal(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"reservas": list})
		return
	}

	res, err := h.store.Reservation(r.Context(), id)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeReservation(w, r)
	if !ok {
		return
	}

	res, err := h.store.CreateReservation(r.Context(), in)
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	in, ok := decodeReservation(w, r)
	if !ok {
		return
	}

	if err := h.store.UpdateReservation(r.Context(), id, in); err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "reservation updated"})
}

func (h *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteReservation(r.Context(), id); err != nil {
		h.storeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "reservation deleted"})
}

func (h *Handler) AvailableVehicles(w http.ResponseWriter, r *http.Request) {
	vs, err := h.store.AvailableVehicles(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"vehiculos": vs})
}

func (h *Handler) Branches(w http.ResponseWriter, r *http.Request) {
	bs, err := h.store.Branches(r.Context())
	if err != nil {
		h.internal(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sucursales": bs})
}

// decodeReservation requires every field and a YYYY-MM-DD date.
func decodeReservation(w http.ResponseWriter, r *http.Request) (models.ReservationInput, bool) {
	var in models.ReservationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return in, false
	}
	if in.VehiculoID == 0 || in.SucursalID == 0 || in.UserID == 0 || in.Fechar == "" {
		writeError(w, http.StatusBadRequest, "vehiculoid, fechar, sucursalid and userId are required")
		return in, false
	}
	if _, err := time.Parse(models.DateLayout, in.Fechar); err != nil {
		writeError(w, http.StatusBadRequest, "fechar must be YYYY-MM-DD")
		return in, false
	}
	return in, true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrInvalidReference):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.internal(w, r, err)
	}
}

func (h *Handler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/reservas/internal/client/models"
	"github.com/dmitrijs2005/reservas/internal/logging"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	// maxErrorBody caps how much of a failed response is read for its message.
	maxErrorBody = 4 << 10
)

// HTTPClient talks to the REST backend rooted at one base URL.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	policy  AuthPolicy
	logger  logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithAuthPolicy replaces ObservedAuthPolicy.
func WithAuthPolicy(p AuthPolicy) Option {
	return func(h *HTTPClient) { h.policy = p }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.logger = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		policy:  ObservedAuthPolicy(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	var resp loginResponse
	err := c.do(ctx, EndpointLogin, http.MethodPost, "/api/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return models.LoginResult{}, err
	}
	if resp.Token == "" || resp.User == nil || resp.User.ID == 0 {
		return models.LoginResult{}, fmt.Errorf("%s: %w: token or user id missing", EndpointLogin, ErrBadResponse)
	}
	return models.LoginResult{Token: resp.Token, UserID: resp.User.ID}, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context, token, userID string) (models.Profile, error) {
	var resp profileResponse
	if err := c.do(ctx, EndpointGetProfile, http.MethodGet, "/api/perfil/"+url.PathEscape(userID), token, nil, &resp); err != nil {
		return models.Profile{}, err
	}
	if resp.Data == nil {
		return models.Profile{}, fmt.Errorf("%s: %w: no data", EndpointGetProfile, ErrBadResponse)
	}
	return resp.Data.profile(), nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, token, userID string, p models.ProfileUpdate) error {
	return c.do(ctx, EndpointUpdateProfile, http.MethodPut, "/api/perfil/"+url.PathEscape(userID), token, p, nil)
}

func (c *HTTPClient) ListDocumentTypes(ctx context.Context, token string) ([]models.DocumentType, error) {
	var resp documentTypesResponse
	if err := c.do(ctx, EndpointDocumentTypes, http.MethodGet, "/api/tipo-documentos", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.TipoDocumentos, nil
}

func (c *HTTPClient) ListReservations(ctx context.Context, token, userID string) ([]models.Reservation, error) {
	var resp reservationsResponse
	if err := c.do(ctx, EndpointListReservations, http.MethodGet, "/api/reservas/"+url.PathEscape(userID), token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Reservas, nil
}

func (c *HTTPClient) GetReservation(ctx context.Context, token string, id int64) (models.Reservation, error) {
	var r models.Reservation
	if err := c.do(ctx, EndpointGetReservation, http.MethodGet, reservationPath(id), token, nil, &r); err != nil {
		return models.Reservation{}, err
	}
	return r, nil
}

func (c *HTTPClient) CreateReservation(ctx context.Context, token string, in models.ReservationInput) error {
	return c.do(ctx, EndpointCreateReservation, http.MethodPost, "/api/reservas", token, in, nil)
}

func (c *HTTPClient) UpdateReservation(ctx context.Context, token string, id int64, in models.ReservationInput) error {
	return c.do(ctx, EndpointUpdateReservation, http.MethodPut, reservationPath(id), token, in, nil)
}

func (c *HTTPClient) DeleteReservation(ctx context.Context, token string, id int64) error {
	return c.do(ctx, EndpointDeleteReservation, http.MethodDelete, reservationPath(id), token, nil, nil)
}

func (c *HTTPClient) ListAvailableVehicles(ctx context.Context, token string) ([]models.Vehicle, error) {
	var resp vehiclesResponse
	if err := c.do(ctx, EndpointVehicles, http.MethodGet, "/api/vehiculos-libres", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Vehiculos, nil
}

func (c *HTTPClient) ListBranches(ctx context.Context, token string) ([]models.Branch, error) {
	var resp branchesResponse
	if err := c.do(ctx, EndpointBranches, http.MethodGet, "/api/sucursales", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Sucursales, nil
}

func reservationPath(id int64) string {
	return "/api/reservas/" + strconv.FormatInt(id, 10)
}

// do performs one JSON round trip. body and out may be nil.
func (c *HTTPClient) do(ctx context.Context, ep Endpoint, method, path, token string, body, out any) error {
	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", ep, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, payload)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", ep, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" && c.policy.Requires(ep) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.logger.With("request_id", requestID, "endpoint", string(ep), "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", ep, ctxErr)
		}
		log.Error(ctx, "request failed", "error", err)
		return fmt.Errorf("%s: %w: %v", ep, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Endpoint: ep, Status: resp.StatusCode, Message: errorMessage(resp.Body)}
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode)

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: %w: empty body", ep, ErrBadResponse)
		}
		return fmt.Errorf("%s: %w: %v", ep, ErrBadResponse, err)
	}
	return nil
}

// errorMessage extracts {"message": "..."} or {"error": "..."} from a
// failed response, falling back to the trimmed raw text.
func errorMessage(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(b))
}

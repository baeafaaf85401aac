package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/wildlog/internal/sightings"
	"github.com/leapstack-labs/wildlog/pkg/core"
)

// Response messages.
const (
	msgCreated = "Sighting added successfully!"
	msgUpdated = "Sighting updated successfully!"
	msgDeleted = "Sighting deleted successfully!"
)

// sightingRequest is the request body of create and update. Pointers tell a
// missing field apart from an empty one.
type sightingRequest struct {
	Species  *string `json:"species"`
	Location *string `json:"location"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
}

func (req sightingRequest) input() (core.SightingInput, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"species", req.Species},
		{"location", req.Location},
		{"date", req.Date},
		{"time", req.Time},
	}
	for _, f := range fields {
		if f.value == nil {
			return core.SightingInput{}, &core.ValidationError{Field: f.name, Message: "Field required."}
		}
	}
	return core.SightingInput{
		Species:  *req.Species,
		Location: *req.Location,
		Date:     *req.Date,
		Time:     *req.Time,
	}, nil
}

// sightingResponse wraps a written record with a confirmation message.
type sightingResponse struct {
	Message  string         `json:"message"`
	Sighting *core.Sighting `json:"sighting"`
}

// messageResponse is a bare confirmation.
type messageResponse struct {
	Message string `json:"message"`
}

// Handlers provides HTTP handlers for the sightings API.
type Handlers struct {
	service *sightings.Service
	logger  *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(svc *sightings.Service, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{service: svc, logger: logger}
}

// CreateSighting handles POST /sightings/.
func (h *Handlers) CreateSighting(w http.ResponseWriter, r *http.Request) {
	in, err := decodeSighting(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sightingResponse{Message: msgCreated, Sighting: created})
}

// ListSightings handles GET /sightings/.
func (h *Handlers) ListSightings(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// SearchSightings handles GET /sightings/search/?species=X.
func (h *Handlers) SearchSightings(w http.ResponseWriter, r *http.Request) {
	found, err := h.service.SearchBySpecies(r.Context(), r.URL.Query().Get("species"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// UpdateSighting handles PUT /sightings/{id}.
func (h *Handlers) UpdateSighting(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	in, err := decodeSighting(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sightingResponse{Message: msgUpdated, Sighting: updated})
}

// DeleteSighting handles DELETE /sightings/{id}.
func (h *Handlers) DeleteSighting(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgDeleted})
}

// Health handles GET /healthz by pinging the store.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ping(r.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err, "request_id", GetRequestID(r.Context()))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func decodeSighting(r *http.Request) (core.SightingInput, error) {
	var req sightingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return core.SightingInput{}, &core.ValidationError{Field: "body", Message: "Invalid JSON body."}
	}
	return req.input()
}

func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &core.ValidationError{Field: "id", Message: "Sighting id must be an integer."}
	}
	return id, nil
}

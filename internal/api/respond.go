package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/leapstack-labs/wildlog/pkg/core"
)

// errorResponse is the body of every failure response.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError translates the core error taxonomy into a status and detail.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := classify(err)

	attrs := []any{
		slog.Int("status", status),
		slog.String("error", err.Error()),
		slog.String("request_id", GetRequestID(r.Context())),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", attrs...)
	} else {
		h.logger.Debug("request rejected", attrs...)
	}

	writeJSON(w, status, errorResponse{Detail: detail})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not Found"})
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Detail: "Method Not Allowed"})
}

func classify(err error) (int, string) {
	var (
		validationErr *core.ValidationError
		notFoundErr   *core.NotFoundError
		storageErr    *core.StorageError
	)

	switch {
	case core.IsFormat(err):
		return http.StatusBadRequest, "Invalid date or time format."
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &notFoundErr):
		if notFoundErr.Resource == "species" {
			return http.StatusNotFound, fmt.Sprintf("No sightings found for species '%s'.", notFoundErr.Key)
		}
		return http.StatusNotFound, "Sighting not found."
	case errors.As(err, &storageErr):
		if storageErr.Op == "insert" {
			return http.StatusInternalServerError, fmt.Sprintf("Database insert failed: %v", storageErr.Err)
		}
		return http.StatusInternalServerError, fmt.Sprintf("Database operation failed: %v", storageErr.Err)
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

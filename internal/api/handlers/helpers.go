package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/platform/obs"
	"mail-train-service/internal/ports"
	"mail-train-service/internal/services"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obs.Logger(r.Context()).Warnw("encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// allowMethod answers 405 unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeBody reads exactly one JSON object with no unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeServiceError maps service and repository errors to status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrUnknownStrategy):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNoTrains),
		errors.Is(err, services.ErrInsufficientCapacity),
		errors.Is(err, services.ErrInvalidNetwork),
		errors.Is(err, domain.ErrUnknownStation),
		errors.Is(err, domain.ErrDuplicateStation),
		errors.Is(err, domain.ErrDuplicateTrain),
		errors.Is(err, domain.ErrDuplicatePackage):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		obs.Logger(r.Context()).Errorw(op+" failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

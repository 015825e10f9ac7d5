package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/ocs-2025.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	_ = json.NewEncoder(w).Encode(err)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// StatusFromError maps the service error taxonomy to HTTP status codes.
// Everything unrecognized is an internal error.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, errs.InvalidParameters), errors.Is(err, errs.UnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, errs.NoPermission):
		return http.StatusForbidden
	case errors.Is(err, errs.NotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteServiceError maps and writes a service-layer error
func WriteServiceError(w http.ResponseWriter, err error) {
	WriteError(w, ErrorMessage{
		Message:    err.Error(),
		StatusCode: StatusFromError(err),
	})
}

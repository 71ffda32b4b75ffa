// Package respond writes JSON bodies and maps domain errors to HTTP status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Error writes err with the status its sentinel maps to. Unknown errors are logged and hidden
// behind a 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		msg = "internal error"
	}

	JSON(w, status, errorResponse{Error: msg})
}

// BadRequest writes a 400 with msg.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func Status(err error) int {
	switch {
	case errors.Is(err, location.ErrNotFound),
		errors.Is(err, project.ErrNotFound),
		errors.Is(err, donor.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, location.ErrExists),
		errors.Is(err, project.ErrExists),
		errors.Is(err, donor.ErrExists),
		errors.Is(err, donor.ErrInsufficientFunds):
		return http.StatusConflict
	case errors.Is(err, donation.ErrInvalidDonation),
		errors.Is(err, project.ErrInvalidOperation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, donation.ErrInvalidAmount),
		errors.Is(err, location.ErrInvalid),
		errors.Is(err, donor.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

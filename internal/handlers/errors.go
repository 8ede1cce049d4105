package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusForError maps the service error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// errorBody logs err at a level matching its class and returns the message safe to show.
// Internal failures are replaced by fallback so store details do not leak.
func errorBody(logger *slog.Logger, err error, fallback string) (int, ErrorResponse) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		return status, ErrorResponse{Error: fallback}
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	return status, ErrorResponse{Error: err.Error()}
}

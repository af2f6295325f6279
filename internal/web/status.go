package web

import (
	"errors"
	"net/http"

	"ms-booking/internal/storage"
)

// StatusFor maps the storage error taxonomy onto HTTP statuses.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrValidation), errors.Is(err, storage.ErrIntegrity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

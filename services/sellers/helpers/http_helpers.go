package helpers

import (
	"errors"
	"net/http"

	"freelance-market/internal/marketerrors"
)

// Request DTOs
type CreateSellerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        string  `json:"role" binding:"required"`
	Skill       string  `json:"skill" binding:"required"`
	Description string  `json:"description"`
	Experience  int     `json:"experience" binding:"min=0"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gt=0"`
}

// MapErrorToHTTP maps seller service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUnauthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid seller profile details"
	case errors.Is(err, marketerrors.ErrSellerNotFound):
		return http.StatusNotFound, "seller profile not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// Package handler contains the echo handlers of the marketplace API.
package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// LocationRequest is a lat/lng pair in request bodies.
type LocationRequest struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

func (r LocationRequest) toEntity() entity.Location {
	return entity.Location{Latitude: r.Lat, Longitude: r.Lng}
}

// HealthCheck reports that the server is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func validationFailed(c echo.Context, err error) error {
	return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
}

func unauthenticated(c echo.Context) error {
	return response.Unauthorized(c, "TOKEN_MISSING", "Authentication required")
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"zipabout/internal/domain"
	"zipabout/internal/service"
)

// timeLayout is the wire format for timestamps.
const timeLayout = "2006-01-02T15:04:05Z07:00"

// statusClientClosedRequest is nginx's non-standard code for a client that
// hung up before the response was written.
const statusClientClosedRequest = 499

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RentalResponse is the HTTP representation of a rental.
type RentalResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	UserName        string `json:"user_name"`
	VehicleID       string `json:"vehicle_id"`
	VehicleType     string `json:"vehicle_type"`
	VehicleModel    string `json:"vehicle_model"`
	Status          string `json:"status"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time,omitempty"`
	DurationMinutes *int64 `json:"duration_minutes,omitempty"`
}

func toRentalResponse(r domain.Rental) RentalResponse {
	resp := RentalResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		UserName:     r.UserName,
		VehicleID:    r.VehicleID,
		VehicleType:  r.VehicleType(),
		VehicleModel: r.Vehicle.Model,
		Status:       string(r.Status),
		StartTime:    formatTimestamp(r.StartTime),
	}
	if !r.EndTime.IsZero() {
		mins := r.DurationMinutes()
		resp.EndTime = formatTimestamp(r.EndTime)
		resp.DurationMinutes = &mins
	}
	return resp
}

func toRentalResponses(rentals []domain.Rental) []RentalResponse {
	response := make([]RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		response = append(response, toRentalResponse(r))
	}
	return response
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps registry errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrVehicleNotFound),
		errors.Is(err, service.ErrRentalNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrInvalidUserID),
		errors.Is(err, service.ErrInvalidVehicleID),
		errors.Is(err, domain.ErrUnknownVehicleKind):
		return http.StatusBadRequest

	// Conflict errors
	case errors.Is(err, service.ErrUserAlreadyRenting),
		errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrNoActiveRental),
		errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateVehicle),
		errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusConflict

	// Forbidden/Business rule errors
	case errors.Is(err, service.ErrNotRentalOwner),
		errors.Is(err, service.ErrRemovalDenied):
		return http.StatusForbidden

	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable

	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}

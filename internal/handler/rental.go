package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zipabout/internal/domain"
	"zipabout/internal/service"
)

// RentalHandler handles HTTP requests for rentals.
type RentalHandler struct {
	registry *service.RentalRegistry
}

// NewRentalHandler creates a new RentalHandler.
func NewRentalHandler(registry *service.RentalRegistry) *RentalHandler {
	return &RentalHandler{registry: registry}
}

// RentalRequest is the HTTP request body for booking, releasing and cancelling.
type RentalRequest struct {
	UserID    string `json:"user_id"`
	VehicleID string `json:"vehicle_id"`
}

// Book handles POST /v1/rentals
func (h *RentalHandler) Book(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.registry.BookVehicle(c.Request.Context(), req.UserID, req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRentalResponse(rental))
}

// Release handles POST /v1/rentals/release
func (h *RentalHandler) Release(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.registry.ReleaseVehicle(c.Request.Context(), req.UserID, req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// Cancel handles POST /v1/rentals/cancel
func (h *RentalHandler) Cancel(c *gin.Context) {
	var req RentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rental, err := h.registry.CancelRental(c.Request.Context(), req.UserID, req.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// GetAll handles GET /v1/rentals?status=active
func (h *RentalHandler) GetAll(c *gin.Context) {
	var rentals []domain.Rental
	switch c.Query("status") {
	case "":
		rentals = h.registry.AllRentals()
	case "active":
		rentals = h.registry.ActiveRentals()
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status filter must be active"})
		return
	}

	c.JSON(http.StatusOK, toRentalResponses(rentals))
}

// GetRental handles GET /v1/rentals/:id
func (h *RentalHandler) GetRental(c *gin.Context) {
	rental, err := h.registry.Rental(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// GetActiveForVehicle handles GET /v1/vehicles/:id/active-rental
func (h *RentalHandler) GetActiveForVehicle(c *gin.Context) {
	rental, ok := h.registry.ActiveRentalForVehicle(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: service.ErrNoActiveRental.Error()})
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponse(rental))
}

// Receipt handles GET /v1/rentals/:id/receipt
func (h *RentalHandler) Receipt(c *gin.Context) {
	rental, err := h.registry.Rental(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.String(http.StatusOK, service.FormatRental(rental))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zipabout/internal/domain"
	"zipabout/internal/repository"
	"zipabout/internal/service"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	registry *service.RentalRegistry
	archive  repository.RentalArchive // nil when the archive is disabled
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(registry *service.RentalRegistry, archive repository.RentalArchive) *VehicleHandler {
	return &VehicleHandler{registry: registry, archive: archive}
}

// RegisterVehicleRequest is the HTTP request body for adding a vehicle.
type RegisterVehicleRequest struct {
	Kind      string `json:"kind"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	AssetCode string `json:"asset_code,omitempty"`
}

// VehicleResponse is the HTTP response for vehicle data.
type VehicleResponse struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	Type          string `json:"type"`
	Make          string `json:"make"`
	Model         string `json:"model"`
	AssetCode     string `json:"asset_code,omitempty"`
	Available     bool   `json:"available"`
	CurrentUserID string `json:"current_user_id,omitempty"`
}

func toVehicleResponse(v domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		Kind:          string(v.Kind),
		Type:          v.Type(),
		Make:          v.Details.Make,
		Model:         v.Details.Model,
		AssetCode:     v.Details.AssetCode,
		Available:     v.IsAvailable(),
		CurrentUserID: v.CurrentUserID(),
	}
}

// Register handles POST /v1/vehicles
func (h *VehicleHandler) Register(c *gin.Context) {
	var req RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	kind, err := domain.ParseVehicleKind(req.Kind)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Model == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "model is required"})
		return
	}

	vehicle := domain.NewVehicle(uuid.New().String(), kind, domain.VehicleDetails{
		Make:      req.Make,
		Model:     req.Model,
		AssetCode: req.AssetCode,
	})

	response := toVehicleResponse(*vehicle)
	if err := h.registry.RegisterVehicle(c.Request.Context(), vehicle); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, response)
}

// GetAll handles GET /v1/vehicles?available=true
func (h *VehicleHandler) GetAll(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"

	response := make([]VehicleResponse, 0)
	for _, v := range h.registry.Vehicles() {
		if onlyAvailable && !v.IsAvailable() {
			continue
		}
		response = append(response, toVehicleResponse(v))
	}

	c.JSON(http.StatusOK, response)
}

// GetVehicle handles GET /v1/vehicles/:id
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.registry.Vehicle(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toVehicleResponse(vehicle))
}

// PastRentals handles GET /v1/vehicles/:id/rentals
func (h *VehicleHandler) PastRentals(c *gin.Context) {
	vehicleID := c.Param("id")
	if _, err := h.registry.Vehicle(vehicleID); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponses(h.registry.PastRentalsForVehicle(vehicleID)))
}

// Archive handles GET /v1/vehicles/:id/archive
func (h *VehicleHandler) Archive(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "rental archive is not enabled"})
		return
	}

	rentals, err := h.archive.ListByVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRentalResponses(rentals))
}

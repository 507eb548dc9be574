package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"zipabout/internal/service"
)

// MaintenanceQueue lists pending maintenance signals.
type MaintenanceQueue interface {
	Pending(ctx context.Context) ([]service.MaintenanceSignal, error)
}

// MaintenanceHandler handles HTTP requests for fleet maintenance.
type MaintenanceHandler struct {
	observer *service.MaintenanceObserver
	queue    MaintenanceQueue // nil when Redis is disabled
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(observer *service.MaintenanceObserver, queue MaintenanceQueue) *MaintenanceHandler {
	return &MaintenanceHandler{observer: observer, queue: queue}
}

// UsageResponse is one vehicle's completed-rental count.
type UsageResponse struct {
	VehicleID        string `json:"vehicle_id"`
	CompletedRentals int64  `json:"completed_rentals"`
}

// Usage handles GET /v1/maintenance/usage
func (h *MaintenanceHandler) Usage(c *gin.Context) {
	summary, err := h.observer.UsageSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]UsageResponse, 0, len(summary))
	for _, u := range summary {
		response = append(response, UsageResponse{VehicleID: u.VehicleID, CompletedRentals: u.CompletedRentals})
	}

	c.JSON(http.StatusOK, response)
}

// Queue handles GET /v1/maintenance/queue
func (h *MaintenanceHandler) Queue(c *gin.Context) {
	if h.queue == nil {
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "maintenance queue is not enabled"})
		return
	}

	signals, err := h.queue.Pending(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, signals)
}

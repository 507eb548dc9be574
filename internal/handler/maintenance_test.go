package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zipabout/internal/domain"
	"zipabout/internal/service"
)

type staticQueue []service.MaintenanceSignal

func (q staticQueue) Pending(context.Context) ([]service.MaintenanceSignal, error) {
	return q, nil
}

func TestMaintenanceHandler(t *testing.T) {
	observer := service.NewMaintenanceObserver(service.NewMemoryUsageCounter(), nil, 2, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, observer.OnRentalCompleted(context.Background(), domain.Rental{VehicleID: "ebike"}))
	}

	queue := staticQueue{{VehicleID: "ebike", Model: "FX+ 2", Count: 2}}
	h := NewMaintenanceHandler(observer, queue)
	disabled := NewMaintenanceHandler(observer, nil)

	r := gin.New()
	r.GET("/usage", h.Usage)
	r.GET("/queue", h.Queue)
	r.GET("/disabled", disabled.Queue)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/usage", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"vehicle_id":"ebike","completed_rentals":3}]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/queue", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"vehicle_id":"ebike","model":"FX+ 2","count":2}]`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/disabled", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"zipabout/internal/config"
	"zipabout/internal/handler"
	"zipabout/internal/middleware"
	"zipabout/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler        *handler.UserHandler
	VehicleHandler     *handler.VehicleHandler
	RentalHandler      *handler.RentalHandler
	MaintenanceHandler *handler.MaintenanceHandler

	// ResponseCache enables Idempotency-Key replay. Nil disables it.
	ResponseCache  redis.ResponseCache
	NewRelicApp    *newrelic.Application
	CORS           config.CORSConfig
	RequestTimeout time.Duration
	Logger         *slog.Logger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware(deps.CORS))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RequestTimeout > 0 {
		router.Use(middleware.RequestTimeout(deps.RequestTimeout))
	}

	if deps.ResponseCache != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.ResponseCache, logger))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// User routes.
		users := v1.Group("/users")
		{
			users.POST("", deps.UserHandler.Register)
			users.POST("/login", deps.UserHandler.Login)
			users.GET("", deps.UserHandler.GetAll)
			users.GET("/:id", deps.UserHandler.GetUser)
			users.DELETE("/:id", deps.UserHandler.Remove)
			users.POST("/:id/redeem", deps.UserHandler.Redeem)
			users.GET("/:id/rentals", deps.UserHandler.Rentals)
		}

		// Vehicle routes.
		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", deps.VehicleHandler.Register)
			vehicles.GET("", deps.VehicleHandler.GetAll)
			vehicles.GET("/:id", deps.VehicleHandler.GetVehicle)
			vehicles.GET("/:id/rentals", deps.VehicleHandler.PastRentals)
			vehicles.GET("/:id/archive", deps.VehicleHandler.Archive)
			vehicles.GET("/:id/active-rental", deps.RentalHandler.GetActiveForVehicle)
		}

		// Rental routes.
		rentals := v1.Group("/rentals")
		{
			rentals.POST("", deps.RentalHandler.Book)
			rentals.POST("/release", deps.RentalHandler.Release)
			rentals.POST("/cancel", deps.RentalHandler.Cancel)
			rentals.GET("", deps.RentalHandler.GetAll)
			rentals.GET("/:id", deps.RentalHandler.GetRental)
			rentals.GET("/:id/receipt", deps.RentalHandler.Receipt)
		}

		// Maintenance routes.
		if deps.MaintenanceHandler != nil {
			maintenance := v1.Group("/maintenance")
			{
				maintenance.GET("/usage", deps.MaintenanceHandler.Usage)
				maintenance.GET("/queue", deps.MaintenanceHandler.Queue)
			}
		}
	}

	return router
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"event-booking-engine/internal/handler/api"
	"event-booking-engine/internal/handler/middleware"
	"event-booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	bookingHandler *api.BookingHandler,
	eventHandler *api.EventHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, bookingHandler, eventHandler, availabilityHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	eventHandler *api.EventHandler,
	availabilityHandler *api.AvailabilityHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/check-venue", Handler: bookingHandler.CheckVenue},
				{Method: http.MethodPost, Path: "/check-resource", Handler: bookingHandler.CheckResource},
				{Method: http.MethodGet, Path: "/blocked-slots", Handler: bookingHandler.BlockedSlots},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodPost, Path: "", Handler: eventHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: eventHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: eventHandler.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: eventHandler.UpdateStatus},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodPut, Path: "", Handler: availabilityHandler.Upsert},
				{Method: http.MethodGet, Path: "", Handler: availabilityHandler.List},
				{Method: http.MethodPost, Path: "/bulk", Handler: availabilityHandler.BulkApply},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/kajuworks/cashew_track_app/internal/core/ports/services"
	"github.com/kajuworks/cashew_track_app/internal/middleware"
	"github.com/kajuworks/cashew_track_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSettingsRoutes(v1, services.Settings)
	registerFirmRoutes(v1, services)
}

// registerFirmRoutes registers the firm routes and everything nested under a
// specific firm.
func registerFirmRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newFirmHandler(services.Firm)

	firms := rg.Group("/firms")
	{
		firms.POST("", h.createFirm)
		firms.GET("", h.listFirms)
	}

	firmSpecific := rg.Group("/firms/:firm_id")
	{
		firmSpecific.GET("", h.getFirm)

		registerWorkerRoutes(firmSpecific, services.Worker, services.Reporting, services.Payment)
		registerWorkLogRoutes(firmSpecific, services.WorkLog)
		registerPaymentRoutes(firmSpecific, services.Payment)
		registerReportRoutes(firmSpecific, services.Reporting)
		registerSheetRoutes(firmSpecific, services.Sheet)
	}
}

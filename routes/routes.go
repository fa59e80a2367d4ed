package routes

import (
	"net/http"
	"time"

	"guidely/handlers"
	"guidely/middleware"
	"guidely/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints of the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", hb.CreateBookingHandler)
		bookings.GET("", hb.ListBookingsHandler)
		bookings.GET("/:id", hb.GetBookingHandler)
		bookings.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
	}

	// Denormalized calendar cache, one read per calendar view.
	r.GET("/provider-calendars/:providerId", hb.GetProviderCalendarHandler)
}

// RegisterAvailabilityRoutes sets up calendar-edit endpoints. Mutations are
// provider-authenticated; the calendar itself is publicly readable.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	apps := r.Group("/applications")
	{
		apps.GET("/:id/availability", hb.GetAvailabilityHandler)

		protected := apps.Group("")
		protected.Use(middleware.ProviderAuthMiddleware())
		protected.PUT("/:id/availability", hb.ReplaceAvailabilityHandler)
		protected.POST("/:id/availability/days", hb.BulkSetDaysHandler)
		protected.DELETE("/:id/availability/days", hb.ClearScheduleHandler)
		protected.POST("/:id/availability/patterns", hb.ApplyPatternHandler)
		protected.POST("/:id/availability/unavailable-periods", hb.AddUnavailablePeriodHandler)
	}
}

// RegisterProviderRoutes sets up provider profile endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	providers := r.Group("/providers")
	{
		providers.POST("", hb.RegisterProviderHandler)
		providers.GET("/:id", hb.GetProviderByIDHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the application review workflow.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/admin")
	{
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.GET("/applications", hb.AdminHandler.ListApplicationsHandler)
		admin.PATCH("/applications/:id/verify", hb.AdminHandler.VerifyApplicationHandler)
		admin.POST("/applications/:id/documents", hb.AdminHandler.UploadVerificationDocumentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

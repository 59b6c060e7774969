package routes

import (
	"net/http"
	"time"

	"eccos/handlers"
	"eccos/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRequestRoutes registers the staff-facing request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.Use(middleware.AuthMiddleware(hb.StaffRepo))
		api.POST("/purchase", hb.CreatePurchaseHandler)
		api.POST("/support", hb.CreateSupportHandler)
		api.POST("/reservation", hb.CreateReservationHandler)
		api.GET("", hb.ListMyRequestsHandler)
		api.GET("/:id", hb.GetRequestByIDHandler)
		api.POST("/:id/cancel", hb.CancelRequestHandler)

		// Embedded message thread.
		api.GET("/:id/messages", hb.ListMessagesHandler)
		api.POST("/:id/messages", hb.PostMessageHandler)
	}
}

// RegisterAvailabilityRoutes registers the conflict preview and the open
// calendar listing.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.AuthMiddleware(hb.StaffRepo))
		api.GET("/availability", hb.AvailabilityPreviewHandler)
		api.GET("/calendar", hb.ListOpenDatesHandler)
		api.PUT("/devices/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(hb.StaffRepo))
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/requests", hb.AdminHandler.ListRequestsHandler)
		adminGroup.PUT("/requests/:id/status", hb.AdminHandler.UpdateStatusHandler)
		adminGroup.DELETE("/requests/:id", hb.AdminHandler.DeleteRequestHandler)
		adminGroup.PUT("/calendar/:date", hb.AdminHandler.OpenCalendarDateHandler)
		adminGroup.DELETE("/calendar/:date", hb.AdminHandler.CloseCalendarDateHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "ECCOS portal backend"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRequestRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

package routes

import (
	"stagelink/handlers"
	"stagelink/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers the inbox endpoints and the internal
// enqueue endpoint the other services post events to.
func RegisterNotificationRoutes(r *gin.Engine, notifications *handlers.NotificationHandler) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole("service", "admin"), notifications.Send)
		api.GET("/user/:userId", notifications.ListByUser)
		api.PATCH("/:id/read", notifications.MarkRead)
	}
}

package routes

import (
	"stagelink/handlers"
	"stagelink/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterPaymentRoutes registers credit package purchase endpoints.
func RegisterPaymentRoutes(r *gin.Engine, payments *handlers.PaymentHandler) {
	api := r.Group("/api/payments")
	{
		api.GET("/packages", payments.ListPackages)

		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/checkout", payments.Checkout)
		api.POST("/confirm", payments.Confirm)
	}
}

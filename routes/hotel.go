package routes

import (
	"stagelink/handlers"
	"stagelink/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterHotelRoutes registers hotel profile and credit ledger endpoints.
// The use/release credit mutations are internal: only the booking service
// (role "service") and admins may call them.
func RegisterHotelRoutes(r *gin.Engine, hotels *handlers.HotelHandler, credits *handlers.CreditHandler) {
	api := r.Group("/api/hotels")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hotels.CreateHotel)
		api.GET("", hotels.ListHotels)
		api.GET("/:id", hotels.GetHotel)

		api.GET("/:id/credits", credits.GetCredits)
		api.POST("/:id/credits/add", middleware.RequireRole("service", "admin"), credits.AddCredits)
		api.POST("/:id/credits/use", middleware.RequireRole("service", "admin"), credits.UseCredits)
		api.POST("/:id/credits/release", middleware.RequireRole("service", "admin"), credits.ReleaseCredits)
	}
}

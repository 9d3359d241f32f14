package routes

import (
	"stagelink/handlers"
	"stagelink/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking orchestration and rating
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, bookings *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", bookings.CreateBooking)
		api.GET("/:id", bookings.GetBooking)
		api.GET("/hotel/:hotelId", bookings.ListBookingsByHotel)
		api.GET("/artist/:artistId", bookings.ListBookingsByArtist)
		api.PATCH("/:id/status", bookings.UpdateBookingStatus)

		api.POST("/ratings", bookings.CreateRating)
		api.GET("/ratings/artist/:artistId", bookings.ListRatingsForArtist)
	}
}

package routes

import (
	"stagelink/handlers"
	"stagelink/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterArtistRoutes registers artist profile endpoints. The stats and
// rating patches are internal aggregates written by the booking service.
func RegisterArtistRoutes(r *gin.Engine, artists *handlers.ArtistHandler) {
	api := r.Group("/api/artists")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", artists.CreateArtist)
		api.GET("", artists.ListArtists)
		api.GET("/:id", artists.GetArtist)

		api.PATCH("/:id/stats", middleware.RequireRole("service", "admin"), artists.IncrementStats)
		api.PATCH("/:id/rating", middleware.RequireRole("service", "admin"), artists.SetAverageRating)
	}
}

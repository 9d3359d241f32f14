package gateway

import (
	"net/http"
	"time"

	"stagelink/middleware"
	"stagelink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter assembles the gateway's gin engine: CORS, rate limiting, the
// health endpoint, and the catch-all service proxy.
func NewRouter(registry *Registry, logger *zap.Logger, maxRequestsPerMin int) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(maxRequestsPerMin))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"service":   "api-gateway",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// The proxy is the NoRoute handler so bare prefix paths (POST
	// /api/bookings) match without a trailing-slash redirect; it answers
	// 404 itself for anything outside /api/.
	proxy := NewProxy(registry, logger)
	router.NoRoute(proxy.Handle)

	return router
}

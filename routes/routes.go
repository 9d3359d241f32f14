package routes

import (
	"net/http"
	"time"

	"stagelink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewServiceRouter builds the base gin engine every service binary starts
// from: recovery, panic-to-JSON, request logging, and CORS.
func NewServiceRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(gin.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, serviceName string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"service":   serviceName,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})
}

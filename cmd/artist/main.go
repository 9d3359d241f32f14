package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stagelink/config"
	"stagelink/database"
	artistRepoPkg "stagelink/database/repository/artist"
	"stagelink/handlers"
	"stagelink/routes"
	"stagelink/services/artist"
	"stagelink/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	artistRepo := artistRepoPkg.NewMongoArtistRepo()
	artistService := &artist.DefaultArtistService{Repo: artistRepo}

	router := routes.NewServiceRouter()
	routes.RegisterHealthRoute(router, "artist-service")
	routes.RegisterArtistRoutes(router, handlers.NewArtistHandler(artistService, logger))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "4001"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting artist-service on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("artist: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("artist: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("artist: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("artist: server stopped gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stagelink/clients"
	"stagelink/config"
	"stagelink/database"
	bookingRepoPkg "stagelink/database/repository/booking"
	ratingRepoPkg "stagelink/database/repository/rating"
	"stagelink/handlers"
	"stagelink/routes"
	"stagelink/services/booking"
	"stagelink/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Service-to-service token for the internal credit, stats, and
	// notification endpoints.
	serviceToken, err := utils.GenerateToken("booking-service", "service", 365*24*time.Hour)
	if err != nil {
		logger.Sugar().Fatalf("booking: failed to mint service token: %v", err)
	}

	timeout := time.Duration(config.AppConfig.ServiceClientTimeoutSec) * time.Second
	hotelClient := clients.NewHotelClient(
		clients.NewServiceClient("hotel", config.AppConfig.HotelServiceURL, timeout).WithBearer(serviceToken))
	artistClient := clients.NewArtistClient(
		clients.NewServiceClient("artist", config.AppConfig.ArtistServiceURL, timeout).WithBearer(serviceToken))
	notifier := &clients.RemoteNotifier{
		Client: clients.NewNotificationClient(
			clients.NewServiceClient("notification", config.AppConfig.NotificationServiceURL, timeout).WithBearer(serviceToken)),
		Logger: logger,
	}

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Ratings:   ratingRepo,
		HotelAPI:  hotelClient,
		ArtistAPI: artistClient,
		NotifySvc: notifier,
		Pricing:   booking.NewPricingPolicyFromConfig(),
		Logger:    logger,
	}

	router := routes.NewServiceRouter()
	routes.RegisterHealthRoute(router, "booking-service")
	routes.RegisterBookingRoutes(router, handlers.NewBookingHandler(bookingService, logger))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "4003"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting booking-service on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("booking: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("booking: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("booking: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("booking: server stopped gracefully")
}

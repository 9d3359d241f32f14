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
	creditRepoPkg "stagelink/database/repository/credit"
	hotelRepoPkg "stagelink/database/repository/hotel"
	"stagelink/handlers"
	"stagelink/routes"
	"stagelink/services/credit"
	"stagelink/services/hotel"
	"stagelink/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// repositories.
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	creditRepo := creditRepoPkg.NewMongoCreditRepo()

	// services.
	creditService := &credit.DefaultCreditService{
		Repo:   creditRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	hotelService := &hotel.DefaultHotelService{
		Repo:    hotelRepo,
		Credits: creditService,
		Logger:  logger,
	}

	router := routes.NewServiceRouter()
	routes.RegisterHealthRoute(router, "hotel-service")
	routes.RegisterHotelRoutes(router,
		handlers.NewHotelHandler(hotelService, logger),
		handlers.NewCreditHandler(creditService, logger))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "4002"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting hotel-service on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("hotel: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("hotel: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("hotel: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("hotel: server stopped gracefully")
}

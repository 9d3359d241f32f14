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
	"stagelink/handlers"
	"stagelink/routes"
	"stagelink/services/payment"
	"stagelink/utils"

	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	stripe.Key = config.AppConfig.StripeKey

	serviceToken, err := utils.GenerateToken("payment-service", "service", 365*24*time.Hour)
	if err != nil {
		logger.Sugar().Fatalf("payment: failed to mint service token: %v", err)
	}

	timeout := time.Duration(config.AppConfig.ServiceClientTimeoutSec) * time.Second
	hotelClient := clients.NewHotelClient(
		clients.NewServiceClient("hotel", config.AppConfig.HotelServiceURL, timeout).WithBearer(serviceToken))

	paymentService := &payment.DefaultPaymentService{
		HotelAPI: hotelClient,
		Logger:   logger,
	}

	router := routes.NewServiceRouter()
	routes.RegisterHealthRoute(router, "payment-service")
	routes.RegisterPaymentRoutes(router, handlers.NewPaymentHandler(paymentService, logger))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "4004"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting payment-service on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("payment: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("payment: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("payment: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("payment: server stopped gracefully")
}

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
	notificationRepoPkg "stagelink/database/repository/notification"
	"stagelink/handlers"
	"stagelink/routes"
	"stagelink/services/notification"
	"stagelink/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Background worker draining the delivery queue into the inbox store.
	notification.InitDeliveryWorker(notificationRepo)

	dispatcher := notification.NewDispatcher(logger)
	defer dispatcher.Close()

	router := routes.NewServiceRouter()
	routes.RegisterHealthRoute(router, "notification-service")
	routes.RegisterNotificationRoutes(router,
		handlers.NewNotificationHandler(dispatcher, notificationRepo, logger))

	port := config.AppConfig.AppPort
	if port == "" {
		port = "4005"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting notification-service on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("notification: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("notification: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("notification: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("notification: server stopped gracefully")
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stagelink/config"
	"stagelink/gateway"
	"stagelink/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	registry, err := gateway.RegistryFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("gateway: invalid service registry: %v", err)
	}

	router := gateway.NewRouter(registry, logger, config.AppConfig.MaxRequestsPerMin)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting api-gateway on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("gateway: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("gateway: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("gateway: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("gateway: server stopped gracefully")
}

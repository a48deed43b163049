package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"mybiglambda/internal/config"
	"mybiglambda/internal/handlers"
	"mybiglambda/pkg/server"
)

// Runs the function behind a local HTTP server for development
func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger config yet
		config.NewLogger(config.LogConfig{}).Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.Log)
	ctx := context.Background()

	provider, err := server.NewProvider(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create secrets provider: %v", err)
	}

	container, err := server.NewContainer(ctx, cfg, provider, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize container: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger, cfg)
	handlers.SetupRoutes(router, container.RouterConfig())

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	logger.WithField("port", cfg.Port).Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

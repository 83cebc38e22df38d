package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spacecast/internal/config"
	"spacecast/internal/logger"
	"spacecast/internal/server"
)

func main() {
	// Local development keeps its settings in .env; absence is normal in
	// deployed environments.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("failed to load configuration", err)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat, cfg.Environment)
	log := logger.GetGlobalLogger().WithComponent("main")

	log.Info("starting spacecast service", logger.Fields{
		"version":     config.GetVersion(),
		"port":        cfg.Port,
		"environment": cfg.Environment,
	})

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatal("failed to create server", err)
	}
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // report generation can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", logger.Fields{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("http server error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", err)
	}
	log.Info("server stopped")
}

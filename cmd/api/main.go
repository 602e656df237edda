package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/predialis/bankimport-backend/internal/api"
	"github.com/predialis/bankimport-backend/internal/application/service"
	"github.com/predialis/bankimport-backend/internal/domain/dedup"
	"github.com/predialis/bankimport-backend/internal/infrastructure/config"
	"github.com/predialis/bankimport-backend/internal/infrastructure/logging"
	"github.com/predialis/bankimport-backend/internal/infrastructure/storage"
)

func main() {
	cfg := config.LoadOrEnv()
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "api")

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open storage", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	dedupCfg := dedup.Config{
		DateToleranceDays: cfg.Duplicates.DateToleranceDays,
		AmountTolerance:   decimal.NewFromFloat(cfg.Duplicates.AmountTolerance),
	}
	detection := service.NewDuplicateDetectionService(store, dedupCfg, logger)

	serverCfg := api.DefaultConfig()
	serverCfg.Port = cfg.Server.Port
	if len(cfg.Server.AllowedOrigins) > 0 {
		serverCfg.AllowedOrigins = cfg.Server.AllowedOrigins
	}

	server := api.NewServer(serverCfg, store, detection, logger)

	// Serve until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

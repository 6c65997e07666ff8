package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gcs-tracker/internal/config"
	"gcs-tracker/internal/database"
	"gcs-tracker/internal/handlers"
	"gcs-tracker/internal/logging"
	"gcs-tracker/internal/store"
	"gcs-tracker/internal/store/memory"
	pgstore "gcs-tracker/internal/store/postgres"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	var (
		dir     store.Directory
		records store.RecordStore
	)
	db, err := database.Connect(cfg)
	if err != nil {
		// Availability over consistency: the service still comes up on the
		// in-memory store when postgres is unreachable.
		logger.Warn("postgres unavailable, serving from in-memory store", zap.Error(err))
		mem := memory.NewStore()
		if cfg.DemoSeed {
			memory.Seed(mem)
		}
		dir, records = mem, mem
	} else {
		pg := pgstore.New(db)
		dir, records = pg, pg
	}

	router := handlers.NewRouter(handlers.New(dir, records, logger))
	srv := &http.Server{
		Addr:              ":" + cfg.ListenPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.ListenPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

// Package main initializes and starts the passmeter HTTP server,
// setting up configuration, logging, the evaluation log, services and handlers.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/passmeter/internal/config"
	"github.com/atinyakov/passmeter/internal/db"
	"github.com/atinyakov/passmeter/internal/logger"
	"github.com/atinyakov/passmeter/internal/repository"
	"github.com/atinyakov/passmeter/internal/server/handler/http"
	"github.com/atinyakov/passmeter/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// evaluationStore is what the server needs from the evaluation log.
type evaluationStore interface {
	service.EvaluationRepository
	db.Purger
}

func main() {
	// Parse command-line, config file and environment configuration.
	options, err := config.Parse()
	if err != nil {
		log.Fatal(err)
	}

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	lg := logger.New()
	if err := lg.Init(options.LogLevel); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = lg.Log.Sync() }()
	zapLogger := lg.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Pick the evaluation log backend.
	var store evaluationStore
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		defer postgresDB.Close()
		store = repository.NewPostgresEvaluationRepository(postgresDB)
	} else {
		zapLogger.Info("no database configured, keeping evaluation log in memory")
		store = repository.NewMemoryEvaluationRepository()
	}

	// Purge expired evaluation records.
	db.StartRetentionCleaner(ctx, store,
		options.CleanupInterval.Duration,
		options.Retention.Duration,
		zapLogger,
	)

	strengthService := service.NewStrengthService(store, zapLogger)
	strengthHandler := &http.StrengthHandler{StrengthService: strengthService}
	router := http.NewRouter(strengthHandler, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}

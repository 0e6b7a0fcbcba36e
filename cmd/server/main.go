package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meur/bisforge/internal/api"
	"github.com/meur/bisforge/internal/config"
	"github.com/meur/bisforge/internal/fetch"
	"github.com/meur/bisforge/internal/logging"
	"github.com/meur/bisforge/internal/metrics"
	"github.com/meur/bisforge/internal/scrape"
	"github.com/meur/bisforge/internal/storage"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags override the environment
	port := flag.String("port", cfg.Server.Port, "Server port")
	dbPath := flag.String("db", cfg.Server.DBPath, "SQLite database path")
	flag.Parse()

	logger, err := logging.New(cfg.Logging.Logger())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize storage
	store, err := storage.New(*dbPath)
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}
	defer store.Close()

	m := metrics.New()
	svc := scrape.New(fetch.New(cfg.FetchProfile()), logger.Named("scrape"), m, scrape.Options{
		AllowedDomain: cfg.Server.AllowedDomain,
	})

	// Create router
	r := api.New(svc, store, m, logger.Named("api"), api.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AccessLog:      true,
	})

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.Host, *port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("bisforge API starting",
			zap.String("addr", srv.Addr),
			zap.String("db", *dbPath),
			zap.String("domain", cfg.Server.AllowedDomain),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

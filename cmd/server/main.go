package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Lucky44/SC-fleet-manager/internal/api"
	"github.com/Lucky44/SC-fleet-manager/internal/catalog"
	"github.com/Lucky44/SC-fleet-manager/internal/config"
	"github.com/Lucky44/SC-fleet-manager/internal/crypto"
	"github.com/Lucky44/SC-fleet-manager/internal/database"
	"github.com/Lucky44/SC-fleet-manager/internal/fleet"
	"github.com/Lucky44/SC-fleet-manager/internal/fleetyards"
	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
	syncsvc "github.com/Lucky44/SC-fleet-manager/internal/sync"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	log.Info().Msg("SC Fleet Manager starting up")

	// Load config
	cfg := config.Load()

	if err := crypto.InitEncryption(cfg.EncryptionKey); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize encryption")
	}

	// Connect database
	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Catalog source: a local data dump when configured, live API otherwise
	var source catalog.Source
	if cfg.ScunpackedDataPath != "" {
		log.Info().Str("path", cfg.ScunpackedDataPath).Msg("using local scunpacked data dump")
		source = scunpacked.NewSnapshot(cfg.ScunpackedDataPath)
	} else {
		source = scunpacked.NewClient(cfg.ScunpackedBaseURL, scunpacked.DefaultRateLimit, scunpacked.DefaultBurst)
	}

	cat := catalog.NewService(source)
	fleetSvc := fleet.NewService(db, cat)

	// Create FleetYards client (store images only)
	fyClient := fleetyards.NewClient(cfg.FleetYardsBaseURL)

	// Create sync scheduler
	scheduler := syncsvc.NewScheduler(db, cat, fyClient, cfg)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer scheduler.Stop()

	// Create API server
	srv := api.NewServer(db, cfg, cat, fleetSvc, scheduler)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("SC Fleet Manager stopped")
}

// Package sync schedules catalog refreshes: the scunpacked ship and item
// catalogs on a cron schedule, plus FleetYards store images as enrichment.
// Every run is recorded in sync_history for the status endpoint.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/Lucky44/SC-fleet-manager/internal/catalog"
	"github.com/Lucky44/SC-fleet-manager/internal/config"
	"github.com/Lucky44/SC-fleet-manager/internal/database"
	"github.com/Lucky44/SC-fleet-manager/internal/fleetyards"
)

type Scheduler struct {
	db      *database.DB
	catalog *catalog.Service
	images  *fleetyards.Client
	cfg     *config.Config
	cron    *cron.Cron
}

func NewScheduler(db *database.DB, cat *catalog.Service, images *fleetyards.Client, cfg *config.Config) *Scheduler {
	return &Scheduler{
		db:      db,
		catalog: cat,
		images:  images,
		cfg:     cfg,
		cron:    cron.New(),
	}
}

// Start begins the scheduled sync jobs
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.SyncSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		log.Info().Msg("scheduled catalog sync starting")
		if err := s.SyncCatalog(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled catalog sync failed")
		}
		if err := s.SyncImages(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled image sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("adding cron job: %w", err)
	}

	s.cron.Start()
	log.Info().Str("schedule", s.cfg.SyncSchedule).Msg("sync scheduler started")

	// Warm the caches on startup so the first request doesn't pay for the
	// full upstream fetch.
	if s.cfg.SyncOnStartup {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
			defer cancel()

			if err := s.SyncCatalog(ctx); err != nil {
				log.Error().Err(err).Msg("startup catalog sync failed")
			}
			if err := s.SyncImages(ctx); err != nil {
				log.Error().Err(err).Msg("startup image sync failed")
			}
		}()
	}

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("sync scheduler stopped")
}

// SyncCatalog reloads the ship and item catalogs from upstream.
func (s *Scheduler) SyncCatalog(ctx context.Context) error {
	syncID, _ := s.db.InsertSyncRecord(ctx, "catalog")

	ships, items, err := s.catalog.Refresh(ctx)
	if err != nil {
		s.db.CompleteSyncRecord(ctx, syncID, "error", ships+items, err.Error())
		return fmt.Errorf("refreshing catalog: %w", err)
	}

	s.db.CompleteSyncRecord(ctx, syncID, "success", ships+items, "")
	log.Info().Int("ships", ships).Int("items", items).Msg("catalog sync complete")
	return nil
}

// SyncImages fetches FleetYards store images and applies them to the cached
// ship catalog. Failures are recorded but never affect catalog data.
func (s *Scheduler) SyncImages(ctx context.Context) error {
	syncID, _ := s.db.InsertSyncRecord(ctx, "images")

	images, err := s.images.FetchAllShipImages(ctx)
	if err != nil {
		s.db.CompleteSyncRecord(ctx, syncID, "error", len(images), err.Error())
		return fmt.Errorf("fetching ship images: %w", err)
	}

	s.catalog.SetImages(images)
	s.db.CompleteSyncRecord(ctx, syncID, "success", len(images), "")
	log.Info().Int("images", len(images)).Msg("image sync complete")
	return nil
}

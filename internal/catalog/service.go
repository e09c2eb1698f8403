// Package catalog owns normalization of the raw upstream game data: ship and
// item curation, hardpoint extraction, display-name resolution and the
// item-to-port compatibility rules. Everything downstream (fleet state, API,
// analysis) consumes catalog output and never raw records.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

// Source supplies the three raw upstream datasets. Satisfied by both the
// scunpacked HTTP client and the local snapshot reader.
type Source interface {
	FetchShips(ctx context.Context) ([]scunpacked.RawShip, error)
	FetchShipPorts(ctx context.Context, className string) (scunpacked.PortDoc, error)
	FetchItems(ctx context.Context) ([]scunpacked.RawItem, error)
}

// Service is the cached, normalized catalog. Ship and item lists are loaded
// once and reused; port extraction is cached per ship class. Safe for
// concurrent use.
type Service struct {
	source Source

	mu    sync.RWMutex
	ships []models.Ship
	items []models.Item
	ports map[string][]models.Port
}

func NewService(source Source) *Service {
	return &Service{
		source: source,
		ports:  make(map[string][]models.Port),
	}
}

// Ships returns the normalized ship catalog, fetching it on first use.
func (s *Service) Ships(ctx context.Context) ([]models.Ship, error) {
	s.mu.RLock()
	if s.ships != nil {
		defer s.mu.RUnlock()
		return s.ships, nil
	}
	s.mu.RUnlock()

	raw, err := s.source.FetchShips(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ship catalog: %w", err)
	}
	ships := NormalizeShips(raw)
	log.Info().Int("raw", len(raw)).Int("normalized", len(ships)).Msg("ship catalog loaded")

	s.mu.Lock()
	s.ships = ships
	s.mu.Unlock()
	return ships, nil
}

// Items returns the normalized item catalog, fetching it on first use.
func (s *Service) Items(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	if s.items != nil {
		defer s.mu.RUnlock()
		return s.items, nil
	}
	s.mu.RUnlock()

	raw, err := s.source.FetchItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading item catalog: %w", err)
	}
	items := NormalizeItems(raw)
	log.Info().Int("raw", len(raw)).Int("normalized", len(items)).Msg("item catalog loaded")

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

// Ports returns the extracted, patched port list for a ship class. A failed
// upstream fetch degrades to an empty list before patching, so the hand
// described ships still produce their ports offline.
func (s *Service) Ports(ctx context.Context, className string) ([]models.Port, error) {
	s.mu.RLock()
	if cached, ok := s.ports[className]; ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	var ports []models.Port
	doc, err := s.source.FetchShipPorts(ctx, className)
	if err != nil {
		log.Warn().Err(err).Str("ship", className).Msg("ports fetch failed, falling back to patches only")
	} else {
		ports = ExtractPorts(doc)
	}
	ports = ApplyPortPatches(className, ports)
	if ports == nil {
		ports = []models.Port{}
	}

	s.mu.Lock()
	s.ports[className] = ports
	s.mu.Unlock()
	return ports, nil
}

// Ship resolves one catalog ship by class name.
func (s *Service) Ship(ctx context.Context, className string) (models.Ship, bool, error) {
	ships, err := s.Ships(ctx)
	if err != nil {
		return models.Ship{}, false, err
	}
	ship, ok := ShipByClass(ships, className)
	return ship, ok, nil
}

// Item resolves one catalog item by class name.
func (s *Service) Item(ctx context.Context, className string) (models.Item, bool, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return models.Item{}, false, err
	}
	item, ok := ItemByClass(items, className)
	return item, ok, nil
}

// Refresh drops all cached catalogs and reloads ships and items. Port caches
// repopulate lazily. Returns the new catalog sizes.
func (s *Service) Refresh(ctx context.Context) (shipCount, itemCount int, err error) {
	s.Invalidate()
	ships, err := s.Ships(ctx)
	if err != nil {
		return 0, 0, err
	}
	items, err := s.Items(ctx)
	if err != nil {
		return len(ships), 0, err
	}
	return len(ships), len(items), nil
}

// Invalidate drops every cached catalog without reloading.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.ships = nil
	s.items = nil
	s.ports = make(map[string][]models.Port)
	s.mu.Unlock()
}

// SetImages applies FleetYards store images onto the cached ship catalog,
// keyed by lowercase ship name.
func (s *Service) SetImages(images map[string]models.ShipImages) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.ships {
		key := strings.ToLower(strings.TrimSpace(s.ships[i].Name))
		if img, ok := images[key]; ok {
			s.ships[i].ImageURL = img.Large
			s.ships[i].ImageURLSmall = img.Small
		}
	}
}

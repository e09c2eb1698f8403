// Package fleet owns the user's persisted hangar: the ordered FleetShip
// collection, per-port loadout overrides, and the share/import/export
// codecs. Catalog data is read through the catalog service and never
// duplicated into fleet storage.
package fleet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lucky44/SC-fleet-manager/internal/catalog"
	"github.com/Lucky44/SC-fleet-manager/internal/database"
	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

type Service struct {
	db      *database.DB
	catalog *catalog.Service
}

func NewService(db *database.DB, cat *catalog.Service) *Service {
	return &Service{db: db, catalog: cat}
}

// List returns the fleet in insertion order.
func (s *Service) List(ctx context.Context) ([]models.FleetShip, error) {
	return s.db.GetFleet(ctx)
}

// Add appends a ship to the fleet. The class is looked up in the catalog for
// the default display name, but an unknown class is still accepted — it
// simply renders as unlinked until a catalog refresh brings it back.
func (s *Service) Add(ctx context.Context, shipClass string) (*models.FleetShip, error) {
	name := shipClass
	if ship, ok, err := s.catalog.Ship(ctx, shipClass); err != nil {
		log.Warn().Err(err).Str("ship", shipClass).Msg("catalog unavailable while adding ship")
	} else if ok {
		shipClass = ship.ClassName
		name = ship.Name
	}

	fs := &models.FleetShip{
		ID:        uuid.NewString(),
		ShipClass: shipClass,
		Name:      name,
		Loadout:   map[string]string{},
	}
	if err := s.db.InsertFleetShip(ctx, fs); err != nil {
		return nil, fmt.Errorf("adding fleet ship: %w", err)
	}
	return fs, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	return s.db.DeleteFleetShip(ctx, id)
}

func (s *Service) Clear(ctx context.Context) error {
	return s.db.ClearFleet(ctx)
}

func (s *Service) Rename(ctx context.Context, id, name string) error {
	return s.db.RenameFleetShip(ctx, id, name)
}

// UpdateLoadout sets or clears one port override. No compatibility check
// happens here: the state layer stores what it is told, the UI is expected
// to offer only compatible items.
func (s *Service) UpdateLoadout(ctx context.Context, id, portName, itemClass string) error {
	fs, err := s.db.GetFleetShip(ctx, id)
	if err != nil {
		return err
	}
	if fs == nil {
		return database.ErrNotFound
	}
	return s.db.SetLoadoutEntry(ctx, id, portName, itemClass)
}

// ResetLoadout drops every override, reverting the ship fully to stock.
func (s *Service) ResetLoadout(ctx context.Context, id string) error {
	fs, err := s.db.GetFleetShip(ctx, id)
	if err != nil {
		return err
	}
	if fs == nil {
		return database.ErrNotFound
	}
	return s.db.ClearLoadout(ctx, id)
}

// Loadout builds the merged per-port view for one fleet ship. A fleet entry
// whose class no longer resolves against the catalog is returned unlinked
// with no ports, not as an error.
func (s *Service) Loadout(ctx context.Context, id string) (*models.LoadoutView, error) {
	fs, err := s.db.GetFleetShip(ctx, id)
	if err != nil {
		return nil, err
	}
	if fs == nil {
		return nil, database.ErrNotFound
	}

	ship, ok, err := s.catalog.Ship(ctx, fs.ShipClass)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &models.LoadoutView{FleetShip: *fs, Unlinked: true, Ports: []models.Port{}}, nil
	}

	ports, err := s.catalog.Ports(ctx, ship.ClassName)
	if err != nil {
		return nil, err
	}
	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}

	merged := MergeLoadout(ports, fs.Loadout, items)
	return &models.LoadoutView{FleetShip: *fs, Ship: &ship, Ports: merged}, nil
}

// Import replaces the whole fleet with the given collection. Ships without
// an identifier get a fresh one; loadout maps are taken verbatim.
func (s *Service) Import(ctx context.Context, fleet []models.FleetShip) error {
	for i := range fleet {
		if fleet[i].ID == "" {
			fleet[i].ID = uuid.NewString()
		}
		if fleet[i].Loadout == nil {
			fleet[i].Loadout = map[string]string{}
		}
	}
	if err := s.db.ReplaceFleet(ctx, fleet); err != nil {
		return fmt.Errorf("importing fleet: %w", err)
	}
	log.Info().Int("ships", len(fleet)).Msg("fleet imported")
	return nil
}

// Share encodes the current fleet as a URL-safe string.
func (s *Service) Share(ctx context.Context) (string, error) {
	fleet, err := s.db.GetFleet(ctx)
	if err != nil {
		return "", err
	}
	return EncodeFleet(fleet)
}

// ImportShare decodes a share string and replaces the fleet with it.
func (s *Service) ImportShare(ctx context.Context, code string) error {
	fleet, err := DecodeFleet(code)
	if err != nil {
		return err
	}
	return s.Import(ctx, fleet)
}

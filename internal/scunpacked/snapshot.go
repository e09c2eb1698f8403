package scunpacked

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Snapshot reads the same three datasets from a local scunpacked-data dump
// on disk instead of the network. Useful for development and for running
// without upstream connectivity; it satisfies the same interface the
// catalog service consumes the Client through.
type Snapshot struct {
	dataPath string
}

// NewSnapshot creates a reader over a local scunpacked-data directory.
func NewSnapshot(dataPath string) *Snapshot {
	return &Snapshot{dataPath: dataPath}
}

func (s *Snapshot) readJSON(relPath string, v any) error {
	full := filepath.Join(s.dataPath, relPath)
	data, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("reading %s: %w", full, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", full, err)
	}
	return nil
}

// FetchShips reads the ship list from the local dump.
func (s *Snapshot) FetchShips(_ context.Context) ([]RawShip, error) {
	var ships []RawShip
	if err := s.readJSON(filepath.Join("v2", "ships.json"), &ships); err != nil {
		return nil, err
	}
	log.Info().Int("ships", len(ships)).Str("path", s.dataPath).Msg("read ships from local snapshot")
	return ships, nil
}

// FetchShipPorts reads one ship's hardpoint document from the local dump.
func (s *Snapshot) FetchShipPorts(_ context.Context, className string) (PortDoc, error) {
	var doc PortDoc
	name := fmt.Sprintf("%s-ports.json", strings.ToLower(className))
	if err := s.readJSON(filepath.Join("v2", "ships", name), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FetchItems reads the item catalog from the local dump.
func (s *Snapshot) FetchItems(_ context.Context) ([]RawItem, error) {
	var items []RawItem
	if err := s.readJSON("items.json", &items); err != nil {
		return nil, err
	}
	log.Info().Int("items", len(items)).Str("path", s.dataPath).Msg("read items from local snapshot")
	return items, nil
}

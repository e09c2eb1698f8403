package catalog

import (
	"sort"
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

// NormalizeShips turns the raw upstream ship list into the curated catalog:
// internal ships are dropped, known-bad records are patched, missing ships
// are appended, and name duplicates collapse to the base hull.
func NormalizeShips(raw []scunpacked.RawShip) []models.Ship {
	ships := make([]models.Ship, 0, len(raw))
	for _, r := range raw {
		c := strings.ToLower(r.ClassName)
		if strings.Contains(c, "test") || strings.Contains(c, "cinematic") || strings.Contains(c, "tutorial") {
			continue
		}
		ships = append(ships, shipFromRaw(r))
	}

	// Patch before deduplication so corrected names participate in it.
	ships = applyShipPatches(ships)

	// Variants carry longer class names than the base hull
	// (RSI_Polaris vs RSI_Polaris_BIS1234); shortest-first keeps the base.
	sort.SliceStable(ships, func(i, j int) bool {
		return len(ships[i].ClassName) < len(ships[j].ClassName)
	})

	seen := make(map[string]struct{}, len(ships))
	unique := ships[:0]
	for _, s := range ships {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

func shipFromRaw(r scunpacked.RawShip) models.Ship {
	s := models.Ship{
		ClassName:   r.ClassName,
		Name:        r.Name,
		Description: r.Description,
		Career:      r.Career,
		Role:        r.Role,
		Size:        r.Size,
		Cargo:       r.Cargo,
		Mass:        r.Mass,
	}
	if r.Manufacturer != nil {
		s.Manufacturer = models.Manufacturer{Code: r.Manufacturer.Code, Name: r.Manufacturer.Name}
	}
	return s
}

// ShipByClass finds a ship by class identifier, case-insensitively.
func ShipByClass(ships []models.Ship, className string) (models.Ship, bool) {
	for _, s := range ships {
		if strings.EqualFold(s.ClassName, className) {
			return s, true
		}
	}
	return models.Ship{}, false
}

// Package analysis derives fleet-level statistics from the persisted fleet
// joined against the catalog: totals, size distribution, role grouping and
// role redundancies. The same summary feeds the LLM analysis prompt.
package analysis

import (
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/catalog"
	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

// roleMapping maps ship role strings to broad categories
var roleMapping = map[string]string{
	"Fighter":         "Combat",
	"Heavy Fighter":   "Combat",
	"Light Fighter":   "Combat",
	"Medium Fighter":  "Combat",
	"Stealth Fighter": "Combat",
	"Interdiction":    "Combat",
	"Bomber":          "Combat",
	"Gunship":         "Combat",
	"Corvette":        "Combat",
	"Frigate":         "Combat",
	"Destroyer":       "Combat",
	"Carrier":         "Combat",
	"Combat":          "Combat",
	"Dropship":        "Combat",
	"Mining":          "Industrial",
	"Salvage":         "Industrial",
	"Refinery":        "Industrial",
	"Construction":    "Industrial",
	"Repair":          "Industrial",
	"Freight":         "Transport",
	"Cargo":           "Transport",
	"Transport":       "Transport",
	"Refueling":       "Transport",
	"Medical":         "Medical",
	"Rescue":          "Medical",
	"Exploration":     "Exploration",
	"Pathfinder":      "Exploration",
	"Expedition":      "Exploration",
	"Science":         "Exploration",
	"Data":            "Exploration",
	"Racing":          "Racing",
	"Competition":     "Racing",
	"Touring":         "Civilian",
	"Luxury":          "Civilian",
	"Passenger":       "Civilian",
	"Starter":         "Civilian",
	"Multi-Role":      "Multi-Role",
	"Modular":         "Multi-Role",
	"Reporting":       "Support",
	"EW":              "Support",
	"Support":         "Support",
	"Snub Fighter":    "Snub",
}

// AnalyzeFleet summarizes the fleet against the ship catalog. Fleet entries
// whose class no longer resolves count as unlinked and contribute nothing to
// the cargo and mass totals.
func AnalyzeFleet(fleet []models.FleetShip, ships []models.Ship) *models.FleetAnalysis {
	analysis := &models.FleetAnalysis{
		SizeDistribution: make(map[string]int),
		RoleCategories:   make(map[string][]string),
	}

	resolved := make([]*models.Ship, len(fleet))
	for i, fs := range fleet {
		if ship, ok := catalog.ShipByClass(ships, fs.ShipClass); ok {
			s := ship
			resolved[i] = &s
		}
	}

	analysis.Overview = buildOverview(fleet, resolved)
	analysis.SizeDistribution = buildSizeDistribution(resolved)
	analysis.RoleCategories = buildRoleCategories(fleet, resolved)
	analysis.Redundancies = buildRedundancies(fleet, resolved)

	return analysis
}

func buildOverview(fleet []models.FleetShip, resolved []*models.Ship) models.FleetOverview {
	overview := models.FleetOverview{
		TotalShips: len(fleet),
	}

	for i, fs := range fleet {
		if len(fs.Loadout) > 0 {
			overview.CustomLoadouts++
		}
		ship := resolved[i]
		if ship == nil {
			overview.UnlinkedShips++
			continue
		}
		overview.TotalCargo += ship.Cargo
		overview.TotalMass += ship.Mass
	}

	return overview
}

func buildSizeDistribution(resolved []*models.Ship) map[string]int {
	dist := make(map[string]int)
	for _, ship := range resolved {
		label := "Unknown"
		if ship != nil {
			label = sizeLabel(ship.Size)
		}
		dist[label]++
	}
	return dist
}

func sizeLabel(size int) string {
	switch {
	case size <= 0:
		return "Unknown"
	case size == 1:
		return "Small"
	case size == 2:
		return "Small"
	case size == 3:
		return "Medium"
	case size == 4:
		return "Large"
	default:
		return "Capital"
	}
}

func buildRoleCategories(fleet []models.FleetShip, resolved []*models.Ship) map[string][]string {
	categories := make(map[string][]string)
	for i, fs := range fleet {
		role := ""
		if resolved[i] != nil {
			role = resolved[i].Role
		}

		category := "Uncategorised"
		for key, cat := range roleMapping {
			if strings.EqualFold(role, key) || strings.Contains(strings.ToLower(role), strings.ToLower(key)) {
				category = cat
				break
			}
		}

		displayName := fs.Name
		if displayName == "" && resolved[i] != nil {
			displayName = resolved[i].Name
		}
		if displayName == "" {
			displayName = fs.ShipClass
		}
		categories[category] = append(categories[category], displayName)
	}
	return categories
}

// buildRedundancies reports roles covered by three or more hulls.
func buildRedundancies(fleet []models.FleetShip, resolved []*models.Ship) []models.RedundancyGroup {
	byRole := make(map[string][]string)
	for i, fs := range fleet {
		ship := resolved[i]
		if ship == nil || ship.Role == "" {
			continue
		}
		name := fs.Name
		if name == "" {
			name = ship.Name
		}
		byRole[ship.Role] = append(byRole[ship.Role], name)
	}

	var groups []models.RedundancyGroup
	for role, names := range byRole {
		if len(names) >= 3 {
			groups = append(groups, models.RedundancyGroup{Role: role, Ships: names})
		}
	}
	return groups
}

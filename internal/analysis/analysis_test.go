package analysis

import (
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

func testShips() []models.Ship {
	return []models.Ship{
		{ClassName: "AEGS_Gladius", Name: "Aegis Gladius", Role: "Light Fighter", Size: 2, Mass: 62000},
		{ClassName: "DRAK_Cutlass_Black", Name: "Drake Cutlass Black", Role: "Multi-Role", Size: 3, Cargo: 46, Mass: 226700},
		{ClassName: "RSI_Polaris", Name: "RSI Polaris", Role: "Corvette", Size: 6, Cargo: 216, Mass: 15000000},
	}
}

func TestAnalyzeFleetOverview(t *testing.T) {
	fleet := []models.FleetShip{
		{ID: "1", ShipClass: "AEGS_Gladius", Loadout: map[string]string{"weapon_1": "BEHR_LaserCannon_S3"}},
		{ID: "2", ShipClass: "DRAK_Cutlass_Black", Loadout: map[string]string{}},
		{ID: "3", ShipClass: "XXXX_Retired_Hull", Loadout: map[string]string{}},
	}

	result := AnalyzeFleet(fleet, testShips())

	if result.Overview.TotalShips != 3 {
		t.Errorf("TotalShips = %d, want 3", result.Overview.TotalShips)
	}
	if result.Overview.CustomLoadouts != 1 {
		t.Errorf("CustomLoadouts = %d, want 1", result.Overview.CustomLoadouts)
	}
	if result.Overview.UnlinkedShips != 1 {
		t.Errorf("UnlinkedShips = %d, want 1", result.Overview.UnlinkedShips)
	}
	// Unlinked entries contribute nothing to the totals.
	if result.Overview.TotalCargo != 46 {
		t.Errorf("TotalCargo = %v, want 46", result.Overview.TotalCargo)
	}
	if result.Overview.TotalMass != 62000+226700 {
		t.Errorf("TotalMass = %v", result.Overview.TotalMass)
	}
}

func TestAnalyzeFleetSizeDistribution(t *testing.T) {
	fleet := []models.FleetShip{
		{ID: "1", ShipClass: "AEGS_Gladius"},
		{ID: "2", ShipClass: "DRAK_Cutlass_Black"},
		{ID: "3", ShipClass: "RSI_Polaris"},
		{ID: "4", ShipClass: "XXXX_Retired_Hull"},
	}

	result := AnalyzeFleet(fleet, testShips())

	dist := result.SizeDistribution
	if dist["Small"] != 1 || dist["Medium"] != 1 || dist["Capital"] != 1 || dist["Unknown"] != 1 {
		t.Errorf("size distribution wrong: %v", dist)
	}
}

func TestAnalyzeFleetRoleCategories(t *testing.T) {
	fleet := []models.FleetShip{
		{ID: "1", ShipClass: "AEGS_Gladius", Name: "Dagger"},
		{ID: "2", ShipClass: "RSI_Polaris"},
		{ID: "3", ShipClass: "XXXX_Retired_Hull"},
	}

	result := AnalyzeFleet(fleet, testShips())

	combat := result.RoleCategories["Combat"]
	if len(combat) != 2 {
		t.Fatalf("Combat group = %v, want 2 entries", combat)
	}
	// Custom name wins; catalog name is the fallback.
	if combat[0] != "Dagger" || combat[1] != "RSI Polaris" {
		t.Errorf("Combat names = %v", combat)
	}

	uncategorised := result.RoleCategories["Uncategorised"]
	if len(uncategorised) != 1 || uncategorised[0] != "XXXX_Retired_Hull" {
		t.Errorf("unlinked ship should fall back to its class: %v", uncategorised)
	}
}

func TestAnalyzeFleetRedundancies(t *testing.T) {
	fleet := []models.FleetShip{
		{ID: "1", ShipClass: "AEGS_Gladius"},
		{ID: "2", ShipClass: "AEGS_Gladius"},
		{ID: "3", ShipClass: "AEGS_Gladius"},
		{ID: "4", ShipClass: "RSI_Polaris"},
	}

	result := AnalyzeFleet(fleet, testShips())

	if len(result.Redundancies) != 1 {
		t.Fatalf("redundancy groups = %d, want 1", len(result.Redundancies))
	}
	group := result.Redundancies[0]
	if group.Role != "Light Fighter" || len(group.Ships) != 3 {
		t.Errorf("redundancy group = %+v", group)
	}
}

func TestAnalyzeFleetEmpty(t *testing.T) {
	result := AnalyzeFleet(nil, testShips())

	if result.Overview.TotalShips != 0 {
		t.Errorf("empty fleet TotalShips = %d", result.Overview.TotalShips)
	}
	if len(result.Redundancies) != 0 {
		t.Errorf("empty fleet has redundancies: %v", result.Redundancies)
	}
}

package catalog

import (
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

func TestNormalizeShipsFiltersInternalHulls(t *testing.T) {
	raw := []scunpacked.RawShip{
		{ClassName: "AEGS_Gladius", Name: "Aegis Gladius"},
		{ClassName: "AEGS_Gladius_Test", Name: "Gladius Test"},
		{ClassName: "ORIG_890Jump_Cinematic", Name: "890 Jump Cinematic"},
		{ClassName: "CNOU_Mustang_Tutorial", Name: "Mustang Tutorial"},
	}

	ships := NormalizeShips(raw)

	for _, s := range ships {
		switch s.ClassName {
		case "AEGS_Gladius_Test", "ORIG_890Jump_Cinematic", "CNOU_Mustang_Tutorial":
			t.Errorf("internal hull %s survived normalization", s.ClassName)
		}
	}
	if _, ok := ShipByClass(ships, "AEGS_Gladius"); !ok {
		t.Error("real hull AEGS_Gladius was dropped")
	}
}

func TestNormalizeShipsDedupesVariantsToBaseHull(t *testing.T) {
	// The variant shares the display name; the shorter class name is the
	// base hull and must win.
	raw := []scunpacked.RawShip{
		{ClassName: "DRAK_Cutlass_Black_BIS2953", Name: "Drake Cutlass Black"},
		{ClassName: "DRAK_Cutlass_Black", Name: "Drake Cutlass Black"},
	}

	ships := NormalizeShips(raw)

	count := 0
	for _, s := range ships {
		if s.Name == "Drake Cutlass Black" {
			count++
			if s.ClassName != "DRAK_Cutlass_Black" {
				t.Errorf("dedup kept variant %s instead of base hull", s.ClassName)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected 1 Cutlass Black after dedup, got %d", count)
	}
}

func TestNormalizeShipsPatchesLightningF8(t *testing.T) {
	raw := []scunpacked.RawShip{
		{
			ClassName:    "ANVL_Lightning_F8",
			Name:         "F8A Lightning",
			Manufacturer: &scunpacked.RawManufacturer{Code: "ANVL", Name: "Anvil Aerospace"},
		},
	}

	ships := NormalizeShips(raw)

	ship, ok := ShipByClass(ships, "ANVL_Lightning_F8")
	if !ok {
		t.Fatal("F8 missing from catalog")
	}
	if ship.Name != "F8C Lightning" {
		t.Errorf("F8 name = %q, want %q", ship.Name, "F8C Lightning")
	}
	if ship.Manufacturer.Code != "AEGS" {
		t.Errorf("F8 manufacturer = %q, want AEGS", ship.Manufacturer.Code)
	}
}

func TestNormalizeShipsHornetMarkDesignation(t *testing.T) {
	raw := []scunpacked.RawShip{
		{ClassName: "ANVL_Hornet_F7C", Name: "F7C Hornet"},
		{ClassName: "ANVL_Hornet_F7C_Mk2", Name: "F7C Hornet"},
		{ClassName: "ANVL_Hornet_F7A", Name: "F7A Hornet"},
	}

	ships := NormalizeShips(raw)

	mk1, ok := ShipByClass(ships, "ANVL_Hornet_F7C")
	if !ok {
		t.Fatal("F7C Mk I missing")
	}
	if mk1.Name != "F7C Hornet Mk I" {
		t.Errorf("F7C name = %q, want %q", mk1.Name, "F7C Hornet Mk I")
	}

	mk2, ok := ShipByClass(ships, "ANVL_Hornet_F7C_Mk2")
	if !ok {
		t.Fatal("F7C Mk II missing")
	}
	if mk2.Name != "F7C Hornet Mk II" {
		t.Errorf("F7C Mk2 name = %q, want %q", mk2.Name, "F7C Hornet Mk II")
	}

	// The bare F7A class is the Mk II generation.
	f7a, ok := ShipByClass(ships, "ANVL_Hornet_F7A")
	if !ok {
		t.Fatal("F7A missing")
	}
	if f7a.Name != "F7A Hornet Mk II" {
		t.Errorf("F7A name = %q, want %q", f7a.Name, "F7A Hornet Mk II")
	}
}

func TestNormalizeShipsStripsRedundantNamePrefixes(t *testing.T) {
	raw := []scunpacked.RawShip{
		{ClassName: "MISC_Freelancer", Name: "MISC Freelancer"},
	}

	ships := NormalizeShips(raw)

	ship, ok := ShipByClass(ships, "MISC_Freelancer")
	if !ok {
		t.Fatal("Freelancer missing")
	}
	if ship.Name != "Freelancer" {
		t.Errorf("name = %q, want %q", ship.Name, "Freelancer")
	}
}

func TestNormalizeShipsAddsMissingHulls(t *testing.T) {
	ships := NormalizeShips(nil)

	for _, class := range []string{"RSI_Polaris", "RSI_Perseus", "RSI_Meteor", "ANVL_Pisces_C8R"} {
		if _, ok := ShipByClass(ships, class); !ok {
			t.Errorf("manual hull %s missing from empty-input catalog", class)
		}
	}

	polaris, _ := ShipByClass(ships, "RSI_Polaris")
	if polaris.Size != 6 || polaris.Cargo != 216 {
		t.Errorf("Polaris record wrong: size=%d cargo=%v", polaris.Size, polaris.Cargo)
	}
}

func TestNormalizeShipsUpstreamC8RSuppressesManualEntry(t *testing.T) {
	raw := []scunpacked.RawShip{
		{ClassName: "ANVL_Pisces_C8R", Name: "Anvil C8R Pisces Rescue", Size: 1, Mass: 60000},
	}

	ships := NormalizeShips(raw)

	count := 0
	for _, s := range ships {
		if s.ClassName == "ANVL_Pisces_C8R" {
			count++
			if s.Mass != 60000 {
				t.Errorf("manual C8R replaced the upstream record (mass=%v)", s.Mass)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one C8R, got %d", count)
	}
}

package catalog

import (
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

func TestNormalizeItemsFiltersNonEquipment(t *testing.T) {
	raw := []scunpacked.RawItem{
		{ClassName: "SHLD_BEHR_S03_5CA", Type: "Shield.ShieldGenerator", Size: 3},
		{ClassName: "clothing_hat_01", Type: "Char_Clothing_Hat"},
		{ClassName: "GRIN_MultiTool", Name: "Greycat Multi-Tool", Type: "WeaponPersonal"},
		{ClassName: "MRCK_S05_CNOU_Mustang", Name: "Missile Rack", Type: "MissileLauncher.MissileRack"},
		{ClassName: "Mount_Gimbal_S3", Name: "S3 Gimbal Mount", Type: "Turret.GunTurret"},
		{ClassName: "BEHR_TractorBeam_S1", Name: "Tractor Beam", Type: "WeaponGun.Gun"},
		{ClassName: "KLWE_LaserRepeater_S3", Type: "WeaponGun.Gun", Size: 3},
	}

	items := NormalizeItems(raw)

	if _, ok := ItemByClass(items, "SHLD_BEHR_S03_5CA"); !ok {
		t.Error("shield generator was filtered out")
	}
	if _, ok := ItemByClass(items, "KLWE_LaserRepeater_S3"); !ok {
		t.Error("laser repeater was filtered out")
	}
	for _, class := range []string{"clothing_hat_01", "GRIN_MultiTool", "MRCK_S05_CNOU_Mustang", "Mount_Gimbal_S3", "BEHR_TractorBeam_S1"} {
		if _, ok := ItemByClass(items, class); ok {
			t.Errorf("non-equipment %s survived filtering", class)
		}
	}
}

func TestNormalizeItemsRejectsPlaceholders(t *testing.T) {
	raw := []scunpacked.RawItem{
		{ClassName: "WEAP_FAKE_S1_PLACEHOLDER", Name: "@LOC_PLACEHOLDER_gun", Type: "WeaponGun.Gun"},
		{ClassName: "BEHR_LaserCannon_S2_placeholder", Type: "WeaponGun.Gun"},
		{ClassName: "KLWE_LaserRepeater_S3", Type: "WeaponGun.Gun", Size: 3},
	}

	items := NormalizeItems(raw)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d: %+v", len(items), items)
	}
	if items[0].ClassName != "KLWE_LaserRepeater_S3" {
		t.Errorf("wrong survivor: %+v", items[0])
	}
}

func TestNormalizeItemsNameResolution(t *testing.T) {
	raw := []scunpacked.RawItem{
		{
			ClassName: "SHLD_ASAS_S02_Shimmer",
			Type:      "Shield.ShieldGenerator",
			StdItem:   &scunpacked.RawStdItem{Name: "Shimmer"},
		},
		{
			// Technical stdItem name falls through to the cleaner.
			ClassName: "SHLD_BEHR_S03_5CA",
			ItemName:  "@LOC_PLACEHOLDER_5CA",
			Type:      "Shield.ShieldGenerator",
			StdItem:   &scunpacked.RawStdItem{Name: "@item_shield"},
		},
	}

	items := NormalizeItems(raw)

	shimmer, ok := ItemByClass(items, "SHLD_ASAS_S02_Shimmer")
	if !ok {
		t.Fatal("Shimmer missing")
	}
	if shimmer.Name != "Shimmer" {
		t.Errorf("stdItem name not preferred: got %q", shimmer.Name)
	}

	akura, ok := ItemByClass(items, "SHLD_BEHR_S03_5CA")
	if !ok {
		t.Fatal("Akura missing")
	}
	if akura.Name != "Akura" {
		t.Errorf("placeholder not resolved through cleaner: got %q", akura.Name)
	}
}

func TestNormalizeItemsDedupesByClass(t *testing.T) {
	raw := []scunpacked.RawItem{
		{ClassName: "COOL_AEGS_S02_Tundra", Type: "Cooler", Grade: 2},
		{ClassName: "COOL_AEGS_S02_Tundra", Type: "Cooler", Grade: 1},
	}

	items := NormalizeItems(raw)

	if len(items) != 1 {
		t.Fatalf("expected 1 item after dedup, got %d", len(items))
	}
	if items[0].Grade != 2 {
		t.Errorf("dedup should keep the first record, got grade %v", items[0].Grade)
	}
}

func TestNormalizeItemsCarriesFields(t *testing.T) {
	raw := []scunpacked.RawItem{
		{
			ClassName:    "QDRV_RSI_S02_Bolon",
			Type:         "QuantumDrive",
			SubType:      "QDrive",
			Size:         2,
			Grade:        3,
			Manufacturer: &scunpacked.RawManufacturer{Code: "RSI", Name: "Roberts Space Industries"},
			StdItem:      &scunpacked.RawStdItem{Name: "Bolon"},
		},
	}

	items := NormalizeItems(raw)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	it := items[0]
	if it.Size != 2 || it.Grade != 3 || it.SubType != "QDrive" {
		t.Errorf("fields not carried: %+v", it)
	}
	if it.Manufacturer != "Roberts Space Industries" {
		t.Errorf("manufacturer = %q", it.Manufacturer)
	}
}

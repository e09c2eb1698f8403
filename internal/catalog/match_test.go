package catalog

import (
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

func TestCompatibleItemsSizeBounds(t *testing.T) {
	items := []models.Item{
		{ClassName: "SHLD_S1", Name: "Small Shield", Type: "Shield.ShieldGenerator", Size: 1},
		{ClassName: "SHLD_S2", Name: "Medium Shield", Type: "Shield.ShieldGenerator", Size: 2},
		{ClassName: "SHLD_S3", Name: "Large Shield", Type: "Shield.ShieldGenerator", Size: 3},
	}
	port := models.Port{Types: []string{"Shield.ShieldGenerator"}, MinSize: 2, MaxSize: 3}

	got := CompatibleItems(items, port)

	if len(got) != 2 {
		t.Fatalf("expected 2 compatible shields, got %d", len(got))
	}
	// Both bounds are inclusive.
	if got[0].ClassName != "SHLD_S2" || got[1].ClassName != "SHLD_S3" {
		t.Errorf("wrong matches: %+v", got)
	}
}

func TestCompatibleItemsGunPortRules(t *testing.T) {
	items := []models.Item{
		{ClassName: "KLWE_LaserRepeater_S3", Name: "Panther Repeater", Type: "WeaponGun.Gun", Size: 3},
		{ClassName: "BEHR_TractorBeam_S3", Name: "Tractor Beam", Type: "WeaponGun.Gun", Size: 3},
		{ClassName: "GRIN_Salvage_S3", Name: "Cambio SRT", Type: "WeaponGun.Gun", Size: 3},
		{ClassName: "MISS_S3", Name: "Arrester III", Type: "Missile.Missile", Size: 3},
	}
	port := models.Port{Types: []string{"WeaponGun"}, MinSize: 1, MaxSize: 3}

	got := CompatibleItems(items, port)

	if len(got) != 1 || got[0].ClassName != "KLWE_LaserRepeater_S3" {
		t.Errorf("gun port should only take combat guns, got %+v", got)
	}
}

func TestCompatibleItemsMissilePort(t *testing.T) {
	items := []models.Item{
		{ClassName: "MISS_S3", Name: "Arrester III", Type: "Missile.Missile", Size: 3},
		{ClassName: "KLWE_LaserRepeater_S3", Name: "Panther Repeater", Type: "WeaponGun.Gun", Size: 3},
	}
	port := models.Port{Types: []string{"Missile.Missile"}, MinSize: 3, MaxSize: 3}

	got := CompatibleItems(items, port)

	if len(got) != 1 || got[0].ClassName != "MISS_S3" {
		t.Errorf("missile port matches: %+v", got)
	}
}

func TestCompatibleItemsRocketPortsMatchNothing(t *testing.T) {
	items := []models.Item{
		{ClassName: "KLWE_LaserRepeater_S3", Type: "WeaponGun.Gun", Size: 3},
		{ClassName: "MISS_S3", Type: "Missile.Missile", Size: 3},
	}
	port := models.Port{Types: []string{"WeaponGun.Rocket"}, MinSize: 0, MaxSize: 10}

	if got := CompatibleItems(items, port); len(got) != 0 {
		t.Errorf("rocket pods are not player-editable, got %+v", got)
	}
}

func TestCompatibleItemsComponentCategories(t *testing.T) {
	items := []models.Item{
		{ClassName: "POWR_S2", Type: "PowerPlant.Power", Size: 2},
		{ClassName: "COOL_S2", Type: "Cooler", Size: 2},
		{ClassName: "QDRV_S2", Type: "QuantumDrive", Size: 2},
	}

	cases := []struct {
		portType string
		want     string
	}{
		{"PowerPlant.Power", "POWR_S2"},
		{"Cooler", "COOL_S2"},
		{"QuantumDrive", "QDRV_S2"},
	}
	for _, tt := range cases {
		port := models.Port{Types: []string{tt.portType}, MinSize: 0, MaxSize: 10}
		got := CompatibleItems(items, port)
		if len(got) != 1 || got[0].ClassName != tt.want {
			t.Errorf("port type %q matched %+v, want only %s", tt.portType, got, tt.want)
		}
	}
}

func TestCompatibleItemsTurretPortTakesGuns(t *testing.T) {
	items := []models.Item{
		{ClassName: "KLWE_LaserRepeater_S4", Type: "WeaponGun.Gun", Size: 4},
	}
	port := models.Port{Types: []string{"Turret"}, MinSize: 4, MaxSize: 4, Turret: true}

	got := CompatibleItems(items, port)
	if len(got) != 1 {
		t.Errorf("turret gun slot should accept ship guns, got %+v", got)
	}
}

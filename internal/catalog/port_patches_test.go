package catalog

import (
	"strings"
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

func TestApplyPortPatchesPassthrough(t *testing.T) {
	ports := []models.Port{{Name: "hardpoint_weapon"}}
	got := ApplyPortPatches("AEGS_Gladius", ports)
	if len(got) != 1 || got[0].Name != "hardpoint_weapon" {
		t.Errorf("unpatched ship modified: %+v", got)
	}
}

func TestApplyPortPatchesLightningShields(t *testing.T) {
	ports := []models.Port{
		{Name: "hardpoint_weapon_nose", Types: []string{"WeaponGun"}},
		{Name: "hardpoint_shield_generator_wrong", Types: []string{"Shield.ShieldGenerator"}},
	}

	got := ApplyPortPatches("ANVL_Lightning_F8", ports)

	shields := 0
	for _, p := range got {
		if strings.Contains(strings.ToLower(p.Name), "shield") {
			shields++
			if p.InstalledItem == nil || p.InstalledItem.Name != "Sukoran" {
				t.Errorf("F8 shield slot should carry a Sukoran, got %+v", p.InstalledItem)
			}
			if p.MinSize != 2 || p.MaxSize != 2 {
				t.Errorf("F8 shield slot sizes [%v, %v], want [2, 2]", p.MinSize, p.MaxSize)
			}
		}
	}
	if shields != 2 {
		t.Errorf("expected 2 replacement shield slots, got %d", shields)
	}

	found := false
	for _, p := range got {
		if p.Name == "hardpoint_weapon_nose" {
			found = true
		}
	}
	if !found {
		t.Error("non-shield port dropped by F8 patch")
	}
}

func TestApplyPortPatchesPolarisWorksOffline(t *testing.T) {
	// The Polaris has no upstream document; the patch must produce the full
	// loadout even from an empty extraction.
	got := ApplyPortPatches("RSI_Polaris", nil)

	torpedoes := 0
	turretGuns := 0
	for _, p := range got {
		if strings.HasPrefix(p.Name, "torpedo_") {
			torpedoes++
			if p.MinSize != 10 || p.MaxSize != 10 {
				t.Errorf("torpedo tube %q sizes [%v, %v], want [10, 10]", p.Name, p.MinSize, p.MaxSize)
			}
		}
		if p.Turret {
			turretGuns++
		}
	}
	if torpedoes != 24 {
		t.Errorf("Polaris torpedo tubes = %d, want 24", torpedoes)
	}
	if turretGuns != 14 {
		t.Errorf("Polaris turret gun slots = %d, want 14", turretGuns)
	}
}

func TestApplyPortPatchesCarrackTurrets(t *testing.T) {
	ports := []models.Port{
		{Name: "hardpoint_radar_large"},
		{Name: "hardpoint_surveyor"},
		{Name: "hardpoint_turret_upper_front", Turret: true, MinSize: 5, MaxSize: 5},
		{Name: "hardpoint_turret_upper_rear", Turret: true},
		{Name: "hardpoint_turret_side_left", Turret: true},
		{Name: "hardpoint_quantum_drive", Types: []string{"QuantumDrive"}},
	}

	got := ApplyPortPatches("ANVL_Carrack", ports)

	for _, p := range got {
		name := strings.ToLower(p.Name)
		if strings.Contains(name, "radar") || strings.Contains(name, "surveyor") {
			t.Errorf("internal slot %q survived Carrack patch", p.Name)
		}
	}

	var displays []string
	for _, p := range got {
		if p.Turret {
			displays = append(displays, p.DisplayName)
			if p.MinSize != 4 || p.MaxSize != 4 {
				t.Errorf("turret %q not forced to S4: [%v, %v]", p.Name, p.MinSize, p.MaxSize)
			}
			if p.InstalledItem == nil {
				t.Errorf("turret %q has no default gun", p.Name)
			}
		}
	}

	want := []string{"Manned Turret S4 (1)", "Manned Turret S4 (2)", "Remote Turret S4 (1)"}
	if len(displays) != len(want) {
		t.Fatalf("turret count = %d, want %d", len(displays), len(want))
	}
	for i := range want {
		if displays[i] != want[i] {
			t.Errorf("turret %d display = %q, want %q", i, displays[i], want[i])
		}
	}
}

func TestApplyPortPatchesCorsairKeepsComponents(t *testing.T) {
	ports := []models.Port{
		// Badly extracted weapon port shadowed by the hand-described list.
		{Name: "hardpoint_cheek_weapon_left > gimbal", Types: []string{"WeaponGun"}},
		{Name: "hardpoint_shield_generator", Types: []string{"Shield.ShieldGenerator"}},
	}

	got := ApplyPortPatches("DRAK_Corsair", ports)

	cheekCount := 0
	shieldKept := false
	for _, p := range got {
		if p.Name == "hardpoint_cheek_weapon_left" {
			cheekCount++
		}
		if p.Name == "hardpoint_cheek_weapon_left > gimbal" {
			t.Error("shadowed extraction survived the Corsair patch")
		}
		if p.Name == "hardpoint_shield_generator" {
			shieldKept = true
		}
	}
	if cheekCount != 1 {
		t.Errorf("hand-described cheek port count = %d, want 1", cheekCount)
	}
	if !shieldKept {
		t.Error("extracted component port dropped by Corsair patch")
	}
}

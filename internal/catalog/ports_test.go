package catalog

import (
	"testing"

	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

func fptr(v float64) *float64 { return &v }

func TestExtractPortsSkipsInternalSlots(t *testing.T) {
	doc := scunpacked.PortDoc{
		"hardpoints": {
			{Name: "hardpoint_radar", Flags: []string{"invisible"}},
			{Name: "hardpoint_controller", Uneditable: true},
			{Name: "hardpoint_fuel_tank_left"},
			{Name: "hardpoint_thruster_main"},
			{Name: "hardpoint_shield_generator", Types: []string{"Shield.ShieldGenerator"}, Size: fptr(2)},
		},
	}

	ports := ExtractPorts(doc)

	if len(ports) != 1 {
		t.Fatalf("expected 1 port, got %d: %+v", len(ports), ports)
	}
	if ports[0].Name != "hardpoint_shield_generator" {
		t.Errorf("wrong survivor: %q", ports[0].Name)
	}
}

func TestExtractPortsSizeDefaults(t *testing.T) {
	doc := scunpacked.PortDoc{
		"hardpoints": {
			{Name: "hardpoint_mystery", Types: []string{"WeaponGun"}},
			{Name: "hardpoint_sized", Types: []string{"WeaponGun"}, MinSize: fptr(0), MaxSize: fptr(3)},
			{Name: "hardpoint_single_size", Types: []string{"WeaponGun"}, Size: fptr(4)},
		},
	}

	ports := ExtractPorts(doc)
	byName := map[string]sizeRange{}
	for _, p := range ports {
		byName[p.Name] = sizeRange{p.MinSize, p.MaxSize}
	}

	// Absent bounds default to the permissive [0, 10] range.
	if got := byName["hardpoint_mystery"]; got.min != 0 || got.max != 10 {
		t.Errorf("missing sizes: got [%v, %v], want [0, 10]", got.min, got.max)
	}
	// An explicit zero MinSize is a value, not an absence.
	if got := byName["hardpoint_sized"]; got.min != 0 || got.max != 3 {
		t.Errorf("explicit sizes: got [%v, %v], want [0, 3]", got.min, got.max)
	}
	// A lone Size fills both bounds.
	if got := byName["hardpoint_single_size"]; got.min != 4 || got.max != 4 {
		t.Errorf("single size: got [%v, %v], want [4, 4]", got.min, got.max)
	}
}

type sizeRange struct{ min, max float64 }

func TestExtractPortsPromotesTurretGuns(t *testing.T) {
	doc := scunpacked.PortDoc{
		"turrets": {
			{
				Name:  "hardpoint_turret",
				Flags: []string{"uneditable"},
				InstalledItem: &scunpacked.RawPortItem{
					ClassName: "turret_base",
					Type:      "Turret.GunTurret",
					Ports: []scunpacked.RawPort{
						{
							Name:  "hardpoint_gun_left",
							Types: []string{"WeaponGun.Gun"},
							InstalledItem: &scunpacked.RawPortItem{
								ClassName: "KLWE_LaserRepeater_S3",
								Type:      "WeaponGun.Gun",
								Size:      fptr(3),
							},
						},
						{
							Name:  "hardpoint_gun_right",
							Types: []string{"WeaponGun.Gun"},
							InstalledItem: &scunpacked.RawPortItem{
								ClassName: "KLWE_LaserRepeater_S3",
								Type:      "WeaponGun.Gun",
								Size:      fptr(3),
							},
						},
					},
				},
			},
		},
	}

	ports := ExtractPorts(doc)

	if len(ports) != 2 {
		t.Fatalf("expected 2 promoted gun ports, got %d: %+v", len(ports), ports)
	}

	displays := map[string]bool{}
	for _, p := range ports {
		displays[p.DisplayName] = true
		if !p.Turret {
			t.Errorf("promoted gun %q not flagged as turret", p.Name)
		}
		if p.TurretBaseName != "Turret" {
			t.Errorf("turret base name = %q, want %q", p.TurretBaseName, "Turret")
		}
		if p.MinSize != 3 || p.MaxSize != 3 {
			t.Errorf("gun %q sizes [%v, %v], want [3, 3]", p.Name, p.MinSize, p.MaxSize)
		}
		if p.InstalledItem == nil || p.InstalledItem.Name != "Panther Repeater" {
			t.Errorf("gun %q installed item = %+v", p.Name, p.InstalledItem)
		}
	}

	// Sibling guns out of the same mount get side disambiguators.
	if !displays["Turret (L)"] || !displays["Turret (R)"] {
		t.Errorf("expected Turret (L) and Turret (R), got %v", displays)
	}

	// Unique names keep the mount ancestry.
	found := false
	for _, p := range ports {
		if p.Name == "hardpoint_turret > hardpoint_gun_left" {
			found = true
		}
	}
	if !found {
		t.Error("promoted port lost its mount-qualified name")
	}
}

func TestExtractPortsDirectionalMountSiblings(t *testing.T) {
	// The mount itself is named "left"; its guns are not. The side token in
	// the mount name must not leak into every sibling's suffix.
	doc := scunpacked.PortDoc{
		"turrets": {
			{
				Name: "hardpoint_turret_left",
				InstalledItem: &scunpacked.RawPortItem{
					ClassName: "turret_base",
					Type:      "Turret.GunTurret",
					Ports: []scunpacked.RawPort{
						{Name: "hardpoint_gun_01", Types: []string{"WeaponGun.Gun"}},
						{Name: "hardpoint_gun_02", Types: []string{"WeaponGun.Gun"}},
					},
				},
			},
		},
	}

	ports := ExtractPorts(doc)
	if len(ports) != 2 {
		t.Fatalf("expected 2 promoted gun ports, got %d: %+v", len(ports), ports)
	}

	displays := map[string]bool{}
	for _, p := range ports {
		displays[p.DisplayName] = true
	}
	if !displays["Turret Left (1)"] || !displays["Turret Left (2)"] {
		t.Errorf("expected numbered suffixes, got %v", displays)
	}
}

func TestExtractPortsStockItemName(t *testing.T) {
	doc := scunpacked.PortDoc{
		"components": {
			{
				Name:  "hardpoint_shield_generator",
				Types: []string{"Shield.ShieldGenerator"},
				InstalledItem: &scunpacked.RawPortItem{
					ClassName: "SHLD_BEHR_S03_5CA",
					Name:      "@item_shield_placeholder",
					Type:      "Shield.ShieldGenerator",
					Size:      fptr(3),
				},
			},
		},
	}

	ports := ExtractPorts(doc)
	if len(ports) != 1 {
		t.Fatalf("expected 1 port, got %d", len(ports))
	}

	item := ports[0].InstalledItem
	if item == nil {
		t.Fatal("installed item missing")
	}
	if item.Name != "Akura" {
		t.Errorf("installed item name = %q, want %q", item.Name, "Akura")
	}
	if item.ClassName != "SHLD_BEHR_S03_5CA" || item.Size != 3 {
		t.Errorf("installed item record wrong: %+v", item)
	}
}

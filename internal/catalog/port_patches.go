package catalog

import (
	"fmt"
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

// ApplyPortPatches overrides or augments extracted ports for ships whose
// upstream hardpoint documents are wrong or missing. Runs after extraction,
// and also on an empty list when the fetch itself failed, so the manually
// described ships stay usable offline.
func ApplyPortPatches(className string, ports []models.Port) []models.Port {
	switch {
	case className == "ANVL_Lightning_F8":
		return patchLightningF8(ports)
	case className == "RSI_Meteor":
		return meteorPorts()
	case className == "RSI_Perseus":
		return perseusPorts()
	case className == "ANVL_Pisces_C8R":
		return piscesC8RPorts()
	case className == "DRAK_Corsair":
		return patchCorsair(ports)
	case className == "RSI_Polaris":
		return polarisPorts()
	case strings.HasPrefix(className, "ANVL_Carrack"):
		return patchCarrack(ports)
	}
	return ports
}

// The F8C's upstream document reports the wrong shield fit; replace the
// shield slots, keep everything else.
func patchLightningF8(ports []models.Port) []models.Port {
	patched := make([]models.Port, 0, len(ports)+2)
	for _, p := range ports {
		if strings.Contains(strings.ToLower(p.Name), "shield") {
			continue
		}
		patched = append(patched, p)
	}
	sukoran := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "Sukoran", ClassName: "SHLD_BANU_S02_Sukoran", Size: 2}
	}
	patched = append(patched,
		models.Port{Name: "shield_generator_1", MinSize: 2, MaxSize: 2, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: sukoran()},
		models.Port{Name: "shield_generator_2", MinSize: 2, MaxSize: 2, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: sukoran()},
	)
	return patched
}

// The Meteor has no upstream document at all; its full loadout is hand
// described.
func meteorPorts() []models.Port {
	m7a := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "M7A Laser Cannon", ClassName: "BEHR_LaserCannon_S5", Size: 5}
	}
	panther := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "Panther Repeater", ClassName: "KLWE_LaserRepeater_S3", Size: 3}
	}
	ports := []models.Port{
		{Name: "weapon_hardpoint_1", DisplayName: "Main Forward S5", MinSize: 1, MaxSize: 5, Types: []string{"WeaponGun"}, InstalledItem: m7a()},
		{Name: "weapon_hardpoint_2", DisplayName: "Main Forward S5", MinSize: 1, MaxSize: 5, Types: []string{"WeaponGun"}, InstalledItem: m7a()},
		{Name: "weapon_hardpoint_3", DisplayName: "Wing S3", MinSize: 1, MaxSize: 3, Types: []string{"WeaponGun"}, InstalledItem: panther()},
		{Name: "weapon_hardpoint_4", DisplayName: "Wing S3", MinSize: 1, MaxSize: 3, Types: []string{"WeaponGun"}, InstalledItem: panther()},
		{Name: "weapon_hardpoint_5", DisplayName: "Wing S3", MinSize: 1, MaxSize: 3, Types: []string{"WeaponGun"}, InstalledItem: panther()},
		{Name: "weapon_hardpoint_6", DisplayName: "Wing S3", MinSize: 1, MaxSize: 3, Types: []string{"WeaponGun"}, InstalledItem: panther()},
		{Name: "missile_rack_1", DisplayName: "Missile Rack S4", MinSize: 1, MaxSize: 4, Types: []string{"MissileLauncher"}},
		{Name: "missile_rack_2", DisplayName: "Missile Rack S4", MinSize: 1, MaxSize: 4, Types: []string{"MissileLauncher"}},
		{Name: "missile_rack_3", DisplayName: "Missile Rack S4", MinSize: 1, MaxSize: 4, Types: []string{"MissileLauncher"}},
		{Name: "missile_rack_4", DisplayName: "Missile Rack S4", MinSize: 1, MaxSize: 4, Types: []string{"MissileLauncher"}},
		{Name: "missile_hardpoint_1", DisplayName: "Launcher S3", MinSize: 1, MaxSize: 3, Types: []string{"MissileLauncher"}},
		{Name: "missile_hardpoint_2", DisplayName: "Launcher S3", MinSize: 1, MaxSize: 3, Types: []string{"MissileLauncher"}},
		{Name: "shield_generator_1", MinSize: 2, MaxSize: 2, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: &models.InstalledItem{Name: "FR-76", ClassName: "SHLD_GODI_S02_FR76", Size: 2}},
		{Name: "power_plant_1", MinSize: 2, MaxSize: 2, Types: []string{"PowerPlant.PowerPlant"}, InstalledItem: &models.InstalledItem{Name: "JS-400", ClassName: "POWR_AMRS_S02_JS400", Size: 2}},
		{Name: "cooler_1", MinSize: 2, MaxSize: 2, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "CoolCore", ClassName: "COOL_JUST_S02_CoolCore", Size: 2}},
		{Name: "cooler_2", MinSize: 2, MaxSize: 2, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "CoolCore", ClassName: "COOL_JUST_S02_CoolCore", Size: 2}},
		{Name: "quantum_drive_1", MinSize: 2, MaxSize: 2, Types: []string{"QuantumDrive.QuantumDrive"}, InstalledItem: &models.InstalledItem{Name: "Crossfield", ClassName: "QDRV_WETK_S02_Crossfield", Size: 2}},
	}
	return ports
}

func perseusPorts() []models.Port {
	s8 := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "S8 Ballistic Cannon", ClassName: "BEHR_BallisticCannon_S8", Size: 8}
	}
	panther := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "Panther Repeater", ClassName: "KLWE_LaserRepeater_S3", Size: 3}
	}
	mannedTurret := func(name, gun, base string) models.Port {
		return models.Port{Name: name, DisplayName: gun, TurretBaseName: base, MinSize: 8, MaxSize: 8, Types: []string{"Turret"}, Turret: true, InstalledItem: s8()}
	}
	remoteTurret := func(name, gun, base string) models.Port {
		return models.Port{Name: name, DisplayName: gun, TurretBaseName: base, MinSize: 3, MaxSize: 3, Types: []string{"Turret"}, Turret: true, InstalledItem: panther()}
	}

	ports := []models.Port{
		mannedTurret("manned_turret_1_1", "Gun 1", "Dorsal S8 Turret"),
		mannedTurret("manned_turret_1_2", "Gun 2", "Dorsal S8 Turret"),
		mannedTurret("manned_turret_2_1", "Gun 1", "Ventral S8 Turret"),
		mannedTurret("manned_turret_2_2", "Gun 2", "Ventral S8 Turret"),
		remoteTurret("remote_turret_1_1", "Gun 1", "Remote S3 Turret - Top L"),
		remoteTurret("remote_turret_1_2", "Gun 2", "Remote S3 Turret - Top L"),
		remoteTurret("remote_turret_2_1", "Gun 1", "Remote S3 Turret - Top R"),
		remoteTurret("remote_turret_2_2", "Gun 2", "Remote S3 Turret - Top R"),
		remoteTurret("remote_turret_3_1", "Gun 1", "Remote S3 Turret - Btm L"),
		remoteTurret("remote_turret_3_2", "Gun 2", "Remote S3 Turret - Btm L"),
		remoteTurret("remote_turret_4_1", "Gun 1", "Remote S3 Turret - Btm R"),
		remoteTurret("remote_turret_4_2", "Gun 2", "Remote S3 Turret - Btm R"),
	}
	for i := 1; i <= 20; i++ {
		ports = append(ports, models.Port{
			Name:        fmt.Sprintf("torpedo_%d", i),
			DisplayName: fmt.Sprintf("S5 Torpedo %d", i),
			MinSize:     5,
			MaxSize:     5,
			Types:       []string{"MissileLauncher"},
			InstalledItem: &models.InstalledItem{
				Name: "Stalker V", ClassName: "MISS_BEHR_S05_Stalker_V", Size: 5,
			},
		})
	}
	ports = append(ports,
		models.Port{Name: "shield_generator_1", MinSize: 3, MaxSize: 3, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: &models.InstalledItem{Name: "FR-86", ClassName: "SHLD_GODI_S03_FR86", Size: 3}},
		models.Port{Name: "shield_generator_2", MinSize: 3, MaxSize: 3, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: &models.InstalledItem{Name: "FR-86", ClassName: "SHLD_GODI_S03_FR86", Size: 3}},
		models.Port{Name: "power_plant_1", MinSize: 3, MaxSize: 3, Types: []string{"PowerPlant.PowerPlant"}, InstalledItem: &models.InstalledItem{Name: "JS-500", ClassName: "POWR_AMRS_S03_JS500", Size: 3}},
		models.Port{Name: "power_plant_2", MinSize: 3, MaxSize: 3, Types: []string{"PowerPlant.PowerPlant"}, InstalledItem: &models.InstalledItem{Name: "JS-500", ClassName: "POWR_AMRS_S03_JS500", Size: 3}},
		models.Port{Name: "cooler_1", MinSize: 3, MaxSize: 3, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "ThermalCore", ClassName: "COOL_JUST_S03_ThermalCore", Size: 3}},
		models.Port{Name: "cooler_2", MinSize: 3, MaxSize: 3, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "ThermalCore", ClassName: "COOL_JUST_S03_ThermalCore", Size: 3}},
		models.Port{Name: "quantum_drive_1", MinSize: 3, MaxSize: 3, Types: []string{"QuantumDrive.QuantumDrive"}, InstalledItem: &models.InstalledItem{Name: "Pontiac", ClassName: "QDRV_WETK_S03_Pontiac", Size: 3}},
	)
	return ports
}

func piscesC8RPorts() []models.Port {
	m3a := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "M3A Laser Cannon", ClassName: "BEHR_LaserCannon_S1", Size: 1}
	}
	taskforce := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "Taskforce I", ClassName: "MISS_BEHR_S01_Taskforce_I", Size: 1}
	}
	return []models.Port{
		{Name: "weapon_hardpoint_1", DisplayName: "Weapon S1", MinSize: 1, MaxSize: 1, Types: []string{"WeaponGun"}, InstalledItem: m3a()},
		{Name: "weapon_hardpoint_2", DisplayName: "Weapon S1", MinSize: 1, MaxSize: 1, Types: []string{"WeaponGun"}, InstalledItem: m3a()},
		{Name: "missile_rack_1", DisplayName: "Missile Rack S1", MinSize: 1, MaxSize: 1, Types: []string{"MissileLauncher"}, InstalledItem: taskforce()},
		{Name: "missile_rack_2", DisplayName: "Missile Rack S1", MinSize: 1, MaxSize: 1, Types: []string{"MissileLauncher"}, InstalledItem: taskforce()},
		{Name: "shield_generator_1", MinSize: 1, MaxSize: 1, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: &models.InstalledItem{Name: "FR-66", ClassName: "SHLD_GODI_S01_FR66", Size: 1}},
		{Name: "power_plant_1", MinSize: 1, MaxSize: 1, Types: []string{"PowerPlant.PowerPlant"}, InstalledItem: &models.InstalledItem{Name: "JS-300", ClassName: "POWR_AMRS_S01_JS300", Size: 1}},
		{Name: "cooler_1", MinSize: 1, MaxSize: 1, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "Bracer", ClassName: "COOL_AEGS_S01_Bracer", Size: 1}},
		{Name: "cooler_2", MinSize: 1, MaxSize: 1, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "Bracer", ClassName: "COOL_AEGS_S01_Bracer", Size: 1}},
		{Name: "quantum_drive_1", MinSize: 1, MaxSize: 1, Types: []string{"QuantumDrive.QuantumDrive"}, InstalledItem: &models.InstalledItem{Name: "Atlas", ClassName: "QDRV_RSI_S01_Atlas", Size: 1}},
	}
}

// The Corsair's weapon hardpoints extract badly (nested gimbals plus manned
// turrets); the weapon list is hand described and the extracted non-weapon
// ports are kept.
func patchCorsair(ports []models.Port) []models.Port {
	m6a := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "M6A Laser Cannon", ClassName: "BEHR_LaserCannon_S4", Size: 4}
	}
	m7a := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "M7A Laser Cannon", ClassName: "BEHR_LaserCannon_S5", Size: 5}
	}
	badger := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "CF-227 Badger Repeater", ClassName: "KLWE_LaserRepeater_S2", Size: 2}
	}
	weaponPorts := []models.Port{
		{Name: "hardpoint_cheek_weapon_left", DisplayName: "Front Cheek (L) S4", MinSize: 1, MaxSize: 4, Types: []string{"WeaponGun"}, InstalledItem: m6a()},
		{Name: "hardpoint_cheek_weapon_right", DisplayName: "Front Cheek (R) S4", MinSize: 1, MaxSize: 4, Types: []string{"WeaponGun"}, InstalledItem: m6a()},
		{Name: "hardpoint_chin_weapon_left", DisplayName: "Front Chin (L) S4", MinSize: 1, MaxSize: 4, Types: []string{"WeaponGun"}, InstalledItem: m6a()},
		{Name: "hardpoint_chin_weapon_right", DisplayName: "Front Chin (R) S4", MinSize: 1, MaxSize: 4, Types: []string{"WeaponGun"}, InstalledItem: m6a()},
		{Name: "hardpoint_weapon_wing_top", DisplayName: "Wing S5 (Top)", MinSize: 1, MaxSize: 5, Types: []string{"WeaponGun"}, InstalledItem: m7a()},
		{Name: "hardpoint_weapon_wing_bottom", DisplayName: "Wing S5 (Bottom)", MinSize: 1, MaxSize: 5, Types: []string{"WeaponGun"}, InstalledItem: m7a()},
		{Name: "hardpoint_manned_turret_left > hardpoint_weapon_left", DisplayName: "Gun 1", TurretBaseName: "Left Turret", MinSize: 1, MaxSize: 2, Types: []string{"WeaponGun"}, Turret: true, InstalledItem: badger()},
		{Name: "hardpoint_manned_turret_left > hardpoint_weapon_right", DisplayName: "Gun 2", TurretBaseName: "Left Turret", MinSize: 1, MaxSize: 2, Types: []string{"WeaponGun"}, Turret: true, InstalledItem: badger()},
		{Name: "hardpoint_manned_turret_right > hardpoint_weapon_left", DisplayName: "Gun 1", TurretBaseName: "Right Turret", MinSize: 1, MaxSize: 2, Types: []string{"WeaponGun"}, Turret: true, InstalledItem: badger()},
		{Name: "hardpoint_manned_turret_right > hardpoint_weapon_right", DisplayName: "Gun 2", TurretBaseName: "Right Turret", MinSize: 1, MaxSize: 2, Types: []string{"WeaponGun"}, Turret: true, InstalledItem: badger()},
		{Name: "hardpoint_tail_turret > hardpoint_weapon_left", DisplayName: "Gun 1", TurretBaseName: "Rear Turret", MinSize: 1, MaxSize: 2, Types: []string{"WeaponGun"}, Turret: true, InstalledItem: badger()},
		{Name: "hardpoint_tail_turret > hardpoint_weapon_right", DisplayName: "Gun 2", TurretBaseName: "Rear Turret", MinSize: 1, MaxSize: 2, Types: []string{"WeaponGun"}, Turret: true, InstalledItem: badger()},
	}

	out := make([]models.Port, 0, len(weaponPorts)+len(ports))
	out = append(out, weaponPorts...)
	for _, p := range ports {
		replaced := false
		for _, wp := range weaponPorts {
			if strings.HasPrefix(p.Name, wp.Name) {
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, p)
		}
	}
	return out
}

func polarisPorts() []models.Port {
	m7a := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "M7A Laser Cannon", ClassName: "BEHR_LaserCannon_S5", Size: 5}
	}
	m6a := func() *models.InstalledItem {
		return &models.InstalledItem{Name: "M6A Laser Cannon", ClassName: "BEHR_LaserCannon_S4", Size: 4}
	}
	turretS5 := func(name, gun, base string) models.Port {
		return models.Port{Name: name, DisplayName: gun, TurretBaseName: base, MinSize: 5, MaxSize: 5, Types: []string{"Turret"}, Turret: true, InstalledItem: m7a()}
	}
	turretS4 := func(name, gun, base string) models.Port {
		return models.Port{Name: name, DisplayName: gun, TurretBaseName: base, MinSize: 4, MaxSize: 4, Types: []string{"Turret"}, Turret: true, InstalledItem: m6a()}
	}

	ports := []models.Port{
		turretS5("remote_turret_nose_1", "Gun 1", "Remote Nose Turret"),
		turretS5("remote_turret_nose_2", "Gun 2", "Remote Nose Turret"),
		turretS5("manned_turret_port_1", "Gun 1", "Manned Port Turret"),
		turretS5("manned_turret_port_2", "Gun 2", "Manned Port Turret"),
		turretS5("manned_turret_starboard_1", "Gun 1", "Manned Starboard Turret"),
		turretS5("manned_turret_starboard_2", "Gun 2", "Manned Starboard Turret"),
		turretS4("remote_turret_top_fwd_1", "Gun 1", "Remote Top Fwd Turret"),
		turretS4("remote_turret_top_fwd_2", "Gun 2", "Remote Top Fwd Turret"),
		turretS4("remote_turret_top_aft_1", "Gun 1", "Remote Top Aft Turret"),
		turretS4("remote_turret_top_aft_2", "Gun 2", "Remote Top Aft Turret"),
		turretS4("remote_turret_ventral_1", "Gun 1", "Remote Ventral Turret"),
		turretS4("remote_turret_ventral_2", "Gun 2", "Remote Ventral Turret"),
		turretS4("remote_turret_rear_1", "Gun 1", "Remote Rear Turret"),
		turretS4("remote_turret_rear_2", "Gun 2", "Remote Rear Turret"),
	}
	for i := 1; i <= 24; i++ {
		ports = append(ports, models.Port{
			Name:        fmt.Sprintf("torpedo_%d", i),
			DisplayName: fmt.Sprintf("S10 Torpedo %d", i),
			MinSize:     10,
			MaxSize:     10,
			Types:       []string{"MissileLauncher"},
			InstalledItem: &models.InstalledItem{
				Name: "Size 10 Torpedo", ClassName: "MISS_TORP_S10", Size: 10,
			},
		})
	}
	ports = append(ports,
		models.Port{Name: "shield_generator_1", MinSize: 4, MaxSize: 4, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: &models.InstalledItem{Name: "Glacis", ClassName: "SHLD_RSI_S04_POLARIS", Size: 4}},
		models.Port{Name: "shield_generator_2", MinSize: 4, MaxSize: 4, Types: []string{"Shield.ShieldGenerator"}, InstalledItem: &models.InstalledItem{Name: "Glacis", ClassName: "SHLD_RSI_S04_POLARIS", Size: 4}},
		models.Port{Name: "power_plant_1", MinSize: 4, MaxSize: 4, Types: []string{"PowerPlant.PowerPlant"}, InstalledItem: &models.InstalledItem{Name: "Stellate", ClassName: "POWR_RSI_S04_POLARIS", Size: 4}},
		models.Port{Name: "power_plant_2", MinSize: 4, MaxSize: 4, Types: []string{"PowerPlant.PowerPlant"}, InstalledItem: &models.InstalledItem{Name: "Stellate", ClassName: "POWR_RSI_S04_POLARIS", Size: 4}},
		models.Port{Name: "cooler_1", MinSize: 4, MaxSize: 4, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "Serac", ClassName: "COOL_RSI_S04_POLARIS", Size: 4}},
		models.Port{Name: "cooler_2", MinSize: 4, MaxSize: 4, Types: []string{"Cooler.Cooler"}, InstalledItem: &models.InstalledItem{Name: "Serac", ClassName: "COOL_RSI_S04_POLARIS", Size: 4}},
		models.Port{Name: "quantum_drive_1", MinSize: 4, MaxSize: 4, Types: []string{"QuantumDrive.QuantumDrive"}, InstalledItem: &models.InstalledItem{Name: "Siren", ClassName: "QDRV_RSI_S04_POLARIS", Size: 4}},
	)
	return ports
}

// The Carrack's radar and surveyor slots are not user equipment, and its
// four turrets are forced to uniform S4 weapon ports so guns can be swapped.
func patchCarrack(ports []models.Port) []models.Port {
	out := make([]models.Port, 0, len(ports))
	turretIndex := 0
	for _, p := range ports {
		nameLower := strings.ToLower(p.Name)
		if strings.Contains(nameLower, "radar") || strings.Contains(nameLower, "surveyor") {
			continue
		}
		if strings.Contains(nameLower, "turret") || p.Turret {
			turretIndex++
			if turretIndex <= 2 {
				p.DisplayName = fmt.Sprintf("Manned Turret S4 (%d)", turretIndex)
			} else {
				p.DisplayName = fmt.Sprintf("Remote Turret S4 (%d)", turretIndex-2)
			}
			p.MinSize = 4
			p.MaxSize = 4
			p.Types = []string{"WeaponGun"}
			if p.InstalledItem != nil {
				item := *p.InstalledItem
				item.Size = 4
				p.InstalledItem = &item
			} else {
				p.InstalledItem = &models.InstalledItem{Name: "Rhino Repeater", ClassName: "KLWE_LaserRepeater_S4", Size: 4}
			}
		}
		out = append(out, p)
	}
	return out
}

package catalog

import "testing"

func TestCleanItemName(t *testing.T) {
	tests := []struct {
		desc      string
		name      string
		className string
		want      string
	}{
		{
			desc: "lore name passes through untouched",
			name: "Badger Repeater",
			want: "Badger Repeater",
		},
		{
			desc:      "shield resolved from class identifier",
			className: "SHLD_BEHR_S03_5CA",
			want:      "Akura",
		},
		{
			desc:      "power plant resolved from class identifier",
			className: "POWR_AEGS_S03_FULGUR",
			want:      "Fulgur",
		},
		{
			desc:      "localization key with mapped class",
			name:      "@item_NameKLWE_LaserRepeater_S3",
			className: "KLWE_LaserRepeater_S3",
			want:      "Panther Repeater",
		},
		{
			desc: "quoted name keeps weapon category word",
			name: "'Sledge II' Mass Driver Cannon",
			want: "Sledge II Mass Driver Cannon",
		},
		{
			desc: "quoted name drops non-weapon suffix",
			name: "'Glaive' Blade",
			want: "Glaive",
		},
		{
			desc: "nothing to work with",
			want: "Unknown Item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := CleanItemName(tt.name, tt.className)
			if got != tt.want {
				t.Errorf("CleanItemName(%q, %q) = %q, want %q", tt.name, tt.className, got, tt.want)
			}
		})
	}
}

func TestCleanItemNameIdempotent(t *testing.T) {
	// Resolved display names must survive a second pass: the merge layer can
	// feed its own output back through the cleaner.
	for _, name := range []string{"Akura", "Panther Repeater", "Sledge II Mass Driver Cannon"} {
		if got := CleanItemName(name, ""); got != name {
			t.Errorf("CleanItemName(%q, \"\") = %q, not idempotent", name, got)
		}
	}
}

func TestCleanPortName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hardpoint_weapon_left_wing", "Weapon Left Wing"},
		{"hardpoint_shield_generator_a", "Shield Generator"},
		{"hardpoint_turret_main > hardpoint_gun_01", "Gun"},
		{"hardpoint_power_plant", "Power Plant"},
		{"hardpoint_quantum_drive", "Quantum Drive"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanPortName(tt.in); got != tt.want {
			t.Errorf("CleanPortName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package scunpacked

import (
	"reflect"
	"testing"
)

func TestPortDocFlattenOrderIsStable(t *testing.T) {
	doc := PortDoc{
		"hp_e": {{Name: "hardpoint_e"}},
		"hp_a": {{Name: "hardpoint_a1"}, {Name: "hardpoint_a2"}},
		"hp_h": {{Name: "hardpoint_h"}},
		"hp_c": {{Name: "hardpoint_c"}},
		"hp_g": {{Name: "hardpoint_g"}},
		"hp_b": {{Name: "hardpoint_b"}},
		"hp_f": {{Name: "hardpoint_f"}},
		"hp_d": {{Name: "hardpoint_d"}},
	}

	want := []string{
		"hardpoint_a1", "hardpoint_a2", "hardpoint_b", "hardpoint_c",
		"hardpoint_d", "hardpoint_e", "hardpoint_f", "hardpoint_g", "hardpoint_h",
	}

	// Map iteration order varies per call; Flatten must not.
	for i := 0; i < 10; i++ {
		var got []string
		for _, p := range doc.Flatten() {
			got = append(got, p.Name)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Flatten() order = %v, want %v", got, want)
		}
	}
}

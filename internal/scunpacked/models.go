package scunpacked

import "sort"

// Raw record types for the scunpacked API. Field naming upstream is
// inconsistent between PascalCase and camelCase for the same logical field;
// encoding/json matches struct tags case-insensitively, which covers both
// variants as long as a record doesn't carry conflicting casings of the
// same field (none observed do).

// RawManufacturer is the maker sub-record on ships and items.
type RawManufacturer struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// RawShip is one entry of the v2 ships list.
type RawShip struct {
	ClassName    string           `json:"ClassName"`
	Name         string           `json:"Name"`
	Description  string           `json:"Description"`
	Career       string           `json:"Career"`
	Role         string           `json:"Role"`
	Size         int              `json:"Size"`
	Cargo        float64          `json:"Cargo"`
	Mass         float64          `json:"Mass"`
	Manufacturer *RawManufacturer `json:"Manufacturer"`
}

// RawPort is one hardpoint record of a per-ship ports document. Size fields
// are pointers: upstream omits them entirely on malformed records and the
// extractor needs to distinguish "absent" from zero.
type RawPort struct {
	PortName      string       `json:"PortName"`
	Name          string       `json:"Name"`
	DisplayName   string       `json:"DisplayName"`
	Category      string       `json:"Category"`
	Flags         []string     `json:"Flags"`
	Uneditable    bool         `json:"Uneditable"`
	Types         []string     `json:"Types"`
	MinSize       *float64     `json:"MinSize"`
	MaxSize       *float64     `json:"MaxSize"`
	Size          *float64     `json:"Size"`
	InstalledItem *RawPortItem `json:"InstalledItem"`
}

// RawPortItem is the equipment installed in a hardpoint. Mounts (turrets,
// gimbals, missile racks) recursively declare their own Ports.
type RawPortItem struct {
	ClassName string    `json:"ClassName"`
	Name      string    `json:"Name"`
	Type      string    `json:"Type"`
	Tags      []string  `json:"Tags"`
	Size      *float64  `json:"Size"`
	Ports     []RawPort `json:"Ports"`
}

// RawStdItem is the structured sub-record some item entries wrap their true
// field values in; when present and well-formed it is preferred over the
// top-level fields.
type RawStdItem struct {
	Name         string           `json:"Name"`
	Description  string           `json:"Description"`
	ClassName    string           `json:"ClassName"`
	Manufacturer *RawManufacturer `json:"Manufacturer"`
}

// RawItem is one entry of the item catalog.
type RawItem struct {
	ClassName    string           `json:"className"`
	ItemName     string           `json:"itemName"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	SubType      string           `json:"subType"`
	Size         float64          `json:"size"`
	Grade        float64          `json:"grade"`
	Manufacturer *RawManufacturer `json:"manufacturer"`
	StdItem      *RawStdItem      `json:"stdItem"`
}

// PortDoc is a per-ship hardpoint document: arrays of hardpoint records
// keyed by category label.
type PortDoc map[string][]RawPort

// Flatten collapses a port document into a single hardpoint list. Categories
// are walked in sorted key order so repeated calls over the same document
// always produce the same list.
func (d PortDoc) Flatten() []RawPort {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var all []RawPort
	for _, k := range keys {
		all = append(all, d[k]...)
	}
	return all
}

package models

import "time"

// --- Catalog Types ---

// Manufacturer is the maker of a ship or item, identified by its short
// in-game code (e.g. "RSI", "BEHR") plus a display name.
type Manufacturer struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Ship is a normalized catalog entry. Exactly one Ship exists per display
// name after normalization; duplicates from upstream collapse to the record
// with the shortest class name.
type Ship struct {
	ClassName    string       `json:"class_name"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Career       string       `json:"career,omitempty"`
	Role         string       `json:"role,omitempty"`
	Size         int          `json:"size"`
	Cargo        float64      `json:"cargo"`
	Mass         float64      `json:"mass"`
	Manufacturer Manufacturer `json:"manufacturer"`

	// Enrichment from FleetYards (populated by the image sync, not upstream)
	ImageURL      string `json:"image_url,omitempty"`
	ImageURLSmall string `json:"image_url_small,omitempty"`
}

// Item is a normalized catalog entry for an installable component or weapon.
// Exactly one Item exists per class name after normalization.
type Item struct {
	ClassName    string  `json:"class_name"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	SubType      string  `json:"sub_type,omitempty"`
	Size         float64 `json:"size"`
	Grade        float64 `json:"grade,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty"`
}

// InstalledItem is the factory-stock (or override-resolved) item shown on a
// port. Only name, class name and size are carried — the full Item record
// stays in the catalog.
type InstalledItem struct {
	Name      string  `json:"name"`
	ClassName string  `json:"class_name"`
	Size      float64 `json:"size"`
}

// Port is a hardpoint on a specific ship, recomputed from upstream data on
// every extraction. Names are unique within the ship and may be dotted
// paths ("housing > slot") for slots promoted out of turret mounts.
type Port struct {
	Name           string         `json:"name"`
	DisplayName    string         `json:"display_name,omitempty"`
	MinSize        float64        `json:"min_size"`
	MaxSize        float64        `json:"max_size"`
	Types          []string       `json:"types"`
	Turret         bool           `json:"turret,omitempty"`
	TurretBaseName string         `json:"turret_base_name,omitempty"`
	InstalledItem  *InstalledItem `json:"installed_item,omitempty"`
}

// ShipImages is a pair of store image URLs for one ship, keyed in the
// image sync by lowercase ship name.
type ShipImages struct {
	Large string `json:"large"`
	Small string `json:"small"`
}

// --- Fleet Types ---

// FleetShip is one ship the user owns. Loadout holds sparse port-name →
// item-class overrides on top of the ship's stock loadout; an empty string
// value means "explicitly unequipped".
type FleetShip struct {
	ID        string            `json:"id"`
	ShipClass string            `json:"ship_class"`
	Name      string            `json:"name"`
	Loadout   map[string]string `json:"loadout"`
	CreatedAt time.Time         `json:"created_at,omitempty"`
}

// LoadoutView is the merged per-port view for one fleet ship: the extracted
// ports with the user's overrides applied, plus the unlinked flag for fleet
// entries whose ship class no longer resolves against the catalog.
type LoadoutView struct {
	FleetShip FleetShip `json:"fleet_ship"`
	Ship      *Ship     `json:"ship,omitempty"`
	Unlinked  bool      `json:"unlinked,omitempty"`
	Ports     []Port    `json:"ports"`
}

// --- Sync & Audit ---

type SyncRecord struct {
	ID           int        `json:"id"`
	Kind         string     `json:"kind"`
	Status       string     `json:"status"`
	RecordCount  int        `json:"record_count"`
	ErrorMessage string     `json:"error_message,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

type UserLLMConfig struct {
	ID              int       `json:"id"`
	Provider        string    `json:"provider"`
	EncryptedAPIKey string    `json:"-"`
	Model           string    `json:"model,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type AIAnalysis struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	ShipCount int       `json:"ship_count"`
	Analysis  string    `json:"analysis"`
}

// --- Analysis Types ---

type FleetAnalysis struct {
	Overview         FleetOverview       `json:"overview"`
	SizeDistribution map[string]int      `json:"size_distribution"`
	RoleCategories   map[string][]string `json:"role_categories"`
	Redundancies     []RedundancyGroup   `json:"redundancies"`
}

type FleetOverview struct {
	TotalShips     int     `json:"total_ships"`
	TotalCargo     float64 `json:"total_cargo"`
	TotalMass      float64 `json:"total_mass"`
	CustomLoadouts int     `json:"custom_loadouts"`
	UnlinkedShips  int     `json:"unlinked_ships"`
}

type RedundancyGroup struct {
	Role  string   `json:"role"`
	Ships []string `json:"ships"`
}

package fleet

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

// sharedShip is the wire shape of one fleet entry in a share string. Kept
// minimal and stable so old links keep decoding.
type sharedShip struct {
	ID        string            `json:"id"`
	ShipClass string            `json:"ship_class"`
	Name      string            `json:"name,omitempty"`
	Loadout   map[string]string `json:"loadout,omitempty"`
}

// EncodeFleet renders a fleet as a URL-safe base64 string over its JSON
// representation, suitable for pasting into a link.
func EncodeFleet(fleet []models.FleetShip) (string, error) {
	shared := make([]sharedShip, len(fleet))
	for i, fs := range fleet {
		shared[i] = sharedShip{ID: fs.ID, ShipClass: fs.ShipClass, Name: fs.Name, Loadout: fs.Loadout}
	}
	data, err := json.Marshal(shared)
	if err != nil {
		return "", fmt.Errorf("encoding fleet: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// DecodeFleet reverses EncodeFleet.
func DecodeFleet(code string) ([]models.FleetShip, error) {
	data, err := base64.URLEncoding.DecodeString(code)
	if err != nil {
		return nil, fmt.Errorf("decoding share string: %w", err)
	}
	var shared []sharedShip
	if err := json.Unmarshal(data, &shared); err != nil {
		return nil, fmt.Errorf("parsing share string: %w", err)
	}

	fleet := make([]models.FleetShip, len(shared))
	for i, s := range shared {
		loadout := s.Loadout
		if loadout == nil {
			loadout = map[string]string{}
		}
		fleet[i] = models.FleetShip{ID: s.ID, ShipClass: s.ShipClass, Name: s.Name, Loadout: loadout}
	}
	return fleet, nil
}

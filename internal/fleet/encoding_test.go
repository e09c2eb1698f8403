package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

func TestEncodeDecodeFleetRoundTrip(t *testing.T) {
	fleet := []models.FleetShip{
		{
			ID:        "a1b2",
			ShipClass: "DRAK_Cutlass_Black",
			Name:      "Rustbucket",
			Loadout:   map[string]string{"weapon_1": "BEHR_LaserCannon_S3", "shield_1": ""},
		},
		{
			ID:        "c3d4",
			ShipClass: "RSI_Polaris",
			Loadout:   map[string]string{},
		},
	}

	code, err := EncodeFleet(fleet)
	require.NoError(t, err)
	assert.NotContains(t, code, "+", "share code must be URL safe")
	assert.NotContains(t, code, "/", "share code must be URL safe")

	decoded, err := DecodeFleet(code)
	require.NoError(t, err)
	require.Len(t, decoded, 2)

	assert.Equal(t, "DRAK_Cutlass_Black", decoded[0].ShipClass)
	assert.Equal(t, "Rustbucket", decoded[0].Name)
	assert.Equal(t, "BEHR_LaserCannon_S3", decoded[0].Loadout["weapon_1"])

	// The empty-string override survives: it means "explicitly unequipped".
	cleared, ok := decoded[0].Loadout["shield_1"]
	assert.True(t, ok)
	assert.Equal(t, "", cleared)

	// Omitted loadouts decode to an empty map, never nil.
	assert.NotNil(t, decoded[1].Loadout)
}

func TestDecodeFleetRejectsGarbage(t *testing.T) {
	_, err := DecodeFleet("not base64!!!")
	assert.Error(t, err)

	// Valid base64, invalid JSON.
	_, err = DecodeFleet("bm90IGpzb24=")
	assert.Error(t, err)
}

func TestEncodeFleetEmpty(t *testing.T) {
	code, err := EncodeFleet(nil)
	require.NoError(t, err)

	decoded, err := DecodeFleet(code)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

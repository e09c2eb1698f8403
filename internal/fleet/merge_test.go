package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

func TestMergeLoadout(t *testing.T) {
	stock := &models.InstalledItem{Name: "Panther Repeater", ClassName: "KLWE_LaserRepeater_S3", Size: 3}
	ports := []models.Port{
		{Name: "weapon_1", InstalledItem: stock},
		{Name: "weapon_2", InstalledItem: stock},
		{Name: "weapon_3", InstalledItem: stock},
		{Name: "weapon_4", InstalledItem: stock},
	}
	items := []models.Item{
		{ClassName: "BEHR_LaserCannon_S3", Name: "M5A Laser Cannon", Type: "WeaponGun.Gun", Size: 3},
	}
	overrides := map[string]string{
		"weapon_2": "BEHR_LaserCannon_S3", // swap
		"weapon_3": "",                    // explicitly unequipped
		"weapon_4": "WEAP_GONE_S3",        // no longer in the catalog
	}

	merged := MergeLoadout(ports, overrides, items)
	require.Len(t, merged, 4)

	// No override: stock survives.
	require.NotNil(t, merged[0].InstalledItem)
	assert.Equal(t, "KLWE_LaserRepeater_S3", merged[0].InstalledItem.ClassName)

	// Override resolves against the catalog.
	require.NotNil(t, merged[1].InstalledItem)
	assert.Equal(t, "M5A Laser Cannon", merged[1].InstalledItem.Name)
	assert.Equal(t, float64(3), merged[1].InstalledItem.Size)

	// Empty string clears the slot, it does not revert to stock.
	assert.Nil(t, merged[2].InstalledItem)

	// Unresolvable override keeps its identifier visible.
	require.NotNil(t, merged[3].InstalledItem)
	assert.Equal(t, "WEAP_GONE_S3", merged[3].InstalledItem.ClassName)
	assert.NotEmpty(t, merged[3].InstalledItem.Name)
}

func TestMergeLoadoutDoesNotMutateInput(t *testing.T) {
	stock := &models.InstalledItem{Name: "Panther Repeater", ClassName: "KLWE_LaserRepeater_S3", Size: 3}
	ports := []models.Port{{Name: "weapon_1", InstalledItem: stock}}

	MergeLoadout(ports, map[string]string{"weapon_1": ""}, nil)

	assert.NotNil(t, ports[0].InstalledItem, "input slice must stay untouched")
}

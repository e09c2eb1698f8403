package fleet

import (
	"github.com/Lucky44/SC-fleet-manager/internal/catalog"
	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

// MergeLoadout applies a fleet ship's sparse overrides onto the extracted
// stock ports. An override always wins over the stock installed item: an
// empty-string entry clears the slot entirely, a non-empty entry is resolved
// against the item catalog and substituted. Only name, class and size cross
// into the port view; the full item record stays in the catalog.
func MergeLoadout(ports []models.Port, overrides map[string]string, items []models.Item) []models.Port {
	merged := make([]models.Port, len(ports))
	for i, port := range ports {
		itemClass, ok := overrides[port.Name]
		if !ok {
			merged[i] = port
			continue
		}

		if itemClass == "" {
			port.InstalledItem = nil
			merged[i] = port
			continue
		}

		if item, found := catalog.ItemByClass(items, itemClass); found {
			port.InstalledItem = &models.InstalledItem{
				Name:      item.Name,
				ClassName: item.ClassName,
				Size:      item.Size,
			}
		} else {
			// Stored override no longer resolves; keep the identifier
			// visible rather than silently reverting to stock.
			port.InstalledItem = &models.InstalledItem{
				Name:      catalog.CleanItemName("", itemClass),
				ClassName: itemClass,
			}
		}
		merged[i] = port
	}
	return merged
}

package catalog

import (
	"sort"
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

// NormalizeItems filters the raw item catalog down to ship equipment a pilot
// can actually install, resolves display names, and deduplicates variants.
func NormalizeItems(raw []scunpacked.RawItem) []models.Item {
	filtered := make([]scunpacked.RawItem, 0, len(raw))
	for _, item := range raw {
		if item.ClassName == "" || !installableItem(item) {
			continue
		}
		filtered = append(filtered, item)
	}

	// Shorter class names are the base templates; keep those over the
	// per-ship and per-variant derivatives sharing the same class.
	sort.SliceStable(filtered, func(i, j int) bool {
		return len(filtered[i].ClassName) < len(filtered[j].ClassName)
	})

	seen := make(map[string]struct{}, len(filtered))
	items := make([]models.Item, 0, len(filtered))
	for _, r := range filtered {
		if _, ok := seen[r.ClassName]; ok {
			continue
		}
		seen[r.ClassName] = struct{}{}
		it := itemFromRaw(r)
		if it.Name == "Unknown Item" {
			continue
		}
		items = append(items, it)
	}
	return items
}

// installableItem rejects gear, loose cosmetics, internal mount records and
// ship-specific bespoke equipment.
func installableItem(item scunpacked.RawItem) bool {
	typeLower := strings.ToLower(item.Type)
	switch {
	case strings.Contains(typeLower, "attachment"),
		strings.Contains(typeLower, "clothing"),
		strings.Contains(typeLower, "armor"),
		strings.Contains(typeLower, "grenade"),
		strings.Contains(typeLower, "gadget"),
		strings.Contains(typeLower, "mining"),
		strings.Contains(typeLower, "tractor"),
		strings.Contains(typeLower, "utility"),
		strings.Contains(typeLower, "beam"),
		strings.Contains(typeLower, "missilelauncher"):
		return false
	}

	nameLower := strings.ToLower(item.Name)
	classLower := strings.ToLower(item.ClassName)
	mfr := ""
	if item.Manufacturer != nil {
		mfr = strings.ToLower(item.Manufacturer.Code)
	}

	if mfr == "grin" || strings.HasPrefix(classLower, "grin_") {
		return false
	}
	// Placeholder records ship in the data dumps but never in game.
	if strings.Contains(nameLower, "placeholder") || strings.Contains(classLower, "placeholder") {
		return false
	}
	for _, kw := range []string{"tractor", "mining", "beam", "utility"} {
		if strings.Contains(nameLower, kw) || strings.Contains(classLower, kw) {
			return false
		}
	}

	switch nameLower {
	case "turret", "remote turret", "manned turret", "mannequin":
		return false
	}
	if strings.Contains(nameLower, "gimbal mount") ||
		strings.Contains(nameLower, "regenpool") ||
		strings.Contains(nameLower, "weaponmount") ||
		strings.Contains(nameLower, "ammobox") {
		return false
	}

	if strings.Contains(nameLower, "bespoke") || strings.Contains(nameLower, "limited") || strings.Contains(nameLower, "interior") {
		return false
	}
	if strings.Contains(nameLower, "idris") || strings.Contains(nameLower, "javelin") || strings.Contains(nameLower, "kraken") {
		return false
	}
	if strings.Contains(classLower, "_container") || strings.Contains(classLower, "controller") {
		return false
	}
	if strings.Contains(classLower, "bespoke") || strings.Contains(classLower, "massive") {
		return false
	}

	return true
}

func itemFromRaw(r scunpacked.RawItem) models.Item {
	// Name priority: the structured record's name, falling back through
	// the cleaner when it is missing or still a technical string.
	resolved := ""
	if r.StdItem != nil {
		resolved = r.StdItem.Name
	}
	if resolved == "" || strings.HasPrefix(resolved, "@") || strings.Contains(resolved, "_") {
		source := r.ItemName
		if source == "" {
			source = r.Name
		}
		resolved = CleanItemName(source, r.ClassName)
	}

	item := models.Item{
		ClassName: r.ClassName,
		Name:      resolved,
		Type:      r.Type,
		SubType:   r.SubType,
		Size:      r.Size,
		Grade:     r.Grade,
	}
	if r.Manufacturer != nil {
		item.Manufacturer = r.Manufacturer.Name
	}
	return item
}

// ItemByClass finds an item by class identifier, case-insensitively.
func ItemByClass(items []models.Item, className string) (models.Item, bool) {
	for _, it := range items {
		if strings.EqualFold(it.ClassName, className) {
			return it, true
		}
	}
	return models.Item{}, false
}

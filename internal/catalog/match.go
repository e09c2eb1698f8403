package catalog

import (
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

// CompatibleItems returns the items installable in a port: at least one of
// the port's declared types must accept the item, and the item's size must
// fall inside the port's [MinSize, MaxSize] range, both bounds inclusive.
func CompatibleItems(items []models.Item, port models.Port) []models.Item {
	var compatible []models.Item
	for _, item := range items {
		if !typeMatches(item, port.Types) {
			continue
		}
		if item.Size < port.MinSize || item.Size > port.MaxSize {
			continue
		}
		compatible = append(compatible, item)
	}
	return compatible
}

// typeMatches layers category-specific rules over a generic substring
// fallback. Port types are dotted ("Shield.ShieldGenerator"); only the main
// segment drives the category rules, but rocket ports are rejected on the
// full string and never match anything.
func typeMatches(item models.Item, portTypes []string) bool {
	itemType := strings.ToLower(item.Type)
	subType := strings.ToLower(item.SubType)

	for _, t := range portTypes {
		mainType := t
		if idx := strings.Index(t, "."); idx >= 0 {
			mainType = t[:idx]
		}
		targetType := strings.ToLower(mainType)
		fullTargetType := strings.ToLower(t)

		if strings.Contains(fullTargetType, "rocket") {
			continue
		}

		if (strings.Contains(targetType, "shield") || targetType == "shld") &&
			(strings.Contains(itemType, "shield") || strings.Contains(subType, "shield")) {
			return true
		}
		if (strings.Contains(targetType, "power") || targetType == "pwrp") &&
			(strings.Contains(itemType, "power") || strings.Contains(subType, "power")) {
			return true
		}
		if (strings.Contains(targetType, "cool") || targetType == "clre") &&
			(strings.Contains(itemType, "cool") || strings.Contains(subType, "cool")) {
			return true
		}
		if (strings.Contains(targetType, "quantum") || targetType == "qntm") &&
			(strings.Contains(itemType, "quantum") || strings.Contains(subType, "quantum")) {
			return true
		}

		isGunPort := strings.Contains(targetType, "weapongun") ||
			targetType == "turret" || strings.Contains(targetType, "turretgun") || targetType == "wepn"
		if isGunPort {
			if !strings.Contains(itemType, "weapongun") {
				continue
			}
			if strings.Contains(itemType, "missile") || utilityWeapon(item) {
				continue
			}
			return true
		}

		if strings.Contains(targetType, "missile") || targetType == "mslr" {
			if strings.Contains(itemType, "missile") {
				return true
			}
			continue
		}

		if itemType == targetType || strings.Contains(itemType, targetType) || strings.Contains(targetType, itemType) {
			return true
		}
	}
	return false
}

// utilityWeapon reports guns that are really industrial tools and must never
// be offered on combat hardpoints.
func utilityWeapon(item models.Item) bool {
	nameLower := strings.ToLower(item.Name)
	classLower := strings.ToLower(item.ClassName)
	for _, kw := range []string{"tractor", "mining", "beam", "utility"} {
		if strings.Contains(nameLower, kw) || strings.Contains(classLower, kw) {
			return true
		}
	}
	return strings.HasPrefix(classLower, "grin_")
}

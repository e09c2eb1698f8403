package catalog

import (
	"fmt"
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
	"github.com/Lucky44/SC-fleet-manager/internal/scunpacked"
)

// ExtractPorts flattens a ship's raw hardpoint document into the editable
// port list: internal slots are dropped, weapon slots nested inside turret
// and gimbal mounts are promoted to top level, and missing size bounds get
// permissive defaults.
func ExtractPorts(doc scunpacked.PortDoc) []models.Port {
	return extractPorts(doc.Flatten(), "", false, "")
}

func extractPorts(portList []scunpacked.RawPort, parentName string, parentIsTurret bool, turretBaseName string) []models.Port {
	var extracted []models.Port

	for _, p := range portList {
		rawName := p.PortName
		if rawName == "" {
			rawName = p.Name
		}

		item := p.InstalledItem
		itemType := ""
		var itemTags []string
		var nested []scunpacked.RawPort
		if item != nil {
			itemType = strings.ToLower(item.Type)
			for _, t := range item.Tags {
				itemTags = append(itemTags, strings.ToLower(t))
			}
			nested = item.Ports
		}

		isTurret := strings.Contains(itemType, "turret")

		// Internal and locked slots are not editable; turrets are the
		// exception because their gun slots still are.
		if (hasFlag(p.Flags, "invisible") || hasFlag(p.Flags, "uneditable") || p.Uneditable) && !isTurret {
			continue
		}

		nameLower := strings.ToLower(rawName)
		if strings.Contains(nameLower, "fuel_tank") || strings.Contains(nameLower, "thruster") {
			continue
		}

		isRack := strings.Contains(itemType, "missilelauncher") ||
			strings.Contains(itemType, "missilerack") ||
			strings.Contains(itemType, "missile.rack")
		isGimbal := isTurret || containsString(itemTags, "gimbalmount") ||
			containsString(itemTags, "gimbal") || strings.Contains(itemType, "gimbal")
		isMount := isGimbal || isRack

		// Only weapon-bearing child slots are worth promoting out of a mount.
		var childPorts []scunpacked.RawPort
		if isMount {
			for _, cp := range nested {
				types := strings.ToLower(strings.Join(cp.Types, ","))
				category := strings.ToLower(cp.Category)
				if strings.Contains(types, "gun") || strings.Contains(types, "missile") ||
					strings.Contains(types, "torpedo") ||
					strings.Contains(category, "weapon") || strings.Contains(category, "missile") {
					childPorts = append(childPorts, cp)
				}
			}
		}

		if len(childPorts) > 0 {
			// Recurse so gimbals nested inside turrets still surface their guns.
			currentTurretBase := ""
			if isTurret {
				currentTurretBase = CleanPortName(rawName)
			} else if parentIsTurret {
				currentTurretBase = turretBaseName
			}
			promoted := extractPorts(childPorts, rawName, isTurret || parentIsTurret, currentTurretBase)

			for i, cp := range promoted {
				displayName := CleanPortName(rawName)
				// Disambiguate siblings promoted out of the same mount.
				// Match on the gun slot itself, not the mount path, so a
				// directional mount name doesn't tag every sibling alike.
				if len(promoted) > 1 {
					cn := strings.ToLower(cp.Name)
					if idx := strings.LastIndex(cn, " > "); idx >= 0 {
						cn = cn[idx+3:]
					}
					switch {
					case strings.Contains(cn, "left"):
						displayName += " (L)"
					case strings.Contains(cn, "right"):
						displayName += " (R)"
					case strings.Contains(cn, "top"):
						displayName += " (T)"
					case strings.Contains(cn, "bottom"):
						displayName += " (B)"
					default:
						displayName += fmt.Sprintf(" (%d)", i+1)
					}
				}
				cp.DisplayName = displayName
				if cp.TurretBaseName == "" {
					if isTurret {
						cp.TurretBaseName = CleanPortName(rawName)
					} else if parentIsTurret {
						cp.TurretBaseName = turretBaseName
					}
				}
				extracted = append(extracted, cp)
			}
			continue
		}

		// Standard port, or a mount with no promotable children.
		uniqueName := rawName
		if parentName != "" {
			uniqueName = parentName + " > " + rawName
		}

		displayName := p.DisplayName
		if displayName == "" {
			if parentName != "" {
				displayName = CleanPortName(parentName)
			} else {
				displayName = CleanPortName(rawName)
			}
		}

		baseName := ""
		if isTurret {
			baseName = CleanPortName(rawName)
		} else if parentIsTurret {
			baseName = turretBaseName
		}

		var itemSize *float64
		if item != nil {
			itemSize = item.Size
		}

		port := models.Port{
			Name:           uniqueName,
			DisplayName:    displayName,
			Types:          p.Types,
			Turret:         isTurret || parentIsTurret,
			TurretBaseName: baseName,
			MinSize:        coalesceSize(0, p.MinSize, p.Size, itemSize),
			MaxSize:        coalesceSize(10, p.MaxSize, p.Size, itemSize),
		}
		if port.Types == nil {
			port.Types = []string{}
		}
		if item != nil && item.ClassName != "" {
			port.InstalledItem = &models.InstalledItem{
				Name:      CleanItemName(item.Name, item.ClassName),
				ClassName: item.ClassName,
				Size:      coalesceSize(0, itemSize),
			}
		}
		extracted = append(extracted, port)
	}

	return extracted
}

// coalesceSize returns the first present size field, or the fallback when
// every candidate is absent. Zero is a legitimate value and distinct from
// absent.
func coalesceSize(fallback float64, candidates ...*float64) float64 {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return fallback
}

func hasFlag(flags []string, want string) bool {
	for _, f := range flags {
		if strings.EqualFold(f, want) {
			return true
		}
	}
	return false
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

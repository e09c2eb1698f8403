package catalog

import (
	"regexp"
	"strings"
)

// The upstream source mixes three naming conventions with no discriminator:
// lore names ("Panther Repeater"), internal codenames ("KLWE_LaserRepeater_S3")
// and raw template identifiers ("@item_Name_KLWE_..."). CleanItemName layers
// cheap heuristics under hand-authored tables so a new unmapped pattern
// degrades to a readable guess instead of failing.

var (
	quotedRe       = regexp.MustCompile(`'([^']+)'`)
	locPrefixRe    = regexp.MustCompile(`(?i)@[\w\s]*Name[ _]?|@LOC_PLACE_HOLDER_|@LOC_PLACEHOLDER_|@item_Name_|@LOC `)
	itemNameRe     = regexp.MustCompile(`(?i)itemName`)
	nameBoundaryRe = regexp.MustCompile(`Name([A-Z])`)
	parenSizeRe    = regexp.MustCompile(`(?i)\(S\d+\)`)
	midSizeRe      = regexp.MustCompile(`(?i)\sS\d+\s`)
	endSizeRe      = regexp.MustCompile(`(?i)\sS\d+$`)
	parenRe        = regexp.MustCompile(`\(.*\)`)
	laswerRe       = regexp.MustCompile(`(?i)Laswer`)
	techSuffixRe   = regexp.MustCompile(`(?i)(_SCITEM|_TURRET|_LOWPOLY|_DUMMY|_VNG|_VANDUUL|_B_|_A_).*`)
	sizeTruncRe    = regexp.MustCompile(`(?i)(_S\d+).*`)
	scitemTailRe   = regexp.MustCompile(`(?i)_SCITEM$`)
	embeddedSizeRe = regexp.MustCompile(`(?i)_?S\d+_?`)
	allCapsRe      = regexp.MustCompile(`^[A-Z0-9_]+$`)
	leadingNameRe  = regexp.MustCompile(`(?i)^NAME`)

	repeaterRe   = regexp.MustCompile(`(?i)_LASERREPEATER`)
	laserCanRe   = regexp.MustCompile(`(?i)_LASERCANNON`)
	gatlingRe    = regexp.MustCompile(`(?i)_BALLISTICGATLING`)
	ballCanRe    = regexp.MustCompile(`(?i)_BALLISTICCANNON`)
	scatterRe    = regexp.MustCompile(`(?i)_DISTORTIONSCATTERGUN`)
	trailCharRe = regexp.MustCompile(`\s[A-Z]$`)
	trailNumRe  = regexp.MustCompile(`\s\d+$`)
)

// categoryPrefixes are technical category tags that lead class identifiers.
var categoryPrefixes = []string{
	"SHLD", "COOL", "POWR", "QDRV", "ITEM", "TRNS", "WEAP", "MISS", "TORP", "GUN", "PORT", "HARDPOINT",
}

// manufacturerCodes are the known maker codes that lead class identifiers
// and survive as a leading word after generic cleaning.
var manufacturerCodes = []string{
	"AEGS", "JUST", "WCPR", "JSPN", "TYDT", "LPLT", "AMRS", "ACOM", "SASU", "TARS", "RACO", "RSI",
	"WETK", "ARCC", "ASAS", "BASL", "GODI", "BEHR", "KLWE", "ESPR", "APAR", "GATS", "PRAR", "MXOX",
	"VNCL", "SECO", "YORM", "BRRA", "ORIG", "MRAI", "CNOU", "MISC", "DRAK", "ANVL", "HRST", "KRMN", "KRON",
}

var (
	categoryPrefixRe     = regexp.MustCompile(`(?i)^(` + strings.Join(categoryPrefixes, "|") + `)_`)
	manufacturerPrefixRe = regexp.MustCompile(`(?i)^(` + strings.Join(manufacturerCodes, "|") + `)_`)
)

// CleanItemName resolves a raw item label plus its class identifier into a
// human-presentable display name. It never fails: the worst case returns
// the class identifier or the literal "Unknown Item".
func CleanItemName(name, className string) string {
	if name == "" && className == "" {
		return "Unknown Item"
	}

	raw := strings.TrimSpace(name)
	clean := raw

	// Quoted lore names keep the weapon-category word that follows the quote.
	if strings.Contains(raw, "'") {
		if m := quotedRe.FindStringSubmatch(raw); m != nil && m[1] != "" {
			parts := strings.Split(raw, "'")
			suffix := strings.TrimSpace(parts[len(parts)-1])
			if suffix != "" && containsWeaponKind(suffix) {
				clean = m[1] + " " + suffix
			} else {
				clean = m[1]
			}
		}
	}

	// Strip localization keys, size tokens and other technical noise.
	clean = locPrefixRe.ReplaceAllString(clean, "")
	clean = itemNameRe.ReplaceAllString(clean, "")
	clean = nameBoundaryRe.ReplaceAllString(clean, "$1")
	clean = strings.ReplaceAll(clean, "_", " ")
	clean = parenSizeRe.ReplaceAllString(clean, "")
	clean = midSizeRe.ReplaceAllString(clean, " ")
	clean = endSizeRe.ReplaceAllString(clean, "")
	clean = parenRe.ReplaceAllString(clean, "")
	clean = laswerRe.ReplaceAllString(clean, "Laser")
	clean = strings.TrimSpace(clean)

	// Explicit overrides for raw strings reported garbled in the wild.
	switch {
	case clean == "HRST LaserRepeater S4" || strings.Contains(clean, "HRST_LaserRepeater_S4"):
		return "Attrition-4 Repeater"
	case clean == "KLWE LaserRepeater S4" || strings.Contains(clean, "KLWE_LaserRepeater_S4"):
		return "Rhino Repeater"
	case clean == "ESPR Laser Cannon" || clean == "ESPR LaserCannon S4" || strings.Contains(clean, "ESPR_LaserCannon"):
		return "Lightstrike IV Cannon"
	case clean == "APAR BallisticGatling S4" || strings.Contains(clean, "APAR_BallisticGatling_S4"):
		return "Revenant Gatling"
	}

	// High-precision lookup by class identifier.
	if className != "" {
		normalized := leadingNameRe.ReplaceAllString(strings.ToUpper(className), "")
		if hit, ok := lookupName(normalized); ok {
			return hit
		}

		// Retry after stripping technical suffixes, preserving the size token.
		stripped := techSuffixRe.ReplaceAllString(normalized, "")
		if hit, ok := lookupName(stripped); ok {
			return hit
		}

		// Retry after truncating everything past the size token.
		sizeStripped := sizeTruncRe.ReplaceAllString(normalized, "$1")
		if hit, ok := lookupName(sizeStripped); ok {
			return hit
		}
	}

	// Try the cleaned display string itself as a table key.
	mappingKey := strings.ReplaceAll(strings.ToUpper(clean), " ", "_")
	if hit, ok := lookupName(mappingKey); ok {
		return hit
	}

	rawClass := scitemTailRe.ReplaceAllString(strings.ToUpper(className), "")
	if hit, ok := lookupName(rawClass); ok {
		return hit
	}

	finalClean := clean

	// Generic de-prefixing for names that are still technical identifiers.
	if strings.Contains(clean, "_") || clean == className ||
		strings.Contains(raw, "@LOC") || strings.Contains(raw, "PLACEHOLDER") ||
		allCapsRe.MatchString(clean) {
		src := className
		if src == "" {
			src = clean
		}
		finalClean = techSuffixRe.ReplaceAllString(src, "")
		finalClean = categoryPrefixRe.ReplaceAllString(finalClean, "")
		finalClean = manufacturerPrefixRe.ReplaceAllString(finalClean, "")
		finalClean = repeaterRe.ReplaceAllString(finalClean, " Repeater")
		finalClean = laserCanRe.ReplaceAllString(finalClean, " Cannon")
		finalClean = gatlingRe.ReplaceAllString(finalClean, " Gatling")
		finalClean = ballCanRe.ReplaceAllString(finalClean, " Cannon")
		finalClean = scatterRe.ReplaceAllString(finalClean, " Scattergun")
		finalClean = embeddedSizeRe.ReplaceAllString(finalClean, " ")
		finalClean = strings.ReplaceAll(finalClean, "_", " ")
		finalClean = titleCase(strings.TrimSpace(finalClean))

		for _, m := range manufacturerCodes {
			prefix := titleCase(strings.ToLower(m)) + " "
			if len(finalClean) > len(prefix) && strings.EqualFold(finalClean[:len(prefix)], prefix) {
				finalClean = finalClean[len(prefix):]
			}
		}
	}

	if finalClean != "" {
		return finalClean
	}
	if clean != "" {
		return clean
	}
	if className != "" {
		return className
	}
	return "Unknown Item"
}

func lookupName(key string) (string, bool) {
	if v, ok := weaponNames[key]; ok {
		return v, true
	}
	if v, ok := componentNames[key]; ok {
		return v, true
	}
	return "", false
}

func containsWeaponKind(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "cannon") || strings.Contains(lower, "repeater") ||
		strings.Contains(lower, "gatling") || strings.Contains(lower, "scattergun")
}

// portNouns maps technical port-name tokens to their display form.
var portNouns = []struct {
	tech     string
	friendly string
}{
	{"SHIELD GENERATOR", "Shield Generator"},
	{"POWER PLANT", "Power Plant"},
	{"QUANTUM DRIVE", "Quantum Drive"},
	{"COOLER", "Cooler"},
	{"TURRET", "Turret"},
	{"WEAPON", "Weapon"},
	{"MISSILE", "Missile"},
	{"TORPEDO", "Torpedo"},
	{"GIMBAL", "Gimbal"},
	{"RADAR", "Radar"},
}

// CleanPortName produces a display name for a hardpoint: the leaf segment
// of a dotted ancestry path, stripped of technical prefixes and trailing
// disambiguators, title-cased.
func CleanPortName(name string) string {
	if name == "" {
		return ""
	}

	// Only the leaf segment of a recursive extraction path is displayable.
	target := name
	if idx := strings.LastIndex(name, ">"); idx >= 0 {
		target = strings.TrimSpace(name[idx+1:])
	}
	if target == "" {
		target = name
	}

	clean := strings.ToUpper(target)
	clean = strings.ReplaceAll(clean, "HARDPOINT_", "")
	clean = strings.ReplaceAll(clean, "SCITEM_", "")
	clean = strings.ReplaceAll(clean, "_", " ")
	clean = strings.TrimSpace(clean)

	for _, n := range portNouns {
		if strings.Contains(clean, n.tech) {
			clean = strings.ReplaceAll(clean, n.tech, n.friendly)
		}
	}

	clean = trailCharRe.ReplaceAllString(clean, "")
	clean = trailNumRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	return titleCase(clean)
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

package catalog

import (
	"strings"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

// applyShipPatches corrects records the upstream dump gets wrong and appends
// ships the dump is missing entirely. The manual entries are checked against
// live data each refresh; once upstream carries a correct record the duplicate
// collapses away during name deduplication.
func applyShipPatches(ships []models.Ship) []models.Ship {
	patched := make([]models.Ship, 0, len(ships)+8)

	c8rExists := false
	for _, s := range ships {
		if s.ClassName == "ANVL_Pisces_C8R" || strings.Contains(strings.ToLower(s.Name), "c8r pisces rescue") {
			c8rExists = true
			break
		}
	}

	for _, ship := range ships {
		// Upstream labels the F8C with its military designation and the
		// wrong maker.
		if ship.ClassName == "ANVL_Lightning_F8" {
			ship.Name = "F8C Lightning"
			ship.Manufacturer = models.Manufacturer{Code: "AEGS", Name: "Aegis Dynamics"}
			ship.Description = "The F8C Lightning is the civilian variant of the heavy space superiority fighter used by the UEE Navy."
			patched = append(patched, ship)
			continue
		}

		// Hornet hulls need explicit Mk I / Mk II disambiguation: the raw
		// names collide between generations.
		if strings.HasPrefix(ship.ClassName, "ANVL_Hornet_F7") {
			isMk2 := strings.Contains(ship.ClassName, "_Mk2") ||
				strings.Contains(ship.ClassName, "_MkII") ||
				ship.ClassName == "ANVL_Hornet_F7A" // bare F7A is the Mk II
			if isMk2 {
				if !strings.Contains(ship.Name, "Mk II") {
					ship.Name += " Mk II"
				}
			} else if !strings.Contains(ship.Name, "Mk I") && !strings.Contains(ship.Name, "Mk II") {
				ship.Name += " Mk I"
			}
			patched = append(patched, ship)
			continue
		}

		if strings.HasPrefix(strings.ToUpper(ship.Name), "MISC ") {
			ship.Name = strings.TrimSpace(ship.Name[5:])
		}
		if strings.HasPrefix(strings.ToUpper(ship.Name), "C.O. ") {
			ship.Name = strings.TrimSpace(ship.Name[5:])
		}

		patched = append(patched, ship)
	}

	patched = append(patched, manualShips()...)

	if !c8rExists {
		patched = append(patched, models.Ship{
			ClassName:    "ANVL_Pisces_C8R",
			Name:         "Anvil C8R Pisces Rescue",
			Size:         1,
			Mass:         55000,
			Cargo:        0,
			Role:         "Rescue",
			Career:       "Medical",
			Description:  "The Anvil C8R Pisces Rescue is a specialized medical variant of the Pisces, designed to provide emergency medical support and rapid extraction.",
			Manufacturer: models.Manufacturer{Code: "ANVL", Name: "Anvil Aerospace"},
		})
	}

	return patched
}

// manualShips are hulls absent from the upstream dump.
func manualShips() []models.Ship {
	rsi := models.Manufacturer{Code: "RSI", Name: "Roberts Space Industries"}
	return []models.Ship{
		{
			ClassName:    "RSI_Polaris",
			Name:         "RSI Polaris",
			Size:         6,
			Mass:         15000000,
			Cargo:        216,
			Role:         "Corvette",
			Career:       "Military",
			Description:  "The RSI Polaris is a corvette-class capital ship developed for the UEE Navy. Ideally suited for naval patrol and border security, it features a massive torpedo payload and a small hangar bay.",
			Manufacturer: rsi,
		},
		{
			ClassName:    "RSI_Perseus",
			Name:         "RSI Perseus",
			Size:         5,
			Mass:         4181274,
			Cargo:        96,
			Role:         "Heavy Gunship",
			Career:       "Military",
			Description:  "The RSI Perseus is a formidable heavy gunship designed for engaging larger threats, blockading, and fleet defense. It features two massive manned turrets with Size 8 cannons.",
			Manufacturer: rsi,
		},
		{
			ClassName:    "RSI_Zeus_ES",
			Name:         "RSI Zeus Mk II ES",
			Size:         3,
			Mass:         500000,
			Cargo:        16,
			Role:         "Exploration",
			Career:       "Exploration",
			Description:  "The Zeus Mk II ES is a dedicated exploration vessel, featuring an advanced radar suite and robust defensive capabilities for long-range missions.",
			Manufacturer: rsi,
		},
		{
			ClassName:    "RSI_Zeus_MR",
			Name:         "RSI Zeus Mk II MR",
			Size:         3,
			Mass:         500000,
			Cargo:        16,
			Role:         "Security",
			Career:       "Military",
			Description:  "The Zeus Mk II MR is a security-focused variant, equipped with an EMP and QED to track and disable target vessels.",
			Manufacturer: rsi,
		},
		{
			ClassName:    "RSI_Zeus_CL",
			Name:         "RSI Zeus Mk II CL",
			Size:         3,
			Mass:         500000,
			Cargo:        128,
			Role:         "Transport",
			Career:       "Industrial",
			Description:  "The Zeus Mk II CL is a high-capacity cargo transport, capable of moving large loads safely across the verse.",
			Manufacturer: rsi,
		},
		{
			ClassName:    "RSI_Meteor",
			Name:         "RSI Meteor",
			Size:         3,
			Mass:         65000,
			Cargo:        0,
			Role:         "Medium Fighter",
			Career:       "Combat",
			Description:  "A high-performance medium fighter from RSI, the Meteor is designed for aggressive engagements with a specialized loadout featuring Size 5 hardpoints.",
			Manufacturer: rsi,
		},
	}
}

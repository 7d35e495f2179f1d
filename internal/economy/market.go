package economy

import (
	"math"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// Market constants
const (
	// StorageCostPerUnit is charged daily per finished unit above the office cap
	StorageCostPerUnit = 2.0

	// RPPerResearcher is the output of the first researcher
	RPPerResearcher = 5.0
	// RPDecay shrinks each additional researcher's contribution
	RPDecay = 0.9
)

// EraIndex returns the position of the era with id, or -1
func EraIndex(eras []models.Era, id string) int {
	for i, e := range eras {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// MarketEra resolves the market expectation tier of the era with id.
// Unknown ids resolve to the first era's tier together with a ConfigError.
func MarketEra(eras []models.Era, id string) (int, error) {
	idx := EraIndex(eras, id)
	if idx < 0 {
		if len(eras) == 0 {
			return 0, &models.ConfigError{Table: "eras", Msg: "no eras"}
		}
		return eras[0].Tier, &models.ConfigError{Table: "eras", Key: id, Msg: "unknown era"}
	}
	return eras[idx].Tier, nil
}

// EraForDay returns the latest era whose start day has been reached
func EraForDay(eras []models.Era, day int) (models.Era, bool) {
	var found models.Era
	ok := false
	for _, e := range eras {
		if day >= e.StartDay {
			found = e
			ok = true
		}
	}
	return found, ok
}

// NextEra returns the era following id
func NextEra(eras []models.Era, id string) (models.Era, bool) {
	idx := EraIndex(eras, id)
	if idx < 0 || idx+1 >= len(eras) {
		return models.Era{}, false
	}
	return eras[idx+1], true
}

// StorageCost returns the daily cost of holding totalInventory units
// against an office capacity of capacity.
func StorageCost(totalInventory, capacity float64) float64 {
	excess := totalInventory - capacity
	if excess <= 0 {
		return 0
	}
	return excess * StorageCostPerUnit
}

// BaseResearchPoints returns the daily RP of n researchers before bonuses:
// a geometric series with diminishing returns per head.
func BaseResearchPoints(n int) float64 {
	if n <= 0 {
		return 0
	}
	return RPPerResearcher * (1 - math.Pow(RPDecay, float64(n))) / (1 - RPDecay)
}

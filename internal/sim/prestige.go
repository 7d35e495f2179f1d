package sim

import (
	"math"
	"strconv"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// RetireValuation is money plus a fixed value per researched tier.
// Research points and reputation do not count.
func RetireValuation(s models.GameState) float64 {
	techValue := 0.0
	for _, tier := range s.TechLevels {
		techValue += float64(tier) * TechValuePerTier
	}
	return s.Money + techValue
}

// RetirePoints returns the prestige earned by retiring now
func RetirePoints(s models.GameState) int {
	return int(math.Max(0, math.Floor(RetireValuation(s)/RetireValuationDivisor)))
}

// Retire converts the company's valuation into prestige and starts a fresh
// run. Prestige and the ever-reached tech record carry over; each prestige
// point adds starting money.
func (e *Engine) Retire(prev models.GameState) (models.GameState, []Event) {
	gained := RetirePoints(prev)

	next := e.NewGame()
	next.PrestigePoints = prev.PrestigePoints + gained
	next.Money += float64(next.PrestigePoints) * RetireBonusPerPoint
	for p, tier := range prev.GlobalTechLevels {
		next.GlobalTechLevels[p] = tier
	}
	next.AddLog("retired", models.SeveritySuccess, strconv.Itoa(gained), strconv.Itoa(next.PrestigePoints))
	return next, []Event{{Kind: KindRetire, Quantity: float64(gained), Money: next.Money - prev.Money}}
}

// Package economy holds the pure pricing and market formulas of the simulation.
package economy

import (
	"fmt"
	"math"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// Revenue model constants
const (
	// DecayPerTier is the price erosion per tier the product lags the market era
	DecayPerTier = 0.15
	// DecayFloor is the lowest decay multiplier
	DecayFloor = 0.1
	// CrashThreshold is the tier gap at which obsolete products crash in price
	CrashThreshold = 3
	// CrashMultiplier applies on top of decay once the crash threshold is reached
	CrashMultiplier = 0.3
	// ExcessDemandRate is what units sold beyond remaining daily demand earn
	ExcessDemandRate = 0.25
)

// Warning identifiers
const (
	WarningObsolete       = "obsolete_product"
	WarningDemandExceeded = "demand_exceeded"
)

// RevenueInput describes one sale
type RevenueInput struct {
	BasePrice        float64
	Amount           float64
	ProductTier      int
	ProductType      models.ProductType
	MarketEra        int
	MarketSaturation float64

	// DemandRemaining is the unmet daily demand; nil skips the demand stage
	DemandRemaining *float64
}

// Breakdown keeps every intermediate stage of the revenue computation
type Breakdown struct {
	BaseRevenue     float64
	AfterDecay      float64
	AfterCrash      float64
	AfterSaturation float64
	AfterDemand     float64
}

// RevenueResult is the outcome of CalculateFinalRevenue
type RevenueResult struct {
	Revenue   float64
	Breakdown Breakdown
	Warnings  []string
}

// DecayMultiplier returns the price factor for a product lagging gap tiers
func DecayMultiplier(gap int) float64 {
	if gap <= 0 {
		return 1
	}
	return math.Max(DecayFloor, math.Pow(1-DecayPerTier, float64(gap)))
}

// SaturationMultiplier returns the price factor for a saturation level
func SaturationMultiplier(saturation float64) float64 {
	return 1 - models.Clamp(saturation, 0, 1)
}

// CalculateFinalRevenue computes sale revenue through the ordered stages
// base, decay, crash, saturation and, when DemandRemaining is set, demand.
// Values are not rounded; callers floor when crediting money.
func CalculateFinalRevenue(in RevenueInput) RevenueResult {
	var res RevenueResult
	b := &res.Breakdown

	b.BaseRevenue = in.BasePrice * in.Amount

	gap := in.MarketEra - in.ProductTier
	b.AfterDecay = b.BaseRevenue * DecayMultiplier(gap)

	b.AfterCrash = b.AfterDecay
	if gap >= CrashThreshold {
		b.AfterCrash *= CrashMultiplier
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s:%s:%d", WarningObsolete, in.ProductType, gap))
	}

	b.AfterSaturation = b.AfterCrash * SaturationMultiplier(in.MarketSaturation)

	b.AfterDemand = b.AfterSaturation
	if in.DemandRemaining != nil && in.Amount > 0 {
		remaining := math.Max(0, *in.DemandRemaining)
		if in.Amount > remaining {
			within := remaining / in.Amount
			b.AfterDemand = b.AfterSaturation * (within + (1-within)*ExcessDemandRate)
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s:%s:%.0f", WarningDemandExceeded, in.ProductType, in.Amount-remaining))
		}
	}

	res.Revenue = b.AfterDemand
	return res
}

package models

import "math"

// Patch is a partial state update produced by an event effect.
// Nil fields are left untouched.
type Patch struct {
	Money        *float64
	RP           *float64
	Reputation   *int
	Silicon      *float64
	SiliconPrice *float64
	Saturation   map[ProductType]float64
	DailyDemand  map[ProductType]float64
}

// Evaluate applies the event's effect spec to s and returns the resulting patch
func (e EventDef) Evaluate(s GameState) Patch {
	spec := e.Effect
	var p Patch

	if spec.MoneyDelta != 0 || spec.MoneyFactor != 0 {
		money := s.Money
		if spec.MoneyFactor != 0 {
			money *= spec.MoneyFactor
		}
		money += spec.MoneyDelta
		p.Money = &money
	}
	if spec.RPDelta != 0 {
		rp := math.Max(0, s.RP+spec.RPDelta)
		p.RP = &rp
	}
	if spec.ReputationDelta != 0 {
		rep := ClampReputation(s.Reputation + spec.ReputationDelta)
		p.Reputation = &rep
	}
	if spec.SiliconFactor != 0 {
		silicon := math.Max(0, s.Silicon*spec.SiliconFactor)
		p.Silicon = &silicon
	}
	if spec.SiliconPriceFactor != 0 {
		price := ClampSiliconPrice(s.SiliconPrice * spec.SiliconPriceFactor)
		p.SiliconPrice = &price
	}
	if spec.SaturationDelta != 0 {
		p.Saturation = make(map[ProductType]float64)
		for _, pt := range AllProductTypes() {
			p.Saturation[pt] = Clamp(s.MarketSaturation[pt]+spec.SaturationDelta, 0, 1)
		}
	}
	if spec.DemandFactor != 0 {
		p.DailyDemand = make(map[ProductType]float64)
		for _, pt := range AllProductTypes() {
			p.DailyDemand[pt] = math.Max(0, s.DailyDemand[pt]*spec.DemandFactor)
		}
	}
	return p
}

// Apply returns a copy of s with the patch applied
func (p Patch) Apply(s GameState) GameState {
	next := s.Clone()
	if p.Money != nil {
		next.Money = *p.Money
	}
	if p.RP != nil {
		next.RP = *p.RP
	}
	if p.Reputation != nil {
		next.Reputation = *p.Reputation
	}
	if p.Silicon != nil {
		next.Silicon = *p.Silicon
	}
	if p.SiliconPrice != nil {
		next.SiliconPrice = *p.SiliconPrice
	}
	for pt, v := range p.Saturation {
		next.MarketSaturation[pt] = v
	}
	for pt, v := range p.DailyDemand {
		next.DailyDemand[pt] = v
	}
	return next
}

// Silicon price bounds
const (
	MinSiliconPrice = 5.0
	MaxSiliconPrice = 100.0
)

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// ClampReputation limits reputation to [0, 100]
func ClampReputation(r int) int {
	return min(100, max(0, r))
}

// ClampSiliconPrice limits the silicon price to its bounds
func ClampSiliconPrice(p float64) float64 {
	return Clamp(p, MinSiliconPrice, MaxSiliconPrice)
}

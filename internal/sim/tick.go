package sim

import (
	"math"
	"strconv"

	"github.com/napolitain/chip-tycoon/internal/economy"
	"github.com/napolitain/chip-tycoon/internal/models"
)

// policyResearchFactor scales research output by work policy
func policyResearchFactor(p models.WorkPolicy) float64 {
	switch p {
	case models.PolicyRelaxed:
		return 0.8
	case models.PolicyCrunch:
		return 1.3
	default:
		return 1.0
	}
}

// policyMoraleDrift is the daily morale change under a work policy
func policyMoraleDrift(p models.WorkPolicy) float64 {
	switch p {
	case models.PolicyRelaxed:
		return 1
	case models.PolicyCrunch:
		return -2
	default:
		return 0
	}
}

// ResearchGain returns the research points the staff produce in one day.
// Bonuses scale the diminishing-returns base but never lift a team to the
// output of n undiminished researchers.
func ResearchGain(s models.GameState) float64 {
	base := economy.BaseResearchPoints(s.Researchers)
	if base == 0 {
		return 0
	}
	morale := 0.5 + models.Clamp(s.StaffMorale, 0, 100)/200
	gain := base * economy.GetReputationBonuses(s.Reputation).ResearchBonus * morale * policyResearchFactor(s.WorkPolicy)
	ceiling := float64(s.Researchers) * economy.RPPerResearcher * MaxResearchEfficiency
	return math.Min(gain, ceiling)
}

// DailyExpenses returns the recurring costs debited on the next tick
func (e *Engine) DailyExpenses(s models.GameState) float64 {
	total := float64(s.Researchers) * ResearcherSalary
	for _, l := range s.Loans {
		total += l.DailyPayment
	}
	if office, err := e.office(s); err == nil {
		if (s.Day+1)%RentPeriodDays == 0 {
			total += office.Rent
		}
		total += economy.StorageCost(float64(s.TotalInventory()), office.SiliconCap)
	}
	return total
}

// Tick advances the world by one day. Steps run in a fixed order: day,
// salaries and loan payments, weekly rent, storage, research, market drift,
// era, world events, competitors, contracts.
func (e *Engine) Tick(prev models.GameState, rng Rand) (models.GameState, []Event) {
	next := prev.Clone()
	var events []Event

	next.Day++

	if salaries := float64(next.Researchers) * ResearcherSalary; salaries > 0 {
		next.Money -= salaries
		events = append(events, Event{Kind: KindSalaries, Quantity: float64(next.Researchers), Money: -salaries})
	}
	for _, l := range next.Loans {
		if l.DailyPayment <= 0 {
			continue
		}
		next.Money -= l.DailyPayment
		events = append(events, Event{Kind: KindLoanPayment, Subject: l.ID, Money: -l.DailyPayment})
	}

	office, err := e.office(next)
	if err != nil {
		events = append(events, Event{Kind: KindRent, Failed: true, Reason: ReasonConfig, Err: err})
	} else {
		if next.Day%RentPeriodDays == 0 && office.Rent > 0 {
			next.Money -= office.Rent
			next.AddLog("rent_paid", models.SeverityInfo, formatMoney(office.Rent))
			events = append(events, Event{Kind: KindRent, Subject: office.Name, Money: -office.Rent})
		}
		if storage := economy.StorageCost(float64(next.TotalInventory()), office.SiliconCap); storage > 0 {
			next.Money -= storage
			events = append(events, Event{Kind: KindStorage, Money: -storage})
		}
	}

	if gain := ResearchGain(next); gain > 0 {
		next.RP += gain
		events = append(events, Event{Kind: KindResearchAccrued, RP: gain})
	}
	next.StaffMorale = models.Clamp(next.StaffMorale+policyMoraleDrift(next.WorkPolicy), 0, 100)

	e.driftMarket(&next, rng)

	if era, ok := economy.NextEra(e.content.Eras, next.CurrentEraID); ok && next.Day >= era.StartDay {
		next.CurrentEraID = era.ID
		next.AddLog("era_changed", models.SeverityInfo, era.Name)
		events = append(events, Event{Kind: KindEraChanged, Subject: era.ID})
	}

	// an unknown era falls back to the first era's tier and is reported
	era, err := e.marketEra(next)
	if err != nil {
		events = append(events, Event{Kind: KindEraChanged, Failed: true, Reason: ReasonConfig, Err: err})
	}

	if ev, ok := e.rollWorldEvent(&next, era, rng); ok {
		events = append(events, ev)
	}

	events = append(events, advanceCompetitors(&next, rng)...)

	if len(next.AvailableContracts) < MaxContractOffers && rng.Float64() < ContractSpawnChance {
		if c, ok := e.spawnContract(era, rng); ok {
			next.AvailableContracts = append(next.AvailableContracts, c)
			events = append(events, Event{
				Kind:     KindContractOffered,
				Product:  c.RequiredProduct,
				Subject:  c.ID,
				Quantity: float64(c.RequiredAmount),
			})
		}
	}
	events = append(events, expireContracts(&next)...)

	return next, events
}

// driftMarket recovers saturation, moves prices, resets demand and wears lines
func (e *Engine) driftMarket(s *models.GameState, rng Rand) {
	for _, p := range models.AllProductTypes() {
		s.MarketSaturation[p] = math.Max(0, s.MarketSaturation[p]-SaturationRecovery)
	}

	s.SiliconPrice = models.ClampSiliconPrice(s.SiliconPrice + noise(rng, SiliconPriceNoise))

	for i := range s.Stocks {
		st := &s.Stocks[i]
		st.CurrentPrice = math.Max(MinStockPrice, st.CurrentPrice*(1+noise(rng, StockVolatility)))
	}

	boosted := make(map[models.ProductType]bool)
	kept := s.ActiveCampaigns[:0]
	for _, c := range s.ActiveCampaigns {
		c.DaysRemaining--
		if c.DaysRemaining > 0 {
			boosted[c.Product] = true
			kept = append(kept, c)
		}
	}
	s.ActiveCampaigns = kept
	for _, p := range models.AllProductTypes() {
		if !boosted[p] {
			s.BrandAwareness[p] = math.Max(0, s.BrandAwareness[p]-AwarenessDecay)
		}
		s.DailyDemand[p] = e.content.BaseDailyDemand[p] * (1 + s.BrandAwareness[p]/100)
	}

	for i := range s.ProductionLines {
		l := &s.ProductionLines[i]
		l.Efficiency = math.Max(MinLineEfficiency, l.Efficiency-LineWear)
	}
}

// rollWorldEvent arms a random eligible world event when none is pending.
// Its effect is applied when the player dismisses it.
func (e *Engine) rollWorldEvent(s *models.GameState, era int, rng Rand) (Event, bool) {
	if s.PendingEventID != "" || len(e.content.Events) == 0 {
		return Event{}, false
	}
	if rng.Float64() >= WorldEventChance {
		return Event{}, false
	}
	var eligible []models.EventDef
	for _, def := range e.content.Events {
		if def.MinEra <= era {
			eligible = append(eligible, def)
		}
	}
	if len(eligible) == 0 {
		return Event{}, false
	}
	def := eligible[rng.Intn(len(eligible))]
	s.PendingEventID = def.ID
	s.AddLog("world_event", models.SeverityWarning, def.Name)
	return Event{Kind: KindWorldEvent, Subject: def.ID}, true
}

// advanceCompetitors grows rival cash and releases new products on a
// jittered cadence. Each release floods both markets a little.
func advanceCompetitors(s *models.GameState, rng Rand) []Event {
	var events []Event
	for i := range s.Competitors {
		c := &s.Competitors[i]
		c.Money *= 1 + CompetitorGrowth

		interval := CompetitorReleaseInterval + rng.Intn(2*CompetitorReleaseJitter+1) - CompetitorReleaseJitter
		if s.Day-c.LastReleaseDay < interval {
			continue
		}
		c.LastReleaseDay = s.Day
		for p, q := range c.ProductQuality {
			c.ProductQuality[p] = q * CompetitorQualityGain
		}
		for _, p := range models.AllProductTypes() {
			s.MarketSaturation[p] = math.Min(1, s.MarketSaturation[p]+CompetitorReleaseBump)
		}
		s.AddLog("competitor_release", models.SeverityWarning, c.Name, strconv.Itoa(s.Day))
		events = append(events, Event{Kind: KindCompetitorRelease, Subject: c.ID})
	}
	return events
}

package bot

import (
	"math"
	"slices"

	"github.com/napolitain/chip-tycoon/internal/models"
	"github.com/napolitain/chip-tycoon/internal/sim"
)

// researcherBreakpoints maps money thresholds to target headcount,
// highest threshold first
var researcherBreakpoints = []struct {
	money       float64
	researchers int
}{
	{500000, 10},
	{150000, 6},
	{50000, 3},
	{10000, 1},
}

// TargetResearchers returns the headcount the bot aims for at a money level
func TargetResearchers(money float64) int {
	for _, bp := range researcherBreakpoints {
		if money > bp.money {
			return bp.researchers
		}
	}
	return 0
}

// Bot is a fixed greedy policy re-evaluated every day
type Bot struct {
	engine   *sim.Engine
	Strategy Strategy
}

// New creates a bot playing strategy through engine
func New(engine *sim.Engine, strategy Strategy) *Bot {
	return &Bot{engine: engine, Strategy: strategy}
}

// Act plays one day's worth of actions. Rejected actions are ignored; all
// events, failed ones included, are returned in order.
func (b *Bot) Act(s models.GameState, rng sim.Rand) (models.GameState, []sim.Event) {
	var events []sim.Event
	apply := func(next models.GameState, evs []sim.Event) {
		s = next
		events = append(events, evs...)
	}

	if s.PendingEventID != "" {
		apply(b.engine.DismissEvent(s))
	}

	if amount := b.siliconToBuy(s); amount > 0 {
		apply(b.engine.BuySilicon(s, amount))
	}

	if len(s.ActiveContracts) == 0 && len(s.AvailableContracts) > 0 {
		apply(b.engine.AcceptContract(s, s.AvailableContracts[0].ID))
	}

	for _, order := range b.productionPlan(s) {
		apply(b.engine.Produce(s, order))
	}

	for _, p := range models.AllProductTypes() {
		if s.Inventory[p] > 0 {
			apply(b.engine.Sell(s, p, 0, rng))
		}
	}

	for _, p := range models.AllProductTypes() {
		if node, ok := b.engine.NextResearch(s, p); ok && s.RP >= node.ResearchCost {
			apply(b.engine.Research(s, p, node.Tier, node.ResearchCost))
		}
	}

	apply(b.scaleStaff(s))

	if office, err := b.engine.Content().Office(s.OfficeLevel); err == nil &&
		s.OfficeLevel < b.engine.Content().MaxOfficeLevel() &&
		s.Money >= office.UpgradeCost*b.Strategy.UpgradeMargin {
		apply(b.engine.UpgradeOffice(s))
	}

	for _, line := range s.ProductionLines {
		if line.Efficiency < b.Strategy.MaintainBelow && s.Money > sim.MaintenanceCost*b.Strategy.UpgradeMargin {
			apply(b.engine.MaintainLine(s, line.ID))
		}
	}

	apply(b.finance(s))
	apply(b.invest(s))
	apply(b.advertise(s))
	apply(b.covert(s, rng))

	return s, events
}

// siliconToBuy tops the stock up to the buffer, skipping expensive days
// unless the stock is critically low
func (b *Bot) siliconToBuy(s models.GameState) float64 {
	if s.Silicon >= b.Strategy.SiliconBuffer {
		return 0
	}
	if s.SiliconPrice > b.Strategy.SiliconPriceCeiling && s.Silicon >= b.Strategy.CriticalSilicon {
		return 0
	}
	office, err := b.engine.Content().Office(s.OfficeLevel)
	if err != nil || s.SiliconPrice <= 0 {
		return 0
	}
	want := b.Strategy.SiliconBuffer - s.Silicon
	room := office.SiliconCap - s.Silicon
	affordable := math.Max(0, s.Money*b.Strategy.SpendShare) / s.SiliconPrice
	return math.Floor(math.Min(want, math.Min(room, affordable)))
}

// productionPlan splits silicon between products and sizes each batch to
// open demand plus outstanding contract units
func (b *Bot) productionPlan(s models.GameState) []sim.ProduceOrder {
	var orders []sim.ProduceOrder
	budget := math.Max(0, s.Money*b.Strategy.SpendShare)
	silicon := s.Silicon

	for _, p := range models.AllProductTypes() {
		share := b.Strategy.CPUShare
		if p == models.GPU {
			share = 1 - share
		}
		unit, err := b.engine.OrderFor(s, p, 1)
		if err != nil || unit.SiliconCost <= 0 {
			continue
		}

		owed := 0
		for _, c := range s.ActiveContracts {
			if c.RequiredProduct == p {
				owed += c.Remaining()
			}
		}
		sat := s.MarketSaturation[p]
		market := 0
		if b.profitable(s, p, unit) {
			headroom := int(math.Floor((b.Strategy.MaxSaturation - sat) * 1000))
			market = max(0, min(int(s.DailyDemand[p]), headroom))
		}

		units := int(math.Floor(s.Silicon * share / unit.SiliconCost))
		units = min(units, int(math.Floor(silicon/unit.SiliconCost)))
		if unit.Cost > 0 {
			units = min(units, int(math.Floor(budget/unit.Cost)))
		}
		units = min(units, market+owed)
		if units <= 0 {
			continue
		}

		order, err := b.engine.OrderFor(s, p, units)
		if err != nil {
			continue
		}
		budget -= order.Cost
		silicon -= order.SiliconCost
		orders = append(orders, order)
	}
	return orders
}

// profitable reports whether a unit sold into the current market earns
// more than its production and silicon cost
func (b *Bot) profitable(s models.GameState, p models.ProductType, unit sim.ProduceOrder) bool {
	node, err := b.engine.Content().TechNode(p, s.TechLevels[p])
	if err != nil {
		return false
	}
	price := node.BaseMarketPrice * (1 - s.MarketSaturation[p])
	return price > unit.Cost+unit.SiliconCost*s.SiliconPrice
}

// scaleStaff hires towards the money breakpoint target or lets one
// researcher go when cash runs low
func (b *Bot) scaleStaff(s models.GameState) (models.GameState, []sim.Event) {
	var events []sim.Event

	if s.Money < b.Strategy.FireBelow && s.Researchers > 0 {
		return b.engine.FireResearcher(s)
	}

	target := TargetResearchers(s.Money)
	if office, err := b.engine.Content().Office(s.OfficeLevel); err == nil {
		target = min(target, office.MaxResearchers)
	}
	for s.Researchers < target {
		next, evs := b.engine.HireResearcher(s, b.Strategy.HireCost)
		events = append(events, evs...)
		if len(evs) > 0 && evs[0].Failed {
			break
		}
		s = next
	}
	return s, events
}

// finance keeps ReserveDays of expenses in cash: it borrows or sells an own
// share block when short and repays loans once comfortably flush. A rich
// private company goes public.
func (b *Bot) finance(s models.GameState) (models.GameState, []sim.Event) {
	var events []sim.Event
	apply := func(next models.GameState, evs []sim.Event) {
		s = next
		events = append(events, evs...)
	}

	reserve := b.engine.DailyExpenses(s) * b.Strategy.ReserveDays
	if b.Strategy.ReserveDays > 0 && s.Money < reserve {
		amount := b.Strategy.LoanAmount
		if office, err := b.engine.Content().Office(s.OfficeLevel); err == nil {
			amount = math.Min(amount, office.MaxLoanAmount)
		}
		next, evs := b.engine.TakeLoan(s, amount)
		apply(next, evs)
		if len(evs) > 0 && evs[0].Failed && s.IsPubliclyTraded {
			apply(b.engine.TradeOwnShares(s, false))
		}
		return s, events
	}

	if b.Strategy.RepayMargin > 0 {
		for _, loan := range slices.Clone(s.Loans) {
			if s.Money >= loan.Amount*b.Strategy.RepayMargin && s.Money-loan.Amount >= reserve {
				apply(b.engine.PayLoan(s, loan.ID))
			}
		}
	}

	if b.Strategy.IPOAbove > 0 && !s.IsPubliclyTraded && sim.CompanyValuation(s) >= b.Strategy.IPOAbove {
		apply(b.engine.IPO(s))
	}
	if s.IsPubliclyTraded && s.PlayerCompanySharesOwned < 100 &&
		s.Money-sim.ShareBlockValue(s) >= b.Strategy.IPOAbove*b.Strategy.SpendShare {
		apply(b.engine.TradeOwnShares(s, true))
	}
	return s, events
}

// invest takes profits on listed stocks and, above the investment
// threshold, buys into the day's rotating pick
func (b *Bot) invest(s models.GameState) (models.GameState, []sim.Event) {
	var events []sim.Event
	apply := func(next models.GameState, evs []sim.Event) {
		s = next
		events = append(events, evs...)
	}

	for _, st := range slices.Clone(s.Stocks) {
		if st.Owned > 0 && st.CurrentPrice >= st.AvgBuyPrice*(1+b.Strategy.TakeProfit) {
			apply(b.engine.SellStock(s, st.ID, st.Owned))
		}
	}

	if b.Strategy.InvestAbove <= 0 || s.Money < b.Strategy.InvestAbove || len(s.Stocks) == 0 {
		return s, events
	}
	pick := s.Stocks[s.Day%len(s.Stocks)]
	if pick.CurrentPrice <= 0 {
		return s, events
	}
	if amount := int(math.Floor(s.Money * b.Strategy.InvestShare / pick.CurrentPrice)); amount > 0 {
		apply(b.engine.BuyStock(s, pick.ID, amount))
	}
	return s, events
}

// advertise runs the strategy's campaign for products with room to grow
func (b *Bot) advertise(s models.GameState) (models.GameState, []sim.Event) {
	var events []sim.Event
	if b.Strategy.CampaignAbove <= 0 || b.Strategy.CampaignID == "" {
		return s, events
	}
	for _, p := range models.AllProductTypes() {
		if s.Money < b.Strategy.CampaignAbove || s.MarketSaturation[p] >= b.Strategy.CampaignBelowSaturation {
			continue
		}
		running := slices.ContainsFunc(s.ActiveCampaigns, func(c models.ActiveCampaign) bool {
			return c.Product == p
		})
		if running {
			continue
		}
		next, evs := b.engine.LaunchCampaign(s, b.Strategy.CampaignID, p)
		s = next
		events = append(events, evs...)
	}
	return s, events
}

// covert resolves an armed operation with a seeded roll, otherwise spies on
// the richest rival when money allows
func (b *Bot) covert(s models.GameState, rng sim.Rand) (models.GameState, []sim.Event) {
	if s.Hacking.Active {
		return b.engine.CovertOpComplete(s, sim.RollCovertOutcome(s, rng))
	}
	if b.Strategy.CovertAbove <= 0 || s.Money < b.Strategy.CovertAbove || len(s.Competitors) == 0 {
		return s, nil
	}
	target := s.Competitors[0]
	for _, c := range s.Competitors[1:] {
		if c.Money > target.Money {
			target = c
		}
	}
	if sim.CovertCost(models.Espionage, target) > s.Money*b.Strategy.SpendShare {
		return s, nil
	}
	return b.engine.CovertOpTrigger(s, models.Espionage, target.ID)
}

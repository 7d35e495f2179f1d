package sim

import (
	"testing"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// fixedRand always returns the same draws, which keeps the random steps of
// the tick out of the way of deterministic assertions.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(i)
	}
	return len(p), nil
}

// quiet never triggers a random event, contract or reputation roll
var quiet = fixedRand{f: 0.99}

func testContent() *models.Content {
	return &models.Content{
		TechTrees: map[models.ProductType][]models.TechNode{
			models.CPU: {
				{Tier: 0, Name: "Micro 1", Yield: 100, BaseMarketPrice: 50, UnitCost: 10, SiliconPerUnit: 1, Performance: 10, Efficiency: 10},
				{Tier: 1, Name: "Micro 2", Yield: 90, BaseMarketPrice: 120, ResearchCost: 500, UnitCost: 20, SiliconPerUnit: 1, Performance: 25, Efficiency: 20},
				{Tier: 2, Name: "Micro 3", Yield: 80, BaseMarketPrice: 300, ResearchCost: 2000, UnitCost: 45, SiliconPerUnit: 2, Performance: 60, Efficiency: 45},
			},
			models.GPU: {
				{Tier: 0, Name: "Pixel 1", Yield: 90, BaseMarketPrice: 80, UnitCost: 15, SiliconPerUnit: 2, Performance: 8, Efficiency: 8},
				{Tier: 1, Name: "Pixel 2", Yield: 85, BaseMarketPrice: 200, ResearchCost: 800, UnitCost: 30, SiliconPerUnit: 2, Performance: 22, Efficiency: 18},
			},
		},
		Offices: []models.OfficeConfig{
			{Level: models.Garage, Name: "Garage", SiliconCap: 5000, MaxResearchers: 2, UpgradeCost: 20000, Rent: 100, MaxLoans: 1, MaxLoanAmount: 10000},
			{Level: models.Basement, Name: "Basement", SiliconCap: 10000, MaxResearchers: 5, UpgradeCost: 60000, Rent: 300, MaxLoans: 2, MaxLoanAmount: 50000},
			{Level: models.SmallOffice, Name: "Small Office", SiliconCap: 25000, MaxResearchers: 10, Rent: 800, MaxLoans: 3, MaxLoanAmount: 150000},
		},
		Eras: []models.Era{
			{ID: "dawn", Name: "Dawn", StartDay: 1, Tier: 0},
			{ID: "pc", Name: "PC", StartDay: 100, Tier: 1},
			{ID: "mobile", Name: "Mobile", StartDay: 300, Tier: 2},
		},
		Events: []models.EventDef{
			{ID: "boom", Name: "Chip boom", Effect: models.EffectSpec{MoneyDelta: 5000, ReputationDelta: 2}},
			{ID: "shortage", Name: "Silicon shortage", MinEra: 1, Effect: models.EffectSpec{SiliconPriceFactor: 1.5}},
		},
		Campaigns: []models.Campaign{
			{ID: "billboard", Name: "Billboard", Cost: 5000, Duration: 10, AwarenessBoost: 20},
		},
		Competitors: []models.Competitor{
			{ID: "intellix", Name: "Intellix", Money: 200000, CashReserves: 50000, ProductQuality: map[models.ProductType]float64{models.CPU: 50, models.GPU: 30}},
		},
		Stocks: []models.Stock{
			{ID: "fab", Name: "FabCo", CurrentPrice: 10},
		},
		BaseDailyDemand: map[models.ProductType]float64{models.CPU: 500, models.GPU: 300},
		Start:           models.StartConfig{Money: 50000, Silicon: 500, SiliconPrice: 20},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(testContent())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func requireFailed(t *testing.T, events []Event, reason Reason) {
	t.Helper()
	if len(events) != 1 || !events[0].Failed || events[0].Reason != reason {
		t.Fatalf("expected single failure %q, got %+v", reason, events)
	}
}

func requireOK(t *testing.T, events []Event) {
	t.Helper()
	if len(events) == 0 || events[0].Failed {
		t.Fatalf("expected success, got %+v", events)
	}
}

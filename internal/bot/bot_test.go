package bot_test

import (
	"testing"

	"github.com/napolitain/chip-tycoon/internal/bot"
	"github.com/napolitain/chip-tycoon/internal/loader"
	"github.com/napolitain/chip-tycoon/internal/models"
	"github.com/napolitain/chip-tycoon/internal/sim"
)

func newTestBot(t *testing.T) (*bot.Bot, *sim.Engine) {
	t.Helper()
	content, err := loader.LoadContent("../../data")
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}
	engine, err := sim.NewEngine(content)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return bot.New(engine, bot.DefaultStrategy()), engine
}

// idleGame is a fresh game with no open demand, so the bot neither buys
// silicon nor produces and only the money-driven steps act
func idleGame(engine *sim.Engine) models.GameState {
	s := engine.NewGame()
	s.Silicon = 1000
	s.DailyDemand = map[models.ProductType]float64{models.CPU: 0, models.GPU: 0}
	s.AvailableContracts = nil
	return s
}

// quietStrategy disables every optional step; tests switch on the one
// they exercise
func quietStrategy() bot.Strategy {
	s := bot.DefaultStrategy()
	s.UpgradeMargin = 1000
	s.FireBelow = 0
	s.ReserveDays = 0
	s.RepayMargin = 0
	s.CampaignAbove = 0
	s.InvestAbove = 0
	s.IPOAbove = 0
	s.CovertAbove = 0
	return s
}

func countKinds(events []sim.Event) map[sim.Kind]int {
	counts := make(map[sim.Kind]int)
	for _, ev := range events {
		if !ev.Failed {
			counts[ev.Kind]++
		}
	}
	return counts
}

func TestTargetResearchers(t *testing.T) {
	tests := []struct {
		money float64
		want  int
	}{
		{0, 0},
		{10000, 0},
		{10001, 1},
		{60000, 3},
		{150001, 6},
		{2000000, 10},
	}
	for _, tc := range tests {
		if got := bot.TargetResearchers(tc.money); got != tc.want {
			t.Errorf("TargetResearchers(%.0f) = %d, want %d", tc.money, got, tc.want)
		}
	}
}

func TestFirstDay(t *testing.T) {
	b, engine := newTestBot(t)
	s := engine.NewGame()

	next, events := b.Act(s, sim.NewRand(1))
	counts := countKinds(events)

	if counts[sim.KindBuySilicon] != 1 {
		t.Errorf("expected one silicon purchase, got %d", counts[sim.KindBuySilicon])
	}
	if counts[sim.KindProduce] != 2 || counts[sim.KindSell] != 2 {
		t.Errorf("expected both lines produced and sold, got %v", counts)
	}
	if counts[sim.KindHire] != 1 || next.Researchers != 1 {
		t.Errorf("expected one hire, researchers = %d", next.Researchers)
	}
	if next.TotalInventory() != 0 {
		t.Errorf("inventory left after selling: %v", next.Inventory)
	}
	// 500 bought, 300 + 300 consumed
	if next.Silicon != 100 {
		t.Errorf("silicon = %.0f, want 100", next.Silicon)
	}
	if next.Money <= 0 {
		t.Errorf("money = %.0f", next.Money)
	}
	if s.Silicon != 200 || s.Researchers != 0 {
		t.Fatalf("bot mutated its input")
	}
}

func TestSiliconCeiling(t *testing.T) {
	b, engine := newTestBot(t)
	s := engine.NewGame()
	s.SiliconPrice = 90
	s.Silicon = 500

	_, events := b.Act(s, sim.NewRand(1))
	if n := countKinds(events)[sim.KindBuySilicon]; n != 0 {
		t.Fatalf("bought silicon above the ceiling")
	}

	s.Silicon = 50
	_, events = b.Act(s, sim.NewRand(1))
	if n := countKinds(events)[sim.KindBuySilicon]; n != 1 {
		t.Fatalf("critically low stock should buy regardless of price")
	}
}

func TestDismissesPendingEvent(t *testing.T) {
	b, engine := newTestBot(t)
	s := engine.NewGame()
	s.PendingEventID = "tech_expo"

	next, events := b.Act(s, sim.NewRand(1))
	if next.PendingEventID != "" {
		t.Fatalf("pending event not dismissed")
	}
	if countKinds(events)[sim.KindDismissEvent] != 1 {
		t.Fatalf("no dismiss event")
	}
}

func TestAcceptsAndFulfillsFirstContract(t *testing.T) {
	b, engine := newTestBot(t)
	s := engine.NewGame()
	s.AvailableContracts = []models.Contract{
		{ID: "first", RequiredProduct: models.CPU, RequiredAmount: 50, UpfrontPayment: 500, CompletionPayment: 3000, Duration: 30},
		{ID: "second", RequiredProduct: models.GPU, RequiredAmount: 50, UpfrontPayment: 500, Duration: 30},
	}

	next, events := b.Act(s, sim.NewRand(1))
	counts := countKinds(events)
	if counts[sim.KindAcceptContract] != 1 || counts[sim.KindContractCompleted] != 1 {
		t.Fatalf("expected accept and completion, got %v", counts)
	}
	if len(next.AvailableContracts) != 1 || next.AvailableContracts[0].ID != "second" {
		t.Fatalf("available = %+v", next.AvailableContracts)
	}
	if len(next.ActiveContracts) != 0 {
		t.Fatalf("active = %+v", next.ActiveContracts)
	}
}

func TestFiresWhenBroke(t *testing.T) {
	b, engine := newTestBot(t)
	s := engine.NewGame()
	s.Money = 1000
	s.Silicon = 0
	s.Researchers = 2

	next, events := b.Act(s, sim.NewRand(1))
	if countKinds(events)[sim.KindFire] != 1 || next.Researchers != 1 {
		t.Fatalf("expected one researcher let go, researchers = %d", next.Researchers)
	}
}

func TestStrategiesDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range bot.Strategies() {
		if seen[s.String()] {
			t.Fatalf("duplicate strategy %s", s)
		}
		seen[s.String()] = true
		if s.CPUShare < 0 || s.CPUShare > 1 || s.SpendShare <= 0 || s.SpendShare > 1 {
			t.Fatalf("strategy %s has out-of-range shares", s)
		}
	}
}

func TestStrategyByName(t *testing.T) {
	s, ok := bot.StrategyByName("gpu-heavy")
	if !ok || s.Name != "GPU-heavy" {
		t.Fatalf("lookup = %v, %v", s, ok)
	}
	if _, ok := bot.StrategyByName("yolo"); ok {
		t.Fatalf("unknown strategy found")
	}
}

func TestBorrowsWhenShortAndRepaysWhenFlush(t *testing.T) {
	_, engine := newTestBot(t)
	strategy := quietStrategy()
	strategy.ReserveDays = 14
	strategy.RepayMargin = 3
	b := bot.New(engine, strategy)

	s := idleGame(engine)
	s.Money = 500
	s.Researchers = 1

	next, events := b.Act(s, sim.NewRand(1))
	if countKinds(events)[sim.KindTakeLoan] != 1 || len(next.Loans) != 1 {
		t.Fatalf("expected one loan, got %d loans", len(next.Loans))
	}
	if next.Loans[0].Amount != strategy.LoanAmount || next.Money != 500+strategy.LoanAmount {
		t.Fatalf("loan = %+v money = %.0f", next.Loans[0], next.Money)
	}

	flush := next.Clone()
	flush.Money = 100000
	repaid, events := b.Act(flush, sim.NewRand(1))
	if countKinds(events)[sim.KindPayLoan] != 1 || len(repaid.Loans) != 0 {
		t.Fatalf("loan not repaid: %+v", repaid.Loans)
	}
}

func TestCovertOperationResolvedNextDay(t *testing.T) {
	_, engine := newTestBot(t)
	strategy := quietStrategy()
	strategy.CovertAbove = 250000
	b := bot.New(engine, strategy)

	s := idleGame(engine)
	s.Money = 300000

	armed, events := b.Act(s, sim.NewRand(1))
	if countKinds(events)[sim.KindCovertTrigger] != 1 {
		t.Fatalf("no covert operation triggered")
	}
	if !armed.Hacking.Active || armed.Hacking.TargetID != "intellix" {
		t.Fatalf("hacking = %+v", armed.Hacking)
	}

	done, events := b.Act(armed, sim.NewRand(1))
	resolved := 0
	for _, ev := range events {
		if ev.Kind == sim.KindCovertComplete {
			resolved++
		}
	}
	if resolved != 1 || done.Hacking.Active {
		t.Fatalf("operation not resolved: %d completions, hacking = %+v", resolved, done.Hacking)
	}
	if done.Money > armed.Money-armed.Hacking.Cost+1e-9 {
		t.Fatalf("operation cost not paid")
	}
}

func TestGoesPublicAboveValuation(t *testing.T) {
	_, engine := newTestBot(t)
	strategy := quietStrategy()
	strategy.IPOAbove = 100000
	b := bot.New(engine, strategy)

	s := idleGame(engine)
	s.Money = 200000

	next, events := b.Act(s, sim.NewRand(1))
	if countKinds(events)[sim.KindIPO] != 1 || !next.IsPubliclyTraded {
		t.Fatalf("expected an IPO, public = %v", next.IsPubliclyTraded)
	}

	again, events := b.Act(next, sim.NewRand(1))
	if countKinds(events)[sim.KindIPO] != 0 || !again.IsPubliclyTraded {
		t.Fatalf("company listed twice")
	}
}

func TestInvestsAndTakesProfit(t *testing.T) {
	_, engine := newTestBot(t)
	strategy := quietStrategy()
	strategy.InvestAbove = 100000
	b := bot.New(engine, strategy)

	s := idleGame(engine)
	s.Money = 200000

	next, events := b.Act(s, sim.NewRand(1))
	if countKinds(events)[sim.KindBuyStock] != 1 {
		t.Fatalf("no stock bought")
	}
	pick := next.Stocks[next.Day%len(next.Stocks)]
	if pick.Owned == 0 {
		t.Fatalf("holding not recorded: %+v", next.Stocks)
	}

	rally := next.Clone()
	rally.Money = 1000
	for i := range rally.Stocks {
		rally.Stocks[i].CurrentPrice *= 2
	}
	_, events = b.Act(rally, sim.NewRand(1))
	if countKinds(events)[sim.KindSellStock] != 1 {
		t.Fatalf("profit not taken")
	}
}

func TestAdvertisesUnsaturatedProducts(t *testing.T) {
	_, engine := newTestBot(t)
	strategy := quietStrategy()
	strategy.CampaignAbove = 40000
	b := bot.New(engine, strategy)

	s := idleGame(engine)
	s.Money = 50000
	s.MarketSaturation[models.GPU] = 0.5

	next, events := b.Act(s, sim.NewRand(1))
	if countKinds(events)[sim.KindLaunchCampaign] != 1 {
		t.Fatalf("expected one campaign, got %d", countKinds(events)[sim.KindLaunchCampaign])
	}
	if len(next.ActiveCampaigns) != 1 || next.ActiveCampaigns[0].Product != models.CPU {
		t.Fatalf("campaigns = %+v", next.ActiveCampaigns)
	}

	_, events = b.Act(next, sim.NewRand(1))
	if countKinds(events)[sim.KindLaunchCampaign] != 0 {
		t.Fatalf("campaign relaunched while running")
	}
}

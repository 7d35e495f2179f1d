package driver

import (
	"log/slog"

	"github.com/napolitain/chip-tycoon/internal/bot"
	"github.com/napolitain/chip-tycoon/internal/models"
	"github.com/napolitain/chip-tycoon/internal/sim"
)

// DefaultBankruptcyFloor halts a run once money drops below it
const DefaultBankruptcyFloor = -50000.0

// DayRecord is one row of the time series
type DayRecord struct {
	Day         int                `db:"day"`
	Money       float64            `db:"money"`
	RP          float64            `db:"rp"`
	CPUTech     int                `db:"cpu_tech"`
	GPUTech     int                `db:"gpu_tech"`
	Researchers int                `db:"researchers"`
	OfficeLevel models.OfficeLevel `db:"office_level"`
	ProducedCPU int                `db:"produced_cpu"`
	ProducedGPU int                `db:"produced_gpu"`
	SoldCPU     int                `db:"sold_cpu"`
	SoldGPU     int                `db:"sold_gpu"`
	Revenue     float64            `db:"revenue"`
	Expenses    float64            `db:"expenses"`
}

// Options configures a run
type Options struct {
	Days            int
	Seed            int64
	BankruptcyFloor float64
	Strategy        bot.Strategy
	Logger          *slog.Logger
}

// Report is the outcome of a run
type Report struct {
	Strategy string
	Seed     int64
	Days     []DayRecord
	Final    models.GameState
	Bankrupt bool
}

// NetWorth returns the final money plus portfolio minus debt
func (r Report) NetWorth() float64 {
	return r.Final.NetWorth()
}

// revenueKinds are the events whose positive money counts as revenue.
// Loans and stock sales move cash without being earned.
var revenueKinds = map[sim.Kind]bool{
	sim.KindSell:              true,
	sim.KindContractCompleted: true,
	sim.KindAcceptContract:    true,
}

var financingKinds = map[sim.Kind]bool{
	sim.KindTakeLoan:    true,
	sim.KindPayLoan:     true,
	sim.KindBuyStock:    true,
	sim.KindSellStock:   true,
	sim.KindIPO:         true,
	sim.KindTradeShares: true,
	sim.KindRetire:      true,
}

// record folds a day's events into the row
func (d *DayRecord) record(events []sim.Event) {
	for _, ev := range events {
		if ev.Failed && ev.Money == 0 {
			continue
		}
		switch ev.Kind {
		case sim.KindProduce:
			if ev.Product == models.CPU {
				d.ProducedCPU += int(ev.Quantity)
			} else {
				d.ProducedGPU += int(ev.Quantity)
			}
		case sim.KindSell:
			if ev.Product == models.CPU {
				d.SoldCPU += int(ev.Quantity)
			} else {
				d.SoldGPU += int(ev.Quantity)
			}
		}

		switch {
		case financingKinds[ev.Kind]:
		case revenueKinds[ev.Kind] && ev.Money > 0:
			d.Revenue += ev.Money
		case ev.Money < 0:
			d.Expenses -= ev.Money
		}
	}
}

func snapshot(d *DayRecord, s models.GameState) {
	d.Money = s.Money
	d.RP = s.RP
	d.CPUTech = s.TechLevels[models.CPU]
	d.GPUTech = s.TechLevels[models.GPU]
	d.Researchers = s.Researchers
	d.OfficeLevel = s.OfficeLevel
}

// Run plays the bot against the daily tick for opts.Days days, stopping
// early once money falls below the bankruptcy floor.
func Run(engine *sim.Engine, opts Options) Report {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.BankruptcyFloor == 0 {
		opts.BankruptcyFloor = DefaultBankruptcyFloor
	}

	rng := sim.NewRand(opts.Seed)
	player := bot.New(engine, opts.Strategy)
	state := engine.NewGame()
	report := Report{Strategy: opts.Strategy.String(), Seed: opts.Seed}

	logger.Info("simulation started", "strategy", report.Strategy, "seed", opts.Seed, "days", opts.Days)

	for i := 0; i < opts.Days; i++ {
		row := DayRecord{Day: state.Day}

		var events []sim.Event
		state, events = player.Act(state, rng)
		row.record(events)

		era := state.CurrentEraID
		state, events = engine.Tick(state, rng)
		row.record(events)
		snapshot(&row, state)
		report.Days = append(report.Days, row)

		if state.CurrentEraID != era {
			logger.Info("era changed", "day", state.Day, "era", state.CurrentEraID)
		}
		logger.Debug("day complete", "day", row.Day, "money", row.Money, "rp", row.RP, "revenue", row.Revenue, "expenses", row.Expenses)

		if state.Money < opts.BankruptcyFloor {
			report.Bankrupt = true
			logger.Warn("bankrupt, halting", "day", state.Day, "money", state.Money, "floor", opts.BankruptcyFloor)
			break
		}
	}

	report.Final = state
	logger.Info("simulation finished",
		"strategy", report.Strategy,
		"days", len(report.Days),
		"money", state.Money,
		"net_worth", report.NetWorth(),
		"bankrupt", report.Bankrupt,
	)
	return report
}

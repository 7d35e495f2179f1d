package driver

import (
	"log/slog"
	"sort"

	"github.com/napolitain/chip-tycoon/internal/bot"
	"github.com/napolitain/chip-tycoon/internal/sim"
)

// StrategyResult aggregates one strategy's runs across seeds
type StrategyResult struct {
	Strategy     bot.Strategy
	Reports      []Report
	MeanNetWorth float64
	Bankruptcies int
}

// RunStrategies runs every strategy once per seed and ranks them by mean
// final net worth, best first. Ties keep catalogue order.
func RunStrategies(engine *sim.Engine, strategies []bot.Strategy, seeds []int64, opts Options) []StrategyResult {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	results := make([]StrategyResult, 0, len(strategies))
	for _, strategy := range strategies {
		res := StrategyResult{Strategy: strategy}
		for _, seed := range seeds {
			runOpts := opts
			runOpts.Strategy = strategy
			runOpts.Seed = seed
			report := Run(engine, runOpts)

			res.Reports = append(res.Reports, report)
			res.MeanNetWorth += report.NetWorth()
			if report.Bankrupt {
				res.Bankruptcies++
			}
		}
		if len(seeds) > 0 {
			res.MeanNetWorth /= float64(len(seeds))
		}
		logger.Info("strategy evaluated", "strategy", strategy.String(), "mean_net_worth", res.MeanNetWorth, "bankruptcies", res.Bankruptcies)
		results = append(results, res)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MeanNetWorth > results[j].MeanNetWorth
	})
	return results
}

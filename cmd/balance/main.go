package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/chip-tycoon/internal/bot"
	"github.com/napolitain/chip-tycoon/internal/config"
	"github.com/napolitain/chip-tycoon/internal/driver"
	"github.com/napolitain/chip-tycoon/internal/loader"
	"github.com/napolitain/chip-tycoon/internal/sim"
	"github.com/napolitain/chip-tycoon/internal/store"
)

var (
	dataDir   string
	days      int
	firstSeed int64
	seedCount int
	floor     float64
	dbPath    string
	verbose   bool
	runID     int64
)

func main() {
	defaults := config.LoadSimFromEnv()

	rootCmd := &cobra.Command{
		Use:   "balance",
		Short: "Chip Tycoon strategy sweep",
		Long: `Runs every bot strategy in the catalogue over a range of seeds and
ranks them by mean final net worth, to spot content that makes one
play style dominant.`,
		Run: runSweep,
	}

	rootCmd.Flags().StringVarP(&dataDir, "data", "d", defaults.DataDir, "Path to data directory")
	rootCmd.Flags().IntVarP(&days, "days", "n", defaults.Days, "Number of days per run")
	rootCmd.Flags().Int64VarP(&firstSeed, "seed", "s", defaults.Seed, "First seed")
	rootCmd.Flags().IntVar(&seedCount, "seeds", 5, "Number of consecutive seeds per strategy")
	rootCmd.Flags().Float64Var(&floor, "bankruptcy-floor", defaults.BankruptcyFloor, "Halt a run once money drops below this")
	rootCmd.Flags().StringVar(&dbPath, "db", defaults.DBPath, "SQLite report database (empty to skip)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every run on stderr")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "List runs stored in the report database",
		Run:   runList,
	}
	runsCmd.Flags().StringVar(&dbPath, "db", defaults.DBPath, "SQLite report database")
	runsCmd.Flags().Int64Var(&runID, "run", 0, "Print the daily series of one run")
	rootCmd.AddCommand(runsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Chip Tycoon              │")
	titleColor.Println("│  Strategy Sweep           │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()

	content, err := loader.LoadContent(dataDir)
	if err != nil {
		color.Red("Error loading content: %v", err)
		os.Exit(1)
	}
	engine, err := sim.NewEngine(content)
	if err != nil {
		color.Red("Invalid content: %v", err)
		os.Exit(1)
	}

	if seedCount < 1 {
		color.Red("--seeds must be at least 1")
		os.Exit(1)
	}
	seeds := make([]int64, 0, seedCount)
	for i := 0; i < seedCount; i++ {
		seeds = append(seeds, firstSeed+int64(i))
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	strategies := bot.Strategies()
	infoColor.Printf("🔄 Running %d strategies × %d seeds × %d days...\n\n", len(strategies), len(seeds), days)

	results := driver.RunStrategies(engine, strategies, seeds, driver.Options{
		Days:            days,
		BankruptcyFloor: floor,
		Logger:          logger,
	})

	printRanking(results)
	successColor.Printf("\n✓ Best strategy: %s\n", results[0].Strategy)

	if dbPath != "" {
		saveResults(results)
	}
	fmt.Println()
}

func printRanking(results []driver.StrategyResult) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Strategy", "Mean Net Worth", "Best", "Worst", "Bankrupt"}),
	)
	for i, r := range results {
		best, worst := r.Reports[0].NetWorth(), r.Reports[0].NetWorth()
		for _, rep := range r.Reports[1:] {
			best = max(best, rep.NetWorth())
			worst = min(worst, rep.NetWorth())
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.Strategy.String(),
			"$" + humanize.Commaf(float64(int64(r.MeanNetWorth))),
			"$" + humanize.Commaf(float64(int64(best))),
			"$" + humanize.Commaf(float64(int64(worst))),
			fmt.Sprintf("%d/%d", r.Bankruptcies, len(r.Reports)),
		})
	}
	table.Render()
}

func saveResults(results []driver.StrategyResult) {
	db, err := store.Open(dbPath)
	if err != nil {
		color.Red("Error opening report database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	saved := 0
	for _, r := range results {
		for _, report := range r.Reports {
			if _, err := db.SaveRun(report); err != nil {
				color.Red("Error saving run: %v", err)
				return
			}
			saved++
		}
	}
	color.Green("✓ Saved %d runs to %s", saved, dbPath)
}

func runList(cmd *cobra.Command, args []string) {
	if dbPath == "" {
		color.Red("--db is required")
		os.Exit(1)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		color.Red("Error opening report database: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if runID > 0 {
		printRunDays(db, runID)
		return
	}

	runs, err := db.ListRuns()
	if err != nil {
		color.Red("Error listing runs: %v", err)
		os.Exit(1)
	}
	total, err := db.CountRuns()
	if err != nil {
		color.Red("Error counting runs: %v", err)
		os.Exit(1)
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Strategy", "Seed", "Days", "Money", "Net Worth", "Bankrupt", "Saved"}),
	)
	for _, r := range runs {
		bankrupt := "no"
		if r.Bankrupt {
			bankrupt = "yes"
		}
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.Strategy,
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Days),
			"$" + humanize.Commaf(float64(int64(r.FinalMoney))),
			"$" + humanize.Commaf(float64(int64(r.NetWorth))),
			bankrupt,
			humanize.Time(r.CreatedAt),
		})
	}
	table.Render()
	fmt.Printf("\n%s runs in %s\n", humanize.Comma(int64(total)), dbPath)
}

func printRunDays(db *store.DB, id int64) {
	records, err := db.LoadDays(id)
	if err != nil {
		color.Red("Error loading run #%d: %v", id, err)
		os.Exit(1)
	}
	if len(records) == 0 {
		color.Yellow("Run #%d has no recorded days", id)
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Day", "Money", "RP", "CPU", "GPU", "Staff", "Office", "Revenue", "Expenses"}),
	)
	for _, d := range records {
		table.Append([]string{
			strconv.Itoa(d.Day),
			"$" + humanize.Commaf(float64(int64(d.Money))),
			humanize.Commaf(float64(int64(d.RP))),
			strconv.Itoa(d.CPUTech),
			strconv.Itoa(d.GPUTech),
			strconv.Itoa(d.Researchers),
			d.OfficeLevel.String(),
			"$" + humanize.Commaf(float64(int64(d.Revenue))),
			"$" + humanize.Commaf(float64(int64(d.Expenses))),
		})
	}
	table.Render()
}

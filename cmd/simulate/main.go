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
	"github.com/napolitain/chip-tycoon/internal/models"
	"github.com/napolitain/chip-tycoon/internal/sim"
	"github.com/napolitain/chip-tycoon/internal/store"
)

var (
	dataDir      string
	days         int
	seed         int64
	floor        float64
	strategyName string
	csvPath      string
	dbPath       string
	every        int
	quiet        bool
	verbose      bool
)

func main() {
	defaults := config.LoadSimFromEnv()

	rootCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Chip Tycoon economy simulator",
		Long: `Plays a greedy bot against the daily economy tick and reports the
resulting time series as a table, a semicolon separated CSV file and
optionally a SQLite report database.`,
		Run: runSimulation,
	}

	rootCmd.Flags().StringVarP(&dataDir, "data", "d", defaults.DataDir, "Path to data directory")
	rootCmd.Flags().IntVarP(&days, "days", "n", defaults.Days, "Number of days to simulate")
	rootCmd.Flags().Int64VarP(&seed, "seed", "s", defaults.Seed, "Random seed")
	rootCmd.Flags().Float64Var(&floor, "bankruptcy-floor", defaults.BankruptcyFloor, "Halt once money drops below this")
	rootCmd.Flags().StringVar(&strategyName, "strategy", bot.DefaultStrategy().Name, "Bot strategy name")
	rootCmd.Flags().StringVarP(&csvPath, "csv", "o", "simulation.csv", "CSV output path (empty to skip)")
	rootCmd.Flags().StringVar(&dbPath, "db", defaults.DBPath, "SQLite report database (empty to skip)")
	rootCmd.Flags().IntVar(&every, "every", 30, "Print every Nth day in the table")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging on stderr")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func runSimulation(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Chip Tycoon              │")
		titleColor.Println("│  Economy Simulator        │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

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

	strategy, ok := bot.StrategyByName(strategyName)
	if !ok {
		color.Red("Unknown strategy %q", strategyName)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("📦 Loaded %d CPU tiers, %d GPU tiers, %d eras\n", len(content.TechTrees[models.CPU]), len(content.TechTrees[models.GPU]), len(content.Eras))
		infoColor.Printf("🔄 Simulating %d days with %s (seed %d)...\n\n", days, strategy, seed)
	}

	report := driver.Run(engine, driver.Options{
		Days:            days,
		Seed:            seed,
		BankruptcyFloor: floor,
		Strategy:        strategy,
		Logger:          newLogger(),
	})

	if !quiet {
		printTimeline(report.Days)
	}
	printSummary(report)

	if csvPath != "" {
		if err := driver.ExportCSV(csvPath, report.Days); err != nil {
			color.Red("Error exporting CSV: %v", err)
			os.Exit(1)
		}
		successColor.Printf("✓ Wrote %d rows to %s\n", len(report.Days), csvPath)
	}

	if dbPath != "" {
		db, err := store.Open(dbPath)
		if err != nil {
			color.Red("Error opening report database: %v", err)
			os.Exit(1)
		}
		defer db.Close()
		id, err := db.SaveRun(report)
		if err != nil {
			color.Red("Error saving run: %v", err)
			os.Exit(1)
		}
		successColor.Printf("✓ Saved run #%d to %s\n", id, dbPath)
	}
}

func printTimeline(records []driver.DayRecord) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Day", "Money", "RP", "CPU", "GPU", "Staff", "Office", "Made", "Sold", "Revenue", "Expenses"}),
	)
	step := max(every, 1)
	for i, d := range records {
		if (i+1)%step != 0 && i != len(records)-1 && i != 0 {
			continue
		}
		table.Append([]string{
			strconv.Itoa(d.Day),
			"$" + humanize.Commaf(float64(int64(d.Money))),
			humanize.Commaf(float64(int64(d.RP))),
			strconv.Itoa(d.CPUTech),
			strconv.Itoa(d.GPUTech),
			strconv.Itoa(d.Researchers),
			d.OfficeLevel.String(),
			strconv.Itoa(d.ProducedCPU + d.ProducedGPU),
			strconv.Itoa(d.SoldCPU + d.SoldGPU),
			"$" + humanize.Commaf(float64(int64(d.Revenue))),
			"$" + humanize.Commaf(float64(int64(d.Expenses))),
		})
	}
	table.Render()
}

func printSummary(report driver.Report) {
	successColor := color.New(color.FgGreen)
	errorColor := color.New(color.FgRed)

	var revenue, expenses float64
	var sold int
	for _, d := range report.Days {
		revenue += d.Revenue
		expenses += d.Expenses
		sold += d.SoldCPU + d.SoldGPU
	}

	final := report.Final
	fmt.Printf("\n📅 Simulated %d days, ended on day %d in era %s\n", len(report.Days), final.Day, final.CurrentEraID)
	fmt.Printf("💰 Money: $%s   Net worth: $%s\n", humanize.Commaf(final.Money), humanize.Commaf(report.NetWorth()))
	fmt.Printf("📈 Revenue: $%s   Expenses: $%s   Chips sold: %s\n",
		humanize.Commaf(revenue), humanize.Commaf(expenses), humanize.Comma(int64(sold)))
	fmt.Printf("🔬 Tech: CPU %d, GPU %d   Researchers: %d   Reputation: %d\n",
		final.TechLevels[models.CPU], final.TechLevels[models.GPU], final.Researchers, final.Reputation)

	if report.Bankrupt {
		errorColor.Println("\n✗ Went bankrupt")
	} else {
		successColor.Println("\n✓ Still trading")
	}
	fmt.Println()
}

package driver

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/napolitain/chip-tycoon/internal/bot"
	"github.com/napolitain/chip-tycoon/internal/loader"
	"github.com/napolitain/chip-tycoon/internal/models"
	"github.com/napolitain/chip-tycoon/internal/sim"
)

func newTestEngine(t *testing.T) *sim.Engine {
	t.Helper()
	content, err := loader.LoadContent("../../data")
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}
	engine, err := sim.NewEngine(content)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRecordsEveryDay(t *testing.T) {
	engine := newTestEngine(t)
	report := Run(engine, Options{Days: 60, Seed: 7, Strategy: bot.DefaultStrategy(), Logger: quietLogger()})

	if report.Bankrupt {
		t.Fatalf("default strategy went bankrupt in 60 days")
	}
	if len(report.Days) != 60 {
		t.Fatalf("recorded %d days, want 60", len(report.Days))
	}
	for i, d := range report.Days {
		if d.Day != i+1 {
			t.Fatalf("row %d has day %d", i, d.Day)
		}
	}
	if report.Final.Day != 61 {
		t.Fatalf("final day = %d", report.Final.Day)
	}

	produced, sold := 0, 0
	for _, d := range report.Days {
		produced += d.ProducedCPU + d.ProducedGPU
		sold += d.SoldCPU + d.SoldGPU
	}
	if produced == 0 || sold == 0 {
		t.Fatalf("bot never produced (%d) or sold (%d)", produced, sold)
	}
}

func TestRunDeterministic(t *testing.T) {
	engine := newTestEngine(t)
	opts := Options{Days: 120, Seed: 99, Strategy: bot.DefaultStrategy(), Logger: quietLogger()}

	a := Run(engine, opts)
	b := Run(engine, opts)
	if !reflect.DeepEqual(a.Days, b.Days) {
		t.Fatalf("same seed produced different time series")
	}
	if !reflect.DeepEqual(a.Final, b.Final) {
		t.Fatalf("same seed produced different final states")
	}
}

func TestRunHaltsOnBankruptcy(t *testing.T) {
	engine := newTestEngine(t)
	report := Run(engine, Options{Days: 30, Seed: 1, BankruptcyFloor: 1e12, Strategy: bot.DefaultStrategy(), Logger: quietLogger()})

	if !report.Bankrupt {
		t.Fatalf("expected bankruptcy")
	}
	if len(report.Days) != 1 {
		t.Fatalf("run should halt after the first day, recorded %d", len(report.Days))
	}
}

func TestRecordAggregatesEvents(t *testing.T) {
	var d DayRecord
	d.record([]sim.Event{
		{Kind: sim.KindProduce, Product: models.CPU, Quantity: 90, Money: -800},
		{Kind: sim.KindProduce, Product: models.GPU, Quantity: 40, Money: -500},
		{Kind: sim.KindSell, Product: models.CPU, Quantity: 90, Money: 2700},
		{Kind: sim.KindContractCompleted, Money: 3000},
		{Kind: sim.KindSalaries, Money: -200},
		{Kind: sim.KindTakeLoan, Money: 10000},
		{Kind: sim.KindBuySilicon, Failed: true, Reason: sim.ReasonInsufficientFunds},
		{Kind: sim.KindCovertComplete, Failed: true, Money: -5000},
	})

	if d.ProducedCPU != 90 || d.ProducedGPU != 40 || d.SoldCPU != 90 || d.SoldGPU != 0 {
		t.Fatalf("units = %+v", d)
	}
	if d.Revenue != 5700 {
		t.Fatalf("revenue = %.0f, want 5700", d.Revenue)
	}
	if d.Expenses != 6500 {
		t.Fatalf("expenses = %.0f, want 6500", d.Expenses)
	}
}

func TestWriteCSV(t *testing.T) {
	days := []DayRecord{
		{Day: 1, Money: 1234.5, RP: 3.14159, CPUTech: 1, Researchers: 2, OfficeLevel: models.Basement, ProducedCPU: 10, SoldCPU: 10, Revenue: 300, Expenses: 120.004},
		{Day: 2, Money: -50, OfficeLevel: models.Garage},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, days); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "\uFEFFsep=;\n") {
		t.Fatalf("missing BOM or separator hint: %q", out[:min(len(out), 12)])
	}
	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(out, "\uFEFF"), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), lines)
	}
	if lines[1] != strings.Join(CSVHeader, ";") {
		t.Fatalf("header = %q", lines[1])
	}
	if want := "1;1234.50;3.14;1;0;2;BASEMENT;10;0;10;0;300.00;120.00"; lines[2] != want {
		t.Fatalf("row = %q, want %q", lines[2], want)
	}
	if !strings.HasPrefix(lines[3], "2;-50.00;") {
		t.Fatalf("row = %q", lines[3])
	}
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")
	if err := ExportCSV(path, []DayRecord{{Day: 1}}); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\xEF\xBB\xBFsep=;")) {
		t.Fatalf("file does not start with UTF-8 BOM")
	}
}

func TestRunStrategies(t *testing.T) {
	engine := newTestEngine(t)
	strategies := bot.Strategies()[:3]
	results := RunStrategies(engine, strategies, []int64{1, 2}, Options{Days: 45, Logger: quietLogger()})

	if len(results) != len(strategies) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if len(r.Reports) != 2 {
			t.Fatalf("%s ran %d seeds", r.Strategy, len(r.Reports))
		}
		if i > 0 && r.MeanNetWorth > results[i-1].MeanNetWorth {
			t.Fatalf("results not ranked: %s above %s", results[i-1].Strategy, r.Strategy)
		}
		if r.Reports[0].Seed != 1 || r.Reports[1].Seed != 2 {
			t.Fatalf("seeds not threaded through")
		}
	}
}

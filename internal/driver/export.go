package driver

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// utf8BOM lets spreadsheet tools detect the encoding
const utf8BOM = "\uFEFF"

// CSVHeader is the column order of the export
var CSVHeader = []string{
	"day", "money", "rp", "cpuTech", "gpuTech", "researchers", "officeLevel",
	"producedCPU", "producedGPU", "soldCPU", "soldGPU", "revenue", "expenses",
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// WriteCSV writes the time series as semicolon separated values with a
// byte order mark and a "sep=;" hint line.
func WriteCSV(w io.Writer, days []DayRecord) error {
	if _, err := io.WriteString(w, utf8BOM+"sep=;\n"); err != nil {
		return fmt.Errorf("write preamble: %w", err)
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, d := range days {
		row := []string{
			strconv.Itoa(d.Day),
			money(d.Money),
			money(d.RP),
			strconv.Itoa(d.CPUTech),
			strconv.Itoa(d.GPUTech),
			strconv.Itoa(d.Researchers),
			d.OfficeLevel.String(),
			strconv.Itoa(d.ProducedCPU),
			strconv.Itoa(d.ProducedGPU),
			strconv.Itoa(d.SoldCPU),
			strconv.Itoa(d.SoldGPU),
			money(d.Revenue),
			money(d.Expenses),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write day %d: %w", d.Day, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the time series to path
func ExportCSV(path string, days []DayRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(f, days); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

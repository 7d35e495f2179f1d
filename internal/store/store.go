// Package store keeps simulation reports in SQLite so runs can be compared
// after the fact.
package store

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/napolitain/chip-tycoon/internal/driver"
)

// RunSummary is one row of the runs table
type RunSummary struct {
	ID         int64     `db:"id"`
	Strategy   string    `db:"strategy"`
	Seed       int64     `db:"seed"`
	Days       int       `db:"days"`
	Bankrupt   bool      `db:"bankrupt"`
	FinalMoney float64   `db:"final_money"`
	NetWorth   float64   `db:"net_worth"`
	CreatedAt  time.Time `db:"created_at"`
}

// DB wraps a SQLite connection holding run reports
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a report database at path
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		strategy TEXT NOT NULL,
		seed INTEGER NOT NULL,
		days INTEGER NOT NULL,
		bankrupt INTEGER NOT NULL,
		final_money REAL NOT NULL,
		net_worth REAL NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS run_days (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		day INTEGER NOT NULL,
		money REAL NOT NULL,
		rp REAL NOT NULL,
		cpu_tech INTEGER NOT NULL,
		gpu_tech INTEGER NOT NULL,
		researchers INTEGER NOT NULL,
		office_level INTEGER NOT NULL,
		produced_cpu INTEGER NOT NULL,
		produced_gpu INTEGER NOT NULL,
		sold_cpu INTEGER NOT NULL,
		sold_gpu INTEGER NOT NULL,
		revenue REAL NOT NULL,
		expenses REAL NOT NULL,
		PRIMARY KEY (run_id, day)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun writes a report and its time series in one transaction and
// returns the new run id.
func (db *DB) SaveRun(report driver.Report) (int64, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs
		(strategy, seed, days, bankrupt, final_money, net_worth, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		report.Strategy, report.Seed, len(report.Days), report.Bankrupt,
		report.Final.Money, report.NetWorth(), time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Preparex(`INSERT INTO run_days
		(run_id, day, money, rp, cpu_tech, gpu_tech, researchers, office_level,
		 produced_cpu, produced_gpu, sold_cpu, sold_gpu, revenue, expenses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, d := range report.Days {
		if _, err := stmt.Exec(id, d.Day, d.Money, d.RP, d.CPUTech, d.GPUTech,
			d.Researchers, int(d.OfficeLevel), d.ProducedCPU, d.ProducedGPU,
			d.SoldCPU, d.SoldGPU, d.Revenue, d.Expenses); err != nil {
			return 0, fmt.Errorf("insert day %d: %w", d.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns every stored run, best net worth first
func (db *DB) ListRuns() ([]RunSummary, error) {
	var runs []RunSummary
	err := db.conn.Select(&runs,
		"SELECT id, strategy, seed, days, bankrupt, final_money, net_worth, created_at FROM runs ORDER BY net_worth DESC, id")
	return runs, err
}

// LoadDays returns the time series of a run in day order
func (db *DB) LoadDays(runID int64) ([]driver.DayRecord, error) {
	var days []driver.DayRecord
	err := db.conn.Select(&days, `SELECT day, money, rp, cpu_tech, gpu_tech, researchers,
		office_level, produced_cpu, produced_gpu, sold_cpu, sold_gpu, revenue, expenses
		FROM run_days WHERE run_id = ? ORDER BY day`, runID)
	return days, err
}

// CountRuns returns the number of stored runs
func (db *DB) CountRuns() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM runs")
	return n, err
}

package config

import (
	"os"
	"strconv"
	"strings"
)

// SimConfig holds the CLI defaults; flags override them
type SimConfig struct {
	DataDir         string
	Days            int
	Seed            int64
	BankruptcyFloor float64
	DBPath          string
}

// LoadSimFromEnv reads the TYCOON_* variables, falling back to defaults
// for unset or malformed values
func LoadSimFromEnv() SimConfig {
	return SimConfig{
		DataDir:         envDefault("TYCOON_DATA_DIR", "data"),
		Days:            envIntDefault("TYCOON_DAYS", 365),
		Seed:            envInt64Default("TYCOON_SEED", 42),
		BankruptcyFloor: envFloatDefault("TYCOON_BANKRUPTCY_FLOOR", -50000),
		DBPath:          strings.TrimSpace(os.Getenv("TYCOON_DB")),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envIntDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64Default(key string, fallback int64) int64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envFloatDefault(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

package config

import "testing"

func TestLoadSimFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"TYCOON_DATA_DIR", "TYCOON_DAYS", "TYCOON_SEED", "TYCOON_BANKRUPTCY_FLOOR", "TYCOON_DB"} {
		t.Setenv(key, "")
	}

	cfg := LoadSimFromEnv()
	if cfg.DataDir != "data" || cfg.Days != 365 || cfg.Seed != 42 || cfg.BankruptcyFloor != -50000 || cfg.DBPath != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadSimFromEnvOverrides(t *testing.T) {
	t.Setenv("TYCOON_DATA_DIR", " /srv/content ")
	t.Setenv("TYCOON_DAYS", "730")
	t.Setenv("TYCOON_SEED", "7")
	t.Setenv("TYCOON_BANKRUPTCY_FLOOR", "-1000.5")
	t.Setenv("TYCOON_DB", "runs.db")

	cfg := LoadSimFromEnv()
	if cfg.DataDir != "/srv/content" || cfg.Days != 730 || cfg.Seed != 7 || cfg.BankruptcyFloor != -1000.5 || cfg.DBPath != "runs.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadSimFromEnvBadValuesFallBack(t *testing.T) {
	t.Setenv("TYCOON_DAYS", "a year")
	t.Setenv("TYCOON_SEED", "0x2a")
	t.Setenv("TYCOON_BANKRUPTCY_FLOOR", "broke")

	cfg := LoadSimFromEnv()
	if cfg.Days != 365 || cfg.Seed != 42 || cfg.BankruptcyFloor != -50000 {
		t.Fatalf("bad values should fall back: %+v", cfg)
	}
}

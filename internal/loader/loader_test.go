package loader

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/napolitain/chip-tycoon/internal/models"
)

func TestLoadContent(t *testing.T) {
	content, err := LoadContent("../../data")
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}

	for _, p := range models.AllProductTypes() {
		tree := content.TechTrees[p]
		if len(tree) < 2 {
			t.Fatalf("%s tech tree too short: %d", p, len(tree))
		}
		for i := 1; i < len(tree); i++ {
			if tree[i].BaseMarketPrice <= tree[i-1].BaseMarketPrice {
				t.Errorf("%s tier %d should sell above tier %d", p, i, i-1)
			}
			if tree[i].ResearchCost <= tree[i-1].ResearchCost {
				t.Errorf("%s tier %d should cost more research than tier %d", p, i, i-1)
			}
		}
		if content.BaseDailyDemand[p] <= 0 {
			t.Errorf("%s has no base demand", p)
		}
	}

	if got := content.MaxOfficeLevel(); got != models.Headquarters {
		t.Errorf("top office = %s, want HEADQUARTERS", got)
	}
	for i := 1; i < len(content.Offices); i++ {
		if content.Offices[i].SiliconCap <= content.Offices[i-1].SiliconCap {
			t.Errorf("office %s should hold more than %s", content.Offices[i].Name, content.Offices[i-1].Name)
		}
	}

	if content.Eras[0].StartDay != 1 {
		t.Errorf("first era should start on day 1")
	}
	for _, ev := range content.Events {
		if ev.MinEra > content.Eras[len(content.Eras)-1].Tier {
			t.Errorf("event %s can never fire", ev.ID)
		}
	}

	t.Logf("Loaded %d eras, %d events, %d campaigns", len(content.Eras), len(content.Events), len(content.Campaigns))
}

func TestLoadContentJSONFallback(t *testing.T) {
	content, err := LoadContent("../../data")
	if err != nil {
		t.Fatalf("Failed to load content: %v", err)
	}

	dir := t.TempDir()
	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "content.json"), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fromJSON, err := LoadContent(dir)
	if err != nil {
		t.Fatalf("Failed to load JSON content: %v", err)
	}
	if len(fromJSON.Offices) != len(content.Offices) || fromJSON.Start != content.Start {
		t.Fatalf("JSON content differs from YAML content")
	}
}

func TestLoadContentErrors(t *testing.T) {
	if _, err := LoadContent(t.TempDir()); err == nil {
		t.Fatal("expected error for empty directory")
	}

	_, err := ParseYAML([]byte("tech_trees: {}\noffices: []\neras: []\n"))
	var cfgErr *models.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}

	if _, err := ParseYAML([]byte("bogus_table: 1\n")); err == nil {
		t.Fatal("unknown keys should be rejected")
	}
}

package economy

import (
	"errors"
	"testing"

	"github.com/napolitain/chip-tycoon/internal/models"
)

func TestReputationBonusesMonotonic(t *testing.T) {
	prev := GetReputationBonuses(0)
	for rep := 1; rep <= 100; rep++ {
		cur := GetReputationBonuses(rep)
		if cur.ContractBonus < prev.ContractBonus {
			t.Errorf("rep %d: contract bonus dropped %.2f -> %.2f", rep, prev.ContractBonus, cur.ContractBonus)
		}
		if cur.PriceBonus < prev.PriceBonus {
			t.Errorf("rep %d: price bonus dropped %.2f -> %.2f", rep, prev.PriceBonus, cur.PriceBonus)
		}
		if cur.ResearchBonus < prev.ResearchBonus {
			t.Errorf("rep %d: research bonus dropped %.2f -> %.2f", rep, prev.ResearchBonus, cur.ResearchBonus)
		}
		// silicon discount is a cost multiplier: it must never grow
		if cur.SiliconDiscount > prev.SiliconDiscount {
			t.Errorf("rep %d: silicon cost multiplier grew %.2f -> %.2f", rep, prev.SiliconDiscount, cur.SiliconDiscount)
		}
		prev = cur
	}
}

func TestReputationBonusesBaseline(t *testing.T) {
	b := GetReputationBonuses(0)
	if b.ContractBonus != 1 || b.PriceBonus != 1 || b.SiliconDiscount != 1 || b.ResearchBonus != 1 {
		t.Fatalf("reputation 0 should be neutral, got %+v", b)
	}
	if GetReputationBonuses(-20) != b {
		t.Fatalf("negative reputation should clamp to 0")
	}
	if GetReputationBonuses(500) != GetReputationBonuses(100) {
		t.Fatalf("reputation above 100 should clamp")
	}
}

func TestEraLookup(t *testing.T) {
	eras := []models.Era{
		{ID: "dawn", StartDay: 1, Tier: 0},
		{ID: "pc", StartDay: 100, Tier: 2},
		{ID: "mobile", StartDay: 300, Tier: 4},
	}

	tier, err := MarketEra(eras, "pc")
	if err != nil || tier != 2 {
		t.Fatalf("MarketEra(pc) = %d, %v", tier, err)
	}

	tier, err = MarketEra(eras, "nope")
	var cfgErr *models.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if tier != 0 {
		t.Fatalf("unknown era should fall back to first tier, got %d", tier)
	}

	if e, ok := EraForDay(eras, 150); !ok || e.ID != "pc" {
		t.Fatalf("EraForDay(150) = %v %v", e, ok)
	}
	if e, ok := NextEra(eras, "pc"); !ok || e.ID != "mobile" {
		t.Fatalf("NextEra(pc) = %v %v", e, ok)
	}
	if _, ok := NextEra(eras, "mobile"); ok {
		t.Fatalf("last era has no successor")
	}
}

func TestStorageCost(t *testing.T) {
	if c := StorageCost(500, 1000); c != 0 {
		t.Fatalf("under capacity should be free, got %.2f", c)
	}
	low := StorageCost(1100, 1000)
	high := StorageCost(1500, 1000)
	if low != 100*StorageCostPerUnit {
		t.Fatalf("StorageCost(1100) = %.2f", low)
	}
	if high <= low {
		t.Fatalf("storage cost must grow with excess: %.2f <= %.2f", high, low)
	}
}

func TestBaseResearchPoints(t *testing.T) {
	if rp := BaseResearchPoints(0); rp != 0 {
		t.Fatalf("no researchers should yield 0, got %.2f", rp)
	}
	five := BaseResearchPoints(5)
	if five <= 0 || five >= 5*RPPerResearcher {
		t.Fatalf("BaseResearchPoints(5) = %.2f, want in (0, %.2f)", five, 5*RPPerResearcher)
	}

	// each extra researcher adds less than the previous one
	prevGain := BaseResearchPoints(1)
	for n := 2; n <= 20; n++ {
		gain := BaseResearchPoints(n) - BaseResearchPoints(n-1)
		if gain >= prevGain {
			t.Fatalf("marginal gain of researcher %d (%.3f) not diminishing", n, gain)
		}
		prevGain = gain
	}
}

package economy

import "github.com/napolitain/chip-tycoon/internal/models"

// ReputationBonuses are multiplicative factors applied at call sites.
// SiliconDiscount multiplies silicon cost, so lower is better.
type ReputationBonuses struct {
	ContractBonus   float64
	PriceBonus      float64
	SiliconDiscount float64
	ResearchBonus   float64
}

type reputationTier struct {
	minReputation int
	bonuses       ReputationBonuses
}

// ordered by minReputation descending
var reputationTiers = []reputationTier{
	{80, ReputationBonuses{ContractBonus: 1.30, PriceBonus: 1.12, SiliconDiscount: 0.88, ResearchBonus: 1.25}},
	{60, ReputationBonuses{ContractBonus: 1.20, PriceBonus: 1.08, SiliconDiscount: 0.92, ResearchBonus: 1.15}},
	{40, ReputationBonuses{ContractBonus: 1.10, PriceBonus: 1.05, SiliconDiscount: 0.95, ResearchBonus: 1.10}},
	{20, ReputationBonuses{ContractBonus: 1.05, PriceBonus: 1.02, SiliconDiscount: 0.98, ResearchBonus: 1.05}},
	{0, ReputationBonuses{ContractBonus: 1.00, PriceBonus: 1.00, SiliconDiscount: 1.00, ResearchBonus: 1.00}},
}

// GetReputationBonuses maps a reputation score to its bonus bundle
func GetReputationBonuses(reputation int) ReputationBonuses {
	reputation = models.ClampReputation(reputation)
	for _, tier := range reputationTiers {
		if reputation >= tier.minReputation {
			return tier.bonuses
		}
	}
	return reputationTiers[len(reputationTiers)-1].bonuses
}

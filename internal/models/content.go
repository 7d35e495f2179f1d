package models

import (
	"errors"
	"fmt"
)

// TechNode is one tier of a product's tech tree
type TechNode struct {
	Tier            int     `json:"tier" yaml:"tier"`
	Name            string  `json:"name" yaml:"name"`
	Yield           float64 `json:"yield" yaml:"yield"` // percent
	BaseMarketPrice float64 `json:"base_market_price" yaml:"base_market_price"`
	ResearchCost    float64 `json:"research_cost" yaml:"research_cost"`
	UnitCost        float64 `json:"unit_cost" yaml:"unit_cost"`
	SiliconPerUnit  float64 `json:"silicon_per_unit" yaml:"silicon_per_unit"`
	Performance     float64 `json:"performance" yaml:"performance"`
	Efficiency      float64 `json:"efficiency" yaml:"efficiency"`
}

// OfficeConfig holds the limits and costs of an office level
type OfficeConfig struct {
	Level          OfficeLevel `json:"level" yaml:"level"`
	Name           string      `json:"name" yaml:"name"`
	SiliconCap     float64     `json:"silicon_cap" yaml:"silicon_cap"`
	MaxResearchers int         `json:"max_researchers" yaml:"max_researchers"`
	UpgradeCost    float64     `json:"upgrade_cost" yaml:"upgrade_cost"`
	Rent           float64     `json:"rent" yaml:"rent"`
	MaxLoans       int         `json:"max_loans" yaml:"max_loans"`
	MaxLoanAmount  float64     `json:"max_loan_amount" yaml:"max_loan_amount"`
}

// Era is a phase of the market timeline
type Era struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	StartDay int    `json:"start_day" yaml:"start_day"`
	Tier     int    `json:"tier" yaml:"tier"`
}

// EffectSpec declares how a world event changes the state.
// Factors of zero mean "unchanged".
type EffectSpec struct {
	MoneyDelta         float64 `json:"money_delta,omitempty" yaml:"money_delta,omitempty"`
	MoneyFactor        float64 `json:"money_factor,omitempty" yaml:"money_factor,omitempty"`
	RPDelta            float64 `json:"rp_delta,omitempty" yaml:"rp_delta,omitempty"`
	ReputationDelta    int     `json:"reputation_delta,omitempty" yaml:"reputation_delta,omitempty"`
	SiliconPriceFactor float64 `json:"silicon_price_factor,omitempty" yaml:"silicon_price_factor,omitempty"`
	SiliconFactor      float64 `json:"silicon_factor,omitempty" yaml:"silicon_factor,omitempty"`
	SaturationDelta    float64 `json:"saturation_delta,omitempty" yaml:"saturation_delta,omitempty"`
	DemandFactor       float64 `json:"demand_factor,omitempty" yaml:"demand_factor,omitempty"`
}

// EventDef is a random world event from the catalog
type EventDef struct {
	ID     string     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name"`
	MinEra int        `json:"min_era,omitempty" yaml:"min_era,omitempty"` // era tier filter
	Effect EffectSpec `json:"effect" yaml:"effect"`
}

// Campaign is a marketing campaign from the catalog
type Campaign struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Cost           float64 `json:"cost" yaml:"cost"`
	Duration       int     `json:"duration" yaml:"duration"`
	AwarenessBoost float64 `json:"awareness_boost" yaml:"awareness_boost"`
}

// StartConfig seeds a fresh run
type StartConfig struct {
	Money        float64 `json:"money" yaml:"money"`
	Silicon      float64 `json:"silicon" yaml:"silicon"`
	SiliconPrice float64 `json:"silicon_price" yaml:"silicon_price"`
	Reputation   int     `json:"reputation" yaml:"reputation"`
}

// Content is the read-only static configuration supplied to the core
type Content struct {
	TechTrees       map[ProductType][]TechNode `json:"tech_trees" yaml:"tech_trees"`
	Offices         []OfficeConfig             `json:"offices" yaml:"offices"`
	Eras            []Era                      `json:"eras" yaml:"eras"`
	Events          []EventDef                 `json:"events" yaml:"events"`
	Campaigns       []Campaign                 `json:"campaigns" yaml:"campaigns"`
	Competitors     []Competitor               `json:"competitors" yaml:"competitors"`
	Stocks          []Stock                    `json:"stocks" yaml:"stocks"`
	BaseDailyDemand map[ProductType]float64    `json:"base_daily_demand" yaml:"base_daily_demand"`
	Start           StartConfig                `json:"start" yaml:"start"`
}

// TechNode returns the node for product at tier
func (c *Content) TechNode(product ProductType, tier int) (TechNode, error) {
	tree, ok := c.TechTrees[product]
	if !ok {
		return TechNode{}, &ConfigError{Table: "tech_trees", Key: string(product), Msg: "missing tech tree"}
	}
	if tier < 0 || tier >= len(tree) {
		return TechNode{}, &ConfigError{Table: "tech_trees", Key: fmt.Sprintf("%s[%d]", product, tier), Msg: "tier out of range"}
	}
	return tree[tier], nil
}

// MaxTier returns the highest tier index for product, or -1
func (c *Content) MaxTier(product ProductType) int {
	return len(c.TechTrees[product]) - 1
}

// Office returns the config for level
func (c *Content) Office(level OfficeLevel) (OfficeConfig, error) {
	if int(level) < 0 || int(level) >= len(c.Offices) {
		return OfficeConfig{}, &ConfigError{Table: "offices", Key: level.String(), Msg: "unknown office level"}
	}
	return c.Offices[level], nil
}

// MaxOfficeLevel returns the top office level
func (c *Content) MaxOfficeLevel() OfficeLevel {
	return OfficeLevel(len(c.Offices) - 1)
}

// Campaign looks up a campaign by id
func (c *Content) Campaign(id string) (Campaign, bool) {
	for _, camp := range c.Campaigns {
		if camp.ID == id {
			return camp, true
		}
	}
	return Campaign{}, false
}

// Event looks up a world event by id
func (c *Content) Event(id string) (EventDef, bool) {
	for _, ev := range c.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return EventDef{}, false
}

// Validate checks the tables for the entries the core depends on
func (c *Content) Validate() error {
	var errs []error
	for _, p := range AllProductTypes() {
		tree := c.TechTrees[p]
		if len(tree) == 0 {
			errs = append(errs, &ConfigError{Table: "tech_trees", Key: string(p), Msg: "missing tech tree"})
			continue
		}
		for i, node := range tree {
			if node.Tier != i {
				errs = append(errs, &ConfigError{Table: "tech_trees", Key: fmt.Sprintf("%s[%d]", p, i), Msg: "tier does not match position"})
			}
			if node.Yield <= 0 || node.Yield > 100 {
				errs = append(errs, &ConfigError{Table: "tech_trees", Key: fmt.Sprintf("%s[%d]", p, i), Msg: "yield must be in (0,100]"})
			}
		}
	}
	if len(c.Offices) == 0 {
		errs = append(errs, &ConfigError{Table: "offices", Msg: "no office levels"})
	}
	for i, o := range c.Offices {
		if int(o.Level) != i {
			errs = append(errs, &ConfigError{Table: "offices", Key: o.Name, Msg: "level does not match position"})
		}
	}
	if len(c.Eras) == 0 {
		errs = append(errs, &ConfigError{Table: "eras", Msg: "no eras"})
	}
	for i := 1; i < len(c.Eras); i++ {
		if c.Eras[i].StartDay <= c.Eras[i-1].StartDay {
			errs = append(errs, &ConfigError{Table: "eras", Key: c.Eras[i].ID, Msg: "start days must increase"})
		}
	}
	seen := make(map[string]bool)
	for _, camp := range c.Campaigns {
		if seen[camp.ID] {
			errs = append(errs, &ConfigError{Table: "campaigns", Key: camp.ID, Msg: "duplicate id"})
		}
		seen[camp.ID] = true
	}
	return errors.Join(errs...)
}

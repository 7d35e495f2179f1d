package models

import "strings"

// InitialState builds the day-one state of a fresh run from content
func InitialState(c *Content) GameState {
	state := NewGameState()
	state.Money = c.Start.Money
	state.Silicon = c.Start.Silicon
	state.SiliconPrice = c.Start.SiliconPrice
	state.Reputation = c.Start.Reputation
	state.OfficeLevel = Garage

	for _, p := range AllProductTypes() {
		state.TechLevels[p] = 0
		state.GlobalTechLevels[p] = 0
		state.Inventory[p] = 0
		state.MarketSaturation[p] = 0
		state.DailyDemand[p] = c.BaseDailyDemand[p]
		state.BrandAwareness[p] = 0
		if tree := c.TechTrees[p]; len(tree) > 0 {
			state.DesignSpecs[p] = DesignSpec{Performance: tree[0].Performance, Efficiency: tree[0].Efficiency}
		}
		state.ProductionLines = append(state.ProductionLines, ProductionLine{
			ID:         "line-" + strings.ToLower(string(p)),
			Product:    p,
			Efficiency: 100,
		})
	}

	if len(c.Eras) > 0 {
		state.CurrentEraID = c.Eras[0].ID
	}

	for _, comp := range c.Competitors {
		state.Competitors = append(state.Competitors, comp.Clone())
	}
	state.Stocks = append(state.Stocks, c.Stocks...)
	for i := range state.Stocks {
		state.Stocks[i].Owned = 0
		state.Stocks[i].AvgBuyPrice = 0
	}
	return state
}

package sim

import (
	"math"
	"strconv"

	"github.com/napolitain/chip-tycoon/internal/economy"
	"github.com/napolitain/chip-tycoon/internal/models"
)

// ProduceOrder is a production batch request. Cost and SiliconCost are
// computed by the caller from the tech node.
type ProduceOrder struct {
	Product     models.ProductType
	Amount      int
	Cost        float64
	SiliconCost float64
}

// OrderFor prices a batch of amount units at the state's current tier
func (e *Engine) OrderFor(s models.GameState, product models.ProductType, amount int) (ProduceOrder, error) {
	node, err := e.content.TechNode(product, s.TechLevels[product])
	if err != nil {
		return ProduceOrder{}, err
	}
	return ProduceOrder{
		Product:     product,
		Amount:      amount,
		Cost:        float64(amount) * node.UnitCost,
		SiliconCost: float64(amount) * node.SiliconPerUnit,
	}, nil
}

// EffectiveYield returns the production yield percentage for a node under
// the state's quality setting and line wear, clamped to [MinYield, MaxYield].
func EffectiveYield(s models.GameState, product models.ProductType, node models.TechNode) float64 {
	y := models.Clamp(node.Yield+s.ProductionQuality.YieldModifier(), MinYield, MaxYield)
	if line, ok := s.LineFor(product); ok {
		y = models.Clamp(y*line.Efficiency/100, MinYield, MaxYield)
	}
	return y
}

// SplitYield divides a batch into good and wasted units
func SplitYield(amount int, yield float64) (good, waste int) {
	good = int(math.Floor(float64(amount) * yield / 100))
	return good, amount - good
}

// Produce runs a production batch. Wasted units are scrapped for a share of
// the base market price; good units fill matching active contracts in list
// order before the remainder goes to inventory.
func (e *Engine) Produce(prev models.GameState, order ProduceOrder) (models.GameState, []Event) {
	if !order.Product.Valid() || order.Amount <= 0 || order.Cost < 0 || order.SiliconCost < 0 {
		return reject(prev, KindProduce, ReasonInvalid)
	}
	if prev.Silicon < order.SiliconCost {
		return reject(prev, KindProduce, ReasonInsufficientSilicon)
	}
	if prev.Money < order.Cost {
		return reject(prev, KindProduce, ReasonInsufficientFunds)
	}
	node, err := e.content.TechNode(order.Product, prev.TechLevels[order.Product])
	if err != nil {
		return rejectConfig(prev, KindProduce, err)
	}

	good, waste := SplitYield(order.Amount, EffectiveYield(prev, order.Product, node))
	scrap := math.Floor(float64(waste) * node.BaseMarketPrice * ScrapRate)

	next := prev.Clone()
	next.Money += scrap - order.Cost
	next.Silicon -= order.SiliconCost

	events := []Event{{
		Kind:     KindProduce,
		Product:  order.Product,
		Quantity: float64(good),
		Waste:    float64(waste),
		Money:    scrap - order.Cost,
	}}

	remaining, completed := fillContracts(&next, order.Product, good)
	bonus := economy.GetReputationBonuses(next.Reputation).ContractBonus
	for _, c := range completed {
		payment := c.CompletionPayment
		if payment <= 0 {
			payment = math.Floor(c.Reward * FallbackCompletionShare)
		}
		payment = math.Floor(payment * bonus)
		before := next.Reputation
		next.Money += payment
		next.Reputation = models.ClampReputation(next.Reputation + ContractCompletionReputation)
		next.AddLog("contract_completed", models.SeveritySuccess, c.ID, formatMoney(payment))
		events = append(events, Event{
			Kind:       KindContractCompleted,
			Product:    c.RequiredProduct,
			Subject:    c.ID,
			Quantity:   float64(c.RequiredAmount),
			Money:      payment,
			Reputation: next.Reputation - before,
		})
	}

	next.Inventory[order.Product] += remaining
	next.AddLog("production_complete", models.SeverityInfo, string(order.Product), strconv.Itoa(good), strconv.Itoa(waste))
	return next, events
}

// fillContracts allocates units to eligible active contracts in order and
// removes the ones that become fully delivered. It returns the units left
// over and the completed contracts.
func fillContracts(s *models.GameState, product models.ProductType, units int) (int, []models.Contract) {
	spec := s.DesignSpecs[product]
	for i := range s.ActiveContracts {
		if units <= 0 {
			break
		}
		c := &s.ActiveContracts[i]
		if c.RequiredProduct != product || c.Remaining() <= 0 {
			continue
		}
		if spec.Performance < c.MinPerformance || spec.Efficiency < c.MinEfficiency {
			continue
		}
		take := min(units, c.Remaining())
		c.FulfilledAmount += take
		units -= take
	}

	var completed []models.Contract
	kept := s.ActiveContracts[:0]
	for _, c := range s.ActiveContracts {
		if c.Remaining() <= 0 {
			completed = append(completed, c)
			continue
		}
		kept = append(kept, c)
	}
	s.ActiveContracts = kept
	return units, completed
}

// Sell liquidates the whole inventory of a product. A non-positive price
// falls back to the node's base market price.
func (e *Engine) Sell(prev models.GameState, product models.ProductType, price float64, rng Rand) (models.GameState, []Event) {
	if !product.Valid() {
		return reject(prev, KindSell, ReasonInvalid)
	}
	count := prev.Inventory[product]
	if count <= 0 {
		return reject(prev, KindSell, ReasonEmptyInventory)
	}
	tier := prev.TechLevels[product]
	node, err := e.content.TechNode(product, tier)
	if err != nil {
		return rejectConfig(prev, KindSell, err)
	}
	era, err := e.marketEra(prev)
	if err != nil {
		return rejectConfig(prev, KindSell, err)
	}
	if price <= 0 {
		price = node.BaseMarketPrice
	}

	demand := prev.DailyDemand[product]
	res := economy.CalculateFinalRevenue(economy.RevenueInput{
		BasePrice:        price,
		Amount:           float64(count),
		ProductTier:      tier,
		ProductType:      product,
		MarketEra:        era,
		MarketSaturation: prev.MarketSaturation[product],
		DemandRemaining:  &demand,
	})
	revenue := math.Floor(res.Revenue * economy.GetReputationBonuses(prev.Reputation).PriceBonus)

	next := prev.Clone()
	next.Money += revenue
	next.MarketSaturation[product] = math.Min(1, prev.MarketSaturation[product]+float64(count)*SaturationPerUnit)
	next.DailyDemand[product] = math.Max(0, demand-float64(count))
	next.Inventory[product] = 0

	ev := Event{
		Kind:     KindSell,
		Product:  product,
		Quantity: float64(count),
		Money:    revenue,
		Warnings: res.Warnings,
	}
	if count > SaleReputationMinCount && tier >= era-1 && rng.Float64() < SaleReputationChance {
		before := next.Reputation
		next.Reputation = models.ClampReputation(next.Reputation + 1)
		ev.Reputation = next.Reputation - before
	}

	for _, w := range res.Warnings {
		next.AddLog(w, models.SeverityWarning, string(product))
	}
	next.AddLog("sale_complete", models.SeveritySuccess, string(product), strconv.Itoa(count), formatMoney(revenue))
	return next, []Event{ev}
}

// BuySilicon purchases raw silicon at the current price, discounted by
// reputation. Purchases beyond the office capacity are refused.
func (e *Engine) BuySilicon(prev models.GameState, amount float64) (models.GameState, []Event) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return reject(prev, KindBuySilicon, ReasonInvalid)
	}
	office, err := e.office(prev)
	if err != nil {
		return rejectConfig(prev, KindBuySilicon, err)
	}
	cost := amount * prev.SiliconPrice * economy.GetReputationBonuses(prev.Reputation).SiliconDiscount
	if prev.Money < cost {
		return reject(prev, KindBuySilicon, ReasonInsufficientFunds)
	}
	if prev.Silicon+amount > office.SiliconCap {
		return rejectLogged(prev, KindBuySilicon, ReasonWarehouseFull, formatMoney(office.SiliconCap))
	}

	next := prev.Clone()
	next.Money -= cost
	next.Silicon += amount
	return next, []Event{{Kind: KindBuySilicon, Quantity: amount, Money: -cost}}
}

// SetProductionQuality changes the yield setting
func (e *Engine) SetProductionQuality(prev models.GameState, q models.ProductionQuality) (models.GameState, []Event) {
	if !q.Valid() {
		return reject(prev, KindSetQuality, ReasonInvalid)
	}
	next := prev.Clone()
	next.ProductionQuality = q
	return next, []Event{{Kind: KindSetQuality, Subject: string(q)}}
}

// MaintainLine services a production line back to full efficiency
func (e *Engine) MaintainLine(prev models.GameState, lineID string) (models.GameState, []Event) {
	idx := prev.LineIndex(lineID)
	if idx < 0 {
		return reject(prev, KindMaintainLine, ReasonUnknownID)
	}
	if prev.Money < MaintenanceCost {
		return reject(prev, KindMaintainLine, ReasonInsufficientFunds)
	}
	next := prev.Clone()
	next.Money -= MaintenanceCost
	next.ProductionLines[idx].Efficiency = 100
	next.ProductionLines[idx].LastMaintenanceDay = next.Day
	return next, []Event{{Kind: KindMaintainLine, Subject: lineID, Product: next.ProductionLines[idx].Product, Money: -MaintenanceCost}}
}

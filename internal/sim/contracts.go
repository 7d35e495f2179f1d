package sim

import (
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// AcceptContract moves an offered contract into the active list, fixes its
// deadline and pays the upfront share.
func (e *Engine) AcceptContract(prev models.GameState, id string) (models.GameState, []Event) {
	idx := models.ContractIndex(prev.AvailableContracts, id)
	if idx < 0 {
		return reject(prev, KindAcceptContract, ReasonUnknownID)
	}

	next := prev.Clone()
	c := next.AvailableContracts[idx]
	next.AvailableContracts = append(next.AvailableContracts[:idx], next.AvailableContracts[idx+1:]...)
	c.DeadlineDay = next.Day + c.Duration
	next.ActiveContracts = append(next.ActiveContracts, c)
	next.Money += c.UpfrontPayment
	next.AddLog("contract_accepted", models.SeverityInfo, c.ID, strconv.Itoa(c.DeadlineDay))
	return next, []Event{{
		Kind:     KindAcceptContract,
		Product:  c.RequiredProduct,
		Subject:  c.ID,
		Quantity: float64(c.RequiredAmount),
		Money:    c.UpfrontPayment,
	}}
}

// spawnContract rolls a new offer priced at a markup over the market's
// node at the market era's tier for a random product.
func (e *Engine) spawnContract(era int, rng Rand) (models.Contract, bool) {
	products := models.AllProductTypes()
	product := products[rng.Intn(len(products))]
	amount := ContractMinAmount + rng.Intn(ContractMaxAmount-ContractMinAmount+1)

	tier := min(max(era, 0), e.content.MaxTier(product))
	node, err := e.content.TechNode(product, tier)
	if err != nil {
		return models.Contract{}, false
	}

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return models.Contract{}, false
	}

	reward := math.Floor(float64(amount) * node.BaseMarketPrice * ContractMarkup)
	c := models.Contract{
		ID:                id.String(),
		RequiredProduct:   product,
		RequiredAmount:    amount,
		Reward:            reward,
		UpfrontPayment:    math.Floor(reward * ContractUpfrontShare),
		CompletionPayment: math.Floor(reward * ContractCompletionShare),
		Penalty:           math.Floor(reward * ContractPenaltyShare),
		Duration:          ContractDuration,
	}
	if rng.Float64() < ContractGateChance {
		c.MinPerformance = node.Performance
	}
	return c, true
}

// expireContracts drops active contracts past their deadline and debits
// their penalties.
func expireContracts(s *models.GameState) []Event {
	var events []Event
	kept := s.ActiveContracts[:0]
	for _, c := range s.ActiveContracts {
		if s.Day > c.DeadlineDay {
			s.Money -= c.Penalty
			s.AddLog("contract_expired", models.SeverityDanger, c.ID, formatMoney(c.Penalty))
			events = append(events, Event{
				Kind:    KindContractExpired,
				Product: c.RequiredProduct,
				Subject: c.ID,
				Money:   -c.Penalty,
			})
			continue
		}
		kept = append(kept, c)
	}
	s.ActiveContracts = kept
	return events
}

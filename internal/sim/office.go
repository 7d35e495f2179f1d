package sim

import (
	"strconv"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// UpgradeOffice moves to the next office level for its upgrade cost
func (e *Engine) UpgradeOffice(prev models.GameState) (models.GameState, []Event) {
	if prev.OfficeLevel >= e.content.MaxOfficeLevel() {
		return reject(prev, KindUpgradeOffice, ReasonMaxLevel)
	}
	office, err := e.office(prev)
	if err != nil {
		return rejectConfig(prev, KindUpgradeOffice, err)
	}
	if prev.Money < office.UpgradeCost {
		return rejectLogged(prev, KindUpgradeOffice, ReasonInsufficientFunds, formatMoney(office.UpgradeCost))
	}

	next := prev.Clone()
	next.Money -= office.UpgradeCost
	next.OfficeLevel++
	next.AddLog("office_upgraded", models.SeveritySuccess, next.OfficeLevel.String())
	return next, []Event{{Kind: KindUpgradeOffice, Subject: next.OfficeLevel.String(), Money: -office.UpgradeCost}}
}

// DowngradeOffice moves to the previous level for the relocation fee
func (e *Engine) DowngradeOffice(prev models.GameState) (models.GameState, []Event) {
	if prev.OfficeLevel <= models.Garage {
		return reject(prev, KindDowngradeOffice, ReasonMinLevel)
	}
	if prev.Money < RelocationFee {
		return rejectLogged(prev, KindDowngradeOffice, ReasonInsufficientFunds, formatMoney(RelocationFee))
	}

	next := prev.Clone()
	next.Money -= RelocationFee
	next.OfficeLevel--
	next.AddLog("office_downgraded", models.SeverityWarning, next.OfficeLevel.String())
	return next, []Event{{Kind: KindDowngradeOffice, Subject: next.OfficeLevel.String(), Money: -RelocationFee}}
}

// HireResearcher adds one researcher if the office has room
func (e *Engine) HireResearcher(prev models.GameState, cost float64) (models.GameState, []Event) {
	if cost < 0 {
		return reject(prev, KindHire, ReasonInvalid)
	}
	office, err := e.office(prev)
	if err != nil {
		return rejectConfig(prev, KindHire, err)
	}
	if prev.Researchers >= office.MaxResearchers {
		return reject(prev, KindHire, ReasonStaffCap)
	}
	if prev.Money < cost {
		return reject(prev, KindHire, ReasonInsufficientFunds)
	}

	next := prev.Clone()
	next.Money -= cost
	next.Researchers++
	next.AddLog("researcher_hired", models.SeverityInfo, strconv.Itoa(next.Researchers))
	return next, []Event{{Kind: KindHire, Quantity: 1, Money: -cost}}
}

// FireResearcher lets one researcher go. Severance is owed regardless of
// the balance and the remaining staff lose morale.
func (e *Engine) FireResearcher(prev models.GameState) (models.GameState, []Event) {
	if prev.Researchers <= 0 {
		return reject(prev, KindFire, ReasonNoStaff)
	}

	next := prev.Clone()
	next.Money -= Severance
	next.Researchers--
	next.StaffMorale = models.Clamp(next.StaffMorale-FireMoralePenalty, 0, 100)
	next.AddLog("researcher_fired", models.SeverityWarning, strconv.Itoa(next.Researchers))
	return next, []Event{{Kind: KindFire, Quantity: 1, Money: -Severance}}
}

// SetWorkPolicy changes the research pace
func (e *Engine) SetWorkPolicy(prev models.GameState, policy models.WorkPolicy) (models.GameState, []Event) {
	if !policy.Valid() {
		return reject(prev, KindSetWorkPolicy, ReasonInvalid)
	}
	next := prev.Clone()
	next.WorkPolicy = policy
	return next, []Event{{Kind: KindSetWorkPolicy, Subject: string(policy)}}
}

// Research spends research points to reach a tech tier. The design spec of
// the product follows the node; reaching a tier no run has reached before
// earns prestige.
func (e *Engine) Research(prev models.GameState, product models.ProductType, nextLevel int, cost float64) (models.GameState, []Event) {
	if !product.Valid() || cost < 0 {
		return reject(prev, KindResearch, ReasonInvalid)
	}
	node, err := e.content.TechNode(product, nextLevel)
	if err != nil {
		return rejectConfig(prev, KindResearch, err)
	}
	if prev.RP < cost {
		return reject(prev, KindResearch, ReasonInsufficientRP)
	}

	next := prev.Clone()
	next.RP -= cost
	next.TechLevels[product] = nextLevel
	next.DesignSpecs[product] = models.DesignSpec{Performance: node.Performance, Efficiency: node.Efficiency}
	if nextLevel > next.GlobalTechLevels[product] {
		next.GlobalTechLevels[product] = nextLevel
		next.PrestigePoints += ResearchPrestige
	}
	next.AddLog("research_complete", models.SeveritySuccess, string(product), node.Name)
	return next, []Event{{Kind: KindResearch, Product: product, Subject: node.Name, RP: -cost}}
}

// NextResearch returns the next tier node for product, if any
func (e *Engine) NextResearch(s models.GameState, product models.ProductType) (models.TechNode, bool) {
	node, err := e.content.TechNode(product, s.TechLevels[product]+1)
	return node, err == nil
}

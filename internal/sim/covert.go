package sim

import (
	"math"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// CovertCost returns the price of an operation against a target
func CovertCost(op models.CovertType, target models.Competitor) float64 {
	switch op {
	case models.Espionage:
		return math.Max(EspionageMinCost, target.Money*EspionageCostShare)
	case models.Sabotage:
		return math.Max(SabotageMinCost, target.Money*SabotageCostShare)
	default:
		return 0
	}
}

// CovertDifficulty rates an operation from 1 to 3; sabotage is harder and
// a poorly regarded company is watched more closely.
func CovertDifficulty(op models.CovertType, reputation int) int {
	d := 1
	if op == models.Sabotage {
		d = 2
	}
	if reputation < CovertWatchedReputation {
		d++
	}
	return d
}

// CovertSuccessChance is the probability that an operation of the given
// difficulty succeeds
func CovertSuccessChance(difficulty int) float64 {
	return models.Clamp(0.7-0.15*float64(difficulty-1), 0, 1)
}

// RollCovertOutcome decides the active operation's success
func RollCovertOutcome(s models.GameState, rng Rand) bool {
	return rng.Float64() < CovertSuccessChance(s.Hacking.Difficulty)
}

// CovertOpTrigger opens a covert operation session against a competitor.
// Payment happens on completion.
func (e *Engine) CovertOpTrigger(prev models.GameState, op models.CovertType, targetID string) (models.GameState, []Event) {
	if prev.Hacking.Active {
		return reject(prev, KindCovertTrigger, ReasonOperationActive)
	}
	if op != models.Espionage && op != models.Sabotage {
		return reject(prev, KindCovertTrigger, ReasonInvalid)
	}
	idx := prev.CompetitorIndex(targetID)
	if idx < 0 {
		return reject(prev, KindCovertTrigger, ReasonUnknownID)
	}
	cost := CovertCost(op, prev.Competitors[idx])
	if prev.Money < cost {
		return reject(prev, KindCovertTrigger, ReasonInsufficientFunds)
	}

	next := prev.Clone()
	next.Hacking = models.Hacking{
		Active:     true,
		Type:       op,
		Difficulty: CovertDifficulty(op, prev.Reputation),
		TargetID:   targetID,
		Cost:       cost,
	}
	return next, []Event{{Kind: KindCovertTrigger, Subject: targetID}}
}

// CovertOpComplete resolves the active session: the cost is always paid,
// success applies the operation's effect and failure costs reputation.
func (e *Engine) CovertOpComplete(prev models.GameState, success bool) (models.GameState, []Event) {
	if !prev.Hacking.Active {
		return reject(prev, KindCovertComplete, ReasonNoOperation)
	}
	op := prev.Hacking

	next := prev.Clone()
	next.Hacking = models.Hacking{}
	next.Money -= op.Cost
	ev := Event{Kind: KindCovertComplete, Subject: op.TargetID, Money: -op.Cost}

	if success {
		// a target that left the roster since the trigger takes no damage
		// and leaks only the minimum intelligence
		name := op.TargetID
		targetMoney := 0.0
		idx := next.CompetitorIndex(op.TargetID)
		if idx >= 0 {
			name = next.Competitors[idx].Name
			targetMoney = next.Competitors[idx].Money
		}
		switch op.Type {
		case models.Espionage:
			gain := models.Clamp(targetMoney*EspionageRPShare, EspionageMinRP, EspionageMaxRP)
			next.RP += gain
			ev.RP = gain
		case models.Sabotage:
			if idx >= 0 {
				target := &next.Competitors[idx]
				target.Money *= SabotageMoneyFactor
				target.CashReserves *= SabotageCashFactor
				target.ProductQuality[models.CPU] *= SabotageCPUFactor
				target.ProductQuality[models.GPU] *= SabotageGPUFactor
			}
		}
		next.AddLog("covert_success", models.SeveritySuccess, string(op.Type), name)
		return next, []Event{ev}
	}

	penalty := EspionageFailureRep
	if op.Type == models.Sabotage {
		penalty = SabotageFailureRep
	}
	before := next.Reputation
	next.Reputation = models.ClampReputation(next.Reputation - penalty)
	ev.Failed = true
	ev.Reputation = next.Reputation - before
	next.AddLog("covert_failed", models.SeverityDanger, string(op.Type), op.TargetID)
	return next, []Event{ev}
}

package sim

import (
	"fmt"

	"github.com/napolitain/chip-tycoon/internal/economy"
	"github.com/napolitain/chip-tycoon/internal/models"
)

// Engine applies player actions and daily ticks to a GameState.
// Every transition takes the previous state by value and returns a new one;
// the input is never mutated. Rejected actions return the input unchanged
// (optionally with a log entry) plus a single failed Event.
type Engine struct {
	content *models.Content
}

// NewEngine creates an engine over validated static content
func NewEngine(content *models.Content) (*Engine, error) {
	if content == nil {
		return nil, fmt.Errorf("content is nil")
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &Engine{content: content}, nil
}

// Content returns the static tables the engine reads
func (e *Engine) Content() *models.Content {
	return e.content
}

// NewGame returns the day-one state
func (e *Engine) NewGame() models.GameState {
	return models.InitialState(e.content)
}

func reject(prev models.GameState, kind Kind, reason Reason) (models.GameState, []Event) {
	return prev, []Event{{Kind: kind, Failed: true, Reason: reason}}
}

// rejectLogged records the failure in the player log without touching anything else
func rejectLogged(prev models.GameState, kind Kind, reason Reason, params ...string) (models.GameState, []Event) {
	next := prev.Clone()
	next.AddLog(string(reason), models.SeverityDanger, append([]string{string(kind)}, params...)...)
	return next, []Event{{Kind: kind, Failed: true, Reason: reason}}
}

func rejectConfig(prev models.GameState, kind Kind, err error) (models.GameState, []Event) {
	return prev, []Event{{Kind: kind, Failed: true, Reason: ReasonConfig, Err: err}}
}

// marketEra resolves the current era's expected tier
func (e *Engine) marketEra(s models.GameState) (int, error) {
	return economy.MarketEra(e.content.Eras, s.CurrentEraID)
}

func (e *Engine) office(s models.GameState) (models.OfficeConfig, error) {
	return e.content.Office(s.OfficeLevel)
}

// CompanyValuation values the company for an IPO
func CompanyValuation(s models.GameState) float64 {
	techValue := 0.0
	for _, tier := range s.TechLevels {
		techValue += float64(tier) * TechValuePerTier
	}
	return s.Money + techValue + s.RP*RPValue + float64(s.Reputation)*ReputationValue
}

func formatMoney(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

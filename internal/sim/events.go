package sim

import "github.com/napolitain/chip-tycoon/internal/models"

// Kind names what an event is about
type Kind string

// Action kinds
const (
	KindProduce           Kind = "produce"
	KindSell              Kind = "sell"
	KindBuySilicon        Kind = "buy_silicon"
	KindUpgradeOffice     Kind = "upgrade_office"
	KindDowngradeOffice   Kind = "downgrade_office"
	KindResearch          Kind = "research"
	KindHire              Kind = "hire_researcher"
	KindFire              Kind = "fire_researcher"
	KindSetWorkPolicy     Kind = "set_work_policy"
	KindSetQuality        Kind = "set_production_quality"
	KindAcceptContract    Kind = "accept_contract"
	KindContractCompleted Kind = "contract_completed"
	KindTakeLoan          Kind = "take_loan"
	KindPayLoan           Kind = "pay_loan"
	KindBuyStock          Kind = "buy_stock"
	KindSellStock         Kind = "sell_stock"
	KindIPO               Kind = "ipo"
	KindTradeShares       Kind = "trade_own_shares"
	KindCovertTrigger     Kind = "covert_trigger"
	KindCovertComplete    Kind = "covert_complete"
	KindRetire            Kind = "retire"
	KindLaunchCampaign    Kind = "launch_campaign"
	KindMaintainLine      Kind = "maintain_line"
	KindDismissEvent      Kind = "dismiss_event"
	KindReputationGained  Kind = "reputation_gained"
)

// Daily tick kinds
const (
	KindSalaries          Kind = "salaries"
	KindLoanPayment       Kind = "loan_payment"
	KindRent              Kind = "rent"
	KindStorage           Kind = "storage"
	KindResearchAccrued   Kind = "research_accrued"
	KindEraChanged        Kind = "era_changed"
	KindWorldEvent        Kind = "world_event"
	KindCompetitorRelease Kind = "competitor_release"
	KindContractOffered   Kind = "contract_offered"
	KindContractExpired   Kind = "contract_expired"
)

// Reason explains why an action was rejected
type Reason string

const (
	ReasonNone                Reason = ""
	ReasonInvalid             Reason = "invalid_params"
	ReasonInsufficientFunds   Reason = "insufficient_funds"
	ReasonInsufficientSilicon Reason = "insufficient_silicon"
	ReasonInsufficientRP      Reason = "insufficient_rp"
	ReasonInsufficientShares  Reason = "insufficient_shares"
	ReasonEmptyInventory      Reason = "empty_inventory"
	ReasonWarehouseFull       Reason = "warehouse_full"
	ReasonStaffCap            Reason = "staff_cap"
	ReasonNoStaff             Reason = "no_staff"
	ReasonLoanLimit           Reason = "loan_limit"
	ReasonLoanAmount          Reason = "loan_amount"
	ReasonShareLimit          Reason = "share_limit"
	ReasonMaxLevel            Reason = "max_level"
	ReasonMinLevel            Reason = "min_level"
	ReasonUnknownID           Reason = "unknown_id"
	ReasonAlreadyPublic       Reason = "already_public"
	ReasonNotPublic           Reason = "not_public"
	ReasonOperationActive     Reason = "operation_active"
	ReasonNoOperation         Reason = "no_operation"
	ReasonNothingPending      Reason = "nothing_pending"
	ReasonConfig              Reason = "config_error"
)

// Event is an advisory notification describing one outcome of a transition.
// It carries enough of the computed deltas for a presentation layer to pick
// audio, haptic and floating-text cues without the core knowing about them.
type Event struct {
	Kind       Kind
	Failed     bool
	Reason     Reason
	Product    models.ProductType
	Subject    string  // contract, loan, stock, competitor, campaign, line or world event id
	Quantity   float64 // units produced, sold, bought or traded
	Waste      float64
	Money      float64 // signed money delta
	RP         float64 // signed research point delta
	Reputation int     // signed reputation delta
	Warnings   []string
	Err        error // set for ReasonConfig
}

// Succeeded reports whether the event is a successful outcome
func (e Event) Succeeded() bool {
	return !e.Failed
}

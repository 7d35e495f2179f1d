package models

// ProductType represents a product line
type ProductType string

const (
	CPU ProductType = "CPU"
	GPU ProductType = "GPU"
)

// AllProductTypes returns all product lines in deterministic order
func AllProductTypes() []ProductType {
	return []ProductType{CPU, GPU}
}

// Valid reports whether p is a known product line
func (p ProductType) Valid() bool {
	return p == CPU || p == GPU
}

// OfficeLevel is the ordered office enum; it indexes Content.Offices
type OfficeLevel int

const (
	Garage OfficeLevel = iota
	Basement
	SmallOffice
	Office
	Campus
	Headquarters
)

// String returns the office level name
func (o OfficeLevel) String() string {
	switch o {
	case Garage:
		return "GARAGE"
	case Basement:
		return "BASEMENT"
	case SmallOffice:
		return "SMALL_OFFICE"
	case Office:
		return "OFFICE"
	case Campus:
		return "CAMPUS"
	case Headquarters:
		return "HEADQUARTERS"
	default:
		return "UNKNOWN"
	}
}

// WorkPolicy controls research pace against staff morale
type WorkPolicy string

const (
	PolicyRelaxed WorkPolicy = "relaxed"
	PolicyNormal  WorkPolicy = "normal"
	PolicyCrunch  WorkPolicy = "crunch"
)

// Valid reports whether w is a known policy
func (w WorkPolicy) Valid() bool {
	return w == PolicyRelaxed || w == PolicyNormal || w == PolicyCrunch
}

// ProductionQuality shifts production yield
type ProductionQuality string

const (
	QualityLow    ProductionQuality = "low"
	QualityMedium ProductionQuality = "medium"
	QualityHigh   ProductionQuality = "high"
)

// YieldModifier returns the yield percentage points added by the quality setting
func (q ProductionQuality) YieldModifier() float64 {
	switch q {
	case QualityHigh:
		return 5
	case QualityLow:
		return -5
	default:
		return 0
	}
}

// Valid reports whether q is a known quality setting
func (q ProductionQuality) Valid() bool {
	return q == QualityLow || q == QualityMedium || q == QualityHigh
}

// CovertType is the kind of covert operation
type CovertType string

const (
	Espionage CovertType = "espionage"
	Sabotage  CovertType = "sabotage"
)

// Severity tags a log entry
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityInfo    Severity = "info"
)

// MaxLogEntries is the size of the log ring buffer
const MaxLogEntries = 10

// LogEntry is a structured log line. Kind names a message template,
// Params fill its positional placeholders ({0}, {1}, ...).
type LogEntry struct {
	Day      int      `json:"day" yaml:"day"`
	Kind     string   `json:"kind" yaml:"kind"`
	Severity Severity `json:"severity" yaml:"severity"`
	Params   []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Contract is a delivery order for a product
type Contract struct {
	ID                string      `json:"id" yaml:"id"`
	RequiredProduct   ProductType `json:"required_product" yaml:"required_product"`
	RequiredAmount    int         `json:"required_amount" yaml:"required_amount"`
	FulfilledAmount   int         `json:"fulfilled_amount" yaml:"fulfilled_amount"`
	Reward            float64     `json:"reward" yaml:"reward"`
	CompletionPayment float64     `json:"completion_payment" yaml:"completion_payment"`
	UpfrontPayment    float64     `json:"upfront_payment" yaml:"upfront_payment"`
	Penalty           float64     `json:"penalty" yaml:"penalty"`
	DeadlineDay       int         `json:"deadline_day" yaml:"deadline_day"`
	Duration          int         `json:"duration" yaml:"duration"`
	MinPerformance    float64     `json:"min_performance,omitempty" yaml:"min_performance,omitempty"`
	MinEfficiency     float64     `json:"min_efficiency,omitempty" yaml:"min_efficiency,omitempty"`
}

// Remaining returns how many units are still owed
func (c Contract) Remaining() int {
	return c.RequiredAmount - c.FulfilledAmount
}

// Loan is an outstanding bank loan
type Loan struct {
	ID           string  `json:"id" yaml:"id"`
	Amount       float64 `json:"amount" yaml:"amount"`
	InterestRate float64 `json:"interest_rate" yaml:"interest_rate"`
	DailyPayment float64 `json:"daily_payment" yaml:"daily_payment"`
}

// Stock is a tradable listed company
type Stock struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	CurrentPrice float64 `json:"current_price" yaml:"current_price"`
	Owned        int     `json:"owned" yaml:"owned"`
	AvgBuyPrice  float64 `json:"avg_buy_price" yaml:"avg_buy_price"`
}

// Competitor is a rival company
type Competitor struct {
	ID             string                  `json:"id" yaml:"id"`
	Name           string                  `json:"name" yaml:"name"`
	Money          float64                 `json:"money" yaml:"money"`
	CashReserves   float64                 `json:"cash_reserves" yaml:"cash_reserves"`
	ProductQuality map[ProductType]float64 `json:"product_quality" yaml:"product_quality"`
	LastReleaseDay int                     `json:"last_release_day" yaml:"last_release_day"`
}

// Clone deep-copies the competitor
func (c Competitor) Clone() Competitor {
	out := c
	out.ProductQuality = make(map[ProductType]float64, len(c.ProductQuality))
	for k, v := range c.ProductQuality {
		out.ProductQuality[k] = v
	}
	return out
}

// DesignSpec describes the current product design of a line
type DesignSpec struct {
	Performance float64 `json:"performance" yaml:"performance"`
	Efficiency  float64 `json:"efficiency" yaml:"efficiency"`
}

// ProductionLine is a fab line that wears down over time
type ProductionLine struct {
	ID                 string      `json:"id" yaml:"id"`
	Product            ProductType `json:"product" yaml:"product"`
	Efficiency         float64     `json:"efficiency" yaml:"efficiency"`
	LastMaintenanceDay int         `json:"last_maintenance_day" yaml:"last_maintenance_day"`
}

// ActiveCampaign is a running marketing campaign
type ActiveCampaign struct {
	CampaignID    string      `json:"campaign_id" yaml:"campaign_id"`
	Product       ProductType `json:"product" yaml:"product"`
	DaysRemaining int         `json:"days_remaining" yaml:"days_remaining"`
}

// Hacking is the covert operation session; Active=false is the rest state
type Hacking struct {
	Active     bool       `json:"active" yaml:"active"`
	Type       CovertType `json:"type,omitempty" yaml:"type,omitempty"`
	Difficulty int        `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	TargetID   string     `json:"target_id,omitempty" yaml:"target_id,omitempty"`
	Cost       float64    `json:"cost,omitempty" yaml:"cost,omitempty"`
}

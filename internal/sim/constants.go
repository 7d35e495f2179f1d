package sim

// Action handler constants
const (
	// ScrapRate is the share of base market price recovered from wasted units
	ScrapRate = 0.2
	// MinYield and MaxYield bound the effective production yield (percent)
	MinYield = 10.0
	MaxYield = 100.0

	// ContractCompletionReputation is granted when a contract is fulfilled
	ContractCompletionReputation = 5
	// FallbackCompletionShare pays floor(reward*share) when a contract has no completion payment
	FallbackCompletionShare = 0.6

	// SaturationPerUnit is the saturation added per unit sold
	SaturationPerUnit = 1.0 / 1000
	// SaleReputationChance is the chance to gain reputation on a current-gen sale
	SaleReputationChance = 0.1
	// SaleReputationMinCount is the minimum units sold for the reputation roll
	SaleReputationMinCount = 10

	// RelocationFee is charged for moving to a smaller office
	RelocationFee = 5000.0
	// Severance is paid when a researcher is let go
	Severance = 2000.0
	// FireMoralePenalty is the morale lost when firing staff
	FireMoralePenalty = 5.0

	// LoanInterestRate is the daily interest charged on loan principal
	LoanInterestRate = 0.005

	// IPOStake is the share of the company sold at IPO
	IPOStake = 0.4
	// IPORetainedShares is the player's ownership percentage after IPO
	IPORetainedShares = 60.0
	// SharePriceDivisor converts valuation to the per-share price
	SharePriceDivisor = 10000.0
	// TechValuePerTier, RPValue and ReputationValue weight the company valuation
	TechValuePerTier = 50000.0
	RPValue          = 10.0
	ReputationValue  = 1000.0
	// ShareBlock is the percentage traded per own-share transaction
	ShareBlock = 5.0
	// MinRetainedShares is the ownership floor below which sells are blocked
	MinRetainedShares = 10.0

	// Covert operation economics
	EspionageMinCost    = 5000.0
	EspionageCostShare  = 0.10
	SabotageMinCost     = 15000.0
	SabotageCostShare   = 0.25
	EspionageRPShare    = 0.03
	EspionageMinRP      = 100.0
	EspionageMaxRP      = 10000.0
	SabotageMoneyFactor = 0.8
	SabotageCashFactor  = 0.8
	SabotageCPUFactor   = 0.9
	SabotageGPUFactor   = 0.9
	EspionageFailureRep = 10
	SabotageFailureRep  = 25
	// CovertWatchedReputation is the reputation below which operations are harder
	CovertWatchedReputation = 50

	// RetireValuationDivisor converts valuation to prestige points
	RetireValuationDivisor = 10000.0
	// RetireBonusPerPoint is extra starting money per prestige point
	RetireBonusPerPoint = 1000.0
	// ResearchPrestige is granted when a tier is reached for the first time
	ResearchPrestige = 10

	// MaintenanceCost is the price of servicing a production line
	MaintenanceCost = 2000.0
	// MaxBrandAwareness caps campaign awareness
	MaxBrandAwareness = 100.0
)

// Daily tick constants
const (
	ResearcherSalary = 100.0
	RentPeriodDays   = 7

	SaturationRecovery = 0.05
	SiliconPriceNoise  = 2.0
	StockVolatility    = 0.05
	MinStockPrice      = 1.0

	WorldEventChance = 0.01

	CompetitorReleaseInterval = 120
	CompetitorReleaseJitter   = 10
	CompetitorReleaseBump     = 0.05
	CompetitorQualityGain     = 1.05
	CompetitorGrowth          = 0.001

	ContractSpawnChance     = 0.1
	MaxContractOffers       = 3
	ContractMarkup          = 1.5
	ContractDuration        = 30
	ContractMinAmount       = 50
	ContractMaxAmount       = 500
	ContractUpfrontShare    = 0.2
	ContractCompletionShare = 0.8
	ContractPenaltyShare    = 0.3
	ContractGateChance      = 0.3

	// MaxResearchEfficiency caps daily RP at this share of linear output
	MaxResearchEfficiency = 0.95

	AwarenessDecay    = 0.5
	LineWear          = 0.5
	MinLineEfficiency = 50.0
)

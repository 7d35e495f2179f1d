package models

import "fmt"

// GameState is the complete economic state of one company run.
// It is threaded by value through transitions; use Clone before mutating.
type GameState struct {
	Day          int
	Money        float64
	RP           float64
	Silicon      float64
	SiliconPrice float64
	Reputation   int

	TechLevels       map[ProductType]int
	GlobalTechLevels map[ProductType]int // highest tier ever reached
	Inventory        map[ProductType]int
	MarketSaturation map[ProductType]float64
	DailyDemand      map[ProductType]float64
	DesignSpecs      map[ProductType]DesignSpec
	BrandAwareness   map[ProductType]float64

	OfficeLevel       OfficeLevel
	Researchers       int
	StaffMorale       float64
	WorkPolicy        WorkPolicy
	ProductionQuality ProductionQuality
	ProductionLines   []ProductionLine

	ActiveContracts    []Contract
	AvailableContracts []Contract
	Loans              []Loan
	Stocks             []Stock
	Competitors        []Competitor
	ActiveCampaigns    []ActiveCampaign

	CurrentEraID   string
	PendingEventID string
	Hacking        Hacking

	IsPubliclyTraded         bool
	PlayerCompanySharesOwned float64
	PlayerSharePrice         float64

	PrestigePoints int
	Logs           []LogEntry
	NextSeq        int
}

// NewGameState creates an empty state with all maps allocated
func NewGameState() GameState {
	return GameState{
		Day:               1,
		TechLevels:        make(map[ProductType]int),
		GlobalTechLevels:  make(map[ProductType]int),
		Inventory:         make(map[ProductType]int),
		MarketSaturation:  make(map[ProductType]float64),
		DailyDemand:       make(map[ProductType]float64),
		DesignSpecs:       make(map[ProductType]DesignSpec),
		BrandAwareness:    make(map[ProductType]float64),
		StaffMorale:       100,
		WorkPolicy:        PolicyNormal,
		ProductionQuality: QualityMedium,
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Clone creates a deep copy of the state
func (s GameState) Clone() GameState {
	clone := s
	clone.TechLevels = cloneMap(s.TechLevels)
	clone.GlobalTechLevels = cloneMap(s.GlobalTechLevels)
	clone.Inventory = cloneMap(s.Inventory)
	clone.MarketSaturation = cloneMap(s.MarketSaturation)
	clone.DailyDemand = cloneMap(s.DailyDemand)
	clone.DesignSpecs = cloneMap(s.DesignSpecs)
	clone.BrandAwareness = cloneMap(s.BrandAwareness)

	clone.ProductionLines = cloneSlice(s.ProductionLines)
	clone.ActiveContracts = cloneSlice(s.ActiveContracts)
	clone.AvailableContracts = cloneSlice(s.AvailableContracts)
	clone.Loans = cloneSlice(s.Loans)
	clone.Stocks = cloneSlice(s.Stocks)
	clone.ActiveCampaigns = cloneSlice(s.ActiveCampaigns)
	clone.Logs = cloneSlice(s.Logs)

	if s.Competitors != nil {
		clone.Competitors = make([]Competitor, len(s.Competitors))
		for i, c := range s.Competitors {
			clone.Competitors[i] = c.Clone()
		}
	}
	return clone
}

// AddLog appends an entry to the capped log, dropping the oldest
func (s *GameState) AddLog(kind string, severity Severity, params ...string) {
	s.Logs = append(s.Logs, LogEntry{Day: s.Day, Kind: kind, Severity: severity, Params: params})
	if len(s.Logs) > MaxLogEntries {
		s.Logs = s.Logs[len(s.Logs)-MaxLogEntries:]
	}
}

// TotalInventory sums finished goods across product lines
func (s *GameState) TotalInventory() int {
	total := 0
	for _, qty := range s.Inventory {
		total += qty
	}
	return total
}

// ContractIndex returns the index of the contract with id in list, or -1
func ContractIndex(list []Contract, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// LoanIndex returns the index of the loan with id, or -1
func (s *GameState) LoanIndex(id string) int {
	for i, l := range s.Loans {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// StockIndex returns the index of the stock with id, or -1
func (s *GameState) StockIndex(id string) int {
	for i, st := range s.Stocks {
		if st.ID == id {
			return i
		}
	}
	return -1
}

// CompetitorIndex returns the index of the competitor with id, or -1
func (s *GameState) CompetitorIndex(id string) int {
	for i, c := range s.Competitors {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// LineIndex returns the index of the production line with id, or -1
func (s *GameState) LineIndex(id string) int {
	for i, l := range s.ProductionLines {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// LineFor returns the first production line making product
func (s *GameState) LineFor(product ProductType) (ProductionLine, bool) {
	for _, l := range s.ProductionLines {
		if l.Product == product {
			return l, true
		}
	}
	return ProductionLine{}, false
}

// NextID returns a fresh sequential id with the given prefix
func (s *GameState) NextID(prefix string) string {
	s.NextSeq++
	return fmt.Sprintf("%s-%03d", prefix, s.NextSeq)
}

// LoanDebt returns the total outstanding loan principal
func (s *GameState) LoanDebt() float64 {
	var total float64
	for _, l := range s.Loans {
		total += l.Amount
	}
	return total
}

// PortfolioValue returns the market value of held stocks
func (s *GameState) PortfolioValue() float64 {
	var total float64
	for _, st := range s.Stocks {
		total += float64(st.Owned) * st.CurrentPrice
	}
	return total
}

// NetWorth is money plus portfolio minus loan principal
func (s *GameState) NetWorth() float64 {
	return s.Money + s.PortfolioValue() - s.LoanDebt()
}

package bot

import (
	"fmt"
	"strings"
)

// Strategy tunes the greedy policy
type Strategy struct {
	Name string

	// SiliconBuffer is the stock the bot tries to hold before producing
	SiliconBuffer float64
	// SiliconPriceCeiling skips purchases above this price...
	SiliconPriceCeiling float64
	// ...unless stock is below CriticalSilicon
	CriticalSilicon float64
	// SpendShare caps the share of money a single purchase or batch may use
	SpendShare float64
	// CPUShare is the share of silicon given to CPU production
	CPUShare float64
	// MaxSaturation stops production that would push a market past it
	MaxSaturation float64

	// UpgradeMargin requires money >= upgrade cost * margin before moving office
	UpgradeMargin float64
	// HireCost is the signing cost paid per researcher
	HireCost float64
	// FireBelow lets a researcher go when money drops under it
	FireBelow float64
	// MaintainBelow services a line once its efficiency drops under it
	MaintainBelow float64

	// Thresholds below are disabled when zero.

	// ReserveDays of upcoming expenses the bot keeps in cash, borrowing
	// LoanAmount when it falls short and repaying once money covers a loan
	// RepayMargin times over
	ReserveDays float64
	LoanAmount  float64
	RepayMargin float64
	// CampaignID is launched for a product whose saturation is under
	// CampaignBelowSaturation while money is above CampaignAbove
	CampaignID              string
	CampaignAbove           float64
	CampaignBelowSaturation float64
	// InvestAbove puts InvestShare of money into listed stocks, selling
	// once a holding gains TakeProfit
	InvestAbove float64
	InvestShare float64
	TakeProfit  float64
	// IPOAbove lists the company once its valuation passes it
	IPOAbove float64
	// CovertAbove spies on the richest rival while money is above it
	CovertAbove float64
}

// String returns the strategy name
func (s Strategy) String() string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("buf%.0f/cap%.0f/cpu%.0f%%", s.SiliconBuffer, s.SiliconPriceCeiling, s.CPUShare*100)
}

// DefaultStrategy is the baseline greedy policy
func DefaultStrategy() Strategy {
	return Strategy{
		Name:                "Balanced",
		SiliconBuffer:       1000,
		SiliconPriceCeiling: 30,
		CriticalSilicon:     100,
		SpendShare:          0.5,
		CPUShare:            0.5,
		MaxSaturation:       0.6,
		UpgradeMargin:       2,
		HireCost:            1000,
		FireBelow:           2000,
		MaintainBelow:       70,

		ReserveDays:             14,
		LoanAmount:              10000,
		RepayMargin:             3,
		CampaignID:              "flyers",
		CampaignAbove:           40000,
		CampaignBelowSaturation: 0.2,
		InvestAbove:             150000,
		InvestShare:             0.1,
		TakeProfit:              0.2,
		IPOAbove:                1000000,
		CovertAbove:             250000,
	}
}

// Strategies returns the catalogue swept by the balance tool
func Strategies() []Strategy {
	base := DefaultStrategy()

	cpu := base
	cpu.Name = "CPU-heavy"
	cpu.CPUShare = 0.8
	cpu.CampaignID = "magazine"
	cpu.CovertAbove = 150000

	gpu := base
	gpu.Name = "GPU-heavy"
	gpu.CPUShare = 0.2

	hoarder := base
	hoarder.Name = "Hoarder"
	hoarder.SiliconBuffer = 3000
	hoarder.SiliconPriceCeiling = 50
	hoarder.MaxSaturation = 0.8
	hoarder.ReserveDays = 30
	hoarder.RepayMargin = 5

	frugal := base
	frugal.Name = "Frugal"
	frugal.SiliconPriceCeiling = 15
	frugal.SpendShare = 0.3
	frugal.UpgradeMargin = 3
	frugal.CampaignAbove = 0
	frugal.CovertAbove = 0
	frugal.InvestAbove = 0

	return []Strategy{base, cpu, gpu, hoarder, frugal}
}

// StrategyByName looks a catalogue strategy up, ignoring case
func StrategyByName(name string) (Strategy, bool) {
	for _, s := range Strategies() {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Strategy{}, false
}

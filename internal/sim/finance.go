package sim

import (
	"math"
	"strconv"

	"github.com/napolitain/chip-tycoon/internal/models"
)

// TakeLoan borrows amount, bounded by the office's loan count and size limits
func (e *Engine) TakeLoan(prev models.GameState, amount float64) (models.GameState, []Event) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return reject(prev, KindTakeLoan, ReasonInvalid)
	}
	office, err := e.office(prev)
	if err != nil {
		return rejectConfig(prev, KindTakeLoan, err)
	}
	if len(prev.Loans) >= office.MaxLoans {
		return rejectLogged(prev, KindTakeLoan, ReasonLoanLimit, strconv.Itoa(office.MaxLoans))
	}
	if amount > office.MaxLoanAmount {
		return rejectLogged(prev, KindTakeLoan, ReasonLoanAmount, formatMoney(office.MaxLoanAmount))
	}

	next := prev.Clone()
	loan := models.Loan{
		ID:           next.NextID("loan"),
		Amount:       amount,
		InterestRate: LoanInterestRate,
		DailyPayment: math.Floor(amount * LoanInterestRate),
	}
	next.Loans = append(next.Loans, loan)
	next.Money += amount
	next.AddLog("loan_taken", models.SeverityInfo, loan.ID, formatMoney(amount))
	return next, []Event{{Kind: KindTakeLoan, Subject: loan.ID, Money: amount}}
}

// PayLoan repays a loan's principal in full
func (e *Engine) PayLoan(prev models.GameState, id string) (models.GameState, []Event) {
	idx := prev.LoanIndex(id)
	if idx < 0 {
		return reject(prev, KindPayLoan, ReasonUnknownID)
	}
	amount := prev.Loans[idx].Amount
	if prev.Money < amount {
		return reject(prev, KindPayLoan, ReasonInsufficientFunds)
	}

	next := prev.Clone()
	next.Money -= amount
	next.Loans = append(next.Loans[:idx], next.Loans[idx+1:]...)
	next.AddLog("loan_repaid", models.SeveritySuccess, id)
	return next, []Event{{Kind: KindPayLoan, Subject: id, Money: -amount}}
}

// BuyStock buys shares at the current price and updates the average cost
func (e *Engine) BuyStock(prev models.GameState, id string, amount int) (models.GameState, []Event) {
	if amount <= 0 {
		return reject(prev, KindBuyStock, ReasonInvalid)
	}
	idx := prev.StockIndex(id)
	if idx < 0 {
		return reject(prev, KindBuyStock, ReasonUnknownID)
	}
	st := prev.Stocks[idx]
	cost := st.CurrentPrice * float64(amount)
	if prev.Money < cost {
		return reject(prev, KindBuyStock, ReasonInsufficientFunds)
	}

	next := prev.Clone()
	held := &next.Stocks[idx]
	held.AvgBuyPrice = (held.AvgBuyPrice*float64(held.Owned) + cost) / float64(held.Owned+amount)
	held.Owned += amount
	next.Money -= cost
	return next, []Event{{Kind: KindBuyStock, Subject: id, Quantity: float64(amount), Money: -cost}}
}

// SellStock sells owned shares at the current price
func (e *Engine) SellStock(prev models.GameState, id string, amount int) (models.GameState, []Event) {
	if amount <= 0 {
		return reject(prev, KindSellStock, ReasonInvalid)
	}
	idx := prev.StockIndex(id)
	if idx < 0 {
		return reject(prev, KindSellStock, ReasonUnknownID)
	}
	if prev.Stocks[idx].Owned < amount {
		return reject(prev, KindSellStock, ReasonInsufficientShares)
	}

	next := prev.Clone()
	proceeds := next.Stocks[idx].CurrentPrice * float64(amount)
	next.Stocks[idx].Owned -= amount
	next.Money += proceeds
	return next, []Event{{Kind: KindSellStock, Subject: id, Quantity: float64(amount), Money: proceeds}}
}

// IPO lists the company once, selling a stake for cash
func (e *Engine) IPO(prev models.GameState) (models.GameState, []Event) {
	if prev.IsPubliclyTraded {
		return reject(prev, KindIPO, ReasonAlreadyPublic)
	}
	valuation := CompanyValuation(prev)
	cash := math.Floor(math.Max(0, valuation) * IPOStake)

	next := prev.Clone()
	next.Money += cash
	next.IsPubliclyTraded = true
	next.PlayerCompanySharesOwned = IPORetainedShares
	next.PlayerSharePrice = math.Max(0, valuation) / SharePriceDivisor
	next.AddLog("ipo_complete", models.SeveritySuccess, formatMoney(cash))
	return next, []Event{{Kind: KindIPO, Money: cash}}
}

// ShareBlockValue is the money value of one own-share block
func ShareBlockValue(s models.GameState) float64 {
	return s.PlayerSharePrice * 100 * ShareBlock
}

// TradeOwnShares buys back or sells a fixed block of the company's own
// shares. Ownership stays within [MinRetainedShares, 100].
func (e *Engine) TradeOwnShares(prev models.GameState, buy bool) (models.GameState, []Event) {
	if !prev.IsPubliclyTraded {
		return reject(prev, KindTradeShares, ReasonNotPublic)
	}
	value := ShareBlockValue(prev)

	next := prev.Clone()
	if buy {
		if prev.PlayerCompanySharesOwned+ShareBlock > 100 {
			return reject(prev, KindTradeShares, ReasonShareLimit)
		}
		if prev.Money < value {
			return reject(prev, KindTradeShares, ReasonInsufficientFunds)
		}
		next.PlayerCompanySharesOwned += ShareBlock
		next.Money -= value
		return next, []Event{{Kind: KindTradeShares, Quantity: ShareBlock, Money: -value}}
	}

	if prev.PlayerCompanySharesOwned-ShareBlock < MinRetainedShares {
		return reject(prev, KindTradeShares, ReasonShareLimit)
	}
	next.PlayerCompanySharesOwned -= ShareBlock
	next.Money += value
	return next, []Event{{Kind: KindTradeShares, Quantity: -ShareBlock, Money: value}}
}

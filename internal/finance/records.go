package finance

import (
	"github.com/shopspring/decimal"
)

// InterestRate returns interest as a percentage of initial, rounded to two
// decimals. It is zero when initial is not positive.
func InterestRate(interest, initial decimal.Decimal) decimal.Decimal {
	if !initial.IsPositive() {
		return decimal.Zero
	}
	return interest.Div(initial).Mul(hundred).Round(2)
}

// MonthlyClient is a one-month receivable with a fixed interest add-on.
type MonthlyClient struct {
	Name           string          `json:"name" example:"Ana Souza"`
	InitialAmount  decimal.Decimal `json:"initialAmount" example:"1000"`
	InterestAmount decimal.Decimal `json:"interestAmount" example:"100"`
	TotalAmount    decimal.Decimal `json:"totalAmount" example:"1100"`      // Derived: initial + interest
	StartDate      string          `json:"startDate" example:"2024-01-31"`  // YYYY-MM-DD
	EndDate        string          `json:"endDate" example:"2024-02-29"`    // Derived: one month after the start date
	Phone          string          `json:"phone" example:"11987654321"`     // Phone number, digits only
}

// Recompute returns the client with all derived fields recalculated.
func (c MonthlyClient) Recompute() MonthlyClient {
	c.TotalAmount = c.InitialAmount.Add(c.InterestAmount)
	c.EndDate = AddOneMonth(c.StartDate)
	return c
}

// With sets the field with the given JSON name and recomputes the client.
// Unknown field names only trigger the recomputation.
func (c MonthlyClient) With(field string, value any) MonthlyClient {
	switch field {
	case "name":
		c.Name = toText(value)
	case "initialAmount":
		c.InitialAmount = ToNumberOrZero(value)
	case "interestAmount":
		c.InterestAmount = ToNumberOrZero(value)
	case "startDate":
		c.StartDate = toText(value)
	case "phone":
		c.Phone = toText(value)
	}

	return c.Recompute()
}

// InstallmentCredit is a receivable repaid in fixed monthly installments.
type InstallmentCredit struct {
	Name              string          `json:"name" example:"Bruno Lima"`
	CreditOption      string          `json:"creditOption" example:"Pessoal"`
	InitialAmount     decimal.Decimal `json:"initialAmount" example:"1000"`
	InstallmentCount  int             `json:"installmentCount" example:"5"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" example:"220"`
	InterestAmount    decimal.Decimal `json:"interestAmount" example:"100"`   // Derived: total - initial
	TotalAmount       decimal.Decimal `json:"totalAmount" example:"1100"`     // Derived: count * installment
	InterestRate      decimal.Decimal `json:"interestRate" example:"10"`      // Derived: interest / initial in percent
	StartDate         string          `json:"startDate" example:"2024-01-31"` // YYYY-MM-DD
	EndDate           string          `json:"endDate" example:"2024-06-30"`   // Derived: start date plus one month per installment
	Phone             string          `json:"phone" example:"11987654321"`
}

// Recompute returns the credit with all derived fields recalculated.
func (c InstallmentCredit) Recompute() InstallmentCredit {
	c.TotalAmount = decimal.NewFromInt(int64(c.InstallmentCount)).Mul(c.InstallmentAmount)
	c.InterestAmount = c.TotalAmount.Sub(c.InitialAmount)
	c.InterestRate = InterestRate(c.InterestAmount, c.InitialAmount)
	c.EndDate = AddInstallmentMonths(c.StartDate, c.InstallmentCount)
	return c
}

// With sets the field with the given JSON name and recomputes the credit.
func (c InstallmentCredit) With(field string, value any) InstallmentCredit {
	switch field {
	case "name":
		c.Name = toText(value)
	case "creditOption":
		c.CreditOption = toText(value)
	case "initialAmount":
		c.InitialAmount = ToNumberOrZero(value)
	case "installmentCount":
		c.InstallmentCount = toInt(value)
	case "installmentAmount":
		c.InstallmentAmount = ToNumberOrZero(value)
	case "startDate":
		c.StartDate = toText(value)
	case "phone":
		c.Phone = toText(value)
	}

	return c.Recompute()
}

// RateTier classifies the interest rate of the credit.
func (c InstallmentCredit) RateTier() RateTier {
	return CreditRateTier(c.InterestRate)
}

// CashFlowEntry is an inflow, outflow and balance for a period.
//
// The balance is stored as entered. It is not derived from inflow and outflow.
type CashFlowEntry struct {
	InflowAmount  decimal.Decimal `json:"inflowAmount" example:"5000"`
	OutflowAmount decimal.Decimal `json:"outflowAmount" example:"3200"`
	BalanceAmount decimal.Decimal `json:"balanceAmount" example:"1800"`
	Period        string          `json:"period" example:"2024-05-01"` // YYYY-MM-DD
}

// Recompute returns the entry unchanged, cash flow entries have no derived fields.
func (e CashFlowEntry) Recompute() CashFlowEntry {
	return e
}

// With sets the field with the given JSON name.
func (e CashFlowEntry) With(field string, value any) CashFlowEntry {
	switch field {
	case "inflowAmount":
		e.InflowAmount = ToNumberOrZero(value)
	case "outflowAmount":
		e.OutflowAmount = ToNumberOrZero(value)
	case "balanceAmount":
		e.BalanceAmount = ToNumberOrZero(value)
	case "period":
		e.Period = toText(value)
	}

	return e.Recompute()
}

// ExpenseControlEntry is a monthly personal budget.
type ExpenseControlEntry struct {
	Revenue           decimal.Decimal `json:"revenue" example:"6000"`
	MandatoryExpenses decimal.Decimal `json:"mandatoryExpenses" example:"3500"`
	VariableExpenses  decimal.Decimal `json:"variableExpenses" example:"1200"`
	Balance           decimal.Decimal `json:"balance" example:"1300"`      // Derived: revenue - mandatory - variable
	Period            string          `json:"period" example:"2024-05-01"` // YYYY-MM-DD
}

// Recompute returns the entry with its balance recalculated.
func (e ExpenseControlEntry) Recompute() ExpenseControlEntry {
	e.Balance = e.Revenue.Sub(e.MandatoryExpenses).Sub(e.VariableExpenses)
	return e
}

// With sets the field with the given JSON name and recomputes the entry.
func (e ExpenseControlEntry) With(field string, value any) ExpenseControlEntry {
	switch field {
	case "revenue":
		e.Revenue = ToNumberOrZero(value)
	case "mandatoryExpenses":
		e.MandatoryExpenses = ToNumberOrZero(value)
	case "variableExpenses":
		e.VariableExpenses = ToNumberOrZero(value)
	case "period":
		e.Period = toText(value)
	}

	return e.Recompute()
}

// InvestmentEntry is a principal and its return at an institution.
type InvestmentEntry struct {
	Institution      string          `json:"institution" example:"Nubank"`
	InvestmentOption string          `json:"investmentOption" example:"CDI/CDB"`
	InitialAmount    decimal.Decimal `json:"initialAmount" example:"1000"`
	InterestAmount   decimal.Decimal `json:"interestAmount" example:"150"` // Derived: total - initial
	TotalAmount      decimal.Decimal `json:"totalAmount" example:"1150"`
	InterestRate     decimal.Decimal `json:"interestRate" example:"15"`   // Derived: interest / initial in percent
	Period           string          `json:"period" example:"2024-05-01"` // YYYY-MM-DD
}

// Recompute returns the investment with all derived fields recalculated.
func (e InvestmentEntry) Recompute() InvestmentEntry {
	e.InterestAmount = e.TotalAmount.Sub(e.InitialAmount)
	e.InterestRate = InterestRate(e.InterestAmount, e.InitialAmount)
	return e
}

// With sets the field with the given JSON name and recomputes the investment.
func (e InvestmentEntry) With(field string, value any) InvestmentEntry {
	switch field {
	case "institution":
		e.Institution = toText(value)
	case "investmentOption":
		e.InvestmentOption = toText(value)
	case "initialAmount":
		e.InitialAmount = ToNumberOrZero(value)
	case "totalAmount":
		e.TotalAmount = ToNumberOrZero(value)
	case "period":
		e.Period = toText(value)
	}

	return e.Recompute()
}

// RateTier is a coarse classification of an interest rate for display.
type RateTier string

const (
	RateTierNormal   RateTier = "normal"
	RateTierElevated RateTier = "elevated"
	RateTierHigh     RateTier = "high"
)

// CreditRateTier classifies a credit interest rate given in percent.
func CreditRateTier(rate decimal.Decimal) RateTier {
	switch {
	case rate.GreaterThanOrEqual(decimal.NewFromInt(30)):
		return RateTierHigh
	case rate.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return RateTierElevated
	default:
		return RateTierNormal
	}
}

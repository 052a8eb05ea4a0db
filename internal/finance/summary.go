package finance

import (
	"strings"

	"github.com/fintrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Palette holds the colors assigned to investment options, in order of appearance.
var Palette = []string{"#3b82f6", "#10b981", "#f59e0b", "#ef4444", "#8b5cf6", "#ec4899", "#6366f1", "#14b8a6"}

// OtherOption is the option name for investments without one.
const OtherOption = "Outros"

type ClientTotals struct {
	Count    int             `json:"count" example:"2"`
	Initial  decimal.Decimal `json:"initial" example:"1800"`
	Interest decimal.Decimal `json:"interest" example:"200"`
	Total    decimal.Decimal `json:"total" example:"2000"`
}

func SummarizeClients(clients []MonthlyClient) ClientTotals {
	t := AggregateTotals(clients, map[string]func(MonthlyClient) any{
		"initial":  func(c MonthlyClient) any { return c.InitialAmount },
		"interest": func(c MonthlyClient) any { return c.InterestAmount },
		"total":    func(c MonthlyClient) any { return c.TotalAmount },
	})

	return ClientTotals{
		Count:    len(clients),
		Initial:  t["initial"],
		Interest: t["interest"],
		Total:    t["total"],
	}
}

type CreditTotals struct {
	Count             int             `json:"count" example:"1"`
	Initial           decimal.Decimal `json:"initial" example:"1000"`
	InstallmentCount  decimal.Decimal `json:"installmentCount" example:"5"`
	InstallmentAmount decimal.Decimal `json:"installmentAmount" example:"220"`
	Interest          decimal.Decimal `json:"interest" example:"100"`
	Total             decimal.Decimal `json:"total" example:"1100"`
}

func SummarizeCredits(credits []InstallmentCredit) CreditTotals {
	t := AggregateTotals(credits, map[string]func(InstallmentCredit) any{
		"initial":           func(c InstallmentCredit) any { return c.InitialAmount },
		"installmentCount":  func(c InstallmentCredit) any { return c.InstallmentCount },
		"installmentAmount": func(c InstallmentCredit) any { return c.InstallmentAmount },
		"interest":          func(c InstallmentCredit) any { return c.InterestAmount },
		"total":             func(c InstallmentCredit) any { return c.TotalAmount },
	})

	return CreditTotals{
		Count:             len(credits),
		Initial:           t["initial"],
		InstallmentCount:  t["installmentCount"],
		InstallmentAmount: t["installmentAmount"],
		Interest:          t["interest"],
		Total:             t["total"],
	}
}

type CashFlowTotals struct {
	Count   int             `json:"count" example:"3"`
	Inflow  decimal.Decimal `json:"inflow" example:"15000"`
	Outflow decimal.Decimal `json:"outflow" example:"9600"`
	Balance decimal.Decimal `json:"balance" example:"5400"`
}

func SummarizeCashFlow(entries []CashFlowEntry) CashFlowTotals {
	t := AggregateTotals(entries, map[string]func(CashFlowEntry) any{
		"inflow":  func(e CashFlowEntry) any { return e.InflowAmount },
		"outflow": func(e CashFlowEntry) any { return e.OutflowAmount },
		"balance": func(e CashFlowEntry) any { return e.BalanceAmount },
	})

	return CashFlowTotals{
		Count:   len(entries),
		Inflow:  t["inflow"],
		Outflow: t["outflow"],
		Balance: t["balance"],
	}
}

type ExpenseControlTotals struct {
	Count             int             `json:"count" example:"1"`
	Revenue           decimal.Decimal `json:"revenue" example:"6000"`
	MandatoryExpenses decimal.Decimal `json:"mandatoryExpenses" example:"3500"`
	VariableExpenses  decimal.Decimal `json:"variableExpenses" example:"1200"`
	Balance           decimal.Decimal `json:"balance" example:"1300"`
}

func SummarizeExpenseControl(entries []ExpenseControlEntry) ExpenseControlTotals {
	t := AggregateTotals(entries, map[string]func(ExpenseControlEntry) any{
		"revenue":   func(e ExpenseControlEntry) any { return e.Revenue },
		"mandatory": func(e ExpenseControlEntry) any { return e.MandatoryExpenses },
		"variable":  func(e ExpenseControlEntry) any { return e.VariableExpenses },
		"balance":   func(e ExpenseControlEntry) any { return e.Balance },
	})

	return ExpenseControlTotals{
		Count:             len(entries),
		Revenue:           t["revenue"],
		MandatoryExpenses: t["mandatory"],
		VariableExpenses:  t["variable"],
		Balance:           t["balance"],
	}
}

// InvestmentTotals summarizes a portfolio. Rate is the interest over the
// whole portfolio in percent.
type InvestmentTotals struct {
	Count    int             `json:"count" example:"2"`
	Initial  decimal.Decimal `json:"initial" example:"2000"`
	Interest decimal.Decimal `json:"interest" example:"300"`
	Total    decimal.Decimal `json:"total" example:"2300"`
	Rate     decimal.Decimal `json:"rate" example:"15"`
}

func SummarizeInvestments(entries []InvestmentEntry) InvestmentTotals {
	t := AggregateTotals(entries, map[string]func(InvestmentEntry) any{
		"initial":  func(e InvestmentEntry) any { return e.InitialAmount },
		"interest": func(e InvestmentEntry) any { return e.InterestAmount },
		"total":    func(e InvestmentEntry) any { return e.TotalAmount },
	})

	return InvestmentTotals{
		Count:    len(entries),
		Initial:  t["initial"],
		Interest: t["interest"],
		Total:    t["total"],
		Rate:     InterestRate(t["interest"], t["initial"]),
	}
}

// OptionShare is the total invested in one investment option.
type OptionShare struct {
	Option string          `json:"option" example:"CDI/CDB"`
	Total  decimal.Decimal `json:"total" example:"2300"`
	Color  string          `json:"color" example:"#3b82f6"`
}

// GroupByOption sums the totals of investments per option, largest first.
//
// Investments without an option are grouped as OtherOption, investments
// with a total that is not positive are left out. Colors are assigned from
// Palette in order of first appearance.
func GroupByOption(entries []InvestmentEntry) []OptionShare {
	shares := make([]OptionShare, 0)
	index := make(map[string]int)

	for _, e := range entries {
		if !e.TotalAmount.IsPositive() {
			continue
		}

		option := strings.TrimSpace(e.InvestmentOption)
		if option == "" {
			option = OtherOption
		}

		i, ok := index[option]
		if !ok {
			i = len(shares)
			index[option] = i
			shares = append(shares, OptionShare{
				Option: option,
				Total:  decimal.Zero,
				Color:  Palette[i%len(Palette)],
			})
		}

		shares[i].Total = shares[i].Total.Add(e.TotalAmount)
	}

	slices.SortStableFunc(shares, func(a, b OptionShare) int {
		return b.Total.Cmp(a.Total)
	})

	return shares
}

// SeriesPoint holds the totals of all records in one month.
type SeriesPoint struct {
	Month  types.Month `json:"month" example:"2024-05-01T00:00:00Z"`
	Label  string      `json:"label" example:"mai 2024"`
	Totals Totals      `json:"totals"`
}

// MonthlySeries groups records by the month of their date and sums the
// selected fields per month. Records without a valid date are skipped.
// Points are ordered by month.
func MonthlySeries[T any](records []T, date func(T) any, fields map[string]func(T) any) []SeriesPoint {
	byMonth := make(map[types.Month][]T)
	months := make([]types.Month, 0)

	for _, record := range records {
		month, ok := MonthOfDate(date(record))
		if !ok {
			continue
		}

		if _, seen := byMonth[month]; !seen {
			months = append(months, month)
		}
		byMonth[month] = append(byMonth[month], record)
	}

	slices.SortFunc(months, func(a, b types.Month) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})

	series := make([]SeriesPoint, 0, len(months))
	for _, month := range months {
		series = append(series, SeriesPoint{
			Month:  month,
			Label:  month.Label(),
			Totals: AggregateTotals(byMonth[month], fields),
		})
	}

	return series
}

// CashFlowSeries returns the monthly inflow, outflow and balance.
func CashFlowSeries(entries []CashFlowEntry) []SeriesPoint {
	return MonthlySeries(entries, func(e CashFlowEntry) any { return e.Period }, map[string]func(CashFlowEntry) any{
		"inflow":  func(e CashFlowEntry) any { return e.InflowAmount },
		"outflow": func(e CashFlowEntry) any { return e.OutflowAmount },
		"balance": func(e CashFlowEntry) any { return e.BalanceAmount },
	})
}

// ExpenseControlSeries returns the monthly revenue, expenses and balance.
func ExpenseControlSeries(entries []ExpenseControlEntry) []SeriesPoint {
	return MonthlySeries(entries, func(e ExpenseControlEntry) any { return e.Period }, map[string]func(ExpenseControlEntry) any{
		"revenue":   func(e ExpenseControlEntry) any { return e.Revenue },
		"mandatory": func(e ExpenseControlEntry) any { return e.MandatoryExpenses },
		"variable":  func(e ExpenseControlEntry) any { return e.VariableExpenses },
		"balance":   func(e ExpenseControlEntry) any { return e.Balance },
	})
}

package finance

import (
	"strings"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// Totals maps a field name to the sum of that field.
type Totals map[string]decimal.Decimal

// FilterByText keeps the records where at least one of the text fields
// contains query, ignoring case. An empty query keeps all records.
func FilterByText[T any](records []T, query string, fields ...func(T) string) []T {
	query = strings.ToLower(query)

	return filterText(records, query, func(text string) bool {
		return strings.Contains(text, query)
	}, fields...)
}

// FilterByPattern is FilterByText with a "*" in pattern matching any
// sequence of characters.
func FilterByPattern[T any](records []T, pattern string, fields ...func(T) string) []T {
	glb := "*" + strings.ToLower(pattern) + "*"

	return filterText(records, pattern, func(text string) bool {
		return glob.Glob(glb, text)
	}, fields...)
}

func filterText[T any](records []T, query string, match func(string) bool, fields ...func(T) string) []T {
	if query == "" {
		return records
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		for _, field := range fields {
			if match(strings.ToLower(field(record))) {
				filtered = append(filtered, record)
				break
			}
		}
	}

	return filtered
}

// FilterByPeriod keeps the records whose date is in the month called
// monthName, see ClassifyMonth. Records without a date are dropped unless
// monthName selects all months.
func FilterByPeriod[T any](records []T, monthName string, date func(T) any) []T {
	if IsAllMonths(monthName) {
		return records
	}

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		value := date(record)
		if isMissingDate(value) {
			continue
		}

		if ClassifyMonth(value, monthName) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

// AggregateTotals sums the selected fields over all records.
//
// Every key of fields is present in the result, values that are missing or
// not numeric count as zero.
func AggregateTotals[T any](records []T, fields map[string]func(T) any) Totals {
	totals := make(Totals, len(fields))
	for name := range fields {
		totals[name] = decimal.Zero
	}

	for _, record := range records {
		for name, field := range fields {
			totals[name] = totals[name].Add(ToNumberOrZero(field(record)))
		}
	}

	return totals
}

// Query describes how a list of records is narrowed for display.
type Query[T any] struct {
	Search     string           // Free text, matched against TextFields
	Pattern    bool             // If set, a "*" in Search matches any sequence of characters
	Period     string           // Month name or AllMonths
	TextFields []func(T) string // Fields searched for Search
	Date       func(T) any      // Date used for Period. If nil, Period is ignored
}

// WithPattern returns the query with Pattern set to pattern.
func (q Query[T]) WithPattern(pattern bool) Query[T] {
	q.Pattern = pattern
	return q
}

// Apply filters records by text first, then by period.
func (q Query[T]) Apply(records []T) []T {
	var filtered []T
	if q.Pattern {
		filtered = FilterByPattern(records, q.Search, q.TextFields...)
	} else {
		filtered = FilterByText(records, q.Search, q.TextFields...)
	}

	if q.Date != nil {
		filtered = FilterByPeriod(filtered, q.Period, q.Date)
	}

	return filtered
}

// Over returns a query on values of type T that carry a record of type R.
func Over[T, R any](q Query[R], record func(T) R) Query[T] {
	lifted := Query[T]{
		Search:  q.Search,
		Pattern: q.Pattern,
		Period:  q.Period,
	}

	for _, field := range q.TextFields {
		lifted.TextFields = append(lifted.TextFields, func(t T) string {
			return field(record(t))
		})
	}

	if q.Date != nil {
		lifted.Date = func(t T) any {
			return q.Date(record(t))
		}
	}

	return lifted
}

// ClientQuery searches clients by name and phone and filters them by the month they are due.
func ClientQuery(search, period string) Query[MonthlyClient] {
	return Query[MonthlyClient]{
		Search: search,
		Period: period,
		TextFields: []func(MonthlyClient) string{
			func(c MonthlyClient) string { return c.Name },
			func(c MonthlyClient) string { return c.Phone },
		},
		Date: func(c MonthlyClient) any { return c.EndDate },
	}
}

// CreditQuery searches credits by name, credit option and phone and filters
// them by the month of the last installment.
func CreditQuery(search, period string) Query[InstallmentCredit] {
	return Query[InstallmentCredit]{
		Search: search,
		Period: period,
		TextFields: []func(InstallmentCredit) string{
			func(c InstallmentCredit) string { return c.Name },
			func(c InstallmentCredit) string { return c.CreditOption },
			func(c InstallmentCredit) string { return c.Phone },
		},
		Date: func(c InstallmentCredit) any { return c.EndDate },
	}
}

// CashFlowQuery filters cash flow entries by period. They have no searchable text.
func CashFlowQuery(period string) Query[CashFlowEntry] {
	return Query[CashFlowEntry]{
		Period: period,
		Date:   func(e CashFlowEntry) any { return e.Period },
	}
}

// ExpenseControlQuery filters expense control entries by period. They have no searchable text.
func ExpenseControlQuery(period string) Query[ExpenseControlEntry] {
	return Query[ExpenseControlEntry]{
		Period: period,
		Date:   func(e ExpenseControlEntry) any { return e.Period },
	}
}

// InvestmentQuery searches investments by institution and option and filters them by period.
func InvestmentQuery(search, period string) Query[InvestmentEntry] {
	return Query[InvestmentEntry]{
		Search: search,
		Period: period,
		TextFields: []func(InvestmentEntry) string{
			func(e InvestmentEntry) string { return e.Institution },
			func(e InvestmentEntry) string { return e.InvestmentOption },
		},
		Date: func(e InvestmentEntry) any { return e.Period },
	}
}

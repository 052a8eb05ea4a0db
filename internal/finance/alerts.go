package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// The due date window, in days relative to today.
const (
	DueWindowStart = -10
	DueWindowEnd   = 5
)

// DueKind tells which record category a DueItem comes from.
type DueKind string

const (
	DueCredit DueKind = "credit"
	DueClient DueKind = "client"
)

// DueItem is a client or credit whose end date is close to today.
type DueItem struct {
	Kind           DueKind         `json:"kind" example:"client"`
	Name           string          `json:"name" example:"Ana Souza"`
	EndDate        string          `json:"endDate" example:"2024-05-15"`
	TotalAmount    decimal.Decimal `json:"totalAmount" example:"1100"`
	InterestAmount decimal.Decimal `json:"interestAmount" example:"100"`
	DaysLeft       int             `json:"daysLeft" example:"3"` // Negative when the end date has passed
}

// DueSoon lists the credits and clients whose end date lies between ten
// days before and five days after today, both inclusive.
//
// Records without a readable end date are skipped. Items are ordered by the
// days left, credits before clients on ties.
func DueSoon(clients []MonthlyClient, credits []InstallmentCredit, today time.Time) []DueItem {
	items := make([]DueItem, 0)

	add := func(kind DueKind, name, endDate string, total, interest decimal.Decimal) {
		days, ok := DaysUntil(endDate, today)
		if !ok || days < DueWindowStart || days > DueWindowEnd {
			return
		}

		items = append(items, DueItem{
			Kind:           kind,
			Name:           name,
			EndDate:        endDate,
			TotalAmount:    total,
			InterestAmount: interest,
			DaysLeft:       days,
		})
	}

	for _, c := range credits {
		add(DueCredit, c.Name, c.EndDate, c.TotalAmount, c.InterestAmount)
	}

	for _, c := range clients {
		add(DueClient, c.Name, c.EndDate, c.TotalAmount, c.InterestAmount)
	}

	slices.SortStableFunc(items, func(a, b DueItem) int {
		return a.DaysLeft - b.DaysLeft
	})

	return items
}

// DaysUntil returns the number of calendar days from today until date.
// The time of day of today is ignored.
func DaysUntil(date any, today time.Time) (int, bool) {
	t, ok := parseDate(date)
	if !ok {
		return 0, false
	}

	y, m, d := t.Date()
	due := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	y, m, d = today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return int(due.Sub(start).Hours() / 24), true
}

package finance

import (
	"strings"
	"time"

	"github.com/fintrack/backend/internal/types"
)

// DateLayout is the layout of all dates read and written by this package.
const DateLayout = "2006-01-02"

// AllMonths is the period that matches every date. "Todos" and the empty
// string are accepted as well.
const AllMonths = "All"

var dateLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Periods returns the values offered by the period selector: the sentinel
// for all months followed by the Portuguese month names.
func Periods() []string {
	return append([]string{AllMonths}, types.MonthNames()...)
}

// IsAllMonths reports whether the period name selects every month.
func IsAllMonths(period string) bool {
	period = strings.TrimSpace(period)
	return period == "" || strings.EqualFold(period, AllMonths) || strings.EqualFold(period, "Todos")
}

// AddOneMonth returns the date one calendar month after start.
//
// A start day that does not exist in the following month is pinned to the
// last day of that month, so "2024-01-31" becomes "2024-02-29".
// Empty or unparseable input yields "".
func AddOneMonth(start string) string {
	return AddInstallmentMonths(start, 1)
}

// AddInstallmentMonths returns the date months calendar months after start.
//
// It returns "" if start is empty or unparseable or months is not positive.
// If the day of start does not exist in the target month, the result is the
// last day of the target month instead of a day in the month after.
func AddInstallmentMonths(start string, months int) string {
	if months <= 0 {
		return ""
	}

	t, ok := parseDate(start)
	if !ok {
		return ""
	}

	year, month, day := t.Date()
	end := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)

	// AddDate normalizes Jan 31 + 1 month to March. Day zero of that month
	// is the last day of the month we actually wanted.
	if end.Day() != day {
		end = time.Date(end.Year(), end.Month(), 0, 0, 0, 0, 0, time.UTC)
	}

	return end.Format(DateLayout)
}

// ClassifyMonth reports whether date falls into the month called monthName.
//
// The AllMonths sentinel matches everything, valid or not. An unknown month
// name matches everything as well. Otherwise, a date that cannot be parsed
// never matches.
func ClassifyMonth(date any, monthName string) bool {
	if IsAllMonths(monthName) {
		return true
	}

	month, ok := types.MonthByName(monthName)
	if !ok {
		return true
	}

	t, ok := parseDate(date)
	if !ok {
		return false
	}

	return t.Month() == month
}

// ValidDate reports whether s is empty or a date this package can read.
func ValidDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, ok := parseDateString(s)
	return ok
}

// MonthOfDate returns the month of a date-like value.
func MonthOfDate(date any) (types.Month, bool) {
	t, ok := parseDate(date)
	if !ok {
		return types.Month{}, false
	}
	return types.MonthOf(t), true
}

// parseDate reads the calendar date of a date-like value. The calendar date
// is taken as written, timestamps are not converted to another location.
func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case string:
		return parseDateString(v)
	case *string:
		if v == nil {
			return time.Time{}, false
		}
		return parseDateString(*v)
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case types.Month:
		return time.Time(v), !v.IsZero()
	}

	return time.Time{}, false
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// isMissingDate reports whether a date field holds no value at all.
func isMissingDate(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case time.Time:
		return v.IsZero()
	case *time.Time:
		return v == nil || v.IsZero()
	case types.Month:
		return v.IsZero()
	}
	return false
}

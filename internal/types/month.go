// Package types implements special types for fintrack.
package types

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

// Month is a month in a specific year.
type Month time.Time

var (
	monthNames = [12]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}

	englishMonthNames = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
)

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month of the calendar date of t, ignoring its location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// It accepts "YYYY-MM", "YYYY-MM-DD" and RFC 3339 timestamps. Everything
// except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	for _, layout := range []string{"2006-01", "2006-01-02", time.RFC3339Nano} {
		t, err := time.Parse(layout, value)
		if err == nil {
			*m = MonthOf(t)
			return nil
		}
	}

	return fmt.Errorf("cannot parse %q as a month", value)
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// Month returns the calendar month.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Name returns the full Portuguese name of the month, e.g. "Março".
func (m Month) Name() string {
	return monthNames[m.Month()-1]
}

// Label returns the short label used on chart axes, e.g. "mar 2024".
func (m Month) Label() string {
	return fmt.Sprintf("%s %04d", strings.ToLower(string([]rune(m.Name())[:3])), time.Time(m).Year())
}

// MonthNames returns the Portuguese month names, January first.
func MonthNames() []string {
	return slices.Clone(monthNames[:])
}

// MonthByName looks up a month by its Portuguese or English name.
// The lookup ignores case and surrounding whitespace.
func MonthByName(name string) (time.Month, bool) {
	name = strings.TrimSpace(name)

	for i := range monthNames {
		if strings.EqualFold(name, monthNames[i]) || strings.EqualFold(name, englishMonthNames[i]) {
			return time.Month(i + 1), true
		}
	}

	// "Marco" is a common spelling when no accents are available
	if strings.EqualFold(name, "Marco") {
		return time.March, true
	}

	return 0, false
}

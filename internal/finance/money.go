package finance

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale and Currency are used for every formatted amount.
var (
	Locale   = language.BrazilianPortuguese
	Currency = currency.BRL
)

var phonePattern = regexp.MustCompile(`(\d{2})(\d{5})(\d{4})`)

// ParseCurrencyText reads the digits of text as an amount in cents.
//
// All other characters are ignored, so "R$ 1.234,56" and "123456" both
// yield 1234.56. Text without digits yields zero.
func ParseCurrencyText(text string) decimal.Decimal {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, text)

	if digits == "" {
		return decimal.Zero
	}

	cents, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero
	}
	return cents.Shift(-2)
}

// MaskedTextToNumber is the inverse of the currency mask. It returns the
// amount shown in a masked input, zero for empty input.
func MaskedTextToNumber(masked string) decimal.Decimal {
	if masked == "" {
		return decimal.Zero
	}
	return ParseCurrencyText(masked)
}

// FormatCurrency formats an amount as localized currency with exactly
// two fraction digits, e.g. "R$ 1.000,00". Negative amounts carry the sign
// before the symbol, e.g. "-R$ 5,00".
//
// The amount is converted with ToNumberOrZero, so numeric strings and nil
// are accepted. It is never converted to a float.
func FormatCurrency(amount any) string {
	value := ToNumberOrZero(amount).Round(2)

	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Neg()
	}

	p := message.NewPrinter(Locale)
	whole, cents, _ := strings.Cut(value.StringFixed(2), ".")

	return sign + p.Sprintf("%v", currency.Symbol(Currency)) + " " + groupDigits(p, whole) + decimalSeparator(p) + cents
}

// groupDigits inserts the group separator of the printer's locale into a
// string of decimal digits.
func groupDigits(p *message.Printer, digits string) string {
	if len(digits) <= 18 {
		n, err := strconv.ParseInt(digits, 10, 64)
		if err == nil {
			return p.Sprintf("%d", n)
		}
	}

	// Too large for int64, the last group is split off until the rest fits
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	return groupDigits(p, head) + groupSeparator(p) + tail
}

func groupSeparator(p *message.Printer) string {
	return strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%d", 1000), "1"), "000")
}

func decimalSeparator(p *message.Printer) string {
	return strings.TrimSuffix(strings.TrimPrefix(p.Sprintf("%.1f", 0.5), "0"), "5")
}

// CurrencyMask re-derives the amount typed into a masked input and returns
// its formatted representation together with the amount.
//
// Input is always read as cents as typed: typing "1", "2", "3" shows
// "R$ 0,01", "R$ 0,12", "R$ 1,23".
func CurrencyMask(raw string) (string, decimal.Decimal) {
	value := ParseCurrencyText(raw)
	return FormatCurrency(value), value
}

// ApplyCurrencyMask hands the masked representation of raw to emit.
func ApplyCurrencyMask(raw string, emit func(string)) {
	formatted, _ := CurrencyMask(raw)
	if emit != nil {
		emit(formatted)
	}
}

// FormatPhone formats the first run of eleven digits as "(DD) DDDDD-DDDD".
// Anything else is returned unchanged.
func FormatPhone(phone string) string {
	loc := phonePattern.FindStringSubmatchIndex(phone)
	if loc == nil {
		return phone
	}

	return phone[:loc[0]] +
		"(" + phone[loc[2]:loc[3]] + ") " +
		phone[loc[4]:loc[5]] + "-" +
		phone[loc[6]:loc[7]] +
		phone[loc[1]:]
}

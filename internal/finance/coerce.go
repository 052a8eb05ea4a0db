// Package finance implements the calculations behind the dashboard: currency
// parsing and formatting, due date arithmetic, the derived fields of every
// record category and the filters and totals shown on the dashboard.
//
// Every function in this package is pure. Malformed input never produces an
// error, it degrades to zero, an empty string or "no match".
package finance

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToNumberOrZero converts a loosely typed numeric value to a decimal.
//
// Numbers, decimals and numeric strings are converted, everything else
// (nil, NaN, infinities, text that is not a number) yields zero.
func ToNumberOrZero(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return v
	case *decimal.Decimal:
		if v == nil {
			return decimal.Zero
		}
		return *v
	case decimal.NullDecimal:
		if !v.Valid {
			return decimal.Zero
		}
		return v.Decimal
	case int:
		return decimal.NewFromInt(int64(v))
	case int8:
		return decimal.NewFromInt(int64(v))
	case int16:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case uint, uint8, uint16, uint32, uint64:
		return parseNumber(fmt.Sprint(v))
	case float32:
		return fromFloat(float64(v))
	case float64:
		return fromFloat(v)
	case json.Number:
		return parseNumber(v.String())
	case string:
		return parseNumber(v)
	case *string:
		if v == nil {
			return decimal.Zero
		}
		return parseNumber(*v)
	case bool:
		if v {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	}

	return decimal.Zero
}

// toInt truncates a loosely typed numeric value to an int.
func toInt(value any) int {
	if i, ok := value.(int); ok {
		return i
	}

	n := ToNumberOrZero(value).IntPart()
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0
	}
	return int(n)
}

// toText converts a loosely typed value to a string, nil becomes "".
func toText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func parseNumber(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

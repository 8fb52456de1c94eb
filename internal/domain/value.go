package domain

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ValueKind identifies how a result value is stored and displayed.
type ValueKind int

const (
	ValueText ValueKind = iota
	ValueInteger
	ValueAmount
	ValuePercent
)

func (k ValueKind) String() string {
	switch k {
	case ValueInteger:
		return "integer"
	case ValueAmount:
		return "amount"
	case ValuePercent:
		return "percent"
	default:
		return "text"
	}
}

// Value is a single card value or table cell. Numeric values keep the raw
// float64 so callers can read the exact figure; String renders the value the
// way the portal has always displayed it (amounts with two decimals, percents
// with one decimal and a % suffix).
type Value struct {
	kind ValueKind
	num  float64
	text string
}

// Text returns a pre-formatted text value.
func Text(s string) Value { return Value{kind: ValueText, text: s} }

// Int returns an integer value (ages, years, months).
func Int(n int) Value { return Value{kind: ValueInteger, num: float64(n)} }

// Amount returns a monetary or plain decimal value displayed with two decimals.
func Amount(f float64) Value { return Value{kind: ValueAmount, num: f} }

// Percent returns a rate expressed as a fraction (0.07 for 7%).
func Percent(f float64) Value { return Value{kind: ValuePercent, num: f} }

func (v Value) Kind() ValueKind { return v.kind }

// IsNumeric reports whether the value carries a number.
func (v Value) IsNumeric() bool { return v.kind != ValueText }

// Float returns the raw number. Text values return NaN.
func (v Value) Float() float64 {
	if v.kind == ValueText {
		return math.NaN()
	}
	return v.num
}

// String renders the value as displayed by the portal.
func (v Value) String() string {
	switch v.kind {
	case ValueInteger:
		return strconv.FormatInt(int64(v.num), 10)
	case ValueAmount:
		return FormatFixed(v.num, 2)
	case ValuePercent:
		return FormatFixed(v.num*100, 1) + "%"
	default:
		return v.text
	}
}

// Equal reports whether two values have the same kind and display text.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.String() == o.String()
}

// MarshalJSON emits integers as JSON numbers and everything else as the
// display string, which keeps NaN and Infinity representable.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueInteger {
		return []byte(v.String()), nil
	}
	return json.Marshal(v.String())
}

func (v Value) MarshalYAML() (interface{}, error) {
	if v.kind == ValueInteger {
		return int64(v.num), nil
	}
	return v.String(), nil
}

// exactExponent is small enough that every float64 in the calculators' range
// converts to a decimal without losing binary digits that matter for rounding.
const exactExponent = -60

// FormatFixed formats f with prec decimals the way Number.prototype.toFixed
// does: the exact binary value is rounded half away from zero, a negative
// value that rounds to zero keeps its sign ("-0.00"), and magnitudes of 1e21
// or more fall back to shortest exponent form ("1e+21"). Non-finite values
// render as NaN, Infinity and -Infinity.
func FormatFixed(f float64, prec int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := decimal.NewFromFloatWithExponent(f, exactExponent).StringFixed(int32(prec))
	if f < 0 && s[0] != '-' {
		s = "-" + s
	}
	return s
}

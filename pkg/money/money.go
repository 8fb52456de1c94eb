package money

import (
	"errors"
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the portal's display currency.
const DefaultCurrency = gomoney.INR

// ErrNotFinite is returned when a NaN or infinite float is converted.
var ErrNotFinite = errors.New("amount is not a finite number")

// Money represents a rupee amount
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64
func New(value float64) (Money, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, ErrNotFinite
	}
	return Money{Decimal: decimal.NewFromFloat(value)}, nil
}

// Currency returns the ISO currency code
func (m Money) Currency() string { return DefaultCurrency }

// FormatIndian renders the amount with the currency symbol and Indian digit
// grouping (12,34,567.50), as en-IN locales display rupees.
func (m Money) FormatIndian() string {
	cur := *gomoney.New(0, m.Currency()).Currency()
	digits := m.Decimal.Abs().StringFixed(int32(cur.Fraction))
	whole, frac, _ := strings.Cut(digits, ".")
	s := GroupIndian(whole, cur.Thousand)
	if frac != "" {
		s += cur.Decimal + frac
	}
	s = strings.Replace(cur.Template, "1", s, 1)
	s = strings.Replace(s, "$", cur.Grapheme, 1)
	if m.Decimal.Round(int32(cur.Fraction)).IsNegative() {
		s = "-" + s
	}
	return s
}

// GroupIndian inserts sep into a string of digits: the last three digits
// form one group and every two digits before them another.
func GroupIndian(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteString(sep)
	b.WriteString(tail)
	return b.String()
}

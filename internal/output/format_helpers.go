package output

import (
	"math"
	"strconv"
	"strings"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as rupees with Indian digit grouping.
// Non-finite amounts fall back to their plain text.
func FormatCurrency(amount float64) string {
	m, err := money.New(amount)
	if err != nil {
		return domain.FormatFixed(amount, 2)
	}
	return m.FormatIndian()
}

// FormatPercentage formats a fraction as a percentage with one decimal.
func FormatPercentage(fraction float64) string {
	return domain.FormatFixed(fraction*100, 1) + "%"
}

// FormatNumber groups digits Indian-style and keeps up to three decimals,
// dropping trailing zeros.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return domain.FormatFixed(f, 0)
	}
	d := decimal.NewFromFloat(f).Round(3)
	s := d.Abs().String()
	whole, frac, _ := strings.Cut(s, ".")
	out := money.GroupIndian(whole, ",")
	if frac != "" {
		out += "." + frac
	}
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}

// currencyKeywords mark a column as monetary when they appear in its header.
var currencyKeywords = []string{
	"expense", "salary", "needs", "wants", "savings", "corpus", "wealth",
	"investment", "withdrawal", "amount", "emi", "premium", "rent", "bills",
	"fees", "maintenance", "cash", "lumpsum", "sip",
}

// plainColumns are shown without grouping.
var plainColumns = map[string]bool{"year": true, "age": true, "month": true, "years": true, "months": true}

// plainCardKeywords mark a card as a count or age rather than money.
var plainCardKeywords = []string{"age", "years", "month", "dependants", "retirement"}

// IsCurrencyColumn reports whether a table header holds money.
func IsCurrencyColumn(header string) bool {
	return containsAny(strings.ToLower(header), currencyKeywords)
}

// IsPlainColumn reports whether a table header holds bare integers.
func IsPlainColumn(header string) bool {
	return plainColumns[strings.ToLower(header)]
}

// DisplayCell renders a cell for localized output: numbers in currency
// columns become rupees, plain columns stay bare, other numbers are grouped.
// Text cells are shown as they are.
func DisplayCell(header string, v domain.Value) string {
	switch v.Kind() {
	case domain.ValueText:
		return v.String()
	case domain.ValuePercent:
		return FormatPercentage(v.Float())
	}
	switch {
	case IsCurrencyColumn(header):
		return FormatCurrency(v.Float())
	case IsPlainColumn(header):
		return v.String()
	default:
		return FormatNumber(v.Float())
	}
}

// DisplayCard renders a card value for localized output.
func DisplayCard(c domain.Card) string {
	switch c.Value.Kind() {
	case domain.ValueText:
		return c.Value.String()
	case domain.ValuePercent:
		return FormatPercentage(c.Value.Float())
	}
	if containsAny(strings.ToLower(c.Title), plainCardKeywords) {
		return FormatNumber(c.Value.Float())
	}
	return FormatCurrency(c.Value.Float())
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func intToString(i int) string { return strconv.Itoa(i) }

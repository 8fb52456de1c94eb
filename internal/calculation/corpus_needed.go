package calculation

import (
	"math"

	"github.com/mutualfundportal/portal/internal/domain"
)

var corpusNeededHeaders = []string{"Option", "Lumpsum (₹)", "Monthly SIP (₹)", "Total Investment (₹)"}

// annuityFactor is ((1+r)^n - 1) / r.
func annuityFactor(r float64, n int) float64 {
	return (math.Pow(1+r, float64(n)) - 1) / r
}

// CalculateCorpusNeeded projects current wealth and the active SIP forward
// and offers four lumpsum/SIP splits to close the gap to the target.
//
// The forward SIP value uses an annuity-due factor (times 1+ror) while the
// deficit is converted back to a SIP with the plain annuity factor. Both
// formulas are kept as the portal has always reported them.
func CalculateCorpusNeeded(in domain.CorpusNeededInput) domain.Result {
	factor := annuityFactor(in.ROR, in.Years)
	fromCurrent := in.CurrentWealth * math.Pow(1+in.ROR, float64(in.Years))
	fromSIP := in.ActiveSIP * factor * (1 + in.ROR)
	future := fromCurrent + fromSIP
	deficit := in.TargetWealth - future

	years := float64(in.Years)
	option := func(name string, lumpsum, sip float64) domain.Row {
		return domain.NewRow(corpusNeededHeaders,
			domain.Text(name),
			domain.Amount(lumpsum),
			domain.Amount(sip),
			domain.Amount(lumpsum+sip*12*years),
		)
	}

	fullSIP := deficit / factor
	halfLump := deficit * 0.5
	halfSIP := (deficit * 0.5) / factor
	mostlyLump := deficit * 0.6
	partSIP := (deficit * 0.4) / factor

	table := domain.Table{
		Headers: corpusNeededHeaders,
		Rows: []domain.Row{
			domain.NewRow(corpusNeededHeaders,
				domain.Text("Option 1: 100% Lumpsum"),
				domain.Amount(deficit),
				domain.Text("0.00"),
				domain.Amount(deficit),
			),
			domain.NewRow(corpusNeededHeaders,
				domain.Text("Option 2: 100% SIP"),
				domain.Text("0.00"),
				domain.Amount(fullSIP),
				domain.Amount(fullSIP*12*years),
			),
			option("Option 3: 50% SIP + 50% Lumpsum", halfLump, halfSIP),
			option("Option 4: 40% SIP + 60% Lumpsum", mostlyLump, partSIP),
		},
	}

	return domain.Result{
		Cards: []domain.Card{
			{Title: "Current Wealth", Value: domain.Amount(in.CurrentWealth)},
			{Title: "Target Wealth", Value: domain.Amount(in.TargetWealth)},
			{Title: "Future Wealth (Current + SIP)", Value: domain.Amount(future)},
			{Title: "Deficit", Value: domain.Amount(deficit)},
		},
		Tables: []domain.Table{table},
		Notes: []string{
			"Future Wealth calculated with compound interest over specified years",
			"SIP amounts are monthly contributions needed to bridge the deficit",
			"Choose option based on your liquidity preference and investment style",
		},
	}
}

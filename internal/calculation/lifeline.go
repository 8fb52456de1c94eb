package calculation

import (
	"math"

	"github.com/mutualfundportal/portal/internal/domain"
)

const (
	// LifelineInflationRate is the fixed annual expense inflation.
	LifelineInflationRate = 0.07
	// LifelineReturnRate is the fixed annual return used to size the corpus.
	LifelineReturnRate = 0.06
	// lifelineStride is the age step between table rows.
	lifelineStride = 10
)

var lifelineHeaders = []string{"Age", "Future Monthly Expense (₹)"}

// CalculateLifeline projects monthly expenses from the current age to
// retirement in ten-year steps and sizes the corpus needed to fund the
// expense at retirement as a perpetuity.
//
// The age sequence only contains ages reached by the stride; retirementAge
// is not appended when the stride skips over it.
func CalculateLifeline(in domain.LifelineInput) domain.Result {
	table := domain.Table{Headers: lifelineHeaders}
	for age := in.CurrentAge; age <= in.RetirementAge; age += lifelineStride {
		expense := in.MonthlyExpenseNow * math.Pow(1+LifelineInflationRate, float64(age-in.CurrentAge))
		table.Rows = append(table.Rows, domain.NewRow(lifelineHeaders,
			domain.Int(age),
			domain.Amount(expense),
		))
	}

	yearsToRetirement := float64(in.RetirementAge - in.CurrentAge)
	expenseAtRetirement := in.MonthlyExpenseNow * math.Pow(1+LifelineInflationRate, yearsToRetirement)
	corpus := expenseAtRetirement * 12 * (1 / LifelineReturnRate)

	return domain.Result{
		Cards: []domain.Card{
			{Title: "Desired Age of Retirement", Value: domain.Int(in.RetirementAge)},
			{Title: "Future Monthly Expense*", Value: domain.Amount(expenseAtRetirement)},
			{Title: "Future Corpus Required**", Value: domain.Amount(corpus)},
		},
		Tables: []domain.Table{table},
		Notes: []string{
			"* Future Monthly Expense calculated with 7% inflation",
			"** Future Corpus based on 6% annual return",
		},
	}
}

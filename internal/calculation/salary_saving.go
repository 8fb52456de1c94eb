package calculation

import (
	"math"

	"github.com/mutualfundportal/portal/internal/domain"
)

const (
	needsShare = 0.50
	wantsShare = 0.30
)

var salarySavingHeaders = []string{
	"Age",
	"Monthly Salary (₹)",
	"Annual Salary (₹)",
	"Needs (₹)",
	"Wants (₹)",
	"Savings (₹)",
	"Saving Corpus (₹)",
}

// CalculateSalarySaving grows the salary year by year and splits it into
// needs, wants and savings. Each year's savings are compounded as an annual
// annuity over year+1 periods. A zero rate yields NaN corpus values.
func CalculateSalarySaving(in domain.SalarySavingInput) domain.Result {
	table := domain.Table{Headers: salarySavingHeaders}
	var totalNeeds, totalWants, totalSavings float64

	for year := 0; year <= in.CalculateUptoAge-in.CurrentAge; year++ {
		annual := in.MonthlySalary * 12 * math.Pow(1+in.SalaryGrowth, float64(year))
		needs := annual * needsShare
		wants := annual * wantsShare
		savings := annual * in.SavingsRate
		corpus := savings * (math.Pow(1+in.Rate, float64(year+1)) - 1) / in.Rate

		table.Rows = append(table.Rows, domain.NewRow(salarySavingHeaders,
			domain.Int(in.CurrentAge+year),
			domain.Amount(annual/12),
			domain.Amount(annual),
			domain.Amount(needs),
			domain.Amount(wants),
			domain.Amount(savings),
			domain.Amount(corpus),
		))

		totalNeeds += needs
		totalWants += wants
		totalSavings += savings
	}

	table.Rows = append(table.Rows, domain.NewRow(salarySavingHeaders,
		domain.Text("TOTAL"),
		domain.Text(""),
		domain.Text(""),
		domain.Amount(totalNeeds),
		domain.Amount(totalWants),
		domain.Amount(totalSavings),
		domain.Text(""),
	))

	return domain.Result{
		Cards: []domain.Card{
			{Title: "Current Monthly Salary", Value: domain.Amount(in.MonthlySalary)},
			{Title: "Salary Growth Rate", Value: domain.Percent(in.SalaryGrowth)},
			{Title: "Savings Rate", Value: domain.Percent(in.SavingsRate)},
		},
		Tables: []domain.Table{table},
		Notes: []string{
			"Needs: 50% of salary, Wants: 30% of salary, Savings: Based on savings rate",
			"Saving Corpus: Compounded savings at specified return rate",
		},
	}
}

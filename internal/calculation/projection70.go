package calculation

import (
	"github.com/mutualfundportal/portal/internal/domain"
)

// ProjectionYears is the fixed horizon of the long-term projection.
const ProjectionYears = 70

var projectionHeaders = []string{
	"Year",
	"SIP Amount (₹)",
	"Total Investment (₹)",
	"Withdrawal (₹)",
	"SIP Value (₹)",
	"Net Wealth (₹)",
}

// projectionMilestone keeps the first ten years, every tenth year and the
// last ten years.
func projectionMilestone(year int) bool {
	return year <= 10 || year%10 == 0 || year >= ProjectionYears-10
}

// CalculateProjection70 compounds the lumpsum and an annualised SIP over
// years 0 through 70 inclusive, so the lumpsum is compounded 71 times.
// EndYear does not shorten the horizon.
func CalculateProjection70(in domain.Projection70Input) domain.Result {
	table := domain.Table{Headers: projectionHeaders}
	corpus := in.LumpsumInvestment
	invested := in.LumpsumInvestment
	sip := in.MonthlyInvestment * 12

	for year := 0; year <= ProjectionYears; year++ {
		invested += sip
		corpus = corpus*(1+in.ROR) + sip
		if !projectionMilestone(year) {
			continue
		}
		table.Rows = append(table.Rows, domain.NewRow(projectionHeaders,
			domain.Int(in.StartYear+year),
			domain.Amount(sip),
			domain.Amount(invested),
			domain.Text("0.00"),
			domain.Amount(sip),
			domain.Amount(corpus),
		))
	}

	return domain.Result{
		Cards: []domain.Card{
			{Title: "Initial Lumpsum", Value: domain.Amount(in.LumpsumInvestment)},
			{Title: "Monthly SIP", Value: domain.Amount(in.MonthlyInvestment)},
			{Title: "Return Rate", Value: domain.Percent(in.ROR)},
			{Title: "Final Wealth (70 years)", Value: domain.Amount(corpus)},
		},
		Tables: []domain.Table{table},
		Notes: []string{
			"Projection covers 70 years from start year",
			"Shows key milestone years for readability",
			"Assumes no withdrawals during accumulation phase",
		},
	}
}

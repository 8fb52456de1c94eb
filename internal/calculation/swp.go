package calculation

import (
	"math"

	"github.com/mutualfundportal/portal/internal/domain"
)

const (
	// swpTrackedMonths is the length of the month-wise simulation.
	swpTrackedMonths = 240
	// swpDetailMonths are always shown; later months only at year ends.
	swpDetailMonths = 60
)

// SWPHorizons are the withdrawal scenarios, in years.
var SWPHorizons = []int{5, 10, 15, 20}

var (
	swpScenarioHeaders = []string{"Years", "Total Withdrawal (₹)", "Net Worth (₹)"}
	swpMonthlyHeaders  = []string{"Month", "Monthly Amount (₹)", "Interest (₹)", "Net Worth (₹)"}
)

// swpStep applies one month of interest and withdrawal.
func swpStep(balance, monthlyRate, withdrawal float64) (next, interest float64) {
	interest = balance * monthlyRate
	return balance + interest - withdrawal, interest
}

// swpIncludeMonth reports whether a month is sampled into the tracking table.
func swpIncludeMonth(month int) bool {
	return month <= swpDetailMonths || month%12 == 0
}

// CalculateSWP simulates a fixed monthly withdrawal from a corpus with
// monthly compounding. The balance may go negative; displayed net worth is
// floored at zero.
func CalculateSWP(in domain.SWPInput) domain.Result {
	monthlyRate := in.ReturnRate / 12

	scenarios := domain.Table{Headers: swpScenarioHeaders}
	for _, years := range SWPHorizons {
		balance := in.InvestmentAmount
		for month := 1; month <= years*12; month++ {
			balance, _ = swpStep(balance, monthlyRate, in.Withdrawal)
		}
		scenarios.Rows = append(scenarios.Rows, domain.NewRow(swpScenarioHeaders,
			domain.Int(years),
			domain.Amount(in.Withdrawal*12*float64(years)),
			domain.Amount(math.Max(0, balance)),
		))
	}

	tracking := domain.Table{Headers: swpMonthlyHeaders}
	balance := in.InvestmentAmount
	for month := 1; month <= swpTrackedMonths; month++ {
		var interest float64
		balance, interest = swpStep(balance, monthlyRate, in.Withdrawal)
		if !swpIncludeMonth(month) {
			continue
		}
		tracking.Rows = append(tracking.Rows, domain.NewRow(swpMonthlyHeaders,
			domain.Int(month),
			domain.Amount(in.Withdrawal),
			domain.Amount(interest),
			domain.Amount(math.Max(0, balance)),
		))
	}

	return domain.Result{
		Cards: []domain.Card{
			{Title: "Initial Investment", Value: domain.Amount(in.InvestmentAmount)},
			{Title: "Monthly Withdrawal", Value: domain.Amount(in.Withdrawal)},
			{Title: "Expected Return Rate", Value: domain.Percent(in.ReturnRate)},
		},
		Tables: []domain.Table{scenarios, tracking},
		Notes: []string{
			"Table 1: Shows withdrawal scenarios for different time periods",
			"Table 2: Month-wise tracking (showing first 5 years + yearly milestones)",
			"Net Worth calculated with monthly compounding and withdrawals",
		},
	}
}

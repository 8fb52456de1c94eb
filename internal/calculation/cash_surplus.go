package calculation

import (
	"fmt"
	"math"

	"github.com/mutualfundportal/portal/internal/domain"
)

// Remarks attached to the cash surplus result.
const (
	RemarkPositive  = "Positive cash flow - Good financial health"
	RemarkBreakEven = "Break-even cash flow - Monitor expenses"
	RemarkNegative  = "Negative cash flow - Review spending patterns"
)

// Positions of the individually reported categories.
const (
	categoryInsurance = iota
	categorySavings
	categoryLoanEMI
	firstOtherCategory
)

var cashSurplusHeaders = []string{"Category", "Amount (₹)"}

// category returns the expense at position i. Missing and NaN entries read
// as zero here but still flow into the totals.
func category(expenses []float64, i int) float64 {
	if i >= len(expenses) || math.IsNaN(expenses[i]) {
		return 0
	}
	return expenses[i]
}

func cashRemark(surplus float64) string {
	switch {
	case surplus > 0:
		return RemarkPositive
	case surplus == 0:
		return RemarkBreakEven
	default:
		return RemarkNegative
	}
}

// CalculateCashSurplus compares monthly cash in with the categorised
// expenses. Insurance, savings and loan EMI are reported on their own and
// every later position is summed as other expenses.
func CalculateCashSurplus(in domain.CashSurplusInput) domain.Result {
	var total, other float64
	for i, e := range in.ExpensesByCategory {
		total += e
		if i >= firstOtherCategory {
			other += e
		}
	}
	surplus := in.CashIn - total

	insurance := category(in.ExpensesByCategory, categoryInsurance)
	savings := category(in.ExpensesByCategory, categorySavings)
	emi := category(in.ExpensesByCategory, categoryLoanEMI)

	table := domain.Table{
		Headers: cashSurplusHeaders,
		Rows: []domain.Row{
			domain.NewRow(cashSurplusHeaders, domain.Text("Insurance"), domain.Amount(insurance)),
			domain.NewRow(cashSurplusHeaders, domain.Text("Savings"), domain.Amount(savings)),
			domain.NewRow(cashSurplusHeaders, domain.Text("Loan EMI"), domain.Amount(emi)),
			domain.NewRow(cashSurplusHeaders, domain.Text("Other Expenses"), domain.Amount(other)),
			domain.NewRow(cashSurplusHeaders, domain.Text("TOTAL"), domain.Amount(total)),
		},
	}

	return domain.Result{
		Cards: []domain.Card{
			{Title: "Cash In (₹)", Value: domain.Amount(in.CashIn)},
			{Title: "Cash Out (₹)", Value: domain.Amount(total)},
			{Title: "Cash Surplus (₹)", Value: domain.Amount(surplus)},
		},
		Tables: []domain.Table{table},
		Notes: []string{
			"Remarks: " + cashRemark(surplus),
			fmt.Sprintf("Insurance: %s, Savings: %s", domain.FormatFixed(insurance, 2), domain.FormatFixed(savings, 2)),
			fmt.Sprintf("Loan EMI: %s, Monthly Expense: %s", domain.FormatFixed(emi, 2), domain.FormatFixed(other, 2)),
		},
	}
}

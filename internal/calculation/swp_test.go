package calculation

import (
	"math"
	"testing"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSWP_NoWithdrawalCompounds(t *testing.T) {
	in := domain.SWPInput{InvestmentAmount: 1000000, ReturnRate: 0.12}
	res := CalculateSWP(in)
	require.Len(t, res.Tables, 2)

	for _, row := range res.Tables[1].Rows {
		month, _ := row.Get("Month")
		worth, _ := row.Get("Net Worth (₹)")
		want := in.InvestmentAmount * math.Pow(1+in.ReturnRate/12, month.Float())
		assert.InEpsilon(t, want, worth.Float(), 1e-9, "month %d", int(month.Float()))
	}
}

func TestCalculateSWP_MonthSampling(t *testing.T) {
	res := CalculateSWP(domain.SWPInput{InvestmentAmount: 500000, ReturnRate: 0.08, Withdrawal: 2000})
	var months []int
	for _, v := range res.Tables[1].Column("Month") {
		months = append(months, int(v.Float()))
	}
	// 60 detailed months plus year ends 72..240
	require.Len(t, months, 60+15)
	assert.Equal(t, 1, months[0])
	assert.Equal(t, 60, months[59])
	assert.Equal(t, 72, months[60])
	assert.Equal(t, 240, months[len(months)-1])
}

func TestCalculateSWP_Scenarios(t *testing.T) {
	in := domain.SWPInput{InvestmentAmount: 1000000, ReturnRate: 0.1, Withdrawal: 10000, ExpectedRate: 0.09}
	res := CalculateSWP(in)
	scenarios := res.Tables[0]
	require.Len(t, scenarios.Rows, 4)

	for i, years := range []int{5, 10, 15, 20} {
		row := scenarios.Rows[i]
		y, _ := row.Get("Years")
		assert.Equal(t, years, int(y.Float()))
		total, _ := row.Get("Total Withdrawal (₹)")
		assert.Equal(t, float64(10000*12*years), total.Float())

		balance := in.InvestmentAmount
		for m := 0; m < years*12; m++ {
			balance = balance + balance*(in.ReturnRate/12) - in.Withdrawal
		}
		worth, _ := row.Get("Net Worth (₹)")
		assert.Equal(t, math.Max(0, balance), worth.Float())
	}

	// the 20-year scenario and the last tracked month share one simulation rule
	last := res.Tables[1].Rows[len(res.Tables[1].Rows)-1]
	lastWorth, _ := last.Get("Net Worth (₹)")
	scenarioWorth, _ := scenarios.Rows[3].Get("Net Worth (₹)")
	assert.Equal(t, scenarioWorth.Float(), lastWorth.Float())

	rate, _ := res.Card("Expected Return Rate")
	assert.Equal(t, "10.0%", rate.Value.String())
}

func TestCalculateSWP_NetWorthFlooredAtZero(t *testing.T) {
	res := CalculateSWP(domain.SWPInput{InvestmentAmount: 100000, ReturnRate: 0.06, Withdrawal: 5000})
	for _, table := range res.Tables {
		for _, v := range table.Column("Net Worth (₹)") {
			assert.GreaterOrEqual(t, v.Float(), 0.0)
		}
	}
	worth, _ := res.Tables[0].Rows[3].Get("Net Worth (₹)")
	assert.Equal(t, "0.00", worth.String())

	// interest keeps following the negative balance
	last := res.Tables[1].Rows[len(res.Tables[1].Rows)-1]
	interest, _ := last.Get("Interest (₹)")
	assert.Less(t, interest.Float(), 0.0)
}

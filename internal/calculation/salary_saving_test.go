package calculation

import (
	"math"
	"testing"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSalarySaving_SingleYear(t *testing.T) {
	in := domain.SalarySavingInput{
		Rate:             0.08,
		MonthlySalary:    50000,
		SavingsRate:      0.2,
		SalaryGrowth:     0.1,
		CalculateUptoAge: 30,
		CurrentAge:       30,
	}
	res := CalculateSalarySaving(in)
	require.Len(t, res.Tables, 1)
	table := res.Tables[0]
	require.Len(t, table.Rows, 2, "one data row plus TOTAL")

	data, total := table.Rows[0], table.Rows[1]
	for _, col := range []string{"Needs (₹)", "Wants (₹)", "Savings (₹)"} {
		d, _ := data.Get(col)
		tot, _ := total.Get(col)
		assert.Equal(t, d.Float(), tot.Float(), col)
	}

	age, _ := total.Get("Age")
	assert.Equal(t, "TOTAL", age.String())
	for _, col := range []string{"Monthly Salary (₹)", "Annual Salary (₹)", "Saving Corpus (₹)"} {
		v, _ := total.Get(col)
		assert.Equal(t, "", v.String(), col)
	}

	annual, _ := data.Get("Annual Salary (₹)")
	assert.Equal(t, "600000.00", annual.String())
	monthly, _ := data.Get("Monthly Salary (₹)")
	assert.Equal(t, "50000.00", monthly.String())
	needs, _ := data.Get("Needs (₹)")
	assert.Equal(t, "300000.00", needs.String())
	wants, _ := data.Get("Wants (₹)")
	assert.Equal(t, "180000.00", wants.String())
	corpus, _ := data.Get("Saving Corpus (₹)")
	assert.InDelta(t, 120000.0, corpus.Float(), 1e-6)
}

func TestCalculateSalarySaving_Growth(t *testing.T) {
	in := domain.SalarySavingInput{
		Rate:             0.1,
		Nominal:          0.05,
		MonthlySalary:    10000,
		SavingsRate:      0.25,
		SalaryGrowth:     0.05,
		CalculateUptoAge: 35,
		CurrentAge:       30,
	}
	res := CalculateSalarySaving(in)
	table := res.Tables[0]
	require.Len(t, table.Rows, 7)
	assert.Equal(t, []string{"Age", "Monthly Salary (₹)", "Annual Salary (₹)", "Needs (₹)", "Wants (₹)", "Savings (₹)", "Saving Corpus (₹)"}, table.Headers)

	var sumSavings float64
	for year, row := range table.Rows[:6] {
		age, _ := row.Get("Age")
		assert.Equal(t, 30+year, int(age.Float()))
		annual, _ := row.Get("Annual Salary (₹)")
		assert.InDelta(t, 120000*math.Pow(1.05, float64(year)), annual.Float(), 1e-6)
		savings, _ := row.Get("Savings (₹)")
		sumSavings += savings.Float()
		corpus, _ := row.Get("Saving Corpus (₹)")
		assert.InDelta(t, savings.Float()*(math.Pow(1.1, float64(year+1))-1)/0.1, corpus.Float(), 1e-6)
	}
	totalSavings, _ := table.Rows[6].Get("Savings (₹)")
	assert.InDelta(t, sumSavings, totalSavings.Float(), 1e-6)

	growth, _ := res.Card("Salary Growth Rate")
	assert.Equal(t, "5.0%", growth.Value.String())
	rate, _ := res.Card("Savings Rate")
	assert.Equal(t, "25.0%", rate.Value.String())
	salary, _ := res.Card("Current Monthly Salary")
	assert.Equal(t, "10000.00", salary.Value.String())
}

func TestCalculateSalarySaving_ZeroRateDoesNotPanic(t *testing.T) {
	in := domain.SalarySavingInput{MonthlySalary: 1000, SavingsRate: 0.1, CalculateUptoAge: 41, CurrentAge: 40}
	var res domain.Result
	require.NotPanics(t, func() { res = CalculateSalarySaving(in) })
	corpus, _ := res.Tables[0].Rows[0].Get("Saving Corpus (₹)")
	assert.True(t, math.IsNaN(corpus.Float()))
	assert.Equal(t, "NaN", corpus.String())
}

func TestCalculateSalarySaving_TargetBeforeCurrentAge(t *testing.T) {
	res := CalculateSalarySaving(domain.SalarySavingInput{MonthlySalary: 1000, Rate: 0.1, CalculateUptoAge: 20, CurrentAge: 30})
	require.Len(t, res.Tables[0].Rows, 1)
	needs, _ := res.Tables[0].Rows[0].Get("Needs (₹)")
	assert.Equal(t, "0.00", needs.String())
}

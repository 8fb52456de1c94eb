package calculation

import (
	"math"
	"testing"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateProjection70_LumpsumOnly(t *testing.T) {
	in := domain.Projection70Input{LumpsumInvestment: 100000, ROR: 0.08, StartYear: 2025, EndYear: 2030}
	res := CalculateProjection70(in)

	final, ok := res.Card("Final Wealth (70 years)")
	require.True(t, ok)
	assert.InEpsilon(t, 100000*math.Pow(1.08, 71), final.Value.Float(), 1e-12)

	for _, v := range res.Tables[0].Column("Total Investment (₹)") {
		assert.Equal(t, in.LumpsumInvestment, v.Float())
	}
	for _, v := range res.Tables[0].Column("Withdrawal (₹)") {
		assert.Equal(t, "0.00", v.String())
	}
}

func TestCalculateProjection70_Milestones(t *testing.T) {
	res := CalculateProjection70(domain.Projection70Input{LumpsumInvestment: 1000, ROR: 0.1, MonthlyInvestment: 500, StartYear: 2024, EndYear: 2030})
	var years []int
	for _, v := range res.Tables[0].Column("Year") {
		years = append(years, int(v.Float())-2024)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 20, 30, 40, 50, 60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70}
	assert.Equal(t, want, years)

	first := res.Tables[0].Rows[0]
	invested, _ := first.Get("Total Investment (₹)")
	assert.Equal(t, 7000.0, invested.Float(), "lumpsum plus the first year's SIP")
	wealth, _ := first.Get("Net Wealth (₹)")
	assert.InDelta(t, 7100.0, wealth.Float(), 1e-9)
	sip, _ := first.Get("SIP Amount (₹)")
	assert.Equal(t, "6000.00", sip.String())

	last := res.Tables[0].Rows[len(res.Tables[0].Rows)-1]
	lastWealth, _ := last.Get("Net Wealth (₹)")
	final, _ := res.Card("Final Wealth (70 years)")
	assert.Equal(t, final.Value.Float(), lastWealth.Float())
	lastInvested, _ := last.Get("Total Investment (₹)")
	assert.Equal(t, 1000.0+71*6000, lastInvested.Float())
}

func TestCalculateProjection70_HugeCorpusUsesExponentForm(t *testing.T) {
	res := CalculateProjection70(domain.Projection70Input{LumpsumInvestment: 1000000, ROR: 1})
	final, ok := res.Card("Final Wealth (70 years)")
	require.True(t, ok)
	assert.Equal(t, 1000000*math.Pow(2, 71), final.Value.Float())
	assert.Equal(t, "2.3611832414348226e+27", final.Value.String())
}

package calculation

import (
	"math"
	"testing"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ages(t *testing.T, res domain.Result) []int {
	t.Helper()
	require.Len(t, res.Tables, 1)
	var out []int
	for _, v := range res.Tables[0].Column("Age") {
		require.Equal(t, domain.ValueInteger, v.Kind())
		out = append(out, int(v.Float()))
	}
	return out
}

func TestCalculateLifeline_ReferenceCase(t *testing.T) {
	res := CalculateLifeline(domain.LifelineInput{CurrentAge: 32, RetirementAge: 62, MonthlyExpenseNow: 39500})

	assert.Equal(t, []int{32, 42, 52, 62}, ages(t, res))

	wantExpense := 39500 * math.Pow(1.07, 30)
	wantCorpus := wantExpense * 12 / 0.06

	expense, ok := res.Card("Future Monthly Expense*")
	require.True(t, ok)
	assert.Equal(t, wantExpense, expense.Value.Float())

	corpus, ok := res.Card("Future Corpus Required**")
	require.True(t, ok)
	assert.InDelta(t, wantCorpus, corpus.Value.Float(), 1e-6)

	retire, ok := res.Card("Desired Age of Retirement")
	require.True(t, ok)
	assert.Equal(t, "62", retire.Value.String())

	// first row is today's expense, last row matches the retirement card
	rows := res.Tables[0].Column("Future Monthly Expense (₹)")
	assert.Equal(t, "39500.00", rows[0].String())
	assert.Equal(t, expense.Value.String(), rows[len(rows)-1].String())

	assert.Equal(t, []string{
		"* Future Monthly Expense calculated with 7% inflation",
		"** Future Corpus based on 6% annual return",
	}, res.Notes)
}

func TestCalculateLifeline_AgeSequence(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		retirement int
		want       []int
	}{
		{"stride skips retirement age", 30, 55, []int{30, 40, 50}},
		{"same age", 45, 45, []int{45}},
		{"retirement before current", 50, 40, nil},
		{"short gap", 58, 60, []int{58}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CalculateLifeline(domain.LifelineInput{CurrentAge: tt.current, RetirementAge: tt.retirement, MonthlyExpenseNow: 1000})
			assert.Equal(t, tt.want, ages(t, res))
		})
	}
}

func TestCalculateLifeline_RetirementUsesExactYears(t *testing.T) {
	res := CalculateLifeline(domain.LifelineInput{CurrentAge: 30, RetirementAge: 55, MonthlyExpenseNow: 20000})
	card, _ := res.Card("Future Monthly Expense*")
	assert.Equal(t, 20000*math.Pow(1.07, 25), card.Value.Float())
}

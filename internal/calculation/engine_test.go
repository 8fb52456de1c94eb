package calculation

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleInputs = []domain.Input{
	domain.LifelineInput{CurrentAge: 32, RetirementAge: 62, MonthlyExpenseNow: 39500},
	domain.SalarySavingInput{Rate: 0.08, MonthlySalary: 75000, SavingsRate: 0.2, SalaryGrowth: 0.07, CalculateUptoAge: 60, CurrentAge: 32},
	domain.SWPInput{InvestmentAmount: 5000000, ReturnRate: 0.09, Withdrawal: 40000},
	domain.CashSurplusInput{CashIn: 120000, ExpensesByCategory: []float64{3000, 20000, 25000, 18000, 9000}},
	domain.Projection70Input{LumpsumInvestment: 200000, ROR: 0.11, MonthlyInvestment: 15000, StartYear: 2025, EndYear: 2095},
	domain.CorpusNeededInput{CurrentWealth: 2500000, ROR: 0.1, ActiveSIP: 25000, Years: 20, TargetWealth: 100000000},
}

func TestCalculate_Dispatch(t *testing.T) {
	for _, in := range sampleInputs {
		t.Run(in.Kind().String(), func(t *testing.T) {
			res, err := Calculate(in)
			require.NoError(t, err)
			assert.NotEmpty(t, res.Cards)
			assert.NotEmpty(t, res.Tables)
			assert.NotEmpty(t, res.Notes)
		})
	}

	ptr := &domain.SWPInput{InvestmentAmount: 1000, ReturnRate: 0.12}
	res, err := Calculate(ptr)
	require.NoError(t, err)
	assert.Len(t, res.Tables, 2)
}

func TestCalculate_UnknownCalculator(t *testing.T) {
	_, err := Calculate(nil)
	assert.ErrorIs(t, err, ErrUnknownCalculator)

	var nilPtr *domain.LifelineInput
	_, err = Calculate(nilPtr)
	assert.ErrorIs(t, err, ErrUnknownCalculator)
}

func TestCalculate_Deterministic(t *testing.T) {
	for _, in := range sampleInputs {
		first, err := Calculate(in)
		require.NoError(t, err)

		var wg sync.WaitGroup
		results := make([]domain.Result, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = Calculate(in)
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			require.Equal(t, len(first.Tables), len(r.Tables))
			for ti := range first.Tables {
				for ri, row := range first.Tables[ti].Rows {
					for ci, cell := range row {
						got := r.Tables[ti].Rows[ri][ci].Value
						assert.Equal(t, math.Float64bits(cell.Value.Float()), math.Float64bits(got.Float()), "%s %s", in.Kind(), cell.Column)
					}
				}
			}
		}
	}
}

func TestCalculate_NaNPropagates(t *testing.T) {
	res, err := Calculate(domain.LifelineInput{CurrentAge: 30, RetirementAge: 60, MonthlyExpenseNow: math.NaN()})
	require.NoError(t, err)
	card, _ := res.Card("Future Corpus Required**")
	assert.Equal(t, "NaN", card.Value.String())

	res, err = Calculate(domain.CashSurplusInput{CashIn: math.Inf(1), ExpensesByCategory: []float64{1}})
	require.NoError(t, err)
	surplus, _ := res.Card("Cash Surplus (₹)")
	assert.Equal(t, "Infinity", surplus.Value.String())
}

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.add("DEBUG", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("INFO", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("WARN", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("ERROR", format, args...) }

func TestEngine_Logging(t *testing.T) {
	rec := &recordingLogger{}
	e := NewEngine()
	e.SetLogger(rec)

	_, err := e.Calculate(domain.CashSurplusInput{CashIn: 10})
	require.NoError(t, err)
	require.Len(t, rec.lines, 1)
	assert.Equal(t, "DEBUG [cashSurplus] 3 cards, 1 tables, 5 rows", rec.lines[0])

	_, err = e.Calculate(nil)
	assert.ErrorIs(t, err, ErrUnknownCalculator)
	assert.Contains(t, rec.lines[1], "ERROR calculation failed")

	e.SetLogger(nil)
	assert.IsType(t, NopLogger{}, e.Logger)
}

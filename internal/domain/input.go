package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCalculator is returned for an identifier or input variant that
// does not name one of the six calculators.
var ErrUnknownCalculator = errors.New("unknown calculator")

// Kind identifies a calculator.
type Kind string

const (
	KindLifeline     Kind = "lifeline"
	KindSalarySaving Kind = "salarySaving"
	KindSWP          Kind = "swp"
	KindCashSurplus  Kind = "cashSurplus"
	KindProjection70 Kind = "projection70"
	KindCorpusNeeded Kind = "corpusNeeded"
)

// AllKinds lists the calculators in catalog order.
var AllKinds = []Kind{
	KindLifeline,
	KindSalarySaving,
	KindSWP,
	KindCashSurplus,
	KindProjection70,
	KindCorpusNeeded,
}

func (k Kind) String() string { return string(k) }

// kindAliases maps user-friendly spellings to calculator identifiers.
var kindAliases = map[string]Kind{
	"lifeline":      KindLifeline,
	"salarysaving":  KindSalarySaving,
	"salary-saving": KindSalarySaving,
	"salary":        KindSalarySaving,
	"swp":           KindSWP,
	"cashsurplus":   KindCashSurplus,
	"cash-surplus":  KindCashSurplus,
	"projection70":  KindProjection70,
	"projection-70": KindProjection70,
	"70-year":       KindProjection70,
	"corpusneeded":  KindCorpusNeeded,
	"corpus-needed": KindCorpusNeeded,
	"deficit":       KindCorpusNeeded,
}

// ParseKind resolves a calculator identifier or alias.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCalculator, s)
}

// Input is the closed set of calculator inputs. Exactly one concrete type
// exists per Kind.
type Input interface {
	Kind() Kind
	isInput()
}

// LifelineInput projects living expenses to retirement.
type LifelineInput struct {
	CurrentAge        int     `json:"currentAge" yaml:"current_age"`
	RetirementAge     int     `json:"retirementAge" yaml:"retirement_age"`
	MonthlyExpenseNow float64 `json:"monthlyExpenseNow" yaml:"monthly_expense_now"`
}

// SalarySavingInput projects salary growth split by the 50/30/savings rule.
// Nominal is accepted but does not affect the result.
type SalarySavingInput struct {
	Rate             float64 `json:"rate" yaml:"rate"`
	Nominal          float64 `json:"nominal" yaml:"nominal"`
	MonthlySalary    float64 `json:"monthlySalary" yaml:"monthly_salary"`
	SavingsRate      float64 `json:"savingsRate" yaml:"savings_rate"`
	SalaryGrowth     float64 `json:"salaryGrowth" yaml:"salary_growth"`
	CalculateUptoAge int     `json:"calculateUptoAge" yaml:"calculate_upto_age"`
	CurrentAge       int     `json:"currentAge" yaml:"current_age"`
}

// SWPInput describes a systematic withdrawal plan. Withdrawal is monthly;
// ExpectedRate is accepted but unused.
type SWPInput struct {
	InvestmentAmount float64 `json:"investmentAmount" yaml:"investment_amount"`
	ReturnRate       float64 `json:"returnRate" yaml:"return_rate"`
	Withdrawal       float64 `json:"withdrawal" yaml:"withdrawal"`
	ExpectedRate     float64 `json:"expectedRate" yaml:"expected_rate"`
}

// CashSurplusInput holds monthly cash in and up to ExpenseCategoryCount
// positional expense amounts (see ExpenseCategories).
type CashSurplusInput struct {
	CashIn             float64   `json:"cashIn" yaml:"cash_in"`
	ExpensesByCategory []float64 `json:"expensesByCategory" yaml:"expenses_by_category"`
}

// Projection70Input drives the 70-year wealth projection. NominalRate and
// EndYear are accepted but the horizon is always 70 years.
type Projection70Input struct {
	LumpsumInvestment float64 `json:"lumpsumInvestment" yaml:"lumpsum_investment"`
	ROR               float64 `json:"ror" yaml:"ror"`
	NominalRate       float64 `json:"nominalRate" yaml:"nominal_rate"`
	MonthlyInvestment float64 `json:"monthlyInvestment" yaml:"monthly_investment"`
	StartYear         int     `json:"startYear" yaml:"start_year"`
	EndYear           int     `json:"endYear" yaml:"end_year"`
}

// CorpusNeededInput compares projected wealth with a target.
type CorpusNeededInput struct {
	CurrentWealth float64 `json:"currentWealth" yaml:"current_wealth"`
	ROR           float64 `json:"ror" yaml:"ror"`
	NominalRate   float64 `json:"nominalRate" yaml:"nominal_rate"`
	ActiveSIP     float64 `json:"activeSIP" yaml:"active_sip"`
	Years         int     `json:"years" yaml:"years"`
	TargetWealth  float64 `json:"targetWealth" yaml:"target_wealth"`
}

func (LifelineInput) Kind() Kind     { return KindLifeline }
func (SalarySavingInput) Kind() Kind { return KindSalarySaving }
func (SWPInput) Kind() Kind          { return KindSWP }
func (CashSurplusInput) Kind() Kind  { return KindCashSurplus }
func (Projection70Input) Kind() Kind { return KindProjection70 }
func (CorpusNeededInput) Kind() Kind { return KindCorpusNeeded }

func (LifelineInput) isInput()     {}
func (SalarySavingInput) isInput() {}
func (SWPInput) isInput()          {}
func (CashSurplusInput) isInput()  {}
func (Projection70Input) isInput() {}
func (CorpusNeededInput) isInput() {}

// Unwrap returns the value variant behind a pointer input, or nil for a nil
// pointer. Value variants are returned unchanged.
func Unwrap(in Input) Input {
	switch v := in.(type) {
	case *LifelineInput:
		if v != nil {
			return *v
		}
	case *SalarySavingInput:
		if v != nil {
			return *v
		}
	case *SWPInput:
		if v != nil {
			return *v
		}
	case *CashSurplusInput:
		if v != nil {
			return *v
		}
	case *Projection70Input:
		if v != nil {
			return *v
		}
	case *CorpusNeededInput:
		if v != nil {
			return *v
		}
	default:
		return in
	}
	return nil
}

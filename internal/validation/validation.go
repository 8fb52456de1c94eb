// Package validation checks calculator inputs against CEL rules before they
// reach the engine. The engine accepts any numbers; these rules reject the
// inputs that would only produce NaN, Infinity or empty tables.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/mutualfundportal/portal/internal/domain"
)

// Rule is a boolean CEL expression over the input fields, exposed as the
// map variable `input` keyed by the input's JSON field names.
type Rule struct {
	Kind       domain.Kind
	Name       string
	Expression string
	Message    string
}

// Violation is one failed rule.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Violations is returned by Validate when at least one rule fails.
type Violations []Violation

func (v Violations) Error() string {
	msgs := make([]string, len(v))
	for i, x := range v {
		msgs[i] = x.Message
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

// DefaultRules returns the portal's input rules.
func DefaultRules() []Rule {
	return []Rule{
		{domain.KindLifeline, "retirement-after-current", "input.retirementAge >= input.currentAge", "retirement age must not be before current age"},
		{domain.KindLifeline, "expense-non-negative", "input.monthlyExpenseNow >= 0.0", "monthly expense cannot be negative"},

		{domain.KindSalarySaving, "rate-non-zero", "input.rate != 0.0", "rate of return must not be zero"},
		{domain.KindSalarySaving, "upto-after-current", "input.calculateUptoAge >= input.currentAge", "calculate upto age must not be before current age"},
		{domain.KindSalarySaving, "salary-non-negative", "input.monthlySalary >= 0.0", "monthly salary cannot be negative"},

		{domain.KindSWP, "investment-non-negative", "input.investmentAmount >= 0.0", "investment amount cannot be negative"},
		{domain.KindSWP, "withdrawal-non-negative", "input.withdrawal >= 0.0", "monthly withdrawal cannot be negative"},

		{domain.KindCashSurplus, "cash-in-non-negative", "input.cashIn >= 0.0", "cash in cannot be negative"},
		{domain.KindCashSurplus, "categories-bounded", fmt.Sprintf("size(input.expensesByCategory) <= %d", domain.ExpenseCategoryCount), fmt.Sprintf("at most %d expense categories", domain.ExpenseCategoryCount)},
		{domain.KindCashSurplus, "expenses-non-negative", "input.expensesByCategory.all(e, e >= 0.0)", "expenses cannot be negative"},

		{domain.KindProjection70, "lumpsum-non-negative", "input.lumpsumInvestment >= 0.0", "lumpsum investment cannot be negative"},
		{domain.KindProjection70, "sip-non-negative", "input.monthlyInvestment >= 0.0", "monthly investment cannot be negative"},
		{domain.KindProjection70, "end-after-start", "input.endYear >= input.startYear", "end year must not be before start year"},

		{domain.KindCorpusNeeded, "ror-non-zero", "input.ror != 0.0", "rate of return must not be zero"},
		{domain.KindCorpusNeeded, "years-positive", "input.years > 0.0", "years must be greater than zero"},
		{domain.KindCorpusNeeded, "target-non-negative", "input.targetWealth >= 0.0", "target wealth cannot be negative"},
	}
}

type compiledRule struct {
	Rule
	prog cel.Program
}

// Validator evaluates compiled rules. It is safe for concurrent use.
type Validator struct {
	env   *cel.Env
	mu    sync.RWMutex
	rules map[domain.Kind][]compiledRule
}

// NewValidator compiles the given rules, or DefaultRules when none are given.
func NewValidator(rules ...Rule) (*Validator, error) {
	env, err := cel.NewEnv(cel.Variable("input", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	v := &Validator{env: env, rules: make(map[domain.Kind][]compiledRule)}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	for _, r := range rules {
		if err := v.AddRule(r); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// AddRule compiles and registers a rule.
func (v *Validator) AddRule(r Rule) error {
	ast, issues := v.env.Compile(r.Expression)
	if issues != nil && issues.Err() != nil {
		return fmt.Errorf("rule %s: compile error: %w", r.Name, issues.Err())
	}
	prog, err := v.env.Program(ast, cel.CostLimit(100000))
	if err != nil {
		return fmt.Errorf("rule %s: program creation error: %w", r.Name, err)
	}

	v.mu.Lock()
	v.rules[r.Kind] = append(v.rules[r.Kind], compiledRule{Rule: r, prog: prog})
	v.mu.Unlock()
	return nil
}

// Validate evaluates every rule registered for the input's calculator and
// returns Violations listing each failure, or nil. Non-boolean results and
// evaluation errors count as failures.
func (v *Validator) Validate(in domain.Input) error {
	facts, err := Facts(in)
	if err != nil {
		return err
	}

	v.mu.RLock()
	rules := v.rules[in.Kind()]
	v.mu.RUnlock()

	var out Violations
	activation := map[string]any{"input": facts}
	for _, r := range rules {
		val, _, err := r.prog.Eval(activation)
		if err != nil {
			out = append(out, Violation{Rule: r.Name, Message: fmt.Sprintf("%s (%v)", r.Message, err)})
			continue
		}
		if ok, isBool := val.Value().(bool); !isBool || !ok {
			out = append(out, Violation{Rule: r.Name, Message: r.Message})
		}
	}
	if len(out) > 0 {
		return out
	}
	return nil
}

// Facts flattens an input into the map seen by rules. Whole numbers are
// exposed as doubles so every comparison is double against double. Pointer
// variants are read through.
func Facts(in domain.Input) (map[string]any, error) {
	switch v := domain.Unwrap(in).(type) {
	case domain.LifelineInput:
		return map[string]any{
			"currentAge":        float64(v.CurrentAge),
			"retirementAge":     float64(v.RetirementAge),
			"monthlyExpenseNow": v.MonthlyExpenseNow,
		}, nil
	case domain.SalarySavingInput:
		return map[string]any{
			"rate":             v.Rate,
			"nominal":          v.Nominal,
			"monthlySalary":    v.MonthlySalary,
			"savingsRate":      v.SavingsRate,
			"salaryGrowth":     v.SalaryGrowth,
			"calculateUptoAge": float64(v.CalculateUptoAge),
			"currentAge":       float64(v.CurrentAge),
		}, nil
	case domain.SWPInput:
		return map[string]any{
			"investmentAmount": v.InvestmentAmount,
			"returnRate":       v.ReturnRate,
			"withdrawal":       v.Withdrawal,
			"expectedRate":     v.ExpectedRate,
		}, nil
	case domain.CashSurplusInput:
		expenses := make([]any, len(v.ExpensesByCategory))
		for i, e := range v.ExpensesByCategory {
			expenses[i] = e
		}
		return map[string]any{
			"cashIn":             v.CashIn,
			"expensesByCategory": expenses,
		}, nil
	case domain.Projection70Input:
		return map[string]any{
			"lumpsumInvestment": v.LumpsumInvestment,
			"ror":               v.ROR,
			"nominalRate":       v.NominalRate,
			"monthlyInvestment": v.MonthlyInvestment,
			"startYear":         float64(v.StartYear),
			"endYear":           float64(v.EndYear),
		}, nil
	case domain.CorpusNeededInput:
		return map[string]any{
			"currentWealth": v.CurrentWealth,
			"ror":           v.ROR,
			"nominalRate":   v.NominalRate,
			"activeSIP":     v.ActiveSIP,
			"years":         float64(v.Years),
			"targetWealth":  v.TargetWealth,
		}, nil
	}
	return nil, fmt.Errorf("%w: %T", domain.ErrUnknownCalculator, in)
}

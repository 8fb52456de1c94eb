package calculation

import (
	"fmt"

	"github.com/mutualfundportal/portal/internal/domain"
)

// ErrUnknownCalculator is returned for a nil or unrecognised input variant.
var ErrUnknownCalculator = domain.ErrUnknownCalculator

// Calculate runs the calculator selected by the input variant. It never
// validates numbers; out-of-range inputs produce NaN, Inf or degenerate
// tables instead of errors.
func Calculate(in domain.Input) (domain.Result, error) {
	switch v := domain.Unwrap(in).(type) {
	case domain.LifelineInput:
		return CalculateLifeline(v), nil
	case domain.SalarySavingInput:
		return CalculateSalarySaving(v), nil
	case domain.SWPInput:
		return CalculateSWP(v), nil
	case domain.CashSurplusInput:
		return CalculateCashSurplus(v), nil
	case domain.Projection70Input:
		return CalculateProjection70(v), nil
	case domain.CorpusNeededInput:
		return CalculateCorpusNeeded(v), nil
	}
	return domain.Result{}, fmt.Errorf("%w: %T", ErrUnknownCalculator, in)
}

// Engine runs calculations and reports them to a Logger. It holds no
// per-calculation state and is safe for concurrent use.
type Engine struct {
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Calculate runs one calculation.
func (e *Engine) Calculate(in domain.Input) (domain.Result, error) {
	log := e.Logger
	if log == nil {
		log = NopLogger{}
	}
	res, err := Calculate(in)
	if err != nil {
		log.Errorf("calculation failed: %v", err)
		return res, err
	}
	log = withKind(log, in.Kind().String())
	rows := 0
	for _, t := range res.Tables {
		rows += len(t.Rows)
	}
	log.Debugf("%d cards, %d tables, %d rows", len(res.Cards), len(res.Tables), rows)
	return res, nil
}

package calculation

import (
	"fmt"

	"github.com/mutualfundportal/portal/internal/domain"
)

// InputBuilder turns a form request into a typed input.
type InputBuilder interface {
	BuildInput(req domain.CalculationRequest, profile domain.BasicInfo) (domain.Input, error)
}

// InputChecker rejects inputs before they are calculated.
type InputChecker interface {
	Validate(in domain.Input) error
}

// RunWorksheet builds, checks and calculates every request of ws in order.
// A nil checker skips checking. The first failure stops the run.
func (e *Engine) RunWorksheet(ws *domain.Worksheet, build InputBuilder, check InputChecker) (*domain.Report, error) {
	report := &domain.Report{Profile: ws.Profile}
	for i, req := range ws.Calculations {
		label := req.Name
		if label == "" {
			label = req.Calculator
		}

		in, err := build.BuildInput(req, ws.Profile)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i+1, label, err)
		}
		if check != nil {
			if err := check.Validate(in); err != nil {
				return nil, fmt.Errorf("calculation %d (%s): %w", i+1, label, err)
			}
		}
		res, err := e.Calculate(in)
		if err != nil {
			return nil, fmt.Errorf("calculation %d (%s): %w", i+1, label, err)
		}

		calc, _ := domain.LookupCalculator(in.Kind())
		report.Entries = append(report.Entries, domain.ReportEntry{
			Name:       req.Name,
			Calculator: in.Kind(),
			Title:      calc.Name,
			Result:     res,
		})
	}
	return report, nil
}

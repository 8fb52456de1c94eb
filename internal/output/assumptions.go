package output

import (
	"fmt"

	"github.com/mutualfundportal/portal/internal/calculation"
	"github.com/mutualfundportal/portal/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"All amounts are in Indian Rupees (₹)",
	"Rates are annual and compound once per period",
	"No taxes, fees or exit loads are modelled",
}

// GenerateAssumptions adds the fixed rates of the calculators present in the report.
func GenerateAssumptions(report *domain.Report) []string {
	out := append([]string(nil), DefaultAssumptions...)
	seen := map[domain.Kind]bool{}
	for _, e := range report.Entries {
		if seen[e.Calculator] {
			continue
		}
		seen[e.Calculator] = true
		switch e.Calculator {
		case domain.KindLifeline:
			out = append(out,
				fmt.Sprintf("Lifeline expense inflation: %.1f%% annually", calculation.LifelineInflationRate*100),
				fmt.Sprintf("Lifeline corpus return: %.1f%% annually", calculation.LifelineReturnRate*100),
			)
		case domain.KindSWP:
			out = append(out, "SWP returns compound monthly at one twelfth of the annual rate")
		case domain.KindProjection70:
			out = append(out, fmt.Sprintf("Projection horizon: %d years", calculation.ProjectionYears))
		}
	}
	return out
}

package output

import "github.com/mutualfundportal/portal/internal/domain"

// Highlight is the headline figure of one report entry.
type Highlight struct {
	Entry string
	Card  domain.Card
}

// headlineCards names the card that best summarises each calculator.
var headlineCards = map[domain.Kind]string{
	domain.KindLifeline:     "Future Corpus Required**",
	domain.KindSalarySaving: "Savings Rate",
	domain.KindSWP:          "Monthly Withdrawal",
	domain.KindCashSurplus:  "Cash Surplus (₹)",
	domain.KindProjection70: "Final Wealth (70 years)",
	domain.KindCorpusNeeded: "Deficit",
}

// Highlights picks the headline card of every entry in report order. Entries
// without the expected card fall back to their last card.
func Highlights(report *domain.Report) []Highlight {
	var out []Highlight
	for _, e := range report.Entries {
		card, ok := e.Result.Card(headlineCards[e.Calculator])
		if !ok {
			if len(e.Result.Cards) == 0 {
				continue
			}
			card = e.Result.Cards[len(e.Result.Cards)-1]
		}
		out = append(out, Highlight{Entry: entryTitle(e), Card: card})
	}
	return out
}

func entryTitle(e domain.ReportEntry) string {
	switch {
	case e.Name != "":
		return e.Name
	case e.Title != "":
		return e.Title
	default:
		return string(e.Calculator)
	}
}

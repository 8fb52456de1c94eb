package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mutualfundportal/portal/internal/domain"
)

// ConsoleFormatter renders a plain text report. Values are shown exactly as
// the calculators produce them; Localized switches to rupee and Indian digit
// grouping display.
type ConsoleFormatter struct {
	Localized bool
}

func (c ConsoleFormatter) Name() string {
	if c.Localized {
		return "console-inr"
	}
	return "console"
}

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PORTFOLIO PLANNING REPORT")
	fmt.Fprintln(&buf, "=========================")
	writeProfile(&buf, report.Profile)

	if hs := Highlights(report); len(hs) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Highlights:")
		for _, h := range hs {
			fmt.Fprintf(&buf, "  %s: %s = %s\n", h.Entry, h.Card.Title, c.card(h.Card))
		}
	}

	for _, e := range report.Entries {
		fmt.Fprintln(&buf)
		heading := entryTitle(e)
		if e.Title != "" && e.Title != heading {
			heading += " (" + e.Title + ")"
		}
		fmt.Fprintln(&buf, heading)
		fmt.Fprintln(&buf, strings.Repeat("-", lipgloss.Width(heading)))
		for _, card := range e.Result.Cards {
			fmt.Fprintf(&buf, "%s: %s\n", card.Title, c.card(card))
		}
		for _, t := range e.Result.Tables {
			fmt.Fprintln(&buf)
			fmt.Fprintln(&buf, c.table(t))
		}
		if len(e.Result.Notes) > 0 {
			fmt.Fprintln(&buf)
			for _, n := range e.Result.Notes {
				fmt.Fprintf(&buf, "  %s\n", n)
			}
		}
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) card(card domain.Card) string {
	if c.Localized {
		return DisplayCard(card)
	}
	return card.Value.String()
}

func (c ConsoleFormatter) cell(header string, v domain.Value) string {
	if c.Localized {
		return DisplayCell(header, v)
	}
	return v.String()
}

func (c ConsoleFormatter) table(t domain.Table) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(t.Headers...)
	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			if v, ok := row.Get(h); ok {
				cells[i] = c.cell(h, v)
			}
		}
		tbl.Row(cells...)
	}
	return tbl.String()
}

func writeProfile(buf *bytes.Buffer, p domain.BasicInfo) {
	if p.IsEmpty() {
		fmt.Fprintln(buf, "Holder: not provided")
		return
	}
	line := "Holder: " + p.Name
	if p.Occupation != "" {
		line += " (" + p.Occupation + ")"
	}
	switch {
	case p.Age > 0:
		line += ", age " + intToString(p.Age)
	case p.DOB != "":
		line += ", born " + p.DOB
	}
	fmt.Fprintln(buf, line)
	if p.Dependents > 0 {
		fmt.Fprintf(buf, "Dependents: %d\n", p.Dependents)
	}
}

package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mutualfundportal/portal/internal/domain"
)

// MarkdownFormatter renders the report as GitHub-flavoured markdown.
type MarkdownFormatter struct{}

func (MarkdownFormatter) Name() string { return "markdown" }

func (MarkdownFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# Portfolio Planning Report")
	fmt.Fprintln(&buf)

	p := report.Profile
	if !p.IsEmpty() {
		fmt.Fprintf(&buf, "**Holder:** %s  \n", mdEscape(p.Name))
		if p.Occupation != "" {
			fmt.Fprintf(&buf, "**Occupation:** %s  \n", mdEscape(p.Occupation))
		}
		if p.Age > 0 {
			fmt.Fprintf(&buf, "**Age:** %d  \n", p.Age)
		} else if p.DOB != "" {
			fmt.Fprintf(&buf, "**Date of birth:** %s  \n", p.DOB)
		}
		fmt.Fprintln(&buf)
	}

	for _, e := range report.Entries {
		fmt.Fprintf(&buf, "## %s\n\n", mdEscape(entryTitle(e)))
		if e.Title != "" && e.Title != entryTitle(e) {
			fmt.Fprintf(&buf, "_%s_\n\n", mdEscape(e.Title))
		}

		writeMarkdownTable(&buf, []string{"Metric", "Value"}, cardRows(e.Result.Cards))

		for i, t := range e.Result.Tables {
			if len(e.Result.Tables) > 1 {
				fmt.Fprintf(&buf, "### Table %d\n\n", i+1)
			}
			rows := make([][]string, 0, len(t.Rows))
			for _, r := range t.Rows {
				cells := make([]string, len(t.Headers))
				for j, h := range t.Headers {
					if v, ok := r.Get(h); ok {
						cells[j] = v.String()
					}
				}
				rows = append(rows, cells)
			}
			writeMarkdownTable(&buf, t.Headers, rows)
		}

		for _, n := range e.Result.Notes {
			fmt.Fprintf(&buf, "- %s\n", mdEscape(n))
		}
		if len(e.Result.Notes) > 0 {
			fmt.Fprintln(&buf)
		}
	}
	return buf.Bytes(), nil
}

func cardRows(cards []domain.Card) [][]string {
	rows := make([][]string, len(cards))
	for i, c := range cards {
		rows[i] = []string{c.Title, c.Value.String()}
	}
	return rows
}

func writeMarkdownTable(buf *bytes.Buffer, headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	esc := func(cells []string) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = mdEscape(c)
		}
		return "| " + strings.Join(out, " | ") + " |"
	}
	fmt.Fprintln(buf, esc(headers))
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(buf, "|"+strings.Join(sep, "|")+"|")
	for _, r := range rows {
		fmt.Fprintln(buf, esc(r))
	}
	fmt.Fprintln(buf)
}

var mdReplacer = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `*`, `\*`, `_`, `\_`)

func mdEscape(s string) string { return mdReplacer.Replace(s) }

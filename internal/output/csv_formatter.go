package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mutualfundportal/portal/internal/domain"
)

// CSVFormatter writes every card and table cell as one record, so reports
// with different table shapes share a single header.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Entry", "Calculator", "Section", "Row", "Column", "Value", "Kind"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.Entries {
		name := entryTitle(e)
		for _, card := range e.Result.Cards {
			if err := w.Write([]string{name, string(e.Calculator), "card", "", card.Title, card.Value.String(), card.Value.Kind().String()}); err != nil {
				return nil, err
			}
		}
		for ti, t := range e.Result.Tables {
			section := "table" + intToString(ti+1)
			for ri, row := range t.Rows {
				for _, cell := range row {
					rec := []string{name, string(e.Calculator), section, intToString(ri + 1), cell.Column, cell.Value.String(), cell.Value.Kind().String()}
					if err := w.Write(rec); err != nil {
						return nil, err
					}
				}
			}
		}
		for ni, n := range e.Result.Notes {
			if err := w.Write([]string{name, string(e.Calculator), "note", intToString(ni + 1), "", n, "text"}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

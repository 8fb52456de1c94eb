package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/mutualfundportal/portal/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with localized amounts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"card":  DisplayCard,
	"cell":  DisplayCell,
	"title": entryTitle,
	"add":   func(i, j int) int { return i + j },
	"lookup": func(r domain.Row, column string) domain.Value {
		v, _ := r.Get(column)
		return v
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Report
		Highlights  []Highlight
		Assumptions []string
	}{
		Report:      report,
		Highlights:  Highlights(report),
		Assumptions: GenerateAssumptions(report),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

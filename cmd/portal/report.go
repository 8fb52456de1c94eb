package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mutualfundportal/portal/internal/calculation"
	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/logger"
	"github.com/mutualfundportal/portal/internal/output"
	"github.com/mutualfundportal/portal/internal/validation"
)

// reportOptions are the output flags shared by calc and run.
type reportOptions struct {
	format string
	output string
	query  string
	// dir writes timestamped files via output.GenerateReport.
	dir        string
	noValidate bool
}

func newEngine() *calculation.Engine {
	e := calculation.NewEngine()
	e.SetLogger(logger.Calc())
	return e
}

// buildReport calculates every request of ws, checking inputs against the
// default rules unless noValidate is set.
func buildReport(ws *domain.Worksheet, parser *config.InputParser, noValidate bool) (*domain.Report, error) {
	var checker calculation.InputChecker
	if !noValidate {
		v, err := validation.NewValidator(validation.DefaultRules()...)
		if err != nil {
			return nil, fmt.Errorf("failed to compile validation rules: %w", err)
		}
		checker = v
	}
	return newEngine().RunWorksheet(ws, parser, checker)
}

// runWorksheet calculates ws and writes the report according to opts.
func runWorksheet(w io.Writer, ws *domain.Worksheet, parser *config.InputParser, opts reportOptions) error {
	report, err := buildReport(ws, parser, opts.noValidate)
	if err != nil {
		return err
	}

	if opts.dir != "" && opts.query == "" {
		files, err := output.GenerateReport(report, opts.format, opts.dir)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(w, "Report written to %s\n", f)
		}
		return nil
	}

	var data []byte
	if opts.query != "" {
		data, err = queryReport(report, opts.query)
	} else {
		data, err = output.Render(report, opts.format)
	}
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	fmt.Fprintf(w, "Report written to %s\n", opts.output)
	return nil
}

// formatNames lists the --format values.
func formatNames() []string {
	return append(output.AvailableFormatterNames(), "all")
}

// queryReport evaluates a JSONPath expression against the JSON report.
func queryReport(report *domain.Report, query string) ([]byte, error) {
	raw, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(query, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating query %q: %w", query, err)
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/output"
	"github.com/spf13/cobra"
)

func newCalcCmd() *cobra.Command {
	var (
		opts    reportOptions
		profile domain.BasicInfo
	)
	cmd := &cobra.Command{
		Use:   "calc <calculator> [--field value ...]",
		Short: "Run one calculator from flags",
		Long: `Run one calculator. Every catalog field is a flag named after its id;
percentages are entered as 0-100. Use "portal list" to see the fields.`,
		Example: "  portal calc lifeline --age 32 --retirementAge 62 --currentMonthlyExpense 39500",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			fields := map[string]float64{}
			for _, id := range fieldIDs() {
				if cmd.Flags().Changed(id) {
					v, err := cmd.Flags().GetFloat64(id)
					if err != nil {
						return err
					}
					fields[id] = v
				}
			}

			if opts.dir == "" && output.NormalizeFormatName(opts.format) == "all" {
				opts.dir = "."
			}
			ws := &domain.Worksheet{
				Profile:      profile,
				Calculations: []domain.CalculationRequest{{Calculator: string(kind), Fields: fields}},
			}
			return runWorksheet(cmd.OutOrStdout(), ws, config.NewInputParser(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&profile.Name, "name", "", "portfolio holder name")
	f.IntVar(&profile.Age, "age", 0, "current age (overrides --dob)")
	f.StringVar(&profile.DOB, "dob", "", "date of birth (YYYY-MM-DD)")
	f.StringVar(&opts.format, "format", "console", "output format ("+strings.Join(formatNames(), ", ")+")")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVar(&opts.dir, "dir", "", "write timestamped report files into this directory")
	f.StringVar(&opts.query, "query", "", "JSONPath query over the JSON report")
	f.BoolVar(&opts.noValidate, "no-validate", false, "skip input validation rules")

	for _, id := range fieldIDs() {
		f.Float64(id, 0, fieldUsage(id))
	}
	return cmd
}

// fieldIDs lists every catalog field id once, sorted.
func fieldIDs() []string {
	seen := map[string]bool{}
	var ids []string
	for _, c := range domain.Catalog() {
		for _, field := range c.Fields {
			if !seen[field.ID] {
				seen[field.ID] = true
				ids = append(ids, field.ID)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// fieldUsage names the field and the calculators that read it.
func fieldUsage(id string) string {
	var label string
	var users []string
	for _, c := range domain.Catalog() {
		if field, ok := c.Field(id); ok {
			label = field.Label
			if field.Type == domain.FieldPercent {
				label += " (%)"
			}
			users = append(users, c.ID.String())
		}
	}
	return fmt.Sprintf("%s [%s]", label, strings.Join(users, ", "))
}

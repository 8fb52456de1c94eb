package main

import (
	"strings"

	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/output"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		opts reportOptions
		file string
	)
	cmd := &cobra.Command{
		Use:   "run -f worksheet.yaml",
		Short: "Run every calculation in a worksheet",
		Example: `  portal run -f worksheet.yaml --format markdown
  portal run -f worksheet.yaml --format all --dir reports
  portal run -f worksheet.yaml --query '$.entries[*].result.cards[0]'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			ws, err := parser.LoadFromFile(file)
			if err != nil {
				return err
			}
			if opts.dir == "" && output.NormalizeFormatName(opts.format) == "all" {
				opts.dir = "."
			}
			return runWorksheet(cmd.OutOrStdout(), ws, parser, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&file, "file", "f", "", "worksheet file (YAML or JSON)")
	f.StringVar(&opts.format, "format", "console", "output format ("+strings.Join(formatNames(), ", ")+")")
	f.StringVarP(&opts.output, "output", "o", "", "write the report to a file instead of stdout")
	f.StringVar(&opts.dir, "dir", "", "write timestamped report files into this directory")
	f.StringVar(&opts.query, "query", "", "JSONPath query over the JSON report")
	f.BoolVar(&opts.noValidate, "no-validate", false, "skip input validation rules")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

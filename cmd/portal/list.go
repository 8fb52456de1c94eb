package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/output"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List calculators, their fields and the output formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, c := range domain.Catalog() {
				fmt.Fprintf(w, "%s - %s\n", c.ID, c.Name)
				fmt.Fprintf(w, "  %s\n", c.Description)
				if c.NeedsAge {
					fmt.Fprintln(w, "  Reads the current age from --age or --dob.")
				}
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("Field", "Label", "Type", "Unit", "Required")
				for _, f := range c.Fields {
					required := "yes"
					if f.Optional {
						required = "no"
					}
					t.Row(f.ID, f.Label, string(f.Type), f.Unit, required)
				}
				fmt.Fprintln(w, t.String())
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "Formats: %s\n", strings.Join(formatNames(), ", "))
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}

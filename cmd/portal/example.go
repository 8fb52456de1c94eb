package main

import (
	"fmt"
	"os"

	"github.com/mutualfundportal/portal/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExampleCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example worksheet that uses every calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := config.NewInputParser().CreateExampleWorksheet()
			data, err := yaml.Marshal(ws)
			if err != nil {
				return fmt.Errorf("failed to marshal worksheet: %w", err)
			}
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example worksheet written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "file to write (default stdout)")
	return cmd
}

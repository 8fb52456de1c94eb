// Command portal runs the mutual fund planning calculators from the command
// line and serves them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/mutualfundportal/portal/internal/logger"
	"github.com/spf13/cobra"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portal",
		Short:         "Mutual fund portfolio planning calculators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}
			level, err := logger.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (TRACE, DEBUG, INFO, WARN, ERROR, FATAL); defaults to LOG_LEVEL")

	root.AddCommand(
		newCalcCmd(),
		newRunCmd(),
		newExampleCmd(),
		newListCmd(),
		newServeCmd(),
		newMigrateCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

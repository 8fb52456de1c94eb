package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	var databaseURL, path string
	cmd := &cobra.Command{
		Use:       "migrate [up|down|version|steps N|force N]",
		Short:     "Apply or roll back database migrations",
		ValidArgs: []string{"up", "down", "version", "steps", "force"},
		Args:      cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv(config.EnvDatabaseURL)
			}
			if databaseURL == "" {
				return fmt.Errorf("database URL is required. Use --database or the %s environment variable", config.EnvDatabaseURL)
			}

			command := "up"
			if len(args) > 0 {
				command = args[0]
			}
			number := func() (int, error) {
				if len(args) < 2 {
					return 0, fmt.Errorf("%s requires a number", command)
				}
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return 0, fmt.Errorf("invalid number %q: %w", args[1], err)
				}
				return n, nil
			}

			runner, err := migrations.New(path, databaseURL)
			if err != nil {
				return err
			}
			defer runner.Close()

			w := cmd.OutOrStdout()
			var st migrations.Status
			switch command {
			case "up":
				st, err = runner.Up()
			case "down":
				st, err = runner.Down()
			case "steps":
				var n int
				if n, err = number(); err == nil {
					st, err = runner.Steps(n)
				}
			case "version":
				st, err = runner.Version()
				if err == nil {
					fmt.Fprintf(w, "Current version: %d (dirty: %v)\n", st.Version, st.Dirty)
				}
				return err
			case "force":
				var n int
				if n, err = number(); err == nil {
					err = runner.Force(n)
				}
				if err == nil {
					fmt.Fprintf(w, "Forced version to: %d\n", n)
				}
				return err
			default:
				return fmt.Errorf("unknown command: %s (use: up, down, version, steps, force)", command)
			}
			if err != nil {
				return err
			}
			if !st.Changed {
				fmt.Fprintln(w, "No migrations to run (database is up to date)")
				return nil
			}
			fmt.Fprintf(w, "Migrations completed successfully (version %d)\n", st.Version)
			return nil
		},
	}
	cmd.Flags().StringVar(&databaseURL, "database", "", "database URL (default $"+config.EnvDatabaseURL+")")
	cmd.Flags().StringVar(&path, "path", migrations.DefaultPath, "migrations directory")
	return cmd
}

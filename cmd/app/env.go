package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/GrowPot_Go/internal/config"
)

var checkEnvCmd = &cobra.Command{
	Use:   "check-env",
	Short: "Check the .env file against the expected schema version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()

		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, w := range warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		fmt.Fprintf(out, "environment OK (schema %s)\n", config.ExpectedEnvSchemaVersion)
		return nil
	},
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/GrowPot_Go/internal/handler"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "growpot",
		Short: "GrowPot - an idle plant pot that keeps growing while you are away",
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Fprintln(cmd.OutOrStdout(), handler.CurrentVersion().Version)
				return
			}
			_ = cmd.Help()
		},
	}
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(checkEnvCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

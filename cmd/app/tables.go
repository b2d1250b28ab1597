package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GrowPot_Go/internal/config"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [path]",
	Short: "Validate a tables file, or print the built-in tables",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		tables, err := config.LoadTables(path)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d plants, %d pots, %d pets, %d quest templates\n",
				path, len(tables.Plants), len(tables.Pots), len(tables.Pets), len(tables.Quests.Templates))
			return nil
		}
		data, err := tables.Encode()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

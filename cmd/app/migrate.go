package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GrowPot_Go/internal/bootstrap"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()

		if list, _ := cmd.Flags().GetBool("list"); list {
			files, err := database.MigrationFiles()
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Fprintln(out, f)
			}
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if _, err := bootstrap.SetupLogger(cfg); err != nil {
			return err
		}

		ctx := context.Background()
		pool, err := database.NewPool(ctx, bootstrap.PoolConfig(cfg))
		if err != nil {
			return err
		}
		defer pool.Close()

		version, err := database.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "database at version %d\n", version)
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("list", false, "List embedded migrations without connecting")
}

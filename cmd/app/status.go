package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GrowPot_Go/internal/bootstrap"
	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/garden"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Load the saved garden, apply offline progress and print a summary",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().Bool("save", false, "Write the caught-up state back")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	// Keep the summary readable
	cfg.LogLevel, cfg.LogDir = "warn", ""
	if _, err := bootstrap.SetupLogger(cfg); err != nil {
		return err
	}
	tables, err := config.LoadTables(cfg.TablesPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	stores, err := bootstrap.InitializeStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.State.Close()

	g, err := garden.Open(ctx, garden.Deps{
		Tables:   tables,
		Clock:    clock.Real{},
		Random:   newRandom(cfg.RNGSeed),
		Location: cfg.QuestResetLocation(),
		Repo:     stores.State,
		SaveSlot: cfg.SaveSlot,
	})
	if err != nil {
		return err
	}
	elapsed, err := g.CatchUp(ctx)
	if err != nil {
		return err
	}

	printStatus(cmd.OutOrStdout(), g.Snapshot(), elapsed)

	if save, _ := cmd.Flags().GetBool("save"); save {
		return g.Save(ctx)
	}
	return nil
}

func printStatus(w io.Writer, snap garden.Snapshot, away time.Duration) {
	title := cases.Title(language.English)

	fmt.Fprintf(w, "%s (level %d, %d/%d exp)\n", snap.Profile.Name, snap.Profile.Level, snap.Profile.Exp, snap.Profile.ExpToNext)
	fmt.Fprintf(w, "Away for %s\n\n", away.Round(time.Second))

	slot := snap.Slot
	fmt.Fprintf(w, "Pot:    %s\n", title.String(slot.PotType))
	if slot.PlantType == "" {
		fmt.Fprintln(w, "Plant:  (empty)")
	} else {
		fmt.Fprintf(w, "Plant:  %s, %s, %.0f%% grown\n", title.String(slot.PlantType), title.String(string(slot.Stage)), slot.Progress*100)
		fmt.Fprintf(w, "Water:  %.2f\n", slot.Water)
		if slot.Ready {
			fmt.Fprintln(w, "        ready to harvest")
		}
		if slot.PestActive {
			fmt.Fprintln(w, "        a pest is on the plant")
		}
	}
	if snap.Pet.ActivePet != "" {
		state := "idle"
		if snap.Pet.Working {
			state = "working for " + snap.Pet.WorkRemaining.Round(time.Minute).String()
		}
		fmt.Fprintf(w, "Pet:    %s, %s\n", title.String(snap.Pet.ActivePet), state)
	}

	fmt.Fprintf(w, "\nMoney:  %d\n", snap.Wallet.Money)
	fmt.Fprintf(w, "Seeds:  %s\n", formatCounts(snap.Wallet.SeedStock))
	fmt.Fprintf(w, "Stock:  %s\n", formatCounts(snap.Wallet.Inventory))
	fmt.Fprintf(w, "Supply: %d pet food, %d pest tools\n", snap.Wallet.PetFood, snap.Wallet.PestTools)

	fmt.Fprintln(w, "\nQuests:")
	if len(snap.Quests) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, q := range snap.Quests {
		mark := " "
		switch {
		case q.Claimed:
			mark = "x"
		case q.Completed:
			mark = "!"
		}
		fmt.Fprintf(w, "  [%s] %s (%d/%d, reward %d)\n", mark, q.Description, q.Progress, q.RequirementCount, q.RewardMoney)
	}
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", k, counts[k]))
	}
	return strings.Join(parts, ", ")
}

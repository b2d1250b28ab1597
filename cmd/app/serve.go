package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/GrowPot_Go/internal/bootstrap"
	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/database/postgres"
	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/garden"
	"github.com/osse101/GrowPot_Go/internal/metrics"
	"github.com/osse101/GrowPot_Go/internal/scheduler"
	"github.com/osse101/GrowPot_Go/internal/server"
	"github.com/osse101/GrowPot_Go/internal/stream"
	"github.com/osse101/GrowPot_Go/internal/worker"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the garden: catch up, tick, autosave and serve the local API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}
	slog.Info(bootstrap.LogMsgStarting, "environment", cfg.Environment, "version", cfg.Version)

	tables, err := config.LoadTables(cfg.TablesPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := bootstrap.InitializeStores(ctx, cfg)
	if err != nil {
		return err
	}

	bus := event.NewMemoryBus()
	g, err := garden.Open(ctx, garden.Deps{
		Tables:   tables,
		Clock:    clock.Real{},
		Random:   newRandom(cfg.RNGSeed),
		Location: cfg.QuestResetLocation(),
		Bus:      bus,
		Repo:     stores.State,
		SaveSlot: cfg.SaveSlot,
	})
	if err != nil {
		_ = stores.State.Close()
		return err
	}

	hub := stream.NewHub(g)
	var harvestLog *postgres.HarvestLog
	if stores.Pool != nil {
		harvestLog = postgres.NewHarvestLog(stores.Pool, cfg.SaveSlot)
	}
	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:   bus,
		Garden:     g,
		HarvestLog: harvestLog,
		Stream:     hub,
	})

	elapsed, err := g.CatchUp(ctx)
	if err != nil {
		_ = stores.State.Close()
		return fmt.Errorf("failed to apply offline progress: %w", err)
	}
	slog.Info(LogMsgCaughtUp, "elapsed", elapsed.String())

	streamCtx, stopStream := context.WithCancel(context.Background())
	go hub.Run(streamCtx)

	pool := worker.NewPool(context.Background(), cfg.WorkerCount, cfg.WorkerCount*2)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Every(cfg.TickInterval, JobTick, func(ctx context.Context) error {
		start := time.Now()
		_, err := g.Tick(ctx)
		metrics.TickDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			return fmt.Errorf("%s: %w", LogMsgTickFailed, err)
		}
		return nil
	})
	sched.Every(cfg.SaveInterval, JobAutosave, func(ctx context.Context) error {
		if err := g.Save(ctx); err != nil {
			metrics.SaveFailures.Inc()
			return fmt.Errorf("%s: %w", LogMsgAutosaveFailed, err)
		}
		return nil
	})

	questWorker := worker.NewQuestResetWorker(g, clock.Real{})
	questWorker.Start()

	srv := server.NewServer(server.Options{
		Addr:           cfg.ListenAddr(),
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Garden:         g,
		Store:          stores.State,
		Stream:         hub.ServeWS,
		Idempotency:    server.NewIdempotencyCache(cfg.IdempotencyCacheSize, cfg.IdempotencyTTL),
	})

	serverErr := make(chan error, 1)
	go func() { serverErr <- srv.Start() }()

	select {
	case <-ctx.Done():
		slog.Info(LogMsgShutdownSignal)
	case err = <-serverErr:
		if err != nil {
			slog.Error(LogMsgServerFailed, "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		Scheduler:        sched,
		WorkerPool:       pool,
		QuestResetWorker: questWorker,
		StopStream:       stopStream,
		Garden:           g,
		Store:            stores.State,
	})
	return err
}

// newRandom seeds the pest roll. Zero picks a time based seed.
func newRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.Debug(LogMsgRandomSeedInUse, "seed", seed)
	return rand.New(rand.NewSource(seed))
}

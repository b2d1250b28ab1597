package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/repository"
	"github.com/osse101/GrowPot_Go/internal/scheduler"
	"github.com/osse101/GrowPot_Go/internal/worker"
)

// Server is the part of the HTTP server shutdown needs
type Server interface {
	Stop(ctx context.Context) error
}

// Saver writes the final state
type Saver interface {
	Save(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server           Server
	Scheduler        *scheduler.Scheduler
	WorkerPool       *worker.Pool
	QuestResetWorker *worker.QuestResetWorker
	StopStream       context.CancelFunc
	Garden           Saver
	Store            repository.StateRepository
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new intents)
// 2. Scheduler, quest reset worker and worker pool (no more ticks)
// 3. Stream hub
// 4. Final save, then the store is closed
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.QuestResetWorker != nil {
		if err := c.QuestResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "worker", "quest_reset", "error", err)
		}
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.StopStream != nil {
		c.StopStream()
	}

	if c.Garden != nil {
		if err := c.Garden.Save(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		}
	}
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

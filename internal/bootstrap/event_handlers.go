package bootstrap

import (
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/database/postgres"
	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/garden"
	"github.com/osse101/GrowPot_Go/internal/metrics"
	"github.com/osse101/GrowPot_Go/internal/stream"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus   event.Bus
	Garden     *garden.Garden
	HarvestLog *postgres.HarvestLog
	Stream     *stream.Hub
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (counters per event, gauges from the snapshot)
// - Harvest log (PostgreSQL only)
// - Stream hub (pushes snapshots on garden.updated)
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector(deps.Garden).Register(deps.EventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.HarvestLog != nil {
		deps.HarvestLog.Subscribe(deps.EventBus)
		slog.Info(LogMsgHarvestLogSubscribed)
	}

	if deps.Stream != nil {
		deps.Stream.Subscribe(deps.EventBus)
		slog.Info(LogMsgStreamSubscribed)
	}
}

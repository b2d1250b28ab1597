package metrics

import (
	"context"

	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/garden"
	"github.com/osse101/GrowPot_Go/internal/logger"
)

// SnapshotSource supplies the state the gauges mirror
type SnapshotSource interface {
	Snapshot() garden.Snapshot
}

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct {
	source SnapshotSource
}

// NewEventMetricsCollector creates a new event metrics collector. A nil
// source leaves the gauges untouched.
func NewEventMetricsCollector(source SnapshotSource) *EventMetricsCollector {
	return &EventMetricsCollector{source: source}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. A payload that does not
// decode is counted and skipped; it never fails the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.PlantHarvested:
		p, err := event.DecodePayload[event.HarvestedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		Harvests.WithLabelValues(p.PlantType, string(p.Quality)).Inc()
		HarvestYield.WithLabelValues(p.PlantType).Add(float64(p.Yield))

	case event.PestSpawned:
		PestsSpawned.Inc()

	case event.PestCaught:
		PestsCaught.Inc()

	case event.PetAssisted:
		p, err := event.DecodePayload[event.PetAssistedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		PetAssists.WithLabelValues(p.PetType).Inc()

	case event.ItemSold:
		p, err := event.DecodePayload[event.ItemTradedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsSold.WithLabelValues(p.Item).Add(float64(p.Quantity))
		MoneyEarned.Add(float64(p.TotalValue))

	case event.ItemBought:
		p, err := event.DecodePayload[event.ItemTradedPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		ItemsBought.WithLabelValues(p.Item).Add(float64(p.Quantity))
		MoneySpent.Add(float64(p.TotalValue))

	case event.QuestClaimed:
		QuestsClaimed.Inc()

	case event.LevelUp:
		p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		LevelUps.Add(float64(p.NewLevel - p.OldLevel))

	case event.GardenUpdated:
		e.observeGarden()
	}
	return nil
}

// observeGarden copies the current snapshot into the gauges
func (e *EventMetricsCollector) observeGarden() {
	if e.source == nil {
		return
	}
	snap := e.source.Snapshot()
	CropGrowth.Set(snap.Slot.Growth)
	CropWater.Set(snap.Slot.Water)
	WalletMoney.Set(float64(snap.Wallet.Money))
	PlayerLevel.Set(float64(snap.Profile.Level))
}

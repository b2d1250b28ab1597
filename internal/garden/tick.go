package garden

import (
	"context"
	"time"

	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/logger"
	"github.com/osse101/GrowPot_Go/internal/simulation"
)

// TickReport summarizes one scheduler tick.
type TickReport struct {
	Elapsed     time.Duration         `json:"elapsed"`
	Step        simulation.StepReport `json:"step"`
	PetAssisted bool                  `json:"pet_assisted"`
	QuestsReset bool                  `json:"quests_reset"`
}

// Tick advances the garden to now, lets the pet work, and regenerates the
// daily quests when a new day has begun.
func (g *Garden) Tick(ctx context.Context) (TickReport, error) {
	var events batch
	report, err := g.tick(ctx, &events)
	g.publish(ctx, events)
	return report, err
}

func (g *Garden) tick(ctx context.Context, events *batch) (TickReport, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var report TickReport
	now := g.clock.Now()
	report.Elapsed = now.Sub(g.state.LastUpdateAt)

	step, err := g.advanceLocked(ctx, now, events)
	if err != nil {
		return report, err
	}
	report.Step = step

	assisted, err := g.engine.AutoAssist(&g.state.Slot, &g.state.Pet)
	if err != nil {
		return report, lookupFailed(ctx, "auto_assist", err)
	}
	if assisted {
		stats, _ := g.tables.Pet(g.state.Pet.ActivePet)
		logger.FromContext(ctx).Debug(LogMsgPetAssisted, "pet", g.state.Pet.ActivePet, "water", g.state.Slot.Crop.Water)
		events.add(event.New(event.PetAssisted, event.PetAssistedPayloadV1{
			PetType:    g.state.Pet.ActivePet,
			WaterAdded: stats.AutoWaterAmount,
			Timestamp:  now.Unix(),
		}))
	}
	report.PetAssisted = assisted

	report.QuestsReset = g.resetQuestsLocked(events)
	events.add(event.NewGardenUpdatedEvent(ReasonTick, now))
	return report, nil
}

// CatchUp replays the time the garden was closed as one advance. The pet
// does not work during catch-up.
func (g *Garden) CatchUp(ctx context.Context) (time.Duration, error) {
	var events batch
	elapsed, err := g.catchUp(ctx, &events)
	g.publish(ctx, events)
	return elapsed, err
}

func (g *Garden) catchUp(ctx context.Context, events *batch) (time.Duration, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock.Now()
	elapsed := now.Sub(g.state.LastUpdateAt)
	if _, err := g.advanceLocked(ctx, now, events); err != nil {
		return 0, err
	}
	if elapsed < 0 {
		elapsed = 0
	}
	logger.FromContext(ctx).Info(LogMsgCatchUp, "elapsed", elapsed.String())

	g.resetQuestsLocked(events)
	events.add(event.NewGardenUpdatedEvent(ReasonCatchUp, now))
	return elapsed, nil
}

// advanceLocked brings the slot from LastUpdateAt up to now.
func (g *Garden) advanceLocked(ctx context.Context, now time.Time, events *batch) (simulation.StepReport, error) {
	log := logger.FromContext(ctx)
	dt := now.Sub(g.state.LastUpdateAt)
	if dt < 0 {
		log.Warn(LogMsgClockWentBack, "last_update", g.state.LastUpdateAt, "now", now)
		g.state.LastUpdateAt = now
		return simulation.StepReport{}, nil
	}

	step, err := g.engine.Advance(&g.state.Slot, dt)
	if err != nil {
		return step, lookupFailed(ctx, "advance", err)
	}
	g.state.LastUpdateAt = now

	if step.PestSpawned {
		crop := g.state.Slot.Crop
		log.Info(LogMsgPestSpawned, "plant_type", crop.PlantType, "growth", crop.Growth, "chance", step.SpawnChance)
		events.add(event.New(event.PestSpawned, event.PestSpawnedPayloadV1{
			PlantType: crop.PlantType,
			Growth:    crop.Growth,
			Chance:    step.SpawnChance,
			Timestamp: now.Unix(),
		}))
	}
	return step, nil
}

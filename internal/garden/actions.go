package garden

import (
	"context"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/logger"
	"github.com/osse101/GrowPot_Go/internal/profile"
	"github.com/osse101/GrowPot_Go/internal/simulation"
)

// HarvestOutcome is everything a harvest changed.
type HarvestOutcome struct {
	simulation.HarvestResult
	ExpGained       int                  `json:"exp_gained"`
	Level           domain.LevelUpResult `json:"level"`
	CompletedQuests []domain.Quest       `json:"completed_quests,omitempty"`
}

// intent runs a player action under the lock after bringing the simulation
// up to now, then publishes whatever the action raised.
func (g *Garden) intent(ctx context.Context, reason string, fn func(events *batch) (bool, error)) (bool, error) {
	var events batch
	ok, err := func() (bool, error) {
		g.mu.Lock()
		defer g.mu.Unlock()

		now := g.clock.Now()
		if _, err := g.advanceLocked(ctx, now, &events); err != nil {
			return false, err
		}
		ok, err := fn(&events)
		if err != nil {
			return false, err
		}
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgActionRefused, "action", reason)
			return false, nil
		}
		events.add(event.NewGardenUpdatedEvent(reason, now))
		return true, nil
	}()
	g.publish(ctx, events)
	return ok, err
}

// Water tops up the growing plant.
func (g *Garden) Water(ctx context.Context) (bool, error) {
	return g.intent(ctx, ReasonWater, func(*batch) (bool, error) {
		return g.engine.Water(&g.state.Slot), nil
	})
}

// Harvest collects a ripe plant, credits the yield and experience, and
// advances the daily quests.
func (g *Garden) Harvest(ctx context.Context) (HarvestOutcome, bool, error) {
	var out HarvestOutcome
	ok, err := g.intent(ctx, ReasonHarvest, func(events *batch) (bool, error) {
		s := g.state
		before := s.Slot
		res, ok, err := g.engine.Harvest(&s.Slot)
		if err != nil {
			return false, lookupFailed(ctx, "harvest", err)
		}
		if !ok {
			return false, nil
		}

		now := g.clock.Now()
		if err := g.ledger.CreditHarvest(&s.Wallet, res.PlantType, res.Yield); err != nil {
			s.Slot = before
			return false, lookupFailed(ctx, "credit_harvest", err)
		}
		s.HarvestedCount += res.Yield

		plant, _ := g.tables.Plant(res.PlantType)
		out.HarvestResult = res
		out.ExpGained = plant.HarvestExpReward
		out.Level = profile.AddExperience(&s.Profile, g.curve, plant.HarvestExpReward)
		out.CompletedQuests = g.quests.RecordHarvest(s.DailyQuests, res.PlantType, res.Yield)

		logger.FromContext(ctx).Info(LogMsgHarvested,
			"plant_type", res.PlantType, "yield", res.Yield, "quality", res.Quality, "pest_demoted", res.PestDemoted)
		events.add(event.NewHarvestedEvent(res.PlantType, res.Yield, res.Quality, res.PestDemoted, out.ExpGained, now))
		g.levelEventsLocked(events, out.Level)
		for _, q := range out.CompletedQuests {
			events.add(event.NewQuestEvent(event.QuestCompleted, q, now))
		}
		return true, nil
	})
	if !ok {
		return HarvestOutcome{}, false, err
	}
	return out, true, nil
}

// Plant sows one seed from stock. The slot must be empty, the player must
// have reached the plant's unlock level, and a seed must be in stock.
func (g *Garden) Plant(ctx context.Context, plantType string) (bool, error) {
	return g.intent(ctx, ReasonPlant, func(events *batch) (bool, error) {
		plant, err := g.tables.Plant(plantType)
		if err != nil {
			return false, lookupFailed(ctx, "plant", err)
		}
		s := g.state
		if !s.Slot.IsEmpty() || s.Profile.Level < plant.UnlockLevel || !g.ledger.HasSeed(&s.Wallet, plantType) {
			return false, nil
		}
		if ok, err := g.engine.Plant(&s.Slot, plantType); err != nil || !ok {
			return false, err
		}
		g.ledger.ConsumeSeed(&s.Wallet, plantType)

		events.add(event.New(event.PlantPlanted, event.PlantedPayloadV1{
			PlantType: plantType,
			PotType:   s.Slot.PotType,
			Timestamp: g.clock.Now().Unix(),
		}))
		return true, nil
	})
}

// ChangePot moves the empty slot into another unlocked pot.
func (g *Garden) ChangePot(ctx context.Context, potType string) (bool, error) {
	return g.intent(ctx, ReasonChangePot, func(*batch) (bool, error) {
		ok, err := g.engine.ChangePot(&g.state.Slot, g.state.Wallet.UnlockedPots, potType)
		if err != nil {
			return false, lookupFailed(ctx, "change_pot", err)
		}
		return ok, nil
	})
}

// CatchPest spends a pest tool on the active pest.
func (g *Garden) CatchPest(ctx context.Context) (bool, error) {
	return g.intent(ctx, ReasonCatchPest, func(events *batch) (bool, error) {
		s := g.state
		if !g.engine.CatchPest(&s.Slot, &s.Wallet) {
			return false, nil
		}
		now := g.clock.Now()
		events.add(event.New(event.PestCaught, event.PestCaughtPayloadV1{
			PestToolsLeft: s.Wallet.PestTools,
			Timestamp:     now.Unix(),
		}))
		for _, q := range g.quests.RecordPestCaught(s.DailyQuests, 1) {
			events.add(event.NewQuestEvent(event.QuestCompleted, q, now))
		}
		return true, nil
	})
}

// ResetSlot throws away whatever is growing.
func (g *Garden) ResetSlot(ctx context.Context) (bool, error) {
	return g.intent(ctx, ReasonResetSlot, func(*batch) (bool, error) {
		return g.engine.ResetSlot(&g.state.Slot), nil
	})
}

func (g *Garden) levelEventsLocked(events *batch, res domain.LevelUpResult) {
	if !res.LeveledUp {
		return
	}
	events.add(event.New(event.LevelUp, event.LevelUpPayloadV1{
		OldLevel:  res.OldLevel,
		NewLevel:  res.NewLevel,
		Timestamp: g.clock.Now().Unix(),
	}))
}

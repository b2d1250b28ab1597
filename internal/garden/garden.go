package garden

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/economy"
	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/logger"
	"github.com/osse101/GrowPot_Go/internal/profile"
	"github.com/osse101/GrowPot_Go/internal/quest"
	"github.com/osse101/GrowPot_Go/internal/repository"
	"github.com/osse101/GrowPot_Go/internal/simulation"
)

// Deps are the collaborators a garden is built from. Bus and Repo are
// optional.
type Deps struct {
	Tables   *config.Tables
	Clock    clock.Clock
	Random   simulation.RandomSource
	Location *time.Location
	Bus      event.Bus
	Repo     repository.StateRepository
	SaveSlot string
}

// Garden owns the single game state and serializes every operation on it.
// The scheduler, HTTP handlers and the stream hub all call into it
// concurrently; the engine, ledger and tracker underneath are not safe for
// concurrent use and never see more than one caller.
//
// Events raised by an operation are published after the lock is released,
// so subscribers may read a Snapshot.
type Garden struct {
	mu    sync.Mutex
	state *domain.GameState

	tables *config.Tables
	clock  clock.Clock
	engine *simulation.Engine
	ledger *economy.Ledger
	quests *quest.Tracker
	curve  profile.Curve

	bus      event.Bus
	repo     repository.StateRepository
	saveSlot string
	saveMu   sync.Mutex
}

// New wraps an existing state. The state is sanitized against the tables
// before use.
func New(ctx context.Context, deps Deps, state *domain.GameState) *Garden {
	g := &Garden{
		tables:   deps.Tables,
		clock:    deps.Clock,
		engine:   simulation.NewEngine(deps.Tables, deps.Clock, deps.Random),
		ledger:   economy.NewLedger(deps.Tables, deps.Clock),
		quests:   quest.NewTracker(deps.Tables, deps.Clock, deps.Location),
		curve:    profile.Linear{PerLevel: deps.Tables.Constants.ExpPerLevel},
		bus:      deps.Bus,
		repo:     deps.Repo,
		saveSlot: deps.SaveSlot,
	}
	if state == nil {
		state = NewGame(deps.Tables, deps.Clock.Now())
	}
	g.sanitize(ctx, state)
	g.state = state
	return g
}

// Open loads the saved state from the repository. A missing or corrupt
// record starts a new game; any other repository failure is returned.
func Open(ctx context.Context, deps Deps) (*Garden, error) {
	log := logger.FromContext(ctx)
	if deps.Repo == nil {
		return New(ctx, deps, nil), nil
	}

	state, err := deps.Repo.Load(ctx, deps.SaveSlot)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrStateNotFound):
		log.Info(LogMsgNewGame, "slot", deps.SaveSlot)
		state = nil
	case errors.Is(err, domain.ErrCorruptState):
		log.Warn(LogMsgStateCorrupt, "slot", deps.SaveSlot, "error", err)
		state = nil
	default:
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return New(ctx, deps, state), nil
}

// NewGame builds a brand new state holding the starting stock.
func NewGame(tables *config.Tables, now time.Time) *domain.GameState {
	s := domain.NewGameState(now)
	s.Wallet.Money = tables.Start.Money
	s.Wallet.PetFood = tables.Start.PetFood
	s.Wallet.PestTools = tables.Start.PestTools
	for plantType, n := range tables.Start.Seeds {
		if n > 0 {
			s.Wallet.SeedStock[plantType] = n
		}
	}
	return s
}

// sanitize repairs a loaded state so the engine can always reason about it.
func (g *Garden) sanitize(ctx context.Context, s *domain.GameState) {
	log := logger.FromContext(ctx)
	warn := func(field, key string) {
		log.Warn(LogMsgStateSanitized, "field", field, "key", key)
	}

	s.SchemaVersion = domain.StateSchemaVersion
	s.Wallet.Normalize()

	if _, err := g.tables.Pot(s.Slot.PotType); err != nil {
		warn("pot_type", s.Slot.PotType)
		s.Slot.PotType = domain.DefaultPotType
	}
	if c := s.Slot.Crop; c != nil {
		if _, err := g.tables.Plant(c.PlantType); err != nil {
			warn("plant_type", c.PlantType)
			s.Slot.Clear()
		} else {
			if c.Growth < 0 {
				c.Growth = 0
			}
			if c.Water < 0 {
				c.Water = 0
			}
		}
	}
	if s.Pet.IsActive() {
		if _, err := g.tables.Pet(s.Pet.ActivePet); err != nil || !s.Wallet.UnlockedPets.Has(s.Pet.ActivePet) {
			warn("active_pet", s.Pet.ActivePet)
			s.Pet.ActivePet = ""
		}
	}

	if s.Profile.Level < 1 {
		s.Profile.Level = 1
	}
	profile.AddExperience(&s.Profile, g.curve, 0)
	if name, ok := profile.NormalizeName(s.Profile.Name); ok {
		s.Profile.Name = name
	} else {
		s.Profile.Name = domain.DefaultPlayerName
	}
	if s.Profile.Avatar == "" || (len(g.tables.Avatars) > 0 && !g.tables.HasAvatar(s.Profile.Avatar)) {
		s.Profile.Avatar = domain.DefaultAvatar
	}

	if s.DailyQuests == nil {
		s.DailyQuests = []domain.Quest{}
	}
	if s.LastUpdateAt.IsZero() {
		s.LastUpdateAt = g.clock.Now()
	}
}

// Tables returns the configuration tables the garden runs on.
func (g *Garden) Tables() *config.Tables {
	return g.tables
}

// State returns a deep copy of the current state.
func (g *Garden) State() *domain.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Clone()
}

// batch collects the events raised while the lock is held.
type batch []event.Event

func (b *batch) add(e event.Event) {
	*b = append(*b, e)
}

// publish delivers events in order. Handler failures are logged, never
// returned to the caller of the operation that raised them.
func (g *Garden) publish(ctx context.Context, events batch) {
	if g.bus == nil {
		return
	}
	for _, e := range events {
		if err := g.bus.Publish(ctx, e); err != nil {
			logger.FromContext(ctx).Error(LogMsgPublishFailed, "event", e.Type, "error", err)
		}
	}
}

// lookupFailed logs configuration lookup errors on their way to the caller.
func lookupFailed(ctx context.Context, op string, err error) error {
	logger.FromContext(ctx).Error(LogMsgConfigLookup, "op", op, "error", err)
	return err
}

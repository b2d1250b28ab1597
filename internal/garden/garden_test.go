package garden

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/economy"
	"github.com/osse101/GrowPot_Go/internal/event"
	"github.com/osse101/GrowPot_Go/internal/repository"
)

var testStart = time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)

type neverRoll struct{}

func (neverRoll) Float64() float64 { return 1 }

// recorder captures every event published on the bus.
type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, e event.Event) error {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
	return nil
}

func (r *recorder) count(t event.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (r *recorder) last(t event.Type) (event.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Type == t {
			return r.events[i], true
		}
	}
	return event.Event{}, false
}

type fixture struct {
	garden *Garden
	clock  *clock.Fake
	repo   *repository.Memory
	events *recorder
	deps   Deps
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tables, err := config.DefaultTables()
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	rec := &recorder{}
	for _, typ := range event.AllTypes() {
		bus.Subscribe(typ, rec.handle)
	}

	f := &fixture{
		clock:  clock.NewFake(testStart),
		repo:   repository.NewMemory(),
		events: rec,
	}
	f.deps = Deps{
		Tables:   tables,
		Clock:    f.clock,
		Random:   neverRoll{},
		Bus:      bus,
		Repo:     f.repo,
		SaveSlot: "test",
	}
	f.garden, err = Open(context.Background(), f.deps)
	require.NoError(t, err)
	return f
}

func TestOpen_NewGameGetsStartingStock(t *testing.T) {
	f := newFixture(t)
	s := f.garden.State()

	assert.True(t, s.Slot.IsEmpty())
	assert.Equal(t, domain.DefaultPotType, s.Slot.PotType)
	assert.Equal(t, map[string]int{"basic": 10, "rose": 5, "daisy": 3}, s.Wallet.SeedStock)
	assert.Equal(t, 5, s.Wallet.PetFood)
	assert.Equal(t, int64(0), s.Wallet.Money)
	assert.Equal(t, 1, s.Profile.Level)
	assert.Equal(t, testStart, s.LastUpdateAt)
}

func TestOpen_CorruptStateStartsFresh(t *testing.T) {
	f := newFixture(t)
	f.repo.Put("test", []byte(`{"growth": `))

	g, err := Open(context.Background(), f.deps)

	require.NoError(t, err)
	assert.Equal(t, 10, g.State().Wallet.SeedStock["basic"])
}

func TestOpen_SanitizesUnknownKeys(t *testing.T) {
	f := newFixture(t)
	f.repo.Put("test", []byte(`{
		"growth": 1.5, "water": 2, "plant_type": "tulip", "pot_type": "gold",
		"active_pet": "dragon", "level": 0, "exp": 250, "name": "   ", "avatar": "nope",
		"last_update_timestamp": 0
	}`))

	g, err := Open(context.Background(), f.deps)
	require.NoError(t, err)
	s := g.State()

	assert.True(t, s.Slot.IsEmpty())
	assert.Equal(t, domain.DefaultPotType, s.Slot.PotType)
	assert.False(t, s.Pet.IsActive())
	assert.Equal(t, 2, s.Profile.Level)
	assert.Equal(t, 150, s.Profile.Exp)
	assert.Equal(t, domain.DefaultPlayerName, s.Profile.Name)
	assert.Equal(t, domain.DefaultAvatar, s.Profile.Avatar)
	assert.Equal(t, testStart, s.LastUpdateAt)
}

func TestGarden_PlantGrowHarvest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 9, f.garden.State().Wallet.SeedStock["basic"])
	assert.Equal(t, 1, f.events.count(event.PlantPlanted))

	_, ok, err = f.garden.Harvest(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "not ripe yet")

	f.clock.Advance(10 * time.Second)
	_, err = f.garden.Tick(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StageMature, f.garden.Snapshot().Slot.Stage)

	out, ok, err := f.garden.Harvest(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.QualityPoor, out.Quality)
	assert.Equal(t, 1, out.Yield)
	assert.Equal(t, 10, out.ExpGained)

	s := f.garden.State()
	assert.True(t, s.Slot.IsEmpty())
	assert.Equal(t, 1, s.Wallet.Inventory["basic"])
	assert.Equal(t, 1, s.HarvestedCount)
	assert.Equal(t, 10, s.Profile.Exp)

	e, found := f.events.last(event.PlantHarvested)
	require.True(t, found)
	payload, err := event.DecodePayload[event.HarvestedPayloadV1](e.Payload)
	require.NoError(t, err)
	assert.Equal(t, domain.QualityPoor, payload.Quality)
}

func TestGarden_PlantRefusals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.garden.Plant(ctx, "rose")
	require.NoError(t, err)
	assert.False(t, ok, "rose needs level 2")

	_, err = f.garden.Plant(ctx, "tulip")
	assert.ErrorIs(t, err, domain.ErrUnknownPlant)

	_, err = f.garden.AddExperience(ctx, 100)
	require.NoError(t, err)
	ok, err = f.garden.Plant(ctx, "rose")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, f.garden.State().Wallet.SeedStock["rose"])

	ok, err = f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	assert.False(t, ok, "slot occupied")
	assert.Equal(t, 10, f.garden.State().Wallet.SeedStock["basic"])
}

func TestGarden_WaterAndChangePot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.garden.Water(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "nothing planted")

	ok, err = f.garden.ChangePot(ctx, "wood")
	require.NoError(t, err)
	assert.False(t, ok, "wood is locked")

	f.garden.mu.Lock()
	f.garden.state.Wallet.Money = 200
	f.garden.mu.Unlock()
	ok, err = f.garden.UnlockPot(ctx, "wood")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = f.garden.ChangePot(ctx, "wood")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	ok, err = f.garden.Water(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5.0, f.garden.Snapshot().Slot.Water)

	ok, err = f.garden.ChangePot(ctx, domain.DefaultPotType)
	require.NoError(t, err)
	assert.False(t, ok, "growing plant keeps its pot")
}

func TestGarden_CatchUpDoesNotRunPet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.garden.mu.Lock()
	f.garden.state.Wallet.Money = 200
	f.garden.mu.Unlock()
	ok, err := f.garden.UnlockPet(ctx, "cat")
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.garden.ActivatePet(ctx, "cat")
	require.NoError(t, err)
	require.True(t, ok)
	_, err = f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	require.NoError(t, f.garden.Save(ctx))

	f.clock.Advance(time.Hour)
	g, err := Open(ctx, f.deps)
	require.NoError(t, err)

	elapsed, err := g.CatchUp(ctx)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, elapsed)
	snap := g.Snapshot()
	assert.True(t, snap.Slot.Ready)
	assert.Equal(t, 0.0, snap.Slot.Water)
	assert.True(t, snap.Pet.Working)

	report, err := g.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, report.PetAssisted)
	assert.Equal(t, 3.0, g.Snapshot().Slot.Water)
}

func TestGarden_TickResetsQuestsOncePerDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	report, err := f.garden.Tick(ctx)
	require.NoError(t, err)
	assert.True(t, report.QuestsReset)
	assert.NotEmpty(t, f.garden.Snapshot().Quests)

	report, err = f.garden.Tick(ctx)
	require.NoError(t, err)
	assert.False(t, report.QuestsReset)
	reset, err := f.garden.ResetDailyQuestsIfNeeded(ctx)
	require.NoError(t, err)
	assert.False(t, reset)

	f.clock.Advance(24 * time.Hour)
	reset, err = f.garden.ResetDailyQuestsIfNeeded(ctx)
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Equal(t, 2, f.events.count(event.DailyResetComplete))
}

func TestGarden_HarvestCompletesAndClaimsQuest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.garden.mu.Lock()
	f.garden.state.QuestLastResetAt = testStart
	f.garden.state.DailyQuests = []domain.Quest{{
		ID: "q1", TemplateKey: "harvest_any_1", RequirementType: domain.QuestTypeHarvestPlant,
		RequirementCount: 1, RewardMoney: 75,
	}}
	f.garden.mu.Unlock()

	_, err := f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	f.clock.Advance(15 * time.Second)
	out, ok, err := f.garden.Harvest(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, out.CompletedQuests, 1)
	assert.Equal(t, 1, f.events.count(event.QuestCompleted))

	q, ok, err := f.garden.ClaimQuest(ctx, "q1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, q.Claimed)
	assert.Equal(t, int64(75), f.garden.State().Wallet.Money)

	_, ok, err = f.garden.ClaimQuest(ctx, "q1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(75), f.garden.State().Wallet.Money)
}

func TestGarden_ShopAndSell(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.garden.mu.Lock()
	f.garden.state.Wallet.Money = 100
	f.garden.state.Wallet.Inventory["rose"] = 2
	f.garden.mu.Unlock()

	ok, err := f.garden.BuySeeds(ctx, "daisy", 2)
	require.NoError(t, err)
	require.True(t, ok)
	e, found := f.events.last(event.ItemBought)
	require.True(t, found)
	bought, err := event.DecodePayload[event.ItemTradedPayloadV1](e.Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(60), bought.TotalValue)

	ok, err = f.garden.BuyPestTools(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok, "40 left, tools cost 80")
	ok, err = f.garden.BuyPestTools(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	res, ok, err := f.garden.Sell(ctx, "rose", 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, res.ItemsSold)

	res, ok, err = f.garden.Sell(ctx, "rose", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(60), res.MoneyGained)
	assert.Equal(t, int64(60), f.garden.State().Wallet.Money)

	_, _, err = f.garden.Sell(ctx, "pebble", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
}

func TestGarden_UpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	avatar := f.deps.Tables.Avatars[len(f.deps.Tables.Avatars)-1]

	ok, err := f.garden.UpdateProfile(ctx, " Moss ", avatar)
	require.NoError(t, err)
	assert.True(t, ok)
	p := f.garden.State().Profile
	assert.Equal(t, "Moss", p.Name)
	assert.Equal(t, avatar, p.Avatar)

	ok, err = f.garden.UpdateProfile(ctx, "Fern", "not-an-avatar")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "Moss", f.garden.State().Profile.Name, "nothing applied when one field is bad")

	ok, err = f.garden.UpdateProfile(ctx, "", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGarden_SaveRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	_, err = f.garden.Water(ctx)
	require.NoError(t, err)
	f.clock.Advance(3 * time.Second)
	_, err = f.garden.Tick(ctx)
	require.NoError(t, err)
	require.NoError(t, f.garden.Save(ctx))
	assert.Equal(t, 1, f.repo.Saves())

	g, err := Open(ctx, f.deps)
	require.NoError(t, err)

	want, got := f.garden.Snapshot(), g.Snapshot()
	assert.Equal(t, want.Slot.PlantType, got.Slot.PlantType)
	assert.InDelta(t, want.Slot.Growth, got.Slot.Growth, 1e-9)
	assert.InDelta(t, want.Slot.Water, got.Slot.Water, 1e-9)
	assert.Equal(t, want.Wallet.SeedStock, got.Wallet.SeedStock)
	assert.Equal(t, len(want.Quests), len(got.Quests))
}

func TestGarden_ConcurrentCallers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.garden.Plant(ctx, "basic")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.clock.Advance(10 * time.Millisecond)
				_, _ = f.garden.Tick(ctx)
				_, _ = f.garden.Water(ctx)
				_ = f.garden.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := f.garden.Snapshot()
	assert.Greater(t, snap.Slot.Growth, 0.0)
	assert.GreaterOrEqual(t, snap.Slot.Water, 0.0)
}

func TestGarden_HarvestKeepsCropWhenCreditFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	f.clock.Advance(15 * time.Second)

	narrow, err := config.DefaultTables()
	require.NoError(t, err)
	delete(narrow.Plants, "basic")
	f.garden.ledger = economy.NewLedger(narrow, f.clock)

	_, ok, err := f.garden.Harvest(ctx)
	assert.ErrorIs(t, err, domain.ErrUnknownPlant)
	assert.False(t, ok)

	s := f.garden.State()
	require.False(t, s.Slot.IsEmpty(), "crop survives a failed credit")
	assert.Equal(t, "basic", s.Slot.Crop.PlantType)
	assert.True(t, s.Slot.LastHarvestAt.IsZero())
	assert.Empty(t, s.Wallet.Inventory)
	assert.Zero(t, s.HarvestedCount)
	assert.Zero(t, f.events.count(event.PlantHarvested))
}

func TestGarden_IntentsReportLookupFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.garden.Plant(ctx, "basic")
	require.NoError(t, err)
	f.garden.mu.Lock()
	f.garden.state.Slot.Crop.PlantType = "tulip"
	f.garden.mu.Unlock()

	intents := map[string]func() error{
		"water": func() error {
			_, err := f.garden.Water(ctx)
			return err
		},
		"catch pest": func() error {
			_, err := f.garden.CatchPest(ctx)
			return err
		},
		"buy pet food": func() error {
			_, err := f.garden.BuyPetFood(ctx, 1)
			return err
		},
		"feed pet": func() error {
			_, err := f.garden.FeedPet(ctx)
			return err
		},
		"add experience": func() error {
			_, err := f.garden.AddExperience(ctx, 10)
			return err
		},
		"claim quest": func() error {
			_, _, err := f.garden.ClaimQuest(ctx, "q1")
			return err
		},
		"update profile": func() error {
			_, err := f.garden.UpdateProfile(ctx, "Moss", "")
			return err
		},
	}
	for name, run := range intents {
		t.Run(name, func(t *testing.T) {
			f.clock.Advance(time.Second)
			assert.ErrorIs(t, run(), domain.ErrUnknownPlant)
		})
	}
}

// gatedRepo holds the first Save until released.
type gatedRepo struct {
	*repository.Memory
	gate    atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) Save(ctx context.Context, slot string, state *domain.GameState) error {
	if r.gate.CompareAndSwap(true, false) {
		close(r.entered)
		<-r.release
	}
	return r.Memory.Save(ctx, slot, state)
}

func TestGarden_SavesLandInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	repo := &gatedRepo{Memory: f.repo, entered: make(chan struct{}), release: make(chan struct{})}
	repo.gate.Store(true)
	f.garden.repo = repo

	errs := make(chan error, 2)
	go func() { errs <- f.garden.Save(ctx) }()
	<-repo.entered

	f.clock.Advance(5 * time.Second)
	_, err := f.garden.Tick(ctx)
	require.NoError(t, err)
	go func() { errs <- f.garden.Save(ctx) }()
	time.Sleep(20 * time.Millisecond)

	close(repo.release)
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	stored, err := f.repo.Load(ctx, "test")
	require.NoError(t, err)
	assert.WithinDuration(t, testStart.Add(5*time.Second), stored.LastUpdateAt, time.Millisecond)
	assert.Equal(t, 2, f.repo.Saves())
}

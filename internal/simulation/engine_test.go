package simulation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
)

var testStart = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// fixedRoll always returns the same draw and counts how often it was asked.
type fixedRoll struct {
	value float64
	calls int
}

func (f *fixedRoll) Float64() float64 {
	f.calls++
	return f.value
}

func newTestEngine(t *testing.T, rng RandomSource) (*Engine, *clock.Fake, *config.Tables) {
	t.Helper()
	tables, err := config.DefaultTables()
	require.NoError(t, err)
	clk := clock.NewFake(testStart)
	return NewEngine(tables, clk, rng), clk, tables
}

// step advances the clock and the slot together.
func step(t *testing.T, e *Engine, clk *clock.Fake, slot *domain.PlantSlot, dt time.Duration) StepReport {
	t.Helper()
	clk.Advance(dt)
	report, err := e.Advance(slot, dt)
	require.NoError(t, err)
	return report
}

func plantedSlot(plantType string, water float64) *domain.PlantSlot {
	return &domain.PlantSlot{
		PotType: domain.DefaultPotType,
		Crop:    &domain.Crop{PlantType: plantType, Water: water, PlantedAt: testStart},
	}
}

func TestAdvance_BasicPlantDryRun(t *testing.T) {
	e, clk, _ := newTestEngine(t, &fixedRoll{value: 0.99})
	slot := plantedSlot("basic", 0)

	report := step(t, e, clk, slot, 10*time.Second)

	assert.InDelta(t, 3.0, slot.Crop.Growth, 1e-9)
	assert.True(t, slot.Crop.WaterEverDepleted)
	assert.Equal(t, 0.0, slot.Crop.Water)
	assert.True(t, report.BecameReady)
	assert.True(t, report.BecameDry)

	result, ok, err := e.Harvest(slot)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.QualityPoor, result.Quality)
	assert.Equal(t, 1, result.Yield)
	assert.Equal(t, "basic", result.PlantType)
	assert.True(t, slot.IsEmpty())
	assert.Equal(t, clk.Now(), slot.LastHarvestAt)
}

func TestAdvance_SplitStepsMatchSingleStep(t *testing.T) {
	tests := []struct {
		name  string
		plant string
		pot   string
		water float64
	}{
		{name: "stays wet", plant: "basic", pot: "default", water: 10},
		{name: "dries out mid step", plant: "basic", pot: "default", water: 0.5},
		{name: "retaining pot", plant: "rose", pot: "wood", water: 1.2},
		{name: "dry from the start", plant: "daisy", pot: "default", water: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			whole, wholeClk, _ := newTestEngine(t, &fixedRoll{value: 1})
			split, splitClk, _ := newTestEngine(t, &fixedRoll{value: 1})

			a := plantedSlot(tc.plant, tc.water)
			a.PotType = tc.pot
			b := plantedSlot(tc.plant, tc.water)
			b.PotType = tc.pot

			step(t, whole, wholeClk, a, 10*time.Second)
			for i := 0; i < 10; i++ {
				step(t, split, splitClk, b, time.Second)
			}

			assert.InDelta(t, a.Crop.Growth, b.Crop.Growth, 1e-9)
			assert.InDelta(t, a.Crop.Water, b.Crop.Water, 1e-9)
			assert.InDelta(t, a.Crop.WaterDeficit, b.Crop.WaterDeficit, 1e-9)
			assert.Equal(t, a.Crop.WaterEverDepleted, b.Crop.WaterEverDepleted)
			assert.WithinDuration(t, a.Crop.ReadyAt, b.Crop.ReadyAt, time.Millisecond)
		})
	}
}

func TestAdvance_WaterDrainsLinearly(t *testing.T) {
	e, clk, tables := newTestEngine(t, &fixedRoll{value: 1})
	slot := plantedSlot("basic", 5)

	step(t, e, clk, slot, 10*time.Second)

	want := 5 - tables.Constants.WaterDecayPerSec*10
	assert.InDelta(t, want, slot.Crop.Water, 1e-9)
	assert.False(t, slot.Crop.WaterEverDepleted)
	// Wet soil grows faster than the base rate alone.
	assert.Greater(t, slot.Crop.Growth, 3.0)
}

func TestAdvance_ReadyAtIsCrossingInstant(t *testing.T) {
	e, clk, _ := newTestEngine(t, &fixedRoll{value: 1})
	slot := plantedSlot("basic", 0)

	// Base rate 0.3/s reaches 3.0 after 10s; the rest is overshoot.
	step(t, e, clk, slot, time.Minute)

	assert.WithinDuration(t, testStart.Add(10*time.Second), slot.Crop.ReadyAt, 10*time.Millisecond)
}

func TestAdvance_EmptySlotAndZeroDtAreNoOps(t *testing.T) {
	e, clk, _ := newTestEngine(t, &fixedRoll{value: 0})

	empty := &domain.PlantSlot{PotType: domain.DefaultPotType}
	report := step(t, e, clk, empty, time.Minute)
	assert.Equal(t, StepReport{}, report)
	assert.True(t, empty.IsEmpty())

	slot := plantedSlot("basic", 2)
	_, err := e.Advance(slot, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, slot.Crop.Growth)
	assert.Equal(t, 2.0, slot.Crop.Water)
}

func TestAdvance_UnknownKeysSurfaceAsLookupErrors(t *testing.T) {
	e, _, _ := newTestEngine(t, &fixedRoll{value: 1})

	_, err := e.Advance(plantedSlot("cactus", 1), time.Second)
	assert.ErrorIs(t, err, domain.ErrUnknownPlant)

	slot := plantedSlot("basic", 1)
	slot.PotType = "gold"
	_, err = e.Advance(slot, time.Second)
	assert.ErrorIs(t, err, domain.ErrUnknownPot)
}

func TestPestSpawn_ChanceScalesWithWindowCrossed(t *testing.T) {
	rng := &fixedRoll{value: 1}
	e, clk, tables := newTestEngine(t, rng)
	c := tables.Constants

	// Start at the bottom of the window and cross half of it.
	slot := plantedSlot("basic", 0)
	slot.Crop.Growth = c.PestWindowStart * c.PlantAt
	half := (c.PestWindowEnd - c.PestWindowStart) * c.PlantAt / 2
	dt := time.Duration(half / 0.3 * float64(time.Second))

	report := step(t, e, clk, slot, dt)

	assert.InDelta(t, c.PestMaxSpawnChance/2, report.SpawnChance, 1e-6)
	assert.False(t, report.PestSpawned)
	assert.Equal(t, 1, rng.calls)
}

func TestPestSpawn_ChancesAddUpAcrossSteps(t *testing.T) {
	whole, wholeClk, tables := newTestEngine(t, &fixedRoll{value: 1})
	split, splitClk, _ := newTestEngine(t, &fixedRoll{value: 1})

	a := plantedSlot("basic", 0)
	b := plantedSlot("basic", 0)

	total := step(t, whole, wholeClk, a, 10*time.Second).SpawnChance
	sum := 0.0
	for i := 0; i < 20; i++ {
		sum += step(t, split, splitClk, b, 500*time.Millisecond).SpawnChance
	}

	assert.InDelta(t, tables.Constants.PestMaxSpawnChance, total, 1e-9)
	assert.InDelta(t, total, sum, 1e-9)
}

func TestPestSpawn_AtMostOnePest(t *testing.T) {
	rng := &fixedRoll{value: 0}
	e, clk, _ := newTestEngine(t, rng)
	slot := plantedSlot("basic", 0)

	report := step(t, e, clk, slot, 3*time.Second)
	require.True(t, report.PestSpawned)
	require.True(t, slot.HasPest())
	appeared := slot.Crop.Pest.AppearedAt
	calls := rng.calls

	report = step(t, e, clk, slot, 2*time.Second)
	assert.False(t, report.PestSpawned)
	assert.Equal(t, appeared, slot.Crop.Pest.AppearedAt)
	assert.Equal(t, calls, rng.calls)
}

func TestPestSpawn_SkippedPastWindow(t *testing.T) {
	rng := &fixedRoll{value: 0}
	e, clk, tables := newTestEngine(t, rng)
	slot := plantedSlot("basic", 0)
	slot.Crop.Growth = tables.Constants.PestWindowEnd * tables.Constants.PlantAt

	report := step(t, e, clk, slot, 5*time.Second)

	assert.False(t, report.PestSpawned)
	assert.False(t, slot.HasPest())
	assert.Zero(t, rng.calls)
}

func TestPestSpawn_SeededSourceIsReproducible(t *testing.T) {
	run := func() []bool {
		e, clk, _ := newTestEngine(t, rand.New(rand.NewSource(42)))
		var spawned []bool
		for i := 0; i < 25; i++ {
			slot := plantedSlot("basic", 0)
			spawned = append(spawned, step(t, e, clk, slot, 10*time.Second).PestSpawned)
		}
		return spawned
	}

	assert.Equal(t, run(), run())
}

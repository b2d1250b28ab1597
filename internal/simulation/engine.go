package simulation

import (
	"time"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/utils"
)

// RandomSource is the injected randomness used for pest spawns.
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Engine provides the pure plant simulation (no I/O, no locking).
// Callers serialize access and own the slot it mutates.
type Engine struct {
	tables *config.Tables
	clock  clock.Clock
	rng    RandomSource
}

// NewEngine creates a new simulation engine
func NewEngine(tables *config.Tables, clk clock.Clock, rng RandomSource) *Engine {
	return &Engine{
		tables: tables,
		clock:  clk,
		rng:    rng,
	}
}

// StepReport describes what happened during one Advance.
type StepReport struct {
	GrowthGained float64
	WaterLost    float64
	BecameReady  bool
	BecameDry    bool
	PestSpawned  bool
	SpawnChance  float64
}

// Advance moves the slot forward by dt, ending at the engine clock's now.
// An empty slot or non-positive dt is a no-op. The same function serves
// per-tick steps and offline catch-up.
func (e *Engine) Advance(slot *domain.PlantSlot, dt time.Duration) (StepReport, error) {
	var report StepReport
	crop := slot.Crop
	if crop == nil || dt <= 0 {
		return report, nil
	}

	plant, err := e.tables.Plant(crop.PlantType)
	if err != nil {
		return report, err
	}
	pot, err := e.tables.Pot(slot.PotType)
	if err != nil {
		return report, err
	}

	c := e.tables.Constants
	model := stepModel{
		water0:    crop.Water,
		decay:     c.WaterDecayPerSec * (1 - pot.WaterRetention),
		baseRate:  e.tables.BaseGrowthRate(plant) * (1 + pot.GrowthBonus),
		boostRate: c.WaterBoostPerSec,
		threshold: c.DeficitThreshold,
	}

	span := dt.Seconds()
	end := e.clock.Now()
	start := end.Add(-dt)

	g0 := crop.Growth
	gained := model.growthAt(span)
	g1 := g0 + gained
	w1 := model.waterAt(span)

	report.GrowthGained = gained
	report.WaterLost = crop.Water - w1

	crop.Growth = g1
	crop.Water = w1
	crop.WaterDeficit += model.deficitAt(span)

	if w1 <= DepletedEpsilon {
		crop.Water = 0
		if !crop.WaterEverDepleted {
			crop.WaterEverDepleted = true
			report.BecameDry = true
		}
	}

	if crop.ReadyAt.IsZero() && crop.IsReady(c.PlantAt) {
		offset := 0.0
		if g0 < c.PlantAt && g1 > c.PlantAt {
			offset = model.timeToGrowth(c.PlantAt-g0, span)
		} else if g0 < c.PlantAt {
			offset = span
		}
		crop.ReadyAt = start.Add(time.Duration(offset * float64(time.Second)))
		report.BecameReady = true
	}

	report.SpawnChance, report.PestSpawned = e.rollPest(crop, g0, g1, end)
	return report, nil
}

// rollPest runs the spawn check for growth travelling from g0 to g1.
// The chance is the fraction of the pest window crossed in this step times
// the maximum chance, so the expected spawns over a stretch of growth do not
// depend on how finely it was stepped.
func (e *Engine) rollPest(crop *domain.Crop, g0, g1 float64, now time.Time) (float64, bool) {
	if crop.Pest != nil {
		return 0, false
	}
	c := e.tables.Constants
	lo := c.PestWindowStart * c.PlantAt
	hi := c.PestWindowEnd * c.PlantAt
	if g0 >= hi {
		return 0, false
	}

	chance := utils.Overlap(g0, g1, lo, hi) / (hi - lo) * c.PestMaxSpawnChance
	if chance <= 0 {
		return 0, false
	}
	if e.rng.Float64() >= chance {
		return chance, false
	}
	crop.Pest = &domain.Pest{AppearedAt: now}
	return chance, true
}

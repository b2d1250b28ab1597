package simulation

import (
	"math"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// Yield multipliers per quality tier
const (
	ExcellentYieldMultiplier = 1.25
	PoorYieldMultiplier      = 0.5
)

// HarvestResult is what a successful harvest produced. The engine does not
// credit anything; the caller moves Yield into the wallet.
type HarvestResult struct {
	PlantType   string         `json:"plant_type"`
	Yield       int            `json:"yield"`
	Quality     domain.Quality `json:"quality"`
	PestDemoted bool           `json:"pest_demoted"`
}

// Harvest resolves a ripe crop into yield and quality and empties the slot.
// It fails with a zero result and no mutation when the slot is empty or not
// yet ripe.
func (e *Engine) Harvest(slot *domain.PlantSlot) (HarvestResult, bool, error) {
	crop := slot.Crop
	if crop == nil || !crop.IsReady(e.tables.Constants.PlantAt) {
		return HarvestResult{}, false, nil
	}

	plant, err := e.tables.Plant(crop.PlantType)
	if err != nil {
		return HarvestResult{}, false, err
	}

	now := e.clock.Now()
	quality := e.assessQuality(crop)
	result := HarvestResult{PlantType: crop.PlantType}
	if crop.Pest != nil {
		quality = quality.Demote()
		result.PestDemoted = true
	}
	result.Quality = quality
	result.Yield = YieldFor(plant.BaseYield, quality)

	slot.Clear()
	slot.LastHarvestAt = now
	return result, true, nil
}

// assessQuality grades the crop before any pest penalty.
func (e *Engine) assessQuality(crop *domain.Crop) domain.Quality {
	if crop.WaterEverDepleted {
		return domain.QualityPoor
	}
	if !crop.ReadyAt.IsZero() && e.clock.Now().Sub(crop.ReadyAt) <= e.tables.ExcellentWindow() {
		return domain.QualityExcellent
	}
	return domain.QualityNormal
}

// YieldFor converts a base yield and quality into the harvested count.
func YieldFor(baseYield int, quality domain.Quality) int {
	switch quality {
	case domain.QualityExcellent:
		return max(1, int(math.Floor(float64(baseYield)*ExcellentYieldMultiplier)))
	case domain.QualityPoor:
		return max(1, int(math.Floor(float64(baseYield)*PoorYieldMultiplier)))
	default:
		return baseYield
	}
}

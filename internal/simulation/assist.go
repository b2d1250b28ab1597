package simulation

import (
	"github.com/osse101/GrowPot_Go/internal/domain"
)

// AutoAssist lets a fed, active pet water a dry crop. It must run after
// Advance in the same tick so it sees this tick's decay. Returns whether the
// pet worked.
func (e *Engine) AutoAssist(slot *domain.PlantSlot, pet *domain.Pet) (bool, error) {
	if !pet.IsActive() || slot.Crop == nil {
		return false, nil
	}
	stats, err := e.tables.Pet(pet.ActivePet)
	if err != nil {
		return false, err
	}

	now := e.clock.Now()
	if !pet.IsWorking(now, stats.WorkDuration()) {
		return false, nil
	}
	if slot.Crop.Water > stats.AutoWaterThreshold*e.tables.Constants.ReferenceMaxWater {
		return false, nil
	}

	slot.Crop.Water += stats.AutoWaterAmount
	pet.LastWorkedAt = now
	return true, nil
}

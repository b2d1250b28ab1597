package simulation

import (
	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/utils"
)

// Plant puts a fresh crop of plantType into an empty slot.
func (e *Engine) Plant(slot *domain.PlantSlot, plantType string) (bool, error) {
	if _, err := e.tables.Plant(plantType); err != nil {
		return false, err
	}
	if !slot.IsEmpty() {
		return false, nil
	}
	slot.Crop = &domain.Crop{
		PlantType: plantType,
		PlantedAt: e.clock.Now(),
	}
	return true, nil
}

// ChangePot swaps the pot. Only an unlocked, different pot on an empty slot
// is accepted; a growing crop is never moved between pots.
func (e *Engine) ChangePot(slot *domain.PlantSlot, unlocked domain.KeySet, potType string) (bool, error) {
	if _, err := e.tables.Pot(potType); err != nil {
		return false, err
	}
	if !unlocked.Has(potType) || slot.PotType == potType || !slot.IsEmpty() {
		return false, nil
	}
	slot.PotType = potType
	return true, nil
}

// Water tops the crop up by a fixed amount with no upper clamp. An empty
// slot holds no water, so watering it does nothing.
func (e *Engine) Water(slot *domain.PlantSlot) bool {
	if slot.Crop == nil {
		return false
	}
	slot.Crop.Water += e.tables.Constants.WaterPerClick
	return true
}

// CatchPest spends one pest tool to remove the active pest, which lands in
// the inventory as a caught bug.
func (e *Engine) CatchPest(slot *domain.PlantSlot, wallet *domain.Wallet) bool {
	if !slot.HasPest() || wallet.PestTools < 1 {
		return false
	}
	wallet.PestTools--
	utils.AddCount(wallet.Inventory, domain.ItemBug, 1)
	slot.Crop.Pest = nil
	return true
}

// ResetSlot discards whatever is growing. The pot stays. It reports whether
// a crop was removed.
func (e *Engine) ResetSlot(slot *domain.PlantSlot) bool {
	if slot.IsEmpty() {
		return false
	}
	slot.Clear()
	return true
}

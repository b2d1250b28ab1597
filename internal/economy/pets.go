package economy

import (
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// ActivatePet deploys an unlocked pet. A freshly deployed pet counts as fed.
func (l *Ledger) ActivatePet(w *domain.Wallet, pet *domain.Pet, petType string) (bool, error) {
	if _, err := l.tables.Pet(petType); err != nil {
		return false, err
	}
	if !w.UnlockedPets.Has(petType) {
		return refuse("activate_pet", ReasonLocked, "pet_type", petType), nil
	}

	now := l.clock.Now()
	pet.ActivePet = petType
	pet.LastFedAt = now
	pet.LastWorkedAt = now
	slog.Info(LogMsgPetActivated, "pet_type", petType)
	return true, nil
}

// DeactivatePet sends the active pet home.
func (l *Ledger) DeactivatePet(pet *domain.Pet) bool {
	if !pet.IsActive() {
		return refuse("deactivate_pet", ReasonNoActivePet)
	}
	slog.Info(LogMsgPetDeactivated, "pet_type", pet.ActivePet)
	pet.ActivePet = ""
	return true
}

// FeedPet spends one portion of pet food to restart the work timer.
func (l *Ledger) FeedPet(w *domain.Wallet, pet *domain.Pet) bool {
	if !pet.IsActive() {
		return refuse("feed_pet", ReasonNoActivePet)
	}
	if w.PetFood < 1 {
		return refuse("feed_pet", ReasonInsufficientStock, "item", domain.ItemPetFood)
	}

	w.PetFood--
	pet.LastFedAt = l.clock.Now()
	slog.Info(LogMsgPetFed, "pet_type", pet.ActivePet, "pet_food_left", w.PetFood)
	return true
}

package economy

import (
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/utils"
)

// BuySeeds adds quantity seeds of plantType to the seed stock.
func (l *Ledger) BuySeeds(w *domain.Wallet, plantType string, quantity int) (bool, error) {
	plant, err := l.tables.Plant(plantType)
	if err != nil {
		return false, err
	}
	if !validQuantity(quantity) {
		return refuse("buy_seeds", ReasonInvalidQuantity, "quantity", quantity), nil
	}
	cost, ok := canAfford(w, plant.SeedPrice, quantity)
	if !ok {
		return refuse("buy_seeds", ReasonInsufficientFunds, "cost", cost, "money", w.Money), nil
	}

	w.Money -= cost
	utils.AddCount(w.SeedStock, plantType, quantity)
	slog.Info(LogMsgSeedsPurchased, "plant_type", plantType, "quantity", quantity, "cost", cost)
	return true, nil
}

// BuyPetFood adds quantity portions of pet food.
func (l *Ledger) BuyPetFood(w *domain.Wallet, quantity int) bool {
	return l.buySupplies(w, domain.ItemPetFood, l.tables.Shop.PetFoodPrice, quantity, &w.PetFood)
}

// BuyPestTools adds quantity pest tools.
func (l *Ledger) BuyPestTools(w *domain.Wallet, quantity int) bool {
	return l.buySupplies(w, domain.ItemPestTool, l.tables.Shop.PestToolPrice, quantity, &w.PestTools)
}

func (l *Ledger) buySupplies(w *domain.Wallet, item string, price int64, quantity int, counter *int) bool {
	if !validQuantity(quantity) {
		return refuse("buy_"+item, ReasonInvalidQuantity, "quantity", quantity)
	}
	cost, ok := canAfford(w, price, quantity)
	if !ok {
		return refuse("buy_"+item, ReasonInsufficientFunds, "cost", cost, "money", w.Money)
	}

	w.Money -= cost
	*counter += quantity
	slog.Info(LogMsgSuppliesPurchased, "item", item, "quantity", quantity, "cost", cost)
	return true
}

// UnlockPot buys a pot type. Owned pots cannot be bought again.
func (l *Ledger) UnlockPot(w *domain.Wallet, potType string) (bool, error) {
	pot, err := l.tables.Pot(potType)
	if err != nil {
		return false, err
	}
	if w.UnlockedPots.Has(potType) {
		return refuse("unlock_pot", ReasonAlreadyOwned, "pot_type", potType), nil
	}
	if w.Money < pot.Price {
		return refuse("unlock_pot", ReasonInsufficientFunds, "cost", pot.Price, "money", w.Money), nil
	}

	w.Money -= pot.Price
	w.UnlockedPots.Add(potType)
	slog.Info(LogMsgPotUnlocked, "pot_type", potType, "cost", pot.Price)
	return true, nil
}

// UnlockPet buys a pet type. Owned pets cannot be bought again.
func (l *Ledger) UnlockPet(w *domain.Wallet, petType string) (bool, error) {
	pet, err := l.tables.Pet(petType)
	if err != nil {
		return false, err
	}
	if w.UnlockedPets.Has(petType) {
		return refuse("unlock_pet", ReasonAlreadyOwned, "pet_type", petType), nil
	}
	if w.Money < pet.Price {
		return refuse("unlock_pet", ReasonInsufficientFunds, "cost", pet.Price, "money", w.Money), nil
	}

	w.Money -= pet.Price
	w.UnlockedPets.Add(petType)
	slog.Info(LogMsgPetUnlocked, "pet_type", petType, "cost", pet.Price)
	return true, nil
}

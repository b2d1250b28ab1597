package garden

import (
	"context"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/economy"
	"github.com/osse101/GrowPot_Go/internal/event"
)

// purchase runs a ledger transaction and reports what it cost.
func (g *Garden) purchase(ctx context.Context, op, item string, quantity int, fn func(w *domain.Wallet) (bool, error)) (bool, error) {
	return g.intent(ctx, ReasonShop, func(events *batch) (bool, error) {
		before := g.state.Wallet.Money
		ok, err := fn(&g.state.Wallet)
		if err != nil {
			return false, lookupFailed(ctx, op, err)
		}
		if ok {
			cost := before - g.state.Wallet.Money
			events.add(event.NewItemTradedEvent(event.ItemBought, item, quantity, cost, g.clock.Now()))
		}
		return ok, nil
	})
}

// BuySeeds buys quantity seeds of plantType.
func (g *Garden) BuySeeds(ctx context.Context, plantType string, quantity int) (bool, error) {
	return g.purchase(ctx, "buy_seeds", plantType, quantity, func(w *domain.Wallet) (bool, error) {
		return g.ledger.BuySeeds(w, plantType, quantity)
	})
}

// BuyPetFood buys quantity portions of pet food.
func (g *Garden) BuyPetFood(ctx context.Context, quantity int) (bool, error) {
	return g.purchase(ctx, "buy_pet_food", domain.ItemPetFood, quantity, func(w *domain.Wallet) (bool, error) {
		return g.ledger.BuyPetFood(w, quantity), nil
	})
}

// BuyPestTools buys quantity pest tools.
func (g *Garden) BuyPestTools(ctx context.Context, quantity int) (bool, error) {
	return g.purchase(ctx, "buy_pest_tools", domain.ItemPestTool, quantity, func(w *domain.Wallet) (bool, error) {
		return g.ledger.BuyPestTools(w, quantity), nil
	})
}

// UnlockPot buys a pot type.
func (g *Garden) UnlockPot(ctx context.Context, potType string) (bool, error) {
	return g.purchase(ctx, "unlock_pot", potType, 1, func(w *domain.Wallet) (bool, error) {
		return g.ledger.UnlockPot(w, potType)
	})
}

// UnlockPet buys a pet type.
func (g *Garden) UnlockPet(ctx context.Context, petType string) (bool, error) {
	return g.purchase(ctx, "unlock_pet", petType, 1, func(w *domain.Wallet) (bool, error) {
		return g.ledger.UnlockPet(w, petType)
	})
}

// Sell sells quantity units of an inventory item.
func (g *Garden) Sell(ctx context.Context, item string, quantity int) (economy.SellResult, bool, error) {
	var res economy.SellResult
	ok, err := g.intent(ctx, ReasonSell, func(events *batch) (bool, error) {
		r, ok, err := g.ledger.SellItems(&g.state.Wallet, item, quantity)
		if err != nil {
			return false, lookupFailed(ctx, "sell", err)
		}
		if ok {
			res = r
			events.add(event.NewItemTradedEvent(event.ItemSold, item, r.ItemsSold, r.MoneyGained, g.clock.Now()))
		}
		return ok, nil
	})
	return res, ok, err
}

// ActivatePet deploys an unlocked pet.
func (g *Garden) ActivatePet(ctx context.Context, petType string) (bool, error) {
	return g.intent(ctx, ReasonPet, func(*batch) (bool, error) {
		ok, err := g.ledger.ActivatePet(&g.state.Wallet, &g.state.Pet, petType)
		if err != nil {
			return false, lookupFailed(ctx, "activate_pet", err)
		}
		return ok, nil
	})
}

// DeactivatePet sends the active pet home.
func (g *Garden) DeactivatePet(ctx context.Context) (bool, error) {
	return g.intent(ctx, ReasonPet, func(*batch) (bool, error) {
		return g.ledger.DeactivatePet(&g.state.Pet), nil
	})
}

// FeedPet spends one pet food on the active pet.
func (g *Garden) FeedPet(ctx context.Context) (bool, error) {
	return g.intent(ctx, ReasonPet, func(*batch) (bool, error) {
		return g.ledger.FeedPet(&g.state.Wallet, &g.state.Pet), nil
	})
}

package economy

import (
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/utils"
)

// SellResult contains the result of a sell operation
type SellResult struct {
	Item        string `json:"item"`
	ItemsSold   int    `json:"items_sold"`
	MoneyGained int64  `json:"money_gained"`
}

// SellItems removes quantity units of item from the inventory and credits
// their sale price. Selling more than is held fails without changes.
func (l *Ledger) SellItems(w *domain.Wallet, item string, quantity int) (SellResult, bool, error) {
	price, err := l.tables.SellPrice(item)
	if err != nil {
		return SellResult{}, false, err
	}
	if !validQuantity(quantity) {
		return SellResult{}, refuse("sell", ReasonInvalidQuantity, "quantity", quantity), nil
	}
	if held := utils.Count(w.Inventory, item); held < quantity {
		return SellResult{}, refuse("sell", ReasonInsufficientStock, "item", item, "held", held, "quantity", quantity), nil
	}

	utils.RemoveCount(w.Inventory, item, quantity)
	gained := price * int64(quantity)
	w.Money += gained
	slog.Info(LogMsgItemSold, "item", item, "quantity", quantity, "money_gained", gained)
	return SellResult{Item: item, ItemsSold: quantity, MoneyGained: gained}, true, nil
}

// CreditHarvest moves a harvest yield into the inventory.
func (l *Ledger) CreditHarvest(w *domain.Wallet, plantType string, yield int) error {
	if _, err := l.tables.Plant(plantType); err != nil {
		return err
	}
	utils.AddCount(w.Inventory, plantType, yield)
	slog.Debug(LogMsgHarvestCredited, "plant_type", plantType, "yield", yield)
	return nil
}

// ConsumeSeed spends one seed of plantType.
func (l *Ledger) ConsumeSeed(w *domain.Wallet, plantType string) bool {
	if !utils.RemoveCount(w.SeedStock, plantType, 1) {
		return refuse("consume_seed", ReasonInsufficientStock, "plant_type", plantType)
	}
	return true
}

// HasSeed reports whether at least one seed of plantType is in stock.
func (l *Ledger) HasSeed(w *domain.Wallet, plantType string) bool {
	return utils.Count(w.SeedStock, plantType) > 0
}

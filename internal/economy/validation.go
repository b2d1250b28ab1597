package economy

import (
	"github.com/osse101/GrowPot_Go/internal/domain"
)

// validQuantity reports whether a buy or sell quantity is in range.
func validQuantity(quantity int) bool {
	return quantity > 0 && quantity <= domain.MaxTransactionQuantity
}

// canAfford reports whether w holds enough money for quantity units at price.
func canAfford(w *domain.Wallet, price int64, quantity int) (int64, bool) {
	cost := price * int64(quantity)
	return cost, w.Money >= cost
}

package economy

import (
	"log/slog"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/config"
)

// Ledger applies shop, warehouse and pet transactions to a wallet.
//
// Every transaction checks all of its preconditions before touching any
// balance, so a refused transaction leaves the wallet exactly as it was.
// Refusals are reported as false; errors are reserved for keys the tables
// do not know.
type Ledger struct {
	tables *config.Tables
	clock  clock.Clock
}

// NewLedger creates a ledger over the given tables
func NewLedger(tables *config.Tables, clk clock.Clock) *Ledger {
	return &Ledger{
		tables: tables,
		clock:  clk,
	}
}

func refuse(op, reason string, args ...any) bool {
	slog.Debug(LogMsgTransactionRefused, append([]any{"op", op, "reason", reason}, args...)...)
	return false
}

package garden

import (
	"context"
	"fmt"

	"github.com/osse101/GrowPot_Go/internal/logger"
)

// Save writes the current state to the repository. The state is copied
// under the lock and written outside it, so a slow backend never stalls
// ticks. Saves run one at a time, so an older copy never lands after a newer
// one. Without a repository Save does nothing.
func (g *Garden) Save(ctx context.Context) error {
	if g.repo == nil {
		return nil
	}
	g.saveMu.Lock()
	defer g.saveMu.Unlock()

	state := g.State()
	if err := g.repo.Save(ctx, g.saveSlot, state); err != nil {
		logger.FromContext(ctx).Error(LogMsgStateSaveFailed, "slot", g.saveSlot, "error", err)
		return fmt.Errorf("failed to save state: %w", err)
	}
	logger.FromContext(ctx).Debug(LogMsgStateSaved, "slot", g.saveSlot)
	return nil
}

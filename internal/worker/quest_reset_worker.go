package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/GrowPot_Go/internal/clock"
	"github.com/osse101/GrowPot_Go/internal/logger"
)

// QuestResetter is the part of the garden the reset worker drives
type QuestResetter interface {
	ResetDailyQuestsIfNeeded(ctx context.Context) (bool, error)
	NextQuestReset() time.Time
}

// QuestResetWorker regenerates the daily quests right at the day boundary
// instead of waiting for the next tick to notice.
type QuestResetWorker struct {
	garden   QuestResetter
	clock    clock.Clock
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewQuestResetWorker creates a new QuestResetWorker
func NewQuestResetWorker(garden QuestResetter, clk clock.Clock) *QuestResetWorker {
	return &QuestResetWorker{
		garden:   garden,
		clock:    clk,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first reset
func (w *QuestResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext arms a timer for the next quest day. Far-off resets go
// through a standby timer first so a suspended host does not fire late by
// hours.
func (w *QuestResetWorker) scheduleNext() {
	log := logger.FromContext(context.Background())
	next := w.garden.NextQuestReset()
	duration := next.Sub(w.clock.Now())

	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.shutdown:
		return
	default:
	}

	if w.timer != nil {
		w.timer.Stop()
	}

	if duration > QuestResetStandbyThreshold {
		wait := duration - QuestResetWakeLead
		w.timer = time.AfterFunc(wait, w.scheduleNext)
		log.Info(LogMsgQuestResetStandby, "next_check_in", wait)
		return
	}

	w.timer = time.AfterFunc(duration+QuestResetGrace, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.executeReset()
		w.scheduleNext()
	})
	log.Info(LogMsgQuestResetApproach, "next_reset_at", next)
}

// executeReset runs one reset in a tracked goroutine and waits for it
func (w *QuestResetWorker) executeReset() {
	w.wg.Add(1)
	defer w.wg.Done()

	ctx := context.Background()
	log := logger.FromContext(ctx)
	reset, err := w.garden.ResetDailyQuestsIfNeeded(ctx)
	switch {
	case err != nil:
		log.Error(LogMsgQuestResetFailed, "error", err)
	case reset:
		log.Info(LogMsgQuestResetCompleted)
	default:
		log.Debug(LogMsgQuestResetSkipped)
	}
}

// Shutdown cancels the pending timer and waits for an in-flight reset
func (w *QuestResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	w.mu.Lock()
	select {
	case <-w.shutdown:
	default:
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgQuestResetShutdown)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgQuestResetTimeout)
		return ctx.Err()
	}
}

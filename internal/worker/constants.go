package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Log Messages - Quest Reset Worker
// ============================================================================

// Log messages for quest reset worker operations
const (
	LogMsgQuestResetStandby   = "Quest reset standby"
	LogMsgQuestResetApproach  = "Quest reset scheduled"
	LogMsgQuestResetCompleted = "Daily quests regenerated"
	LogMsgQuestResetSkipped   = "Daily quests already current"
	LogMsgQuestResetFailed    = "Daily quest reset failed"
	LogMsgQuestResetShutdown  = "Quest reset worker shutdown complete"
	LogMsgQuestResetTimeout   = "Quest reset worker shutdown timeout"
)

// Quest reset scheduling windows
const (
	// QuestResetStandbyThreshold is how far out a reset must be before the
	// worker sleeps in standby instead of arming the final timer
	QuestResetStandbyThreshold = time.Hour
	// QuestResetWakeLead is how long before the reset the standby timer fires
	QuestResetWakeLead = 45 * time.Minute
	// QuestResetGrace delays the final timer slightly past midnight so the
	// garden sees the new day
	QuestResetGrace = 50 * time.Millisecond
)

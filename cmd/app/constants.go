package main

import "time"

// ShutdownTimeout bounds the graceful shutdown, final save included
const ShutdownTimeout = 10 * time.Second

// Scheduled job names
const (
	JobTick     = "tick"
	JobAutosave = "autosave"
)

// Log messages
const (
	LogMsgCaughtUp        = "Offline progress applied"
	LogMsgShutdownSignal  = "Shutdown signal received"
	LogMsgServerFailed    = "Server failed"
	LogMsgTickFailed      = "Tick failed"
	LogMsgAutosaveFailed  = "Autosave failed"
	LogMsgRandomSeedInUse = "Random seed"
)

package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// LogMsgRollbackFailed is logged when an abandoned save cannot roll back
const LogMsgRollbackFailed = "Failed to rollback transaction"

// Error Messages - State Operations
const (
	ErrMsgFailedToLoadState     = "failed to load state"
	ErrMsgFailedToEncodeState   = "failed to encode state"
	ErrMsgFailedToSaveState     = "failed to save state"
	ErrMsgFailedToLockState     = "failed to lock state row"
	ErrMsgFailedToRecordHarvest = "failed to record harvest"
	ErrMsgFailedToListHarvests  = "failed to list harvests"
	ErrMsgFailedToDecodeHarvest = "failed to decode harvest event"
)

// DefaultRecentHarvests is how many rows RecentHarvests returns when no
// positive limit is given
const DefaultRecentHarvests = 20

package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept at startup
	LogFileRetentionCount = 9
)

// =============================================================================
// Database
// =============================================================================

const (
	// DBMaxConnIdleTime closes pooled connections idle longer than this
	DBMaxConnIdleTime = 5 * time.Minute

	// DBMaxConnLifetime recycles pooled connections
	DBMaxConnLifetime = 30 * time.Minute

	// DBConnectRetryDelay spaces startup pings while the database boots
	DBConnectRetryDelay = 2 * time.Second
)

// =============================================================================
// Log Messages
// =============================================================================

const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting GrowPot"
	LogMsgStateStoreOpened           = "State store opened"
	LogMsgMigrationsApplied          = "Database migrations applied"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgHarvestLogSubscribed       = "Harvest log subscribed"
	LogMsgStreamSubscribed           = "Stream hub subscribed"
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgFinalSaveFailed            = "Final save failed"
	LogMsgStoreCloseFailed           = "Failed to close state store"
	LogMsgWorkerShutdownFailed       = "Worker shutdown failed"
	LogMsgServerStopped              = "Server stopped"
)

// Error messages
const (
	ErrMsgFailedCreateLogDir  = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedOpenSQLite    = "failed to open sqlite store"
	ErrMsgFailedConnectDB     = "failed to connect to database"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgUnknownStateBackend = "unknown state backend"
)

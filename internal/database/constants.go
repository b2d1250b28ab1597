package database

import "time"

// Connection pool defaults
const (
	DefaultMinConnections  = 1
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
	DefaultRetryDelay      = 2 * time.Second
)

// ApplicationName tags GrowPot sessions in pg_stat_activity
const ApplicationName = "growpot"

// GooseDialect is the dialect goose runs migrations with
const GooseDialect = "postgres"

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString  = "failed to parse connection string"
	ErrMsgFailedToCreatePool       = "failed to create connection pool"
	ErrMsgFailedToPingDatabase     = "failed to ping database"
	ErrMsgFailedToSetDialect       = "failed to set migration dialect"
	ErrMsgFailedToApplyMigrations  = "failed to apply migrations"
	ErrMsgFailedToReadMigrationVer = "failed to read migration version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
	LogMsgDatabaseNotReady                = "Database not ready, retrying"
)

package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrowPot_Go/internal/config"
	"github.com/osse101/GrowPot_Go/internal/database"
	"github.com/osse101/GrowPot_Go/internal/database/postgres"
	"github.com/osse101/GrowPot_Go/internal/repository"
	"github.com/osse101/GrowPot_Go/internal/storage"
)

// Stores holds the persistence chosen by STATE_BACKEND. Pool is only set
// for PostgreSQL; the harvest log shares it.
type Stores struct {
	State repository.StateRepository
	Pool  *pgxpool.Pool
}

// InitializeStores opens the configured state backend. PostgreSQL is
// migrated before use.
func InitializeStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	var stores Stores

	switch cfg.StateBackend {
	case config.BackendFile:
		stores.State = storage.NewFileStore(cfg.StatePath)

	case config.BackendSQLite:
		s, err := storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		stores.State = s

	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, PoolConfig(cfg))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		version, err := database.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied, "version", version)
		stores.State = postgres.NewStateRepository(pool)
		stores.Pool = pool

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStateBackend, cfg.StateBackend)
	}

	slog.Info(LogMsgStateStoreOpened, "backend", cfg.StateBackend, "slot", cfg.SaveSlot)
	return &stores, nil
}

// PoolConfig maps the DB_* settings onto the pool
func PoolConfig(cfg *config.Config) database.PoolConfig {
	return database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: DBMaxConnIdleTime,
		MaxConnLifetime: DBMaxConnLifetime,
		ConnectAttempts: cfg.DBConnectAttempts,
		RetryDelay:      DBConnectRetryDelay,
	}
}

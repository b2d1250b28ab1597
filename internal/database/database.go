package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig describes the PostgreSQL pool behind the postgres state
// backend. Zero durations and counts take the package defaults.
type PoolConfig struct {
	ConnString      string
	MaxConns        int
	MaxConnIdleTime time.Duration
	MaxConnLifetime time.Duration
	// ConnectAttempts is how many pings are tried before giving up, so the
	// garden can start alongside a database container that is still booting
	ConnectAttempts int
	RetryDelay      time.Duration
}

func (c PoolConfig) withDefaults() PoolConfig {
	if c.MaxConns < DefaultMinConnections {
		c.MaxConns = DefaultMinConnections
	}
	if c.MaxConns > math.MaxInt32 {
		c.MaxConns = math.MaxInt32
	}
	if c.MaxConnIdleTime <= 0 {
		c.MaxConnIdleTime = DefaultMaxConnIdleTime
	}
	if c.MaxConnLifetime <= 0 {
		c.MaxConnLifetime = DefaultMaxConnLifetime
	}
	if c.ConnectAttempts < 1 {
		c.ConnectAttempts = 1
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	return c
}

// NewPool opens a pool and pings it until it answers or the attempts run out
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	cfg = cfg.withDefaults()

	pgCfg, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}
	pgCfg.MaxConns = int32(cfg.MaxConns)
	pgCfg.MinConns = DefaultMinConnections
	pgCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	pgCfg.MaxConnLifetime = cfg.MaxConnLifetime
	pgCfg.ConnConfig.RuntimeParams["application_name"] = ApplicationName

	pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			break
		}
		if attempt >= cfg.ConnectAttempts {
			pool.Close()
			return nil, fmt.Errorf("%s after %d attempts: %w", ErrMsgFailedToPingDatabase, attempt, err)
		}
		slog.Default().Warn(LogMsgDatabaseNotReady, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, ctx.Err())
		case <-time.After(cfg.RetryDelay):
		}
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", cfg.MaxConns)
	return pool, nil
}

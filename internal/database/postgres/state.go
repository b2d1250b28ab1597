package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/logger"
)

// StateRepository stores game states as JSONB rows keyed by save slot.
type StateRepository struct {
	db *pgxpool.Pool
}

// NewStateRepository creates a new Postgres-backed state repository
func NewStateRepository(db *pgxpool.Pool) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) Load(ctx context.Context, slot string) (*domain.GameState, error) {
	var doc []byte
	err := r.db.QueryRow(ctx, `SELECT state FROM garden_states WHERE slot = $1`, slot).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadState, err)
	}
	return domain.DecodeState(doc)
}

// Save upserts the state and bumps the row revision inside one transaction.
// The row is locked first so concurrent writers for a slot apply in order.
func (r *StateRepository) Save(ctx context.Context, slot string, state *domain.GameState) error {
	doc, err := domain.EncodeState(state)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeState, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer rollback(ctx, tx)

	var revision int64
	err = tx.QueryRow(ctx, `SELECT revision FROM garden_states WHERE slot = $1 FOR UPDATE`, slot).Scan(&revision)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLockState, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO garden_states (slot, schema_version, state, revision, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (slot) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			state = EXCLUDED.state,
			revision = EXCLUDED.revision,
			updated_at = NOW()`,
		slot, domain.StateSchemaVersion, doc, revision+1)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveState, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}

	logger.FromContext(ctx).Debug("State saved", "slot", slot, "revision", revision+1)
	return nil
}

// Revision returns how many times the slot has been written, 0 if never.
func (r *StateRepository) Revision(ctx context.Context, slot string) (int64, error) {
	var revision int64
	err := r.db.QueryRow(ctx, `SELECT revision FROM garden_states WHERE slot = $1`, slot).Scan(&revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	return revision, err
}

func (r *StateRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Close releases the pool. The repository owns it once constructed.
func (r *StateRepository) Close() error {
	r.db.Close()
	return nil
}

// rollback undoes an unfinished transaction; after Commit it is a no-op
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GrowPot_Go/internal/domain"
	"github.com/osse101/GrowPot_Go/internal/event"
)

// HarvestRecord is one row of the harvest history
type HarvestRecord struct {
	Slot        string         `json:"slot"`
	PlantType   string         `json:"plant_type"`
	Quality     domain.Quality `json:"quality"`
	Yield       int            `json:"yield"`
	HarvestedAt time.Time      `json:"harvested_at"`
}

// HarvestLog appends harvests for one save slot to the harvest_log table.
type HarvestLog struct {
	db   *pgxpool.Pool
	slot string
}

// NewHarvestLog creates a harvest log writer for a save slot
func NewHarvestLog(db *pgxpool.Pool, slot string) *HarvestLog {
	return &HarvestLog{db: db, slot: slot}
}

// Record inserts one harvest row
func (l *HarvestLog) Record(ctx context.Context, plantType string, quality domain.Quality, yield int, at time.Time) error {
	_, err := l.db.Exec(ctx, `
		INSERT INTO harvest_log (slot, plant_type, quality, yield, harvested_at)
		VALUES ($1, $2, $3, $4, $5)`,
		l.slot, plantType, string(quality), yield, at)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordHarvest, err)
	}
	return nil
}

// Recent returns the newest harvests first
func (l *HarvestLog) Recent(ctx context.Context, limit int) ([]HarvestRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentHarvests
	}
	rows, err := l.db.Query(ctx, `
		SELECT slot, plant_type, quality, yield, harvested_at
		FROM harvest_log
		WHERE slot = $1
		ORDER BY harvested_at DESC, harvest_id DESC
		LIMIT $2`, l.slot, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHarvests, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (HarvestRecord, error) {
		var rec HarvestRecord
		var quality string
		err := row.Scan(&rec.Slot, &rec.PlantType, &quality, &rec.Yield, &rec.HarvestedAt)
		rec.Quality = domain.Quality(quality)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListHarvests, err)
	}
	return records, nil
}

// Subscribe records every harvest published on the bus
func (l *HarvestLog) Subscribe(bus event.Bus) {
	bus.Subscribe(event.PlantHarvested, l.handleHarvested)
}

func (l *HarvestLog) handleHarvested(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.HarvestedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDecodeHarvest, err)
	}
	return l.Record(ctx, payload.PlantType, payload.Quality, payload.Yield, time.Unix(payload.Timestamp, 0))
}

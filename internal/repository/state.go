package repository

import (
	"context"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// StateRepository persists game state records, one per named save slot.
//
// Load returns domain.ErrStateNotFound when the slot has never been saved
// and an error wrapping domain.ErrCorruptState when the stored record cannot
// be decoded. Callers treat both as "start a fresh game".
type StateRepository interface {
	Load(ctx context.Context, slot string) (*domain.GameState, error)
	Save(ctx context.Context, slot string, state *domain.GameState) error
	Ping(ctx context.Context) error
	Close() error
}

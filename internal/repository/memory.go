package repository

import (
	"context"
	"sync"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// Memory keeps encoded state records in process memory. It stores the
// encoded form so a load goes through the same decoding as the durable
// backends.
type Memory struct {
	mu    sync.RWMutex
	slots map[string][]byte
	saves int
}

// NewMemory creates an empty in-memory state repository
func NewMemory() *Memory {
	return &Memory{slots: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, slot string) (*domain.GameState, error) {
	m.mu.RLock()
	data, ok := m.slots[slot]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	return domain.DecodeState(data)
}

func (m *Memory) Save(_ context.Context, slot string, state *domain.GameState) error {
	data, err := domain.EncodeState(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.slots[slot] = data
	m.saves++
	m.mu.Unlock()
	return nil
}

// Put stores a raw record, bypassing encoding.
func (m *Memory) Put(slot string, data []byte) {
	m.mu.Lock()
	m.slots[slot] = data
	m.mu.Unlock()
}

// Saves returns how many times Save succeeded.
func (m *Memory) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }

package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/GrowPot_Go/internal/domain"
)

// FileStore keeps each save slot as a JSON document on disk. The default
// slot is written to path itself; other slots get a suffix before the
// extension (state.json -> state.autumn.json).
type FileStore struct {
	path string
}

// NewFileStore creates a store rooted at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// slotPath returns the file backing a slot.
func (s *FileStore) slotPath(slot string) string {
	if slot == "" || slot == DefaultSlot {
		return s.path
	}
	ext := filepath.Ext(s.path)
	return s.path[:len(s.path)-len(ext)] + "." + slot + ext
}

func (s *FileStore) Load(_ context.Context, slot string) (*domain.GameState, error) {
	data, err := os.ReadFile(s.slotPath(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	return domain.DecodeState(data)
}

// Save writes the document to a temporary file in the same directory and
// renames it over the old one, so a crash never leaves a half-written state.
func (s *FileStore) Save(_ context.Context, slot string, state *domain.GameState) error {
	data, err := domain.EncodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	target := s.slotPath(slot)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), FilePermissions); err != nil {
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Ping checks that the state directory is reachable.
func (s *FileStore) Ping(context.Context) error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("state directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("state directory unavailable: %s is not a directory", dir)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

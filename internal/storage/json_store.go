package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/rpglife/rpglife/internal/models"
)

// JSONStore persists the state as a single pretty-printed JSON file. It is
// the default provider.
type JSONStore struct {
	path     string
	lastHash uint64
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.DefaultState(time.Now()))
}

func (s *JSONStore) Load() (*models.ProgressionState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage not initialized, run 'rpglife init' first")
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	state, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	s.lastHash = stateHash(state)
	return state, nil
}

// Save writes the document, skipping the write entirely when the state hash
// has not changed since the last load/save. Autosave leans on this to stay
// idempotent and cheap.
func (s *JSONStore) Save(state *models.ProgressionState) error {
	hash := stateHash(state)
	if hash != 0 && hash == s.lastHash {
		return nil
	}

	if err := s.write(state); err != nil {
		return err
	}
	s.lastHash = hash
	return nil
}

func (s *JSONStore) write(state *models.ProgressionState) error {
	data, err := EncodeDocument(state)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

// stateHash fingerprints the state for redundant-save suppression. A zero
// return (hash failure) disables the skip rather than the save.
func stateHash(state *models.ProgressionState) uint64 {
	hash, err := hashstructure.Hash(state, hashstructure.FormatV2, nil)
	if err != nil {
		return 0
	}
	return hash
}

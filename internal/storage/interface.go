package storage

import "github.com/rpglife/rpglife/internal/models"

// Provider persists the ProgressionState as a whole document. There is no
// partial-write protocol: Load returns the full aggregate and Save replaces
// it. Both stores run every loaded document through the validator and the
// migration engine before trusting it.
type Provider interface {
	// Init creates the backing file/database with a default state. It
	// fails if storage already exists.
	Init() error

	// Load reads, validates, and migrates the persisted document. A
	// malformed document falls back to a default state (logged), never an
	// error; errors are reserved for I/O failures.
	Load() (*models.ProgressionState, error)

	// Save serializes the state. Saving an unchanged state is a cheap
	// no-op, so redundant autosaves are safe.
	Save(state *models.ProgressionState) error

	Close() error

	// Path returns the location of the backing file.
	Path() string
}

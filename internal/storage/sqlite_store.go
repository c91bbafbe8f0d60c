package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/rpglife/rpglife/internal/models"
)

// SQLiteStore persists the same whole document inside a SQLite database,
// keeping a bounded history of prior snapshots for recovery. Selected by
// pointing --state at a .db path.
type SQLiteStore struct {
	path     string
	db       *sql.DB
	lastHash uint64
}

const snapshotKeep = 20

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.writeSnapshot(models.DefaultState(time.Now()))
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS state_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			doc TEXT NOT NULL,
			saved_at TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create state table: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Load() (*models.ProgressionState, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, fmt.Errorf("storage not initialized, run 'rpglife init' first")
	}
	if err := s.open(); err != nil {
		return nil, err
	}

	var doc string
	row := s.db.QueryRow(`SELECT doc FROM state_snapshots ORDER BY id DESC LIMIT 1`)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultState(time.Now()), nil
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	state, err := DecodeDocument([]byte(doc))
	if err != nil {
		return nil, err
	}

	s.lastHash = stateHash(state)
	return state, nil
}

func (s *SQLiteStore) Save(state *models.ProgressionState) error {
	if err := s.open(); err != nil {
		return err
	}

	hash := stateHash(state)
	if hash != 0 && hash == s.lastHash {
		return nil
	}

	if err := s.writeSnapshot(state); err != nil {
		return err
	}
	s.lastHash = hash
	return nil
}

func (s *SQLiteStore) writeSnapshot(state *models.ProgressionState) error {
	data, err := EncodeDocument(state)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO state_snapshots (doc, saved_at) VALUES (?, ?)`,
		string(data), time.Now().Format(time.RFC3339),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to write state: %w", err)
	}

	if _, err := tx.Exec(`
		DELETE FROM state_snapshots WHERE id NOT IN (
			SELECT id FROM state_snapshots ORDER BY id DESC LIMIT ?
		)
	`, snapshotKeep); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prune snapshots: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

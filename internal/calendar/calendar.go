// Package calendar is the optional outbound side-effect boundary: completed
// focus sessions are appended to an outbox file that an external calendar
// bridge consumes. Failures here are logged and swallowed: core XP/session
// bookkeeping is already committed by the time a session reaches this
// package, and must never depend on it.
package calendar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/logger"
)

const outboxName = "calendar-outbox.jsonl"

type Sink struct {
	path string
}

// NewSink creates a sink writing next to the state file.
func NewSink(configDir string) *Sink {
	return &Sink{path: filepath.Join(configDir, outboxName)}
}

// Record appends one session event as a JSON line. Callers treat a non-nil
// error as a log-and-continue condition, never as an operation failure.
func (s *Sink) Record(event engine.SessionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize session event: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open calendar outbox: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append session event: %w", err)
	}
	return nil
}

// TryRecord is the fire-and-forget wrapper used by the CLI: it logs failures
// and returns nothing.
func (s *Sink) TryRecord(event engine.SessionEvent) {
	if err := s.Record(event); err != nil {
		logger.Warn("External calendar logging failed", "error", err)
	}
}

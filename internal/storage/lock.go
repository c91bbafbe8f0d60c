package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/logger"
)

// Lock is a pid lockfile guarding the state file against a second rpglife
// process. The engine assumes a single mutator timeline; two concurrent
// processes autosaving the same document would silently lose writes.
type Lock struct {
	path string
}

// AcquireLock claims the lockfile next to the state file. A lockfile whose
// pid no longer resolves to a live rpglife process is stale and reclaimed.
func AcquireLock(statePath string) (*Lock, error) {
	lockPath := filepath.Join(filepath.Dir(statePath), constants.LockfileName)

	if content, err := os.ReadFile(lockPath); err == nil {
		pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
		if err == nil && pid > 0 {
			process, err := ps.FindProcess(pid)
			if err == nil && process != nil && strings.HasPrefix(process.Executable(), constants.AppName) {
				return nil, fmt.Errorf("another %s process (pid %d) is using this state file", constants.AppName, pid)
			}
		}
		logger.Debug("Reclaiming stale lockfile", "path", lockPath)
		_ = os.Remove(lockPath)
	}

	if err := os.MkdirAll(filepath.Dir(lockPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}
	if err := os.WriteFile(lockPath, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	return &Lock{path: lockPath}, nil
}

// Release removes the lockfile. Safe to call once per acquired lock.
func (l *Lock) Release() {
	if l == nil {
		return
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove lockfile", "path", l.path, "error", err)
	}
}

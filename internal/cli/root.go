package cli

import (
	"sync"

	"github.com/rpglife/rpglife/internal/backup"
	"github.com/rpglife/rpglife/internal/config"
	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/logger"
	"github.com/rpglife/rpglife/internal/scheduler"
	"github.com/rpglife/rpglife/internal/storage"
)

// Context carries the shared dependencies into every command's Run method.
type Context struct {
	Store     storage.Provider
	Config    config.Config
	Clock     scheduler.Clock
	ConfigDir string

	mu sync.Mutex
}

// WithEngine loads the state, hands a live engine to fn, then refreshes the
// achievement cache and saves. The opportunistic checks in engine.New may
// mutate state even when fn fails, so the save happens either way.
//
// Timer callbacks (midnight reset, autosave) run on their own goroutines
// while the focus countdown owns the terminal, so whole load-mutate-save
// cycles must not interleave: the storage providers are not goroutine-safe
// and the engine assumes a single mutator timeline. The lockfile only guards
// across processes; this mutex guards within one.
func (c *Context) WithEngine(fn func(e *engine.Engine) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	state, err := c.Store.Load()
	if err != nil {
		return err
	}

	eng := engine.New(state, c.Config, c.Clock)
	opErr := fn(eng)

	eng.RefreshAchievementCache()
	if saveErr := c.Store.Save(state); saveErr != nil {
		if opErr != nil {
			return opErr
		}
		return saveErr
	}
	return opErr
}

// PerformAutomaticBackup creates an automatic backup and silently handles
// errors so it never interrupts the user's workflow.
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.Path())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

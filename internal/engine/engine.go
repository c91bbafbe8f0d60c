// Package engine implements the progression/state engine: every mutation of
// ProgressionState flows through here. Methods are synchronous and assume a
// single mutator timeline; persistence is the caller's concern (load state,
// apply operations, save).
package engine

import (
	"time"

	"github.com/rpglife/rpglife/internal/config"
	"github.com/rpglife/rpglife/internal/logger"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/rank"
	"github.com/rpglife/rpglife/internal/scheduler"
	"github.com/rpglife/rpglife/internal/utils"
)

type Engine struct {
	state *models.ProgressionState
	cfg   config.Config
	clock scheduler.Clock
}

// New wraps state in an engine and immediately runs the opportunistic checks
// (daily reset, season rollover), since loading is a state read.
func New(state *models.ProgressionState, cfg config.Config, clock scheduler.Clock) *Engine {
	e := &Engine{state: state, cfg: cfg, clock: clock}
	e.CheckDailyReset()
	e.CheckSeasonRollover()
	return e
}

// State exposes the underlying aggregate for persistence and read-only
// consumers. Callers must not mutate it directly.
func (e *Engine) State() *models.ProgressionState {
	return e.state
}

func (e *Engine) Config() config.Config {
	return e.cfg
}

// Now exposes the engine's clock so presentation code stays on the same
// timeline as the mutations it displays.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

func (e *Engine) now() time.Time {
	return e.clock.Now()
}

// AddXP appends a signed delta to the ledger and updates the running totals.
// This is the sole XP mutation path; the daily-reset check runs first so a
// delta logged just past midnight lands on the fresh day.
func (e *Engine) AddXP(amount int, reason string) {
	e.CheckDailyReset()

	e.state.TotalXP += amount
	e.state.DailyXP += amount
	e.state.XPHistory = append(e.state.XPHistory, models.XPEntry{
		Date:         e.now(),
		Amount:       amount,
		Reason:       reason,
		RunningTotal: e.state.TotalXP,
	})
}

// CheckDailyReset zeroes dailyXP when the calendar day has changed since the
// last reset. Safe to invoke redundantly: at most one reset per day.
func (e *Engine) CheckDailyReset() bool {
	today := utils.DayString(e.now())
	if e.state.LastDailyReset == today {
		return false
	}

	logger.Debug("Daily reset", "from", e.state.LastDailyReset, "to", today)
	e.state.DailyXP = 0
	e.state.LastDailyReset = today
	return true
}

// CheckSeasonRollover archives and resets the season once its configured
// length has elapsed. Checked opportunistically on load and update rather
// than by a standalone timer, so it must be an idempotent no-op otherwise.
func (e *Engine) CheckSeasonRollover() bool {
	if !e.state.Started || e.state.SeasonStartDate == nil {
		return false
	}
	if utils.DaysSince(*e.state.SeasonStartDate, e.now()) < e.cfg.Season.LengthDays {
		return false
	}

	e.rolloverSeason()
	return true
}

// rolloverSeason archives the finished season's rollup, then rebuilds the
// state with defaults while preserving settings, the achievement cache,
// season history, and weekly reviews. Total XP is archived, never
// decremented: it survives in the season record.
func (e *Engine) rolloverSeason() {
	now := e.now()
	finished := rank.Current(e.state.TotalXP)

	record := models.SeasonRecord{
		Season:  e.state.SeasonNumber,
		TotalXP: e.state.TotalXP,
		Rank:    finished.Name,
		Badge:   finished.Badge,
	}
	logger.Info("Season rollover",
		"season", record.Season, "total_xp", record.TotalXP, "rank", record.Badge)

	fresh := models.DefaultState(now)
	fresh.SeasonHistory = append(e.state.SeasonHistory, record)
	fresh.WeeklyReviews = e.state.WeeklyReviews
	fresh.Achievements = e.state.Achievements
	fresh.Settings = e.state.Settings
	fresh.SeasonNumber = e.state.SeasonNumber + 1
	fresh.SeasonGoalXP = e.state.SeasonGoalXP
	fresh.Started = true
	start := now
	fresh.SeasonStartDate = &start

	*e.state = *fresh
}

// Reset discards all progression wholesale. Only an explicit user action may
// call this.
func (e *Engine) Reset() {
	*e.state = *models.DefaultState(e.now())
}

// RefreshAchievementCache recomputes the persisted achievement snapshot from
// current state. The cache is write-only from the engine's perspective;
// queries always re-evaluate the catalog.
func (e *Engine) RefreshAchievementCache() {
	now := e.now()
	achievements := rank.Evaluate(e.state, now, e.cfg.Daily.XPGoal)

	previous := make(map[string]models.AchievementCache, len(e.state.Achievements))
	for _, cached := range e.state.Achievements {
		previous[cached.ID] = cached
	}

	cache := make([]models.AchievementCache, 0, len(achievements))
	for _, a := range achievements {
		entry := models.AchievementCache{ID: a.ID, Unlocked: a.Unlocked}
		if old, ok := previous[a.ID]; ok && old.Unlocked {
			entry.Unlocked = old.Unlocked
			entry.UnlockedAt = old.UnlockedAt
		} else if a.Unlocked {
			entry.UnlockedAt = &now
		}
		cache = append(cache, entry)
	}
	e.state.Achievements = cache
}

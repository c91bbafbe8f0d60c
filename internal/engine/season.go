package engine

import (
	"fmt"
	"time"

	"github.com/rpglife/rpglife/internal/models"
)

// StartSeason explicitly begins the current season with the chosen XP goal.
// The goal must come from the selectable set; starting twice is an error.
func (e *Engine) StartSeason(goalXP int) error {
	if e.state.Started {
		return ErrSeasonAlreadyStarted
	}
	if goalXP == 0 {
		return ErrSeasonGoalRequired
	}

	valid := false
	for _, goal := range models.SeasonGoals {
		if goalXP == goal {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("%w: %d (choose from %v)", ErrInvalidSeasonGoal, goalXP, models.SeasonGoals)
	}

	now := e.now()
	e.state.Started = true
	e.state.SeasonGoalXP = goalXP
	e.state.SeasonStartDate = &now
	return nil
}

// SeasonCountdown describes where the running season stands.
type SeasonCountdown struct {
	Season        int
	Started       bool
	GoalXP        int
	DaysElapsed   int
	DaysRemaining int
	EndsAt        time.Time
}

// SeasonStatus derives the countdown fields for display. For a season that
// has not been started, only Season and Started are meaningful.
func (e *Engine) SeasonStatus() SeasonCountdown {
	status := SeasonCountdown{
		Season:  e.state.SeasonNumber,
		Started: e.state.Started,
		GoalXP:  e.state.SeasonGoalXP,
	}
	if !e.state.Started || e.state.SeasonStartDate == nil {
		return status
	}

	length := e.cfg.Season.LengthDays
	elapsed := int(e.now().Sub(*e.state.SeasonStartDate).Hours() / 24)
	if elapsed > length {
		elapsed = length
	}

	status.DaysElapsed = elapsed
	status.DaysRemaining = length - elapsed
	status.EndsAt = e.state.SeasonStartDate.AddDate(0, 0, length)
	return status
}

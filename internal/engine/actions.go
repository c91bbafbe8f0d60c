package engine

import (
	"fmt"

	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/utils"
)

// dayActions returns today's action record and its map key.
func (e *Engine) dayActions() (models.DayActions, string) {
	day := utils.DayString(e.now())
	return e.state.DailyActions[day], day
}

// LogSport records today's sport activity and awards its XP. A second call
// on the same day fails with ErrAlreadyLogged and changes nothing.
func (e *Engine) LogSport() (int, error) {
	e.CheckDailyReset()
	e.CheckSeasonRollover()

	actions, day := e.dayActions()
	if actions.Sport {
		return 0, ErrAlreadyLogged
	}

	actions.Sport = true
	e.state.DailyActions[day] = actions
	e.AddXP(constants.XPSport, "Sport (50min)")
	return constants.XPSport, nil
}

// LogSleep records last night's sleep quality, at most once per day. Bad
// sleep is still recorded even though it earns no XP.
func (e *Engine) LogSleep(quality models.SleepQuality) (int, error) {
	e.CheckDailyReset()
	e.CheckSeasonRollover()

	var xp int
	switch quality {
	case models.SleepGood:
		xp = constants.XPSleepGood
	case models.SleepAverage:
		xp = constants.XPSleepAvg
	case models.SleepBad:
		xp = 0
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSleepQuality, quality)
	}

	actions, day := e.dayActions()
	if actions.Sleep != "" {
		return 0, ErrAlreadyLogged
	}

	actions.Sleep = quality
	e.state.DailyActions[day] = actions
	if xp > 0 {
		e.AddXP(xp, fmt.Sprintf("Sleep %s", quality))
	}
	return xp, nil
}

// LogDistraction records a distraction and applies its XP penalty.
// Distractions are unbounded per day.
func (e *Engine) LogDistraction(kind models.DistractionType) (int, error) {
	e.CheckDailyReset()
	e.CheckSeasonRollover()

	var penalty int
	switch kind {
	case models.DistractionInstagram:
		penalty = constants.PenaltyInsta
	case models.DistractionMusic:
		penalty = constants.PenaltyMusic
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistraction, kind)
	}

	actions, day := e.dayActions()
	actions.Distractions = append(actions.Distractions, kind)
	e.state.DailyActions[day] = actions
	e.AddXP(-penalty, fmt.Sprintf("Distraction %s", kind))
	return -penalty, nil
}

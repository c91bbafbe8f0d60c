package engine

import (
	"fmt"
	"time"

	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/stats"
)

// FocusResult reports the outcome of a recorded focus session.
type FocusResult struct {
	Session   models.FocusSession
	XPAwarded int
	Bonus     bool
	// Discarded is set when a cancelled session ran shorter than the
	// configured minimum and earned nothing.
	Discarded bool
}

// CompleteFocusSession records a session that ran to its planned end and
// awards XP per the focus rule. The mandatory-session count is evaluated
// against the sessions already on record, so the session being logged never
// doubles itself.
func (e *Engine) CompleteFocusSession(minutes, scheduledMinutes int, projectID string) (FocusResult, error) {
	return e.recordSession(minutes, scheduledMinutes, projectID, fmt.Sprintf("Focus session %dmin", minutes))
}

// CancelFocusSession records a session the user aborted after elapsed
// minutes. Sessions shorter than the configured minimum are discarded
// without any state change.
func (e *Engine) CancelFocusSession(elapsedMinutes int, projectID string) (FocusResult, error) {
	if elapsedMinutes < e.cfg.Focus.CancelMinMinutes {
		return FocusResult{Discarded: true}, nil
	}
	return e.recordSession(elapsedMinutes, 0, projectID, fmt.Sprintf("Cancelled session %dmin", elapsedMinutes))
}

func (e *Engine) recordSession(minutes, scheduledMinutes int, projectID, reason string) (FocusResult, error) {
	if minutes <= 0 {
		return FocusResult{}, fmt.Errorf("session duration must be positive (got %d)", minutes)
	}

	e.CheckDailyReset()
	e.CheckSeasonRollover()

	if projectID != "" && e.state.FindProject(projectID) == nil {
		return FocusResult{}, fmt.Errorf("%w: %s", ErrProjectNotFound, projectID)
	}

	now := e.now()
	mandatory := stats.MandatorySessionsToday(e.state, now)
	xp := stats.FocusXP(minutes, mandatory)
	bonus := mandatory >= 2 && xp > 0

	kind := models.SessionNormal
	if bonus {
		kind = models.SessionBonus
	}

	e.AddXP(xp, reason)

	session := models.FocusSession{
		Date:             now,
		DurationMinutes:  minutes,
		ScheduledMinutes: scheduledMinutes,
		ProjectID:        projectID,
		XPAwarded:        xp,
		Kind:             kind,
	}
	e.state.FocusSessions = append(e.state.FocusSessions, session)

	if projectID != "" {
		e.state.FindProject(projectID).TotalTimeMinutes += minutes
	}

	return FocusResult{Session: session, XPAwarded: xp, Bonus: bonus}, nil
}

// SessionEvent is the payload handed to the optional external calendar sink
// after a session has been committed to core state.
type SessionEvent struct {
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	ProjectName     string    `json:"project_name,omitempty"`
	XPAwarded       int       `json:"xp_awarded"`
	Type            string    `json:"type"`
	Description     string    `json:"description,omitempty"`
}

// SessionEventFor builds the outbound event for a recorded session. Emitting
// it is delegated to the caller and is never required for correctness.
func (e *Engine) SessionEventFor(result FocusResult) SessionEvent {
	projectName := ""
	if p := e.state.FindProject(result.Session.ProjectID); p != nil {
		projectName = p.Name
	}

	return SessionEvent{
		Start:           result.Session.Date.Add(-time.Duration(result.Session.DurationMinutes) * time.Minute),
		DurationMinutes: result.Session.DurationMinutes,
		ProjectName:     projectName,
		XPAwarded:       result.XPAwarded,
		Type:            string(result.Session.Kind),
		Description:     fmt.Sprintf("rpglife focus session (+%d XP)", result.XPAwarded),
	}
}

package models

import "time"

// CurrentVersion is the schema version of the persisted state document.
// Migration steps in internal/migration upgrade older documents one version
// at a time; existing steps are never renumbered.
const CurrentVersion = 3

type SleepQuality string

const (
	SleepGood    SleepQuality = "good"
	SleepAverage SleepQuality = "average"
	SleepBad     SleepQuality = "bad"
)

type DistractionType string

const (
	DistractionInstagram DistractionType = "instagram"
	DistractionMusic     DistractionType = "music"
)

type SessionKind string

const (
	SessionNormal SessionKind = "normal"
	SessionBonus  SessionKind = "bonus"
)

// SeasonGoals are the selectable season XP targets.
var SeasonGoals = []int{500, 600, 700, 750}

type Project struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	TimeGoalHours    int       `json:"time_goal_hours"`
	TotalTimeMinutes int       `json:"total_time_minutes"`
	CreatedAt        time.Time `json:"created_at"`
}

type FocusSession struct {
	Date             time.Time   `json:"date"`
	DurationMinutes  int         `json:"duration_minutes"`
	ScheduledMinutes int         `json:"scheduled_minutes,omitempty"`
	ProjectID        string      `json:"project_id,omitempty"`
	XPAwarded        int         `json:"xp_awarded"`
	Kind             SessionKind `json:"kind"`
}

// XPEntry is one row of the append-only XP ledger.
type XPEntry struct {
	Date         time.Time `json:"date"`
	Amount       int       `json:"amount"`
	Reason       string    `json:"reason"`
	RunningTotal int       `json:"running_total"`
}

// DayActions records the once-per-day activities for a single calendar day.
type DayActions struct {
	Sport        bool              `json:"sport,omitempty"`
	Sleep        SleepQuality      `json:"sleep,omitempty"`
	Distractions []DistractionType `json:"distractions,omitempty"`
}

type ReviewScores struct {
	Productivity int `json:"productivity"`
	Health       int `json:"health"`
	Creativity   int `json:"creativity"`
	Social       int `json:"social"`
	Satisfaction int `json:"satisfaction"`
}

// Sum returns the combined score out of 50.
func (s ReviewScores) Sum() int {
	return s.Productivity + s.Health + s.Creativity + s.Social + s.Satisfaction
}

type WeeklyReview struct {
	Date       time.Time    `json:"date"`
	Week       int          `json:"week"`
	Scores     ReviewScores `json:"scores"`
	TotalScore int          `json:"total_score"`
	Percentage float64      `json:"percentage"`
	Reflection string       `json:"reflection,omitempty"`
}

// SeasonRecord is the archived rollup of one completed season.
type SeasonRecord struct {
	Season  int    `json:"season"`
	TotalXP int    `json:"total_xp"`
	Rank    string `json:"rank"`
	Badge   string `json:"badge"`
}

// AchievementCache is a persisted snapshot of achievement unlock state. It is
// incidental: achievements are recomputed from state on every query and this
// field is never read back as a source of truth.
type AchievementCache struct {
	ID         string     `json:"id"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

type Settings struct {
	Theme              string `json:"theme"`
	SoundNotifications bool   `json:"sound_notifications"`
	ChartRangeDays     int    `json:"chart_range_days"`
}

// ProgressionState is the single persisted aggregate. It is created once with
// default values on first run, loaded through the validator and migration
// engine on every subsequent run, and replaced (except for settings,
// achievements, season history and weekly reviews) at season rollover.
type ProgressionState struct {
	Version         int                   `json:"version"`
	Started         bool                  `json:"started"`
	SeasonNumber    int                   `json:"season_number"`
	SeasonStartDate *time.Time            `json:"season_start_date,omitempty"`
	SeasonGoalXP    int                   `json:"season_goal_xp,omitempty"`
	SeasonHistory   []SeasonRecord        `json:"season_history"`
	TotalXP         int                   `json:"total_xp"`
	DailyXP         int                   `json:"daily_xp"`
	LastDailyReset  string                `json:"last_daily_reset"`
	Projects        []Project             `json:"projects"`
	FocusSessions   []FocusSession        `json:"focus_sessions"`
	DailyActions    map[string]DayActions `json:"daily_actions"`
	XPHistory       []XPEntry             `json:"xp_history"`
	WeeklyReviews   []WeeklyReview        `json:"weekly_reviews"`
	Achievements    []AchievementCache    `json:"achievements"`
	Settings        Settings              `json:"settings"`
}

// DefaultSettings returns the settings applied to a fresh state.
func DefaultSettings() Settings {
	return Settings{
		Theme:              "default",
		SoundNotifications: true,
		ChartRangeDays:     7,
	}
}

// DefaultState returns a fresh ProgressionState. The day string of now seeds
// last_daily_reset so the first reset check past midnight fires correctly.
func DefaultState(now time.Time) *ProgressionState {
	return &ProgressionState{
		Version:        CurrentVersion,
		SeasonNumber:   1,
		LastDailyReset: now.Format("2006-01-02"),
		SeasonHistory:  []SeasonRecord{},
		Projects:       []Project{},
		FocusSessions:  []FocusSession{},
		DailyActions:   map[string]DayActions{},
		XPHistory:      []XPEntry{},
		WeeklyReviews:  []WeeklyReview{},
		Achievements:   []AchievementCache{},
		Settings:       DefaultSettings(),
	}
}

// FindProject returns the project with the given id, or nil.
func (s *ProgressionState) FindProject(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// LastReview returns the most recent weekly review, or nil if none exist.
func (s *ProgressionState) LastReview() *WeeklyReview {
	if len(s.WeeklyReviews) == 0 {
		return nil
	}
	return &s.WeeklyReviews[len(s.WeeklyReviews)-1]
}

package rank

import (
	"time"

	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/stats"
)

type Tier string

const (
	TierBasic       Tier = "basic"
	TierMedium      Tier = "medium"
	TierPremium     Tier = "premium"
	TierPrestigious Tier = "prestigious"
)

// Achievement is one entry of the fixed catalog, evaluated against current
// state. Target of 0 means the achievement has no meaningful progress bar.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	XPReward    int
	Tier        Tier
	Unlocked    bool
	Progress    int
	Target      int
}

// Evaluate recomputes the full achievement catalog from state. The evaluator
// holds no memory: any persisted achievement state is an incidental cache,
// never consulted here. dailyGoal is the configured daily XP quota.
func Evaluate(s *models.ProgressionState, now time.Time, dailyGoal int) []Achievement {
	sessionCount := len(s.FocusSessions)
	xpStreak := stats.DailyXPStreak(s, now, dailyGoal)
	sportStreak := stats.SportStreak(s, now)
	blocksStreak := stats.BlocksStreak(s, now)
	maxDaily := stats.MaxDailyFocus(s)

	return []Achievement{
		{
			ID:          "first_session",
			Name:        "First Step",
			Description: "Complete your first focus session",
			Icon:        "🎯",
			XPReward:    10,
			Tier:        TierBasic,
			Unlocked:    sessionCount > 0,
			Progress:    min(sessionCount, 1),
			Target:      1,
		},
		{
			ID:          "daily_quota",
			Name:        "Daily Quota",
			Description: "Reach the daily XP goal in a single day",
			Icon:        "⚡",
			XPReward:    15,
			Tier:        TierBasic,
			Unlocked:    s.DailyXP >= dailyGoal,
			Progress:    s.DailyXP,
			Target:      dailyGoal,
		},
		{
			ID:          "focus_hunter",
			Name:        "Focus Hunter",
			Description: "Complete 10 focus sessions",
			Icon:        "🏹",
			XPReward:    25,
			Tier:        TierMedium,
			Unlocked:    sessionCount >= 10,
			Progress:    sessionCount,
			Target:      10,
		},
		{
			ID:          "weekly_warrior",
			Name:        "Weekly Warrior",
			Description: "Hit the daily XP goal 7 days in a row",
			Icon:        "⚔️",
			XPReward:    50,
			Tier:        TierMedium,
			Unlocked:    xpStreak >= 7,
			Progress:    xpStreak,
			Target:      7,
		},
		{
			ID:          "sport_master",
			Name:        "Sport Master",
			Description: "Log sport 7 days in a row",
			Icon:        "🏃",
			XPReward:    30,
			Tier:        TierMedium,
			Unlocked:    sportStreak >= 7,
			Progress:    sportStreak,
			Target:      7,
		},
		{
			ID:          "discipline_forge",
			Name:        "Discipline Forge",
			Description: "Complete both mandatory blocks 3 days in a row",
			Icon:        "🛡️",
			XPReward:    25,
			Tier:        TierMedium,
			Unlocked:    blocksStreak >= 3,
			Progress:    blocksStreak,
			Target:      3,
		},
		{
			ID:          "focus_master",
			Name:        "Focus Master",
			Description: "Complete 50 focus sessions",
			Icon:        "🧘",
			XPReward:    100,
			Tier:        TierPremium,
			Unlocked:    sessionCount >= 50,
			Progress:    sessionCount,
			Target:      50,
		},
		{
			ID:          "xp_collector",
			Name:        "XP Collector",
			Description: "Reach 1000 total XP",
			Icon:        "💠",
			XPReward:    150,
			Tier:        TierPremium,
			Unlocked:    s.TotalXP >= 1000,
			Progress:    s.TotalXP,
			Target:      1000,
		},
		{
			ID:          "marathoner",
			Name:        "Marathoner",
			Description: "Focus for 4 hours in a single day",
			Icon:        "🏅",
			XPReward:    200,
			Tier:        TierPremium,
			Unlocked:    maxDaily >= 240,
			Progress:    maxDaily,
			Target:      240,
		},
		{
			ID:          "rank_sentinel",
			Name:        "Accomplished Sentinel",
			Description: "Reach rank S",
			Icon:        "👑",
			XPReward:    50,
			Tier:        TierPremium,
			Unlocked:    s.TotalXP >= 600,
			Progress:    s.TotalXP,
			Target:      600,
		},
		{
			ID:          "living_legend",
			Name:        "Living Legend",
			Description: "Complete 100 focus sessions",
			Icon:        "🌠",
			XPReward:    300,
			Tier:        TierPrestigious,
			Unlocked:    sessionCount >= 100,
			Progress:    sessionCount,
			Target:      100,
		},
		{
			ID:          "season_champion",
			Name:        "Season Champion",
			Description: "Finish a season at rank SSS",
			Icon:        "🏆",
			XPReward:    500,
			Tier:        TierPrestigious,
			Unlocked:    endedSeasonAtSSS(s),
			Progress:    s.TotalXP,
		},
	}
}

// UnlockedCount returns how many achievements are currently unlocked.
func UnlockedCount(achievements []Achievement) int {
	count := 0
	for _, a := range achievements {
		if a.Unlocked {
			count++
		}
	}
	return count
}

func endedSeasonAtSSS(s *models.ProgressionState) bool {
	for _, record := range s.SeasonHistory {
		if record.Badge == "SSS" {
			return true
		}
	}
	return s.TotalXP >= 750
}

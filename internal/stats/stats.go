// Package stats holds the pure aggregate calculators over ProgressionState.
// Everything here is a function of state plus an explicit "now"; nothing
// mutates state or caches results, so callers may re-run these on every
// refresh (all are O(number of events)).
package stats

import (
	"math"
	"time"

	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/utils"
)

// XPByDay buckets ledger amounts by calendar day.
func XPByDay(history []models.XPEntry) map[string]int {
	byDay := make(map[string]int, len(history))
	for _, entry := range history {
		byDay[utils.DayString(entry.Date)] += entry.Amount
	}
	return byDay
}

// FocusMinutesByDay buckets focus-session minutes by calendar day.
func FocusMinutesByDay(sessions []models.FocusSession) map[string]int {
	byDay := make(map[string]int, len(sessions))
	for _, session := range sessions {
		byDay[utils.DayString(session.Date)] += session.DurationMinutes
	}
	return byDay
}

// DailyXPStreak counts consecutive days, walking backward from today, whose
// summed ledger amounts reach goal. Today itself counts once it is already at
// goal; the walk stops at the first day below it.
func DailyXPStreak(s *models.ProgressionState, now time.Time, goal int) int {
	byDay := XPByDay(s.XPHistory)

	streak := 0
	for byDay[utils.DaysAgo(now, streak)] >= goal {
		streak++
	}
	return streak
}

// SportStreak counts consecutive days backward from today with sport logged.
func SportStreak(s *models.ProgressionState, now time.Time) int {
	streak := 0
	for s.DailyActions[utils.DaysAgo(now, streak)].Sport {
		streak++
	}
	return streak
}

// BlocksStreak counts consecutive days backward from today on which focus
// time covered both mandatory blocks.
func BlocksStreak(s *models.ProgressionState, now time.Time) int {
	byDay := FocusMinutesByDay(s.FocusSessions)

	streak := 0
	for byDay[utils.DaysAgo(now, streak)] >= constants.BlocksStreakMinutes {
		streak++
	}
	return streak
}

// TodayFocusMinutes sums focus minutes logged on now's calendar day.
func TodayFocusMinutes(s *models.ProgressionState, now time.Time) int {
	today := utils.DayString(now)
	minutes := 0
	for _, session := range s.FocusSessions {
		if utils.DayString(session.Date) == today {
			minutes += session.DurationMinutes
		}
	}
	return minutes
}

// MandatorySessionsToday returns how many of the day's mandatory focus
// blocks are already covered, capped at the daily maximum. Reaching the cap
// gates the XP-doubling bonus.
func MandatorySessionsToday(s *models.ProgressionState, now time.Time) int {
	blocks := TodayFocusMinutes(s, now) / constants.MandatoryBlockMinutes
	if blocks > constants.MaxMandatoryBlocks {
		return constants.MaxMandatoryBlocks
	}
	return blocks
}

// MaxDailyFocus returns the highest single-day focus total across all
// recorded sessions, in minutes.
func MaxDailyFocus(s *models.ProgressionState) int {
	maxMinutes := 0
	for _, minutes := range FocusMinutesByDay(s.FocusSessions) {
		if minutes > maxMinutes {
			maxMinutes = minutes
		}
	}
	return maxMinutes
}

// IntensityRate averages the percentage of the last four weekly reviews,
// rounded to the nearest integer. No reviews means 0.
func IntensityRate(reviews []models.WeeklyReview) int {
	if len(reviews) == 0 {
		return 0
	}

	recent := reviews
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}

	sum := 0.0
	for _, review := range recent {
		sum += review.Percentage
	}
	return int(math.Round(sum / float64(len(recent))))
}

// FocusXP is the core earned-XP formula for timed focus sessions: one XP per
// full 18 minutes, doubled once the day's mandatory blocks are complete.
// mandatoryToday must be evaluated before the session being scored is
// appended to state.
func FocusXP(minutes, mandatoryToday int) int {
	base := minutes / constants.MinutesPerXP
	if mandatoryToday >= constants.MaxMandatoryBlocks {
		return base * 2
	}
	return base
}

// TotalFocusMinutes sums all recorded focus time for the current season.
func TotalFocusMinutes(s *models.ProgressionState) int {
	total := 0
	for _, session := range s.FocusSessions {
		total += session.DurationMinutes
	}
	return total
}

// AverageSessionMinutes returns the mean focus session length, or 0.
func AverageSessionMinutes(s *models.ProgressionState) int {
	if len(s.FocusSessions) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalFocusMinutes(s)) / float64(len(s.FocusSessions))))
}

// DayPoint is one day of chart data.
type DayPoint struct {
	Day      string
	XP       int
	Sessions int
	Minutes  int
}

// LastDays returns per-day XP and focus rollups for the n days ending today,
// oldest first. Consumed by chart renderers.
func LastDays(s *models.ProgressionState, now time.Time, n int) []DayPoint {
	xpByDay := XPByDay(s.XPHistory)
	minutesByDay := FocusMinutesByDay(s.FocusSessions)

	sessionsByDay := make(map[string]int, len(s.FocusSessions))
	for _, session := range s.FocusSessions {
		sessionsByDay[utils.DayString(session.Date)]++
	}

	points := make([]DayPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := utils.DaysAgo(now, i)
		points = append(points, DayPoint{
			Day:      day,
			XP:       xpByDay[day],
			Sessions: sessionsByDay[day],
			Minutes:  minutesByDay[day],
		})
	}
	return points
}

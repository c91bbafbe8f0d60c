package engine

import (
	"math"
	"time"

	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/models"
)

// CanReview reports whether a weekly review may be submitted: either no
// review exists yet, or the cooldown since the last one has fully elapsed.
func (e *Engine) CanReview() bool {
	last := e.state.LastReview()
	if last == nil {
		return true
	}
	return e.now().Sub(last.Date) >= constants.ReviewCooldownDays*24*time.Hour
}

// TimeUntilNextReview returns how long until the next review window opens,
// or zero when one is open now.
func (e *Engine) TimeUntilNextReview() time.Duration {
	last := e.state.LastReview()
	if last == nil {
		return 0
	}

	remaining := last.Date.Add(constants.ReviewCooldownDays * 24 * time.Hour).Sub(e.now())
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CurrentWeekNumber derives the 1-based week of the running season.
func (e *Engine) CurrentWeekNumber() int {
	start := e.now()
	if e.state.SeasonStartDate != nil {
		start = *e.state.SeasonStartDate
	}

	days := e.now().Sub(start).Hours() / 24
	week := int(math.Ceil(days / 7))
	if week < 1 {
		week = 1
	}
	return week
}

// SubmitWeeklyReview validates and appends a weekly self-assessment, then
// awards the review XP. The engine enforces eligibility itself rather than
// trusting the caller's form to be hidden.
func (e *Engine) SubmitWeeklyReview(scores models.ReviewScores, reflection string) (models.WeeklyReview, error) {
	e.CheckDailyReset()
	e.CheckSeasonRollover()

	if !e.CanReview() {
		return models.WeeklyReview{}, ErrReviewNotEligible
	}

	for _, score := range []int{scores.Productivity, scores.Health, scores.Creativity, scores.Social, scores.Satisfaction} {
		if score < 1 || score > constants.ReviewScoreMax {
			return models.WeeklyReview{}, ErrInvalidScore
		}
	}

	total := scores.Sum()
	review := models.WeeklyReview{
		Date:       e.now(),
		Week:       e.CurrentWeekNumber(),
		Scores:     scores,
		TotalScore: total,
		Percentage: float64(total) / float64(constants.ReviewScoreCount*constants.ReviewScoreMax) * 100,
		Reflection: reflection,
	}

	e.state.WeeklyReviews = append(e.state.WeeklyReviews, review)
	e.AddXP(constants.XPReview, "Weekly review")
	return review, nil
}

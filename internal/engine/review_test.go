package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/rpglife/rpglife/internal/models"
)

func validScores() models.ReviewScores {
	return models.ReviewScores{Productivity: 8, Health: 7, Creativity: 6, Social: 5, Satisfaction: 9}
}

func TestSubmitWeeklyReview(t *testing.T) {
	e, _ := newTestEngine(t)

	review, err := e.SubmitWeeklyReview(validScores(), "solid week")
	if err != nil {
		t.Fatal(err)
	}
	if review.TotalScore != 35 {
		t.Errorf("TotalScore = %d, want 35", review.TotalScore)
	}
	if review.Percentage != 70 {
		t.Errorf("Percentage = %.1f, want 70", review.Percentage)
	}
	if review.Week != 1 {
		t.Errorf("Week = %d, want 1", review.Week)
	}
	if review.Reflection != "solid week" {
		t.Errorf("Reflection = %q", review.Reflection)
	}
	if got := e.State().TotalXP; got != 5 {
		t.Errorf("TotalXP = %d, want 5 from review XP", got)
	}
}

func TestReviewCooldown(t *testing.T) {
	e, clock := newTestEngine(t)
	if _, err := e.SubmitWeeklyReview(validScores(), ""); err != nil {
		t.Fatal(err)
	}

	clock.Advance(6 * 24 * time.Hour)
	if e.CanReview() {
		t.Error("CanReview() = true on day 6")
	}
	if _, err := e.SubmitWeeklyReview(validScores(), ""); !errors.Is(err, ErrReviewNotEligible) {
		t.Errorf("err = %v, want ErrReviewNotEligible", err)
	}

	clock.Advance(24 * time.Hour)
	if !e.CanReview() {
		t.Error("CanReview() = false on day 7")
	}
	if _, err := e.SubmitWeeklyReview(validScores(), ""); err != nil {
		t.Errorf("review on day 7 err = %v", err)
	}
}

func TestTimeUntilNextReview(t *testing.T) {
	e, clock := newTestEngine(t)
	if got := e.TimeUntilNextReview(); got != 0 {
		t.Errorf("TimeUntilNextReview() with no reviews = %v, want 0", got)
	}

	if _, err := e.SubmitWeeklyReview(validScores(), ""); err != nil {
		t.Fatal(err)
	}
	clock.Advance(2 * 24 * time.Hour)

	if got := e.TimeUntilNextReview(); got != 5*24*time.Hour {
		t.Errorf("TimeUntilNextReview() = %v, want 120h", got)
	}
}

func TestSubmitWeeklyReviewValidatesScores(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ReviewScores)
	}{
		{"zero score", func(s *models.ReviewScores) { s.Health = 0 }},
		{"negative score", func(s *models.ReviewScores) { s.Social = -2 }},
		{"above max", func(s *models.ReviewScores) { s.Productivity = 11 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEngine(t)
			scores := validScores()
			tt.mutate(&scores)

			if _, err := e.SubmitWeeklyReview(scores, ""); !errors.Is(err, ErrInvalidScore) {
				t.Errorf("err = %v, want ErrInvalidScore", err)
			}
			if len(e.State().WeeklyReviews) != 0 {
				t.Error("invalid review was recorded")
			}
		})
	}
}

func TestCurrentWeekNumber(t *testing.T) {
	e, clock := newTestEngine(t)
	if err := e.StartSeason(500); err != nil {
		t.Fatal(err)
	}

	if got := e.CurrentWeekNumber(); got != 1 {
		t.Errorf("week at season start = %d, want 1", got)
	}

	clock.Advance(8 * 24 * time.Hour)
	if got := e.CurrentWeekNumber(); got != 2 {
		t.Errorf("week on day 8 = %d, want 2", got)
	}

	clock.Advance(20 * 24 * time.Hour)
	if got := e.CurrentWeekNumber(); got != 4 {
		t.Errorf("week on day 28 = %d, want 4", got)
	}
}

package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/rank"
	"github.com/rpglife/rpglife/internal/stats"
)

type ReviewCmd struct {
	Submit ReviewSubmitCmd `cmd:"" help:"Submit this week's self-assessment." default:"1"`
	Status ReviewStatusCmd `cmd:"" help:"Show review eligibility and intensity rate."`
	List   ReviewListCmd   `cmd:"" help:"Show past weekly reviews."`
}

type ReviewSubmitCmd struct {
	Productivity int    `help:"Productivity score 1-10." default:"0"`
	Health       int    `help:"Health score 1-10." default:"0"`
	Creativity   int    `help:"Creativity score 1-10." default:"0"`
	Social       int    `help:"Social score 1-10." default:"0"`
	Satisfaction int    `help:"Satisfaction score 1-10." default:"0"`
	Reflection   string `help:"Free-form weekly reflection."`
}

func (c *ReviewSubmitCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		if !e.CanReview() {
			fmt.Printf("Next review available in %s.\n", formatCountdown(e.TimeUntilNextReview()))
			return nil
		}

		if !c.scoresProvided() {
			if err := c.promptScores(); err != nil {
				return err
			}
		}

		scores := models.ReviewScores{
			Productivity: c.Productivity,
			Health:       c.Health,
			Creativity:   c.Creativity,
			Social:       c.Social,
			Satisfaction: c.Satisfaction,
		}

		review, err := e.SubmitWeeklyReview(scores, c.Reflection)
		if errors.Is(err, engine.ErrInvalidScore) {
			return fmt.Errorf("%w (got %d/%d/%d/%d/%d)", err,
				scores.Productivity, scores.Health, scores.Creativity, scores.Social, scores.Satisfaction)
		}
		if err != nil {
			return err
		}

		fmt.Printf("✨ Week %d review saved: %d/50 (%.0f%%). +5 XP\n",
			review.Week, review.TotalScore, review.Percentage)
		return nil
	})
}

// scoresProvided reports whether any score flag was set on the command line.
// Only a fully blank submission opens the interactive form; a partial set of
// flags falls through to engine validation instead of silently re-asking.
func (c *ReviewSubmitCmd) scoresProvided() bool {
	return c.Productivity != 0 || c.Health != 0 || c.Creativity != 0 ||
		c.Social != 0 || c.Satisfaction != 0
}

func (c *ReviewSubmitCmd) promptScores() error {
	fields := []struct {
		title string
		value *int
	}{
		{"Productivity", &c.Productivity},
		{"Health", &c.Health},
		{"Creativity", &c.Creativity},
		{"Social", &c.Social},
		{"Satisfaction", &c.Satisfaction},
	}

	inputs := make([]huh.Field, 0, len(fields)+1)
	raw := make([]string, len(fields))
	for i, f := range fields {
		inputs = append(inputs, huh.NewInput().
			Title(fmt.Sprintf("%s (1-10)", f.title)).
			Validate(validateScore).
			Value(&raw[i]))
	}
	inputs = append(inputs, huh.NewText().
		Title("Weekly reflection (optional)").
		Value(&c.Reflection))

	if err := huh.NewForm(huh.NewGroup(inputs...)).Run(); err != nil {
		return err
	}

	for i, f := range fields {
		score, err := strconv.Atoi(raw[i])
		if err != nil {
			return fmt.Errorf("invalid %s score: %q", f.title, raw[i])
		}
		*f.value = score
	}
	return nil
}

func validateScore(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 10 {
		return fmt.Errorf("enter a number between 1 and 10")
	}
	return nil
}

type ReviewStatusCmd struct{}

func (c *ReviewStatusCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		rate := stats.IntensityRate(e.State().WeeklyReviews)
		fmt.Printf("Intensity rate: %d%% — %s\n", rate, rank.IntensityLabel(rate))

		if e.CanReview() {
			fmt.Println("Weekly review is available now.")
		} else {
			fmt.Printf("Next review in %s.\n", formatCountdown(e.TimeUntilNextReview()))
		}
		return nil
	})
}

type ReviewListCmd struct {
	Last int `help:"How many reviews to show." default:"8"`
}

func (c *ReviewListCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		reviews := e.State().WeeklyReviews
		if len(reviews) == 0 {
			fmt.Println("No reviews yet.")
			return nil
		}

		start := len(reviews) - c.Last
		if start < 0 {
			start = 0
		}
		for i := len(reviews) - 1; i >= start; i-- {
			r := reviews[i]
			fmt.Printf("Week %d  %s  %d/50 (%.0f%%)\n",
				r.Week, r.Date.Format("2006-01-02"), r.TotalScore, r.Percentage)
		}
		return nil
	})
}

func formatCountdown(d time.Duration) string {
	if d <= 0 {
		return "now"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
}

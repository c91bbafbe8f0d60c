package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/models"
	"github.com/rpglife/rpglife/internal/rank"
)

type SeasonCmd struct {
	Start   SeasonStartCmd   `cmd:"" help:"Start the current season with an XP goal."`
	Status  SeasonStatusCmd  `cmd:"" help:"Show the season countdown." default:"1"`
	History SeasonHistoryCmd `cmd:"" help:"Show archived seasons."`
}

type SeasonStartCmd struct {
	Goal int `arg:"" optional:"" help:"Season XP goal (500, 600, 700 or 750)."`
}

func (c *SeasonStartCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		if c.Goal == 0 {
			options := make([]huh.Option[int], 0, len(models.SeasonGoals))
			for _, g := range models.SeasonGoals {
				r := rank.Current(g)
				options = append(options, huh.NewOption(fmt.Sprintf("%d XP (%s)", g, r.Badge), g))
			}
			err := huh.NewForm(huh.NewGroup(
				huh.NewSelect[int]().
					Title("Season XP goal").
					Options(options...).
					Value(&c.Goal),
			)).Run()
			if err != nil {
				return err
			}
		}

		err := e.StartSeason(c.Goal)
		switch {
		case errors.Is(err, engine.ErrSeasonAlreadyStarted):
			fmt.Printf("Season %d is already underway.\n", e.State().SeasonNumber)
			return nil
		case errors.Is(err, engine.ErrInvalidSeasonGoal):
			return fmt.Errorf("%w: valid goals are %s", err, joinGoals())
		case err != nil:
			return err
		}

		fmt.Printf("⚔️  Season %d started. Goal: %d XP in %d days.\n",
			e.State().SeasonNumber, c.Goal, e.Config().Season.LengthDays)
		return nil
	})
}

func joinGoals() string {
	parts := make([]string, len(models.SeasonGoals))
	for i, g := range models.SeasonGoals {
		parts[i] = fmt.Sprintf("%d", g)
	}
	return strings.Join(parts, ", ")
}

type SeasonStatusCmd struct{}

func (c *SeasonStatusCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		status := e.SeasonStatus()
		if !status.Started {
			fmt.Printf("Season %d has not been started. Run `rpglife season start`.\n", status.Season)
			return nil
		}

		s := e.State()
		fmt.Println(titleStyle.Render(fmt.Sprintf("Season %d", status.Season)))
		fmt.Printf("%s %d / %d XP\n", labelStyle.Render("Progress"), s.TotalXP, status.GoalXP)
		fmt.Printf("%s day %d of %d, %d remaining\n",
			labelStyle.Render("Countdown"), status.DaysElapsed+1, e.Config().Season.LengthDays, status.DaysRemaining)
		fmt.Printf("%s %s\n", labelStyle.Render("Ends"), status.EndsAt.Format("2006-01-02"))

		if s.TotalXP >= status.GoalXP {
			fmt.Println(bonusStyle.Render("Goal reached! Everything from here is bonus."))
		}
		return nil
	})
}

type SeasonHistoryCmd struct{}

func (c *SeasonHistoryCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		history := e.State().SeasonHistory
		if len(history) == 0 {
			fmt.Println("No completed seasons yet.")
			return nil
		}
		for _, rec := range history {
			fmt.Printf("Season %d  %s (%s)  %d XP\n", rec.Season, rec.Rank, rec.Badge, rec.TotalXP)
		}
		return nil
	})
}

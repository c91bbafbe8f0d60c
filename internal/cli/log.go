package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/models"
)

type LogCmd struct {
	Sport       LogSportCmd       `cmd:"" help:"Log today's sport activity."`
	Sleep       LogSleepCmd       `cmd:"" help:"Log last night's sleep quality."`
	Distraction LogDistractionCmd `cmd:"" help:"Declare a distraction (costs XP)."`
}

type LogSportCmd struct{}

func (c *LogSportCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		xp, err := e.LogSport()
		if errors.Is(err, engine.ErrAlreadyLogged) {
			fmt.Println("Sport already logged today.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("💪 +%d XP for sport!\n", xp)
		return nil
	})
}

type LogSleepCmd struct {
	Quality string `arg:"" optional:"" enum:",good,average,bad" help:"Sleep quality: good (>7h, asleep before 22:00), average (>7h, before midnight), bad."`
}

func (c *LogSleepCmd) Run(ctx *Context) error {
	if c.Quality == "" {
		if err := c.promptQuality(); err != nil {
			return err
		}
	}

	return ctx.WithEngine(func(e *engine.Engine) error {
		xp, err := e.LogSleep(models.SleepQuality(c.Quality))
		if errors.Is(err, engine.ErrAlreadyLogged) {
			fmt.Println("Sleep already logged today.")
			return nil
		}
		if err != nil {
			return err
		}

		if xp > 0 {
			fmt.Printf("🌙 +%d XP for %s sleep\n", xp, c.Quality)
		} else {
			fmt.Println("😵 No XP — try to sleep better tomorrow")
		}
		return nil
	})
}

func (c *LogSleepCmd) promptQuality() error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How was last night's sleep?").
				Options(
					huh.NewOption("Good (>7h, asleep before 22:00) — +2 XP", "good"),
					huh.NewOption("Average (>7h, before midnight) — +1 XP", "average"),
					huh.NewOption("Bad (<7h or after midnight) — 0 XP", "bad"),
				).
				Value(&c.Quality),
		),
	).Run()
}

type LogDistractionCmd struct {
	Type string `arg:"" enum:"instagram,music" help:"Distraction type: instagram (-3 XP) or music (-5 XP)."`
}

func (c *LogDistractionCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		delta, err := e.LogDistraction(models.DistractionType(c.Type))
		if err != nil {
			return err
		}

		fmt.Println(penaltyStyle.Render(fmt.Sprintf("%d XP for %s", delta, c.Type)))
		return nil
	})
}

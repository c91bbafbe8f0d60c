package cli

import (
	"fmt"
	"time"

	"github.com/rpglife/rpglife/internal/calendar"
	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/scheduler"
	"github.com/rpglife/rpglife/internal/tui"
	"github.com/rpglife/rpglife/internal/utils"
)

type FocusCmd struct {
	Start    FocusStartCmd    `cmd:"" help:"Run an interactive focus countdown." default:"1"`
	Complete FocusCompleteCmd `cmd:"" help:"Record a focus session completed outside the timer."`
	Cancel   FocusCancelCmd   `cmd:"" help:"Record a focus session aborted after some minutes."`
}

type FocusStartCmd struct {
	Minutes int    `help:"Planned session length in minutes." default:"25"`
	Project string `help:"Project id to credit the session to."`
}

func (c *FocusStartCmd) Run(ctx *Context) error {
	if c.Minutes < 15 || c.Minutes > 120 {
		return fmt.Errorf("session length must be between 15 and 120 minutes (got %d)", c.Minutes)
	}

	projectName := ""
	if c.Project != "" {
		state, err := ctx.Store.Load()
		if err != nil {
			return err
		}
		project := state.FindProject(c.Project)
		if project == nil {
			return fmt.Errorf("project not found: %s", c.Project)
		}
		projectName = project.Name
	}

	// While the countdown runs, keep the daily-reset and autosave timers
	// armed. Both are idempotent, so firing them redundantly is safe.
	sched := scheduler.New(ctx.Clock)
	defer sched.Stop()
	sched.ScheduleAt("daily-reset", utils.NextMidnight(sched.Now()), func() {
		_ = ctx.WithEngine(func(e *engine.Engine) error { return nil })
	})
	sched.Every("autosave", time.Duration(ctx.Config.Autosave.IntervalSeconds)*time.Second, func() {
		_ = ctx.WithEngine(func(e *engine.Engine) error { return nil })
	})

	outcome, err := tui.RunFocusSession(c.Minutes, projectName)
	if err != nil {
		return err
	}
	sched.Stop()

	if outcome.Completed {
		return recordCompleted(ctx, c.Minutes, c.Minutes, c.Project)
	}
	return recordCancelled(ctx, outcome.ElapsedMinutes, c.Project)
}

type FocusCompleteCmd struct {
	Minutes int    `arg:"" help:"Session length in minutes."`
	Project string `help:"Project id to credit the session to."`
}

func (c *FocusCompleteCmd) Run(ctx *Context) error {
	return recordCompleted(ctx, c.Minutes, c.Minutes, c.Project)
}

type FocusCancelCmd struct {
	Minutes int    `arg:"" help:"Minutes elapsed before the session was aborted."`
	Project string `help:"Project id to credit the session to."`
}

func (c *FocusCancelCmd) Run(ctx *Context) error {
	return recordCancelled(ctx, c.Minutes, c.Project)
}

func recordCompleted(ctx *Context, minutes, scheduled int, projectID string) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		result, err := e.CompleteFocusSession(minutes, scheduled, projectID)
		if err != nil {
			return err
		}

		announceSession(ctx, e, result, "Session complete!")
		return nil
	})
}

func recordCancelled(ctx *Context, elapsed int, projectID string) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		result, err := e.CancelFocusSession(elapsed, projectID)
		if err != nil {
			return err
		}

		if result.Discarded {
			fmt.Printf("Session discarded (under %d minutes, no XP).\n", e.Config().Focus.CancelMinMinutes)
			return nil
		}

		announceSession(ctx, e, result, fmt.Sprintf("Session cancelled after %dmin.", elapsed))
		return nil
	})
}

// announceSession prints the outcome and hands the committed session to the
// external calendar sink. The sink runs after core state is mutated and its
// failures never surface as command errors.
func announceSession(ctx *Context, e *engine.Engine, result engine.FocusResult, headline string) {
	if result.Bonus {
		fmt.Println(bonusStyle.Render(fmt.Sprintf("🎯 %s +%d XP (bonus ×2)", headline, result.XPAwarded)))
	} else {
		fmt.Printf("🎯 %s +%d XP\n", headline, result.XPAwarded)
	}

	calendar.NewSink(ctx.ConfigDir).TryRecord(e.SessionEventFor(result))
}

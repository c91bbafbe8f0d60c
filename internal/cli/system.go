package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/rpglife/rpglife/internal/backup"
	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/models"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.Path())
	return nil
}

type ResetCmd struct {
	Force bool `help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all progression?").
				Description("XP, streaks, seasons, reviews and achievements are wiped. A backup is taken first.").
				Value(&confirmed),
		)).Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	return ctx.WithEngine(func(e *engine.Engine) error {
		e.Reset()
		fmt.Println("Progression reset. A new season 1 awaits.")
		return nil
	})
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	state, err := ctx.Store.Load()
	if err != nil {
		fmt.Printf("❌ State loads: FAIL\n   %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ State loads: OK\n")

		if state.Version == models.CurrentVersion {
			fmt.Printf("✓ Document version: OK (v%d)\n", state.Version)
		} else {
			fmt.Printf("❌ Document version: FAIL (v%d, want v%d)\n", state.Version, models.CurrentVersion)
			hasError = true
		}

		if state.LastDailyReset == "" {
			fmt.Printf("❌ Daily reset marker: FAIL (empty)\n")
			hasError = true
		} else {
			fmt.Printf("✓ Daily reset marker: OK (%s)\n", state.LastDailyReset)
		}
	}

	mgr := backup.NewManager(ctx.Store.Path())
	backups, err := mgr.ListBackups()
	switch {
	case err != nil:
		fmt.Printf("⚠ Backups: WARNING (%v)\n", err)
	case len(backups) == 0:
		fmt.Printf("⚠ Backups: WARNING (none yet, run `%s backup create`)\n", constants.AppName)
	default:
		fmt.Printf("✓ Backups: OK (%d, newest %s)\n",
			len(backups), backups[0].Timestamp.Format("2006-01-02 15:04"))
	}

	if err := checkClock(ctx); err != nil {
		fmt.Printf("❌ Clock: FAIL\n   %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

// checkClock catches a wildly wrong system clock, which would corrupt streak
// and season bookkeeping.
func checkClock(ctx *Context) error {
	now := ctx.Clock.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time %s is implausible", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset < -14*3600 || offset > 14*3600 {
		return fmt.Errorf("timezone offset %d seconds is out of range", offset)
	}
	return nil
}

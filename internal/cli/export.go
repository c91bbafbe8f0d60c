package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/rpglife/rpglife/internal/constants"
	"github.com/rpglife/rpglife/internal/engine"
	"github.com/rpglife/rpglife/internal/utils"
)

type ExportCmd struct {
	Out string `help:"Destination file. Defaults to rpglife-export-<date>.json in the working directory." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		data, err := e.ExportDocument()
		if err != nil {
			return err
		}

		out := c.Out
		if out == "" {
			out = fmt.Sprintf("%s-export-%s.json", constants.AppName, utils.DayString(e.Now()))
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		fmt.Printf("Exported state to %s\n", out)
		return nil
	})
}

type ImportCmd struct {
	File  string `arg:"" help:"Previously exported JSON document." type:"existingfile"`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	if !c.Force {
		var confirmed bool
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Import %s over the current state?", filepath.Base(c.File))).
				Description("Imported fields replace current ones. A backup is taken first.").
				Value(&confirmed),
		)).Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	raw, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	return ctx.WithEngine(func(e *engine.Engine) error {
		if err := e.Import(raw); err != nil {
			return err
		}
		fmt.Printf("Imported %s. Total XP is now %d.\n", filepath.Base(c.File), e.State().TotalXP)
		return nil
	})
}

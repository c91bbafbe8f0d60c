package cli

import (
	"fmt"

	"github.com/rpglife/rpglife/internal/engine"
)

type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"" help:"Create a new project."`
	Edit   ProjectEditCmd   `cmd:"" help:"Edit an existing project."`
	Delete ProjectDeleteCmd `cmd:"" help:"Delete a project."`
	List   ProjectListCmd   `cmd:"" help:"List projects." default:"1"`
}

type ProjectAddCmd struct {
	Name        string `arg:"" help:"Project name."`
	Description string `help:"Short description."`
	Goal        int    `help:"Time goal in hours."`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		project, err := e.CreateProject(c.Name, c.Description, c.Goal)
		if err != nil {
			return err
		}

		fmt.Printf("Created project %q (%s)\n", project.Name, project.ID)
		return nil
	})
}

type ProjectEditCmd struct {
	ID          string `arg:"" help:"Project id."`
	Name        string `help:"New name."`
	Description string `help:"New description."`
	Goal        int    `help:"New time goal in hours."`
}

func (c *ProjectEditCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		if err := e.EditProject(c.ID, c.Name, c.Description, c.Goal); err != nil {
			return err
		}

		fmt.Println("Project updated.")
		return nil
	})
}

type ProjectDeleteCmd struct {
	ID string `arg:"" help:"Project id."`
}

func (c *ProjectDeleteCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		if err := e.DeleteProject(c.ID); err != nil {
			return err
		}

		fmt.Println("Project deleted. Recorded sessions keep their history.")
		return nil
	})
}

type ProjectListCmd struct{}

func (c *ProjectListCmd) Run(ctx *Context) error {
	return ctx.WithEngine(func(e *engine.Engine) error {
		projects := e.State().Projects
		if len(projects) == 0 {
			fmt.Println("No projects yet. Create one with 'rpglife project add'.")
			return nil
		}

		for _, p := range projects {
			line := fmt.Sprintf("%s  %s", valueStyle.Render(p.Name), labelStyle.Render(p.ID))
			fmt.Println(line)
			hours := float64(p.TotalTimeMinutes) / 60
			if p.TimeGoalHours > 0 {
				fmt.Printf("  %.1fh / %dh", hours, p.TimeGoalHours)
			} else {
				fmt.Printf("  %.1fh logged", hours)
			}
			if p.Description != "" {
				fmt.Printf("  — %s", p.Description)
			}
			fmt.Println()
		}
		return nil
	})
}

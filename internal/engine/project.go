package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rpglife/rpglife/internal/models"
)

// CreateProject adds a new project with a fresh id.
func (e *Engine) CreateProject(name, description string, timeGoalHours int) (models.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Project{}, fmt.Errorf("project name must not be empty")
	}

	project := models.Project{
		ID:            uuid.New().String(),
		Name:          name,
		Description:   description,
		TimeGoalHours: timeGoalHours,
		CreatedAt:     e.now(),
	}
	e.state.Projects = append(e.state.Projects, project)
	return project, nil
}

// EditProject updates an existing project's mutable fields. Accumulated time
// is never edited.
func (e *Engine) EditProject(id, name, description string, timeGoalHours int) error {
	project := e.state.FindProject(id)
	if project == nil {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	if name = strings.TrimSpace(name); name != "" {
		project.Name = name
	}
	if description != "" {
		project.Description = description
	}
	if timeGoalHours > 0 {
		project.TimeGoalHours = timeGoalHours
	}
	return nil
}

// DeleteProject removes a project. Session records keep their project id;
// it simply stops resolving to a name.
func (e *Engine) DeleteProject(id string) error {
	for i, project := range e.state.Projects {
		if project.ID == id {
			e.state.Projects = append(e.state.Projects[:i], e.state.Projects[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}

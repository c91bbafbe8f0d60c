package engine

import (
	"errors"
	"testing"
)

func TestCreateProject(t *testing.T) {
	e, _ := newTestEngine(t)

	project, err := e.CreateProject("  thesis  ", "write the thing", 100)
	if err != nil {
		t.Fatal(err)
	}
	if project.Name != "thesis" {
		t.Errorf("Name = %q, want trimmed", project.Name)
	}
	if project.ID == "" {
		t.Error("project has no id")
	}
	if e.State().FindProject(project.ID) == nil {
		t.Error("project not findable after create")
	}
}

func TestCreateProjectRejectsEmptyName(t *testing.T) {
	e, _ := newTestEngine(t)
	if _, err := e.CreateProject("   ", "", 0); err == nil {
		t.Error("blank name accepted")
	}
}

func TestEditProject(t *testing.T) {
	e, _ := newTestEngine(t)
	project, err := e.CreateProject("thesis", "old", 100)
	if err != nil {
		t.Fatal(err)
	}

	if err := e.EditProject(project.ID, "dissertation", "", 120); err != nil {
		t.Fatal(err)
	}

	got := e.State().FindProject(project.ID)
	if got.Name != "dissertation" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Description != "old" {
		t.Errorf("empty description overwrote existing one")
	}
	if got.TimeGoalHours != 120 {
		t.Errorf("TimeGoalHours = %d, want 120", got.TimeGoalHours)
	}
}

func TestDeleteProject(t *testing.T) {
	e, _ := newTestEngine(t)
	project, err := e.CreateProject("thesis", "", 0)
	if err != nil {
		t.Fatal(err)
	}

	if err := e.DeleteProject(project.ID); err != nil {
		t.Fatal(err)
	}
	if e.State().FindProject(project.ID) != nil {
		t.Error("project still findable after delete")
	}
	if err := e.DeleteProject(project.ID); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("second delete err = %v, want ErrProjectNotFound", err)
	}
}

// Package tui hosts the interactive focus countdown. It is a thin consumer:
// it measures elapsed time and reports back; all XP and session bookkeeping
// happens in the engine after the program exits.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 2)

	projectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 2)
)

// FocusOutcome reports how a countdown ended.
type FocusOutcome struct {
	ElapsedMinutes int
	Completed      bool
}

type tickMsg time.Time

type focusModel struct {
	planned     time.Duration
	elapsed     time.Duration
	projectName string
	progress    progress.Model
	completed   bool
	cancelled   bool
}

func newFocusModel(plannedMinutes int, projectName string) focusModel {
	return focusModel{
		planned:     time.Duration(plannedMinutes) * time.Minute,
		projectName: projectName,
		progress:    progress.New(progress.WithDefaultGradient()),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m focusModel) Init() tea.Cmd {
	return tick()
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}

	case tickMsg:
		m.elapsed += time.Second
		if m.elapsed >= m.planned {
			m.completed = true
			return m, tea.Quit
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
	}

	return m, nil
}

func (m focusModel) View() string {
	remaining := m.planned - m.elapsed
	if remaining < 0 {
		remaining = 0
	}

	view := timerStyle.Render(fmt.Sprintf("🎯 Focus — %02d:%02d remaining",
		int(remaining.Minutes()), int(remaining.Seconds())%60)) + "\n"

	if m.projectName != "" {
		view += projectStyle.Render("Project: "+m.projectName) + "\n"
	}

	view += "  " + m.progress.ViewAs(float64(m.elapsed)/float64(m.planned)) + "\n"
	view += helpStyle.Render("q/esc to cancel") + "\n"
	return view
}

// RunFocusSession blocks until the countdown completes or the user cancels,
// and returns the outcome. Elapsed time is rounded down to whole minutes, so
// the XP rule sees the same units the engine records.
func RunFocusSession(plannedMinutes int, projectName string) (FocusOutcome, error) {
	program := tea.NewProgram(newFocusModel(plannedMinutes, projectName))
	final, err := program.Run()
	if err != nil {
		return FocusOutcome{}, fmt.Errorf("focus timer failed: %w", err)
	}

	m := final.(focusModel)
	return FocusOutcome{
		ElapsedMinutes: int(m.elapsed.Minutes()),
		Completed:      m.completed,
	}, nil
}

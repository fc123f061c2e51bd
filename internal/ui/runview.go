package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunDoneMsg carries the rendered outcome of a background task into
// the run view.
type RunDoneMsg struct {
	Output string
	Err    error
}

// RunModel shows a spinner while a task executes, then quits. The
// caller reads Output/Err back from the final model after Run returns;
// the view itself never computes anything.
type RunModel struct {
	Title  string
	Output string
	Err    error
	Done   bool

	spinner spinner.Model
	task    func() RunDoneMsg
}

// NewRunModel wraps task for execution under a spinner. The task runs
// once, synchronously, inside the program's command loop.
func NewRunModel(title string, task func() RunDoneMsg) RunModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return RunModel{
		Title:   title,
		spinner: s,
		task:    task,
	}
}

func (m RunModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return m.task() })
}

func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RunDoneMsg:
		m.Output = msg.Output
		m.Err = msg.Err
		m.Done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m RunModel) View() string {
	if m.Done {
		return ""
	}
	return "\n  " + m.spinner.View() + " " + spinnerTextStyle.Render(m.Title) + "\n"
}

// Package tui implements the interactive task browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talia-cli/talia/internal/domain"
	"github.com/talia-cli/talia/internal/repo"
)

// Model is the bubbletea model for the task browser. Transitions are applied
// to the shared repository and saved immediately.
type Model struct {
	repo    *repo.Repo
	clock   domain.Clock
	keys    KeyMap
	styles  Styles
	help    help.Model
	message string
	failed  bool
	cursor  int
	width   int
}

// New creates a browser over the given repository.
func New(r *repo.Repo, clock domain.Clock) Model {
	return Model{
		repo:   r,
		clock:  clock,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.repo.All())-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, m.keys.Complete):
			return m.applyTransition(func(t *domain.Task) { t.Complete(m.clock.Now()) }, "Completed"), nil
		case key.Matches(msg, m.keys.Archive):
			return m.applyTransition(func(t *domain.Task) { t.Archive() }, "Archived"), nil
		case key.Matches(msg, m.keys.Todo):
			return m.applyTransition(func(t *domain.Task) { t.MoveToTodo() }, "Moved to To Do"), nil
		case key.Matches(msg, m.keys.Review):
			return m.applyTransition(func(t *domain.Task) { t.MoveToReview() }, "Moved to Review"), nil
		}
	}
	return m, nil
}

// applyTransition mutates the task under the cursor and saves the
// repository. A failed save is surfaced in the message line.
func (m Model) applyTransition(fn func(*domain.Task), verb string) Model {
	tasks := m.repo.All()
	if len(tasks) == 0 || m.cursor >= len(tasks) {
		return m
	}

	task := tasks[m.cursor]
	fn(task)
	if err := m.repo.Save(); err != nil {
		m.message = fmt.Sprintf("save failed: %v", err)
		m.failed = true
		return m
	}

	m.message = verb + ": " + task.Title
	m.failed = false
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("talia — tasks"))
	b.WriteString("\n\n")

	tasks := m.repo.All()
	if len(tasks) == 0 {
		b.WriteString(m.styles.Status.Render("No tasks yet. Use 'talia add' to capture one."))
		b.WriteString("\n")
	}

	for i, t := range tasks {
		cursor := "  "
		rowStyle := m.styles.Row
		if i == m.cursor {
			cursor = "> "
			rowStyle = m.styles.RowFocus
		}

		status := lipgloss.NewStyle().Foreground(statusColor(t.Status)).Render(t.Status.Label())
		b.WriteString(rowStyle.Render(fmt.Sprintf("%s#%-3d %s", cursor, t.ID, t.Title)))
		b.WriteString("  ")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.message != "" {
		style := m.styles.Message
		if m.failed {
			style = m.styles.Err
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

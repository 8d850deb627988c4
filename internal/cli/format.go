package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/talia-cli/talia/internal/domain"
)

// Output formats for list and show.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// Styles for user-facing messages.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894")) // Green
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDCB6E")) // Yellow
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031")) // Red
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72")) // Gray
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// statusStyle returns the rendering style for a status label.
func statusStyle(s domain.Status) lipgloss.Style {
	switch s {
	case domain.StatusCompleted:
		return successStyle
	case domain.StatusArchived:
		return mutedStyle
	default:
		return warnStyle
	}
}

// taskView is the task shape used for structured (json/yaml) output.
type taskView struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Status    string `json:"status" yaml:"status"`
	Created   string `json:"created_at" yaml:"created_at"`
	Completed string `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
}

func newTaskView(t *domain.Task) taskView {
	v := taskView{
		ID:      t.ID,
		Title:   t.Title,
		Status:  string(t.Status),
		Created: t.Created.Format("2006-01-02T15:04:05"),
	}
	if t.WasCompleted() {
		v.Completed = t.Completed.Format("2006-01-02T15:04:05")
	}
	return v
}

// printTaskTable prints tasks in a column-aligned table. The status column
// is last so its color codes cannot disturb tab alignment.
func printTaskTable(w io.Writer, tasks []*domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tCREATED\tSTATUS")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			t.ID,
			t.Title,
			t.Created.Format("2006-01-02 15:04"),
			statusStyle(t.Status).Render(t.Status.Label()),
		)
	}
}

// printTasks renders tasks in the requested output format.
func printTasks(w io.Writer, tasks []*domain.Task, format string) error {
	switch format {
	case formatTable, "":
		printTaskTable(w, tasks)
		return nil
	case formatJSON:
		views := make([]taskView, 0, len(tasks))
		for _, t := range tasks {
			views = append(views, newTaskView(t))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case formatYAML:
		views := make([]taskView, 0, len(tasks))
		for _, t := range tasks {
			views = append(views, newTaskView(t))
		}
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(views)
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", format)
	}
}

// printTask renders a single task in the requested output format.
func printTask(w io.Writer, t *domain.Task, format string) error {
	switch format {
	case formatTable, "":
		_, _ = fmt.Fprintf(w, "%s #%d\n", boldStyle.Render("Task"), t.ID)
		_, _ = fmt.Fprintf(w, "  Title:   %s\n", t.Title)
		_, _ = fmt.Fprintf(w, "  Status:  %s\n", statusStyle(t.Status).Render(t.Status.Label()))
		_, _ = fmt.Fprintf(w, "  Created: %s\n", t.Created.Format("2006-01-02 15:04"))
		if t.WasCompleted() {
			_, _ = fmt.Fprintf(w, "  Done:    %s\n", t.Completed.Format("2006-01-02 15:04"))
		}
		return nil
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newTaskView(t))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(newTaskView(t))
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", format)
	}
}

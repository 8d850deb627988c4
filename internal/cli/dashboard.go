package cli

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/talia-cli/talia/internal/app"
	"github.com/talia-cli/talia/internal/domain"
)

// recentTaskCount is how many tasks the dashboard previews.
const recentTaskCount = 5

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#6C5CE7")).
	Padding(0, 1)

// newDashboardCommand creates the dashboard command.
func newDashboardCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show your task dashboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			tasks := c.Repo.All()
			if len(tasks) == 0 {
				c.Logger.Info("no tasks found for dashboard")
				_, _ = fmt.Fprintln(out, warnStyle.Render("📝 No tasks found"))
				return nil
			}

			total := len(tasks)
			completed := 0
			for _, t := range tasks {
				if t.Status == domain.StatusCompleted {
					completed++
				}
			}
			pending := total - completed

			stats := fmt.Sprintf("📝 Total Tasks: %d\n✅ Completed:   %d\n⏳ Pending:     %d",
				total, completed, pending)

			_, _ = fmt.Fprintln(out, boldStyle.Render("\n📊 Task Dashboard"))
			_, _ = fmt.Fprintln(out, panelStyle.Render(stats))

			// Most recent tasks first
			recent := slices.Clone(tasks)
			slices.SortFunc(recent, func(a, b *domain.Task) int {
				return b.Created.Compare(a.Created)
			})
			if len(recent) > recentTaskCount {
				recent = recent[:recentTaskCount]
			}

			_, _ = fmt.Fprintln(out, boldStyle.Render("\n📋 Recent Tasks"))
			printTaskTable(out, recent)

			rate := float64(completed) / float64(total) * 100
			_, _ = fmt.Fprintln(out, boldStyle.Render(fmt.Sprintf("\n📈 Completion Rate: %.1f%%", rate)))

			c.Logger.Debug(fmt.Sprintf("displayed dashboard with %d tasks (%d completed)", total, completed))
			return nil
		},
	}
}

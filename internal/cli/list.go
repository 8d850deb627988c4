package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/talia-cli/talia/internal/app"
	"github.com/talia-cli/talia/internal/domain"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks, optionally filtered by status",
		Long: `Display all tasks sorted by ID.

Examples:
  # List every task
  talia list

  # Only tasks waiting in the inbox
  talia list --status inbox

  # Machine-readable output
  talia list --format json
  talia list --format yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks := c.Repo.All()

			statusMsg := ""
			if opts.Status != "" {
				status, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return fmt.Errorf("%w: %q", err, opts.Status)
				}
				filtered := make([]*domain.Task, 0, len(tasks))
				for _, t := range tasks {
					if t.Status == status {
						filtered = append(filtered, t)
					}
				}
				tasks = filtered
				statusMsg = fmt.Sprintf(" with status %s", status)
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				c.Logger.Info("no tasks found" + statusMsg)
				_, _ = fmt.Fprintln(out, warnStyle.Render("📝 No tasks found"+statusMsg))
				return nil
			}

			// Sort by ID for stable output
			sorted := slices.Clone(tasks)
			slices.SortFunc(sorted, func(a, b *domain.Task) int {
				return a.ID - b.ID
			})

			c.Logger.Debug(fmt.Sprintf("displaying %d tasks", len(sorted)))
			return printTasks(out, sorted, opts.Format)
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter tasks by status (inbox, todo, review, completed, archived)")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", formatTable, "Output format: table, json or yaml")

	return cmd
}

// newShowCommand creates the show command for single-task detail.
func newShowCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task := c.Repo.Get(id)
			if task == nil {
				c.Logger.Warn(fmt.Sprintf("task %d not found", id))
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render(fmt.Sprintf("❌ Task %d not found", id)))
				return nil
			}

			return printTask(cmd.OutOrStdout(), task, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, json or yaml")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talia-cli/talia/internal/app"
)

// resetBackupName is the suffix given to the safety copy taken by reset.
const resetBackupName = "todelete"

// newBackupCommand creates the backup command.
func newBackupCommand(c *app.Container) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create a backup of your tasks",
		Long: `Copy the task file to a sibling file.

The backup name defaults to a minute-resolution timestamp:
  ~/.talia/tasks.json.202403011405

With --name, the suffix is chosen by you instead:
  talia backup --name before-cleanup`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			dest, ok := c.Store.Backup(name, c.Clock.Now())
			if !ok {
				_, _ = fmt.Fprintln(out, warnStyle.Render("ℹ️  No tasks found to back up"))
				return nil
			}

			c.Logger.Info("created backup: " + dest)
			_, _ = fmt.Fprintln(out, successStyle.Render("📦 Tasks backed up to: "+dest))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Custom name for the backup file")

	return cmd
}

// newResetCommand creates the reset command.
func newResetCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Move current tasks to a backup file and start fresh",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			dest, ok := c.Store.Backup(resetBackupName, c.Clock.Now())
			if ok && c.Store.Remove() {
				c.Logger.Info("reset completed, backup at: " + dest)
				_, _ = fmt.Fprintln(out, successStyle.Render("📦 Tasks backed up to: "+dest))
			} else if !ok {
				_, _ = fmt.Fprintln(out, warnStyle.Render("ℹ️  No tasks found to back up"))
			}

			// Start fresh regardless of whether a backup was possible
			c.Repo.Reset()
			if err := c.Repo.Save(); err != nil {
				return fmt.Errorf("save tasks: %w", err)
			}
			return nil
		},
	}
}

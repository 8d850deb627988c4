// Package cli provides the command-line interface for talia.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/talia-cli/talia/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupView  = "view"
	groupStore = "store"
)

// NewRootCommand creates the root command for talia.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "talia",
		Short: "A simple and elegant task management CLI",
		Long: `talia is a personal task tracker.

Tasks are captured into the inbox and move through to-do and review
before being completed or archived. Everything lives in a single JSON
file under your home directory, so there is nothing to set up and
nothing to sync.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
		&cobra.Group{ID: groupStore, Title: "Store Maintenance:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	archiveCmd := newArchiveCommand(c)
	archiveCmd.GroupID = groupTask

	todoCmd := newTodoCommand(c)
	todoCmd.GroupID = groupTask

	reviewCmd := newReviewCommand(c)
	reviewCmd.GroupID = groupTask

	// View commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupView

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupView

	dashboardCmd := newDashboardCommand(c)
	dashboardCmd.GroupID = groupView

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupView

	// Store maintenance commands
	backupCmd := newBackupCommand(c)
	backupCmd.GroupID = groupStore

	resetCmd := newResetCommand(c)
	resetCmd.GroupID = groupStore

	root.AddCommand(
		addCmd,
		doneCmd,
		archiveCmd,
		todoCmd,
		reviewCmd,
		listCmd,
		showCmd,
		dashboardCmd,
		tuiCmd,
		backupCmd,
		resetCmd,
	)

	return root
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talia-cli/talia/internal/app"
	"github.com/talia-cli/talia/internal/domain"
)

// newAddCommand creates the add command for capturing tasks into the inbox.
func newAddCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task to your inbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			if title == "" {
				return domain.ErrEmptyTitle
			}

			task := domain.NewTask(c.Repo.NextID(), title, c.Clock.Now())
			c.Repo.Add(task)
			if err := c.Repo.Save(); err != nil {
				return fmt.Errorf("save tasks: %w", err)
			}

			c.Logger.Info("added new task to inbox: " + title)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✅ Added to inbox: "+title))
			return nil
		},
	}
}

// parseTaskID converts a command argument to a task ID.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTaskID, arg)
	}
	return id, nil
}

// transitionOptions describes a status-change command over one task.
// The "already in this state" guard is CLI policy; the entity itself accepts
// every transition unconditionally.
type transitionOptions struct {
	apply     func(c *app.Container, t *domain.Task)
	use       string
	short     string
	alreadyIn domain.Status // zero value disables the guard
	logVerb   string
	doneMsg   string // prefix for the success message, task title is appended
}

// newTransitionCommand builds a command that looks up a task by ID, applies
// a transition and saves the repository.
func newTransitionCommand(c *app.Container, opts transitionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   opts.use,
		Short: opts.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			task := c.Repo.Get(id)
			if task == nil {
				c.Logger.Warn(fmt.Sprintf("task %d not found", id))
				_, _ = fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("❌ Task %d not found", id)))
				return nil
			}

			if opts.alreadyIn != "" && task.Status == opts.alreadyIn {
				c.Logger.Info(fmt.Sprintf("task %d is already %s", id, opts.alreadyIn))
				_, _ = fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("ℹ️  Task %d is already %s", id, opts.alreadyIn)))
				return nil
			}

			opts.apply(c, task)
			if err := c.Repo.Save(); err != nil {
				return fmt.Errorf("save tasks: %w", err)
			}

			c.Logger.Info(opts.logVerb + ": " + task.Title)
			_, _ = fmt.Fprintln(out, successStyle.Render(opts.doneMsg+task.Title))
			return nil
		},
	}
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	return newTransitionCommand(c, transitionOptions{
		use:       "done <id>",
		short:     "Mark a task as completed",
		alreadyIn: domain.StatusCompleted,
		apply: func(c *app.Container, t *domain.Task) {
			t.Complete(c.Clock.Now())
		},
		logVerb: "completed task",
		doneMsg: "✅ Completed task: ",
	})
}

// newArchiveCommand creates the archive command.
func newArchiveCommand(c *app.Container) *cobra.Command {
	return newTransitionCommand(c, transitionOptions{
		use:       "archive <id>",
		short:     "Archive a task",
		alreadyIn: domain.StatusArchived,
		apply: func(_ *app.Container, t *domain.Task) {
			t.Archive()
		},
		logVerb: "archived task",
		doneMsg: "📦 Archived task: ",
	})
}

// newTodoCommand creates the todo command.
func newTodoCommand(c *app.Container) *cobra.Command {
	return newTransitionCommand(c, transitionOptions{
		use:   "todo <id>",
		short: "Move a task to the to-do list",
		apply: func(_ *app.Container, t *domain.Task) {
			t.MoveToTodo()
		},
		logVerb: "moved task to to-do",
		doneMsg: "📋 Moved to To Do: ",
	})
}

// newReviewCommand creates the review command.
func newReviewCommand(c *app.Container) *cobra.Command {
	return newTransitionCommand(c, transitionOptions{
		use:   "review <id>",
		short: "Move a task to the review list",
		apply: func(_ *app.Container, t *domain.Task) {
			t.MoveToReview()
		},
		logVerb: "moved task to review",
		doneMsg: "👀 Moved to Review: ",
	})
}

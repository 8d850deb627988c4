package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/talia-cli/talia/internal/app"
	"github.com/talia-cli/talia/internal/tui"
)

// launchBrowserFunc is a function variable so tests can stub the TUI launch.
var launchBrowserFunc = launchBrowser

// newTUICommand creates the tui command for the interactive browser.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and update tasks interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchBrowserFunc(c)
		},
	}
}

// launchBrowser runs the bubbletea task browser.
func launchBrowser(c *app.Container) error {
	model := tui.New(c.Repo, c.Clock)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

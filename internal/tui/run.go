package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive shell and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running interactive shell: %w", err)
	}
	return nil
}

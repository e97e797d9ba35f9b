package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	okrsearch "github.com/kailas-cloud/okrsearch/pkg/sdk"
)

// Run shows the search view over f until the user quits.
func Run(f okrsearch.Fetcher, opts ...okrsearch.ControllerOption) error {
	changes := make(chan struct{}, 1)
	opts = append(opts, okrsearch.WithOnChange(func(okrsearch.State) {
		signal(changes)
	}))

	ctrl := okrsearch.NewController(f, opts...)
	defer ctrl.Close()

	if _, err := tea.NewProgram(NewModel(ctrl, changes), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// signal coalesces notifications: the view always re-reads the latest state.
func signal(ch chan<- struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}

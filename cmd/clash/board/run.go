package board

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"codeclash/internal/logging"
	"codeclash/internal/watch"
)

// Run starts the interactive board and blocks until the user quits.
func Run(opts Options) error {
	m := NewModel(opts)

	if opts.FilePath != "" && opts.WatchFile {
		fw, err := watch.New(opts.FilePath)
		if err != nil {
			return fmt.Errorf("watching %s: %w", opts.FilePath, err)
		}
		if err := fw.Start(context.Background()); err != nil {
			return fmt.Errorf("watching %s: %w", opts.FilePath, err)
		}
		m = m.AttachWatcher(fw)
	}

	logging.Board().Info("starting board", zap.String("file", opts.FilePath))

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}

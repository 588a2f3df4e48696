package board

import (
	"context"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"codeclash/internal/arena"
	"codeclash/internal/watch"
)

// The board never times requests out on its own: a hung service leaves the
// spinner running rather than inventing retry semantics. Bounding the wait
// is the job of the client's configured timeout, when one is set.

func (m Model) fetchBoard(token string) tea.Cmd {
	client := m.client
	logger := m.logger
	return func() tea.Msg {
		entries, err := client.Leaderboard(context.Background())
		if err != nil {
			logger.Warn("leaderboard fetch failed", zap.Error(err))
		}
		return boardMsg{token: token, entries: entries, err: err}
	}
}

func (m Model) analyzeCode(token string, sub arena.Submission) tea.Cmd {
	client := m.client
	logger := m.logger
	return func() tea.Msg {
		result, err := client.Analyze(context.Background(), sub)
		if err != nil {
			logger.Warn("analysis failed", zap.Error(err))
		}
		return analysisMsg{token: token, result: result, err: err}
	}
}

func (m Model) optimizeCode(token string, sub arena.Submission) tea.Cmd {
	client := m.client
	logger := m.logger
	return func() tea.Msg {
		code, err := client.Optimize(context.Background(), sub)
		if err != nil {
			logger.Warn("optimization failed", zap.Error(err))
		}
		return optimizeMsg{token: token, code: code, err: err}
	}
}

func loadFile(path string, reload bool) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileLoadedMsg{path: path, code: string(data), reload: reload, err: err}
	}
}

// waitForFileChange blocks on the watcher's channel; it re-arms itself
// after each delivery from Update.
func waitForFileChange(fw *watch.FileWatcher) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-fw.Events()
		if !ok {
			return nil
		}
		return fileChangedMsg(ev)
	}
}

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(text)}
	}
}

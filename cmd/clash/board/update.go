package board

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"codeclash/internal/arena"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		unCmd tea.Cmd
		taCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.shutdown()
			return m, tea.Quit

		case tea.KeyTab, tea.KeyShiftTab:
			return m.cycleFocus(), nil

		case tea.KeyCtrlS:
			return m.submitCode()

		case tea.KeyCtrlO:
			return m.requestOptimization()

		case tea.KeyCtrlR:
			return m.refreshBoard()

		case tea.KeyCtrlL:
			m.language = m.language.Next()
			return m, nil

		case tea.KeyCtrlY:
			if m.optimized == "" {
				m.notice = "Nothing to copy yet."
				return m, nil
			}
			return m, copyToClipboard(m.optimized)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}
		return m, nil

	case analysisMsg:
		// A completion from a superseded submit changes nothing, not even
		// the loading flag: only the live request owns it.
		if msg.token != m.analyzeToken {
			m.logger.Debug("discarding stale analysis", zap.String("token", msg.token))
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.result = nil
			if arena.IsServiceError(msg.err) {
				m.errMsg = msg.err.Error()
			} else {
				m.errMsg = msgAnalyzeFailed
			}
			return m, nil
		}
		m.result = msg.result
		m.errMsg = ""
		// One refresh per successful analysis, dispatched only now that
		// the analysis has landed.
		m.boardToken = uuid.NewString()
		return m, m.fetchBoard(m.boardToken)

	case optimizeMsg:
		if msg.token != m.optimizeToken {
			m.logger.Debug("discarding stale optimization", zap.String("token", msg.token))
			return m, nil
		}
		if msg.err != nil || msg.code == "" {
			// Whatever went wrong - embedded error, transport, or an
			// empty optimized_code - the user sees one message, and any
			// previously shown optimized code stays put.
			m.errMsg = msgOptimizeFailed
			return m, nil
		}
		m.optimized = msg.code
		m.errMsg = ""
		return m, nil

	case boardMsg:
		if msg.token != m.boardToken {
			m.logger.Debug("discarding stale leaderboard", zap.String("token", msg.token))
			return m, nil
		}
		if msg.err != nil {
			// Keep showing the previous standings.
			m.errMsg = msgBoardFailed
			return m, nil
		}
		m.board = msg.entries
		return m, nil

	case fileLoadedMsg:
		base := filepath.Base(msg.path)
		if msg.err != nil {
			m.notice = fmt.Sprintf("Could not read %s.", base)
			return m, nil
		}
		m.code.SetValue(msg.code)
		if msg.reload {
			m.notice = fmt.Sprintf("Reloaded %s.", base)
		} else {
			m.notice = fmt.Sprintf("Loaded %s.", base)
		}
		return m, nil

	case fileChangedMsg:
		// Re-arm the wait alongside the reload; reloading never fires a
		// network call by itself.
		cmds := []tea.Cmd{loadFile(msg.Path, true)}
		if m.watcher != nil {
			cmds = append(cmds, waitForFileChange(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "Clipboard unavailable."
		} else {
			m.notice = "Optimized code copied to clipboard."
		}
		return m, nil
	}

	m.username, unCmd = m.username.Update(msg)
	m.code, taCmd = m.code.Update(msg)
	return m, tea.Batch(unCmd, taCmd)
}

// submitCode validates the form and dispatches the analysis request. Blank
// fields never reach the network. A valid submission clears the previous
// result, optimized code, and error before the request goes out.
func (m Model) submitCode() (Model, tea.Cmd) {
	m.errMsg = ""
	m.notice = ""

	username := strings.TrimSpace(m.username.Value())
	if username == "" {
		m.errMsg = msgUsernameRequired
		return m, nil
	}
	if strings.TrimSpace(m.code.Value()) == "" {
		m.errMsg = msgCodeRequired
		return m, nil
	}

	m.result = nil
	m.optimized = ""
	m.loading = true
	m.analyzeToken = uuid.NewString()

	sub := arena.Submission{
		Username: username,
		Code:     m.code.Value(),
		Language: m.language,
	}
	m.logger.Info("submitting code",
		zap.String("username", username),
		zap.String("language", string(m.language)))

	return m, tea.Batch(m.analyzeCode(m.analyzeToken, sub), m.spinner.Tick)
}

// requestOptimization sends the current form contents as-is. It neither
// toggles the loading indicator nor clears the analysis result; the only
// state it resets up front is the error banner.
func (m Model) requestOptimization() (Model, tea.Cmd) {
	m.errMsg = ""
	m.notice = ""

	m.optimizeToken = uuid.NewString()
	sub := arena.Submission{
		Username: strings.TrimSpace(m.username.Value()),
		Code:     m.code.Value(),
		Language: m.language,
	}
	return m, m.optimizeCode(m.optimizeToken, sub)
}

// refreshBoard re-fetches the standings on demand.
func (m Model) refreshBoard() (Model, tea.Cmd) {
	m.errMsg = ""
	m.notice = ""

	m.boardToken = uuid.NewString()
	return m, m.fetchBoard(m.boardToken)
}

func (m Model) cycleFocus() Model {
	if m.focus == focusUsername {
		m.focus = focusCode
		m.username.Blur()
		m.code.Focus()
	} else {
		m.focus = focusUsername
		m.code.Blur()
		m.username.Focus()
	}
	return m
}

// resize reflows the form and rebuilds the markdown renderer so word wrap
// tracks the terminal width.
func (m *Model) resize() {
	formWidth := m.width * 2 / 5
	if formWidth < 30 {
		formWidth = 30
	}
	if formWidth > m.width-2 {
		formWidth = m.width - 2
	}

	m.username.Width = formWidth - 4
	m.code.SetWidth(formWidth)

	codeHeight := m.height / 3
	if codeHeight < 5 {
		codeHeight = 5
	}
	m.code.SetHeight(codeHeight)

	wrap := m.width - 4
	if wrap > 100 {
		wrap = 100
	}
	if wrap > 10 {
		if m.styles.Theme.IsDark {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(wrap),
			)
		} else {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithStylePath("light"),
				glamour.WithWordWrap(wrap),
			)
		}
	}
}

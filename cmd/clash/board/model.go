// Package board provides the interactive TUI for the CodeClash arena: a
// submission form, the live leaderboard, and panels for analysis and
// optimization results. All state transitions happen in Update; the
// network work runs as tea commands that report back with typed messages.
package board

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"codeclash/cmd/clash/ui"
	"codeclash/internal/arena"
	"codeclash/internal/logging"
	"codeclash/internal/watch"
)

// Arena is the slice of the service client the board needs. The real
// implementation is *arena.Client; tests substitute a recording fake.
type Arena interface {
	Leaderboard(ctx context.Context) ([]arena.LeaderboardEntry, error)
	Analyze(ctx context.Context, sub arena.Submission) (*arena.AnalysisResult, error)
	Optimize(ctx context.Context, sub arena.Submission) (string, error)
}

// User-facing outcome messages. The first two are local validation, the
// rest describe how a request ended.
const (
	msgUsernameRequired = "Please enter a username."
	msgCodeRequired     = "Please enter some code."
	msgAnalyzeFailed    = "Failed to reach the arena service. Please try again."
	msgOptimizeFailed   = "Failed to retrieve optimized code."
	msgBoardFailed      = "Failed to load leaderboard."
)

// focusArea identifies which form field receives keystrokes.
type focusArea int

const (
	focusUsername focusArea = iota
	focusCode
)

// Options configures a new board session.
type Options struct {
	Client   Arena
	Username string
	Language arena.Language

	// FilePath preloads the code buffer from a file; WatchFile keeps the
	// buffer in sync with edits on disk.
	FilePath  string
	WatchFile bool
}

// Model is the board's entire view state.
type Model struct {
	// UI Components
	username textinput.Model
	code     textarea.Model
	spinner  spinner.Model
	styles   ui.Styles
	renderer *glamour.TermRenderer

	client   Arena
	language arena.Language
	focus    focusArea

	// Result state
	result    *arena.AnalysisResult
	optimized string
	board     []arena.LeaderboardEntry
	errMsg    string
	notice    string
	loading   bool

	// Request tokens. Every dispatched call records a fresh token and its
	// completion message carries the token it was issued with; completions
	// with a stale token are discarded without touching any state.
	analyzeToken  string
	optimizeToken string
	boardToken    string

	// File integration
	filePath string
	watcher  *watch.FileWatcher

	width  int
	height int
	ready  bool

	logger *zap.Logger
}

// NewModel builds the initial board state. The leaderboard fetch and the
// optional file preload are dispatched from Init.
func NewModel(opts Options) Model {
	styles := ui.DefaultStyles()

	un := textinput.New()
	un.Placeholder = "username"
	un.CharLimit = 64
	un.Prompt = ""
	un.SetValue(opts.Username)
	un.Focus()

	code := textarea.New()
	code.Placeholder = "Paste code here, or load it with --file..."
	code.SetWidth(60)
	code.SetHeight(10)
	code.CharLimit = 0

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}

	lang := opts.Language
	if !lang.Valid() {
		lang = arena.LangPython
	}

	return Model{
		username:   un,
		code:       code,
		spinner:    sp,
		styles:     styles,
		renderer:   renderer,
		client:     opts.Client,
		language:   lang,
		focus:      focusUsername,
		board:      []arena.LeaderboardEntry{},
		boardToken: uuid.NewString(),
		filePath:   opts.FilePath,
		logger:     logging.Board(),
	}
}

// Init dispatches the initial work: the first leaderboard fetch, cursor
// blink, spinner ticks, and the optional file preload.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.spinner.Tick,
		m.fetchBoard(m.boardToken),
	}
	if m.filePath != "" {
		cmds = append(cmds, loadFile(m.filePath, false))
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForFileChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// AttachWatcher wires a running file watcher into the session; its events
// arrive as reload messages.
func (m Model) AttachWatcher(fw *watch.FileWatcher) Model {
	m.watcher = fw
	return m
}

// shutdown stops background resources before quitting.
func (m *Model) shutdown() {
	if m.watcher != nil {
		m.watcher.Stop()
		m.watcher = nil
	}
}

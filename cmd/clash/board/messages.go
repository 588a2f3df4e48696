package board

import (
	"codeclash/internal/arena"
	"codeclash/internal/watch"
)

// Messages for tea updates. Each request completion carries the token the
// request was dispatched with, so Update can discard stale arrivals.
type (
	boardMsg struct {
		token   string
		entries []arena.LeaderboardEntry
		err     error
	}

	analysisMsg struct {
		token  string
		result *arena.AnalysisResult
		err    error
	}

	optimizeMsg struct {
		token string
		code  string
		err   error
	}

	fileLoadedMsg struct {
		path   string
		code   string
		reload bool
		err    error
	}

	fileChangedMsg watch.Event

	clipboardMsg struct {
		err error
	}
)

package board

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeclash/internal/arena"
)

func sizedModel(t *testing.T, fake *fakeArena) Model {
	t.Helper()
	m := newTestModel(fake)
	m, _ = deliver(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := newTestModel(&fakeArena{})
	assert.Equal(t, "Initializing...", m.View())
}

func TestViewShowsLeaderboardEntries(t *testing.T) {
	m := sizedModel(t, &fakeArena{})
	m, _ = deliver(t, m, boardMsg{
		token:   m.boardToken,
		entries: []arena.LeaderboardEntry{{Username: "a", Score: 10}},
	})

	out := m.View()
	assert.Contains(t, out, "Leaderboard")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "10.0")
}

func TestViewShowsAllSuggestions(t *testing.T) {
	m := sizedModel(t, &fakeArena{})
	m.result = &arena.AnalysisResult{
		ReadabilityScore: 64.0,
		Runtime:          "O(n^2)",
		Memory:           "O(n)",
		Suggestions:      []string{"flatten the nested loop", "name the accumulator"},
	}

	out := m.View()
	assert.Contains(t, out, "Analysis")
	assert.Contains(t, out, "64.0")
	assert.Contains(t, out, "O(n^2)")
	assert.Contains(t, out, "flatten the nested loop")
	assert.Contains(t, out, "name the accumulator")
}

func TestViewErrorBanner(t *testing.T) {
	m := sizedModel(t, &fakeArena{})
	m.errMsg = "syntax error"

	out := m.View()
	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "syntax error")
}

func TestViewOptimizedPanel(t *testing.T) {
	m := sizedModel(t, &fakeArena{})
	m.optimized = "print(2)\n"

	out := m.View()
	require.Contains(t, out, "Optimized Code")
	assert.Contains(t, out, "print(2)")
}

func TestViewLoadingStatus(t *testing.T) {
	m := sizedModel(t, &fakeArena{})
	assert.Contains(t, m.View(), "Ready")

	m.loading = true
	assert.Contains(t, m.View(), "Analyzing")
}

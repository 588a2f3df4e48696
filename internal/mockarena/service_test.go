package mockarena

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeclash/internal/arena"
)

// The mock exists to satisfy the real client, so the contract tests drive
// it through arena.Client rather than raw HTTP.

func newTestPair(t *testing.T) (*Service, *arena.Client) {
	t.Helper()
	svc := New()
	srv := httptest.NewServer(svc.Handler())
	t.Cleanup(srv.Close)
	return svc, arena.New(srv.URL)
}

func TestLeaderboardRoundTrip(t *testing.T) {
	svc, client := newTestPair(t)

	entries, err := client.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries, "fresh service should have an empty board")

	svc.Record("ada", 91.5)
	svc.Record("alan", 88.0)
	svc.Record("ada", 85.0) // worse than her best, must not demote her

	entries, err = client.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ada", entries[0].Username)
	assert.Equal(t, 91.5, entries[0].Score)
	assert.Equal(t, "alan", entries[1].Username)
}

func TestAnalyzeRoundTrip(t *testing.T) {
	_, client := newTestPair(t)

	sub := arena.Submission{
		Username: "ada",
		Code:     "# sum the numbers\ntotal = 0\nfor n in nums:\n    total += n\n",
		Language: arena.LangPython,
	}
	result, err := client.Analyze(context.Background(), sub)
	require.NoError(t, err)

	assert.Greater(t, result.ReadabilityScore, 0.0)
	assert.Equal(t, "O(n)", result.Runtime)
	assert.NotEmpty(t, result.Suggestions)

	// The submission must have landed on the scoreboard.
	entries, err := client.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ada", entries[0].Username)
	assert.Equal(t, result.ReadabilityScore, entries[0].Score)
}

func TestAnalyzeRejectsBrokenCode(t *testing.T) {
	_, client := newTestPair(t)

	sub := arena.Submission{Username: "ada", Code: "this has a syntax error in it", Language: arena.LangPython}
	result, err := client.Analyze(context.Background(), sub)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, arena.IsServiceError(err))
	assert.Contains(t, err.Error(), "syntax error")
}

func TestAnalyzeRejectsBlankFields(t *testing.T) {
	_, client := newTestPair(t)

	_, err := client.Analyze(context.Background(), arena.Submission{Username: "", Code: "x = 1"})
	require.Error(t, err)
	assert.True(t, arena.IsServiceError(err))

	_, err = client.Analyze(context.Background(), arena.Submission{Username: "ada", Code: "   "})
	require.Error(t, err)
	assert.True(t, arena.IsServiceError(err))
}

func TestOptimizeRoundTrip(t *testing.T) {
	_, client := newTestPair(t)

	sub := arena.Submission{
		Username: "ada",
		Code:     "x = 1   \n\n\n\nprint(x)",
		Language: arena.LangPython,
	}
	code, err := client.Optimize(context.Background(), sub)
	require.NoError(t, err)

	assert.Contains(t, code, "# optimized by arena")
	assert.Contains(t, code, "print(x)")
	assert.NotContains(t, code, "x = 1   \n", "trailing whitespace should be stripped")
}

func TestSeedFixturesIsDeterministic(t *testing.T) {
	a := New()
	a.SeedFixtures(8, 42)
	b := New()
	b.SeedFixtures(8, 42)

	assert.Equal(t, a.Standings(), b.Standings())
	assert.NotEmpty(t, a.Standings())
}

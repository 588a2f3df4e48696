package ui

import (
	"strings"
	"testing"
)

func TestScoreTableRendersHeadersAndRows(t *testing.T) {
	table := NewScoreTable("Leaderboard", "Rank", "User", "Score").AlignRight(0, 2)
	table.AddRow("1", "ada", "91.5")
	table.AddRow("2", "alan", "88.0")

	out := table.View(NewStyles(LightTheme()))

	for _, want := range []string{"Leaderboard", "Rank", "User", "Score", "ada", "alan", "91.5", "88.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestScoreTableEmptyState(t *testing.T) {
	table := NewScoreTable("Leaderboard", "Rank", "User", "Score")

	out := table.View(NewStyles(LightTheme()))
	if !strings.Contains(out, "No entries yet.") {
		t.Errorf("empty table should show placeholder, got:\n%s", out)
	}
	if strings.Contains(out, "Rank") {
		t.Errorf("empty table should not render headers, got:\n%s", out)
	}
}

func TestScoreTableCustomEmptyMessage(t *testing.T) {
	table := NewScoreTable("Board", "User")
	table.Empty = "Nobody has submitted."

	out := table.View(NewStyles(LightTheme()))
	if !strings.Contains(out, "Nobody has submitted.") {
		t.Errorf("custom empty message missing:\n%s", out)
	}
}

func TestScoreTableWidthsFitWidestCell(t *testing.T) {
	table := NewScoreTable("", "User", "Score")
	table.AddRow("a-very-long-username-indeed", "7")

	out := table.View(NewStyles(LightTheme()))
	if !strings.Contains(out, "a-very-long-username-indeed") {
		t.Errorf("long cell truncated:\n%s", out)
	}
}

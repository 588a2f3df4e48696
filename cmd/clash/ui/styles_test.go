package ui

import (
	"strings"
	"testing"
)

func TestDetectThemeDarkModeOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("CODECLASH_DARK_MODE", "1")

	theme := DetectTheme()
	if !theme.IsDark {
		t.Error("CODECLASH_DARK_MODE=1 should select the dark theme")
	}
}

func TestDetectThemeFromColorFgBg(t *testing.T) {
	cases := []struct {
		value string
		dark  bool
	}{
		{"15;0", true},
		{"0;15", false},
		{"15;8", true},
		{"garbage", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Setenv("COLORFGBG", tc.value)
		t.Setenv("CODECLASH_DARK_MODE", "")

		theme := DetectTheme()
		if theme.IsDark != tc.dark {
			t.Errorf("COLORFGBG=%q: IsDark = %v, want %v", tc.value, theme.IsDark, tc.dark)
		}
	}
}

func TestDefaultThemeIsLight(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("CODECLASH_DARK_MODE", "")

	if DetectTheme().IsDark {
		t.Error("with no hints the theme should default to light")
	}
}

func TestLogoMentionsTheApp(t *testing.T) {
	out := Logo(DefaultStyles())
	if out == "" {
		t.Fatal("logo should not be empty")
	}
}

func TestRenderDivider(t *testing.T) {
	s := NewStyles(LightTheme())
	if got := s.RenderDivider(0); got != "" {
		t.Errorf("zero-width divider should be empty, got %q", got)
	}
	if got := s.RenderDivider(4); !strings.Contains(got, "────") {
		t.Errorf("divider missing rule characters: %q", got)
	}
}

func TestRankStyles(t *testing.T) {
	s := NewStyles(DarkTheme())
	podium := s.RankStyle(1).Render("1")
	regular := s.RankStyle(9).Render("9")
	if podium == "" || regular == "" {
		t.Fatal("rank styles must render")
	}
}

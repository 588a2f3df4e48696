// Package arena speaks the CodeClash arena service's JSON dialect: the
// leaderboard feed, code analysis, and code optimization endpoints. It owns
// the wire types and a thin HTTP client; everything above it (the TUI, the
// one-shot commands) works in terms of these structs.
package arena

import (
	"fmt"
	"strings"
)

// Language identifies the language a submission claims to be written in.
// The service treats it as an opaque hint; the client never parses code.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
	LangCPP        Language = "cpp"
)

// languages is the canonical cycle order, python first.
var languages = []Language{LangPython, LangJavaScript, LangJava, LangCPP}

// Languages returns the supported languages in display order.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage normalizes user input ("Python", "JAVA") into a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return "", fmt.Errorf("unknown language %q (expected one of %s)", s, joinLanguages())
	}
	return l, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range languages {
		if l == known {
			return true
		}
	}
	return false
}

// Next returns the language after l in cycle order, wrapping at the end.
// An unknown language restarts the cycle at python.
func (l Language) Next() Language {
	for i, known := range languages {
		if l == known {
			return languages[(i+1)%len(languages)]
		}
	}
	return languages[0]
}

func (l Language) String() string { return string(l) }

func joinLanguages() string {
	parts := make([]string, len(languages))
	for i, l := range languages {
		parts[i] = string(l)
	}
	return strings.Join(parts, ", ")
}

// Submission is the payload for both the analyze and optimize endpoints.
type Submission struct {
	Username string   `json:"username"`
	Code     string   `json:"code"`
	Language Language `json:"language"`
}

// AnalysisResult is what a successful analyze call yields. Runtime and
// Memory are complexity classes ("O(n)", "O(1)") rather than measurements.
type AnalysisResult struct {
	ReadabilityScore float64  `json:"readability_score"`
	Runtime          string   `json:"runtime"`
	Memory           string   `json:"memory"`
	Suggestions      []string `json:"suggestions"`
}

// LeaderboardEntry is one row of the global standings, already ranked by
// the service. Order on the wire is display order.
type LeaderboardEntry struct {
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// analyzeResponse is the raw analyze body. The service reports its own
// failures in-band: a 200 with a non-empty Error and no usable result.
type analyzeResponse struct {
	AnalysisResult
	Error string `json:"error"`
}

type leaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type optimizeResponse struct {
	OptimizedCode string `json:"optimized_code"`
	Error         string `json:"error"`
}

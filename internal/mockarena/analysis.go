package mockarena

import (
	"fmt"
	"math"
	"strings"

	"codeclash/internal/arena"
)

// Analyze produces a deterministic heuristic report for the given code.
// It is intentionally shallow — line lengths, comment density, loop
// counting — but stable: the same input always scores the same, which is
// what demos and tests need.
func Analyze(code string, lang arena.Language) arena.AnalysisResult {
	lines := strings.Split(code, "\n")

	var longLines, commentLines, blankLines, codeLines int
	maxIndent := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			blankLines++
			continue
		case isComment(trimmed, lang):
			commentLines++
			continue
		}
		codeLines++
		if len(line) > 80 {
			longLines++
		}
		if indent := indentDepth(line); indent > maxIndent {
			maxIndent = indent
		}
	}

	score := 100.0
	score -= float64(longLines) * 5
	score -= math.Max(0, float64(maxIndent-2)) * 8
	if codeLines > 0 && commentLines == 0 {
		score -= 10
	}
	if codeLines > 40 {
		score -= 5
	}
	score = math.Max(0, math.Min(100, score))
	score = math.Round(score*10) / 10

	return arena.AnalysisResult{
		ReadabilityScore: score,
		Runtime:          runtimeClass(code),
		Memory:           memoryClass(code, lang),
		Suggestions:      suggestions(code, lang, longLines, commentLines, codeLines, maxIndent),
	}
}

// Optimize returns a lightly reformatted rendition of the code: trailing
// whitespace stripped, blank-line runs collapsed, a banner comment on top.
func Optimize(code string, lang arena.Language) string {
	lines := strings.Split(code, "\n")
	out := make([]string, 0, len(lines)+1)
	out = append(out, commentLine("optimized by arena", lang))

	prevBlank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		blank := strings.TrimSpace(line) == ""
		if blank && prevBlank {
			continue
		}
		prevBlank = blank
		out = append(out, line)
	}

	result := strings.Join(out, "\n")
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}

func runtimeClass(code string) string {
	lower := strings.ToLower(code)
	loops := strings.Count(lower, "for ") + strings.Count(lower, "for(") +
		strings.Count(lower, "while ") + strings.Count(lower, "while(")

	switch {
	case strings.Contains(lower, "sort"):
		return "O(n log n)"
	case loops >= 2 && nestedLoops(code):
		return "O(n^2)"
	case loops >= 1:
		return "O(n)"
	default:
		return "O(1)"
	}
}

func memoryClass(code string, lang arena.Language) string {
	lower := strings.ToLower(code)
	allocs := []string{"[]"}
	switch lang {
	case arena.LangPython:
		allocs = append(allocs, "list(", "dict(", "set(", ".append")
	case arena.LangJavaScript:
		allocs = append(allocs, "new ", ".push", ".map(", ".concat")
	case arena.LangJava:
		allocs = append(allocs, "new ", "arraylist", "hashmap")
	case arena.LangCPP:
		allocs = append(allocs, "new ", "vector<", "push_back")
	}
	for _, marker := range allocs {
		if strings.Contains(lower, marker) {
			return "O(n)"
		}
	}
	return "O(1)"
}

func suggestions(code string, lang arena.Language, longLines, commentLines, codeLines, maxIndent int) []string {
	var out []string

	if longLines > 0 {
		out = append(out, fmt.Sprintf("Keep lines under 80 characters (%d are longer).", longLines))
	}
	if codeLines > 0 && commentLines == 0 {
		out = append(out, "Add a comment explaining the core idea.")
	}
	if maxIndent > 2 {
		out = append(out, "Deep nesting hurts readability; consider extracting a helper.")
	}
	if nestedLoops(code) {
		out = append(out, "Nested loops detected; check whether a single pass would do.")
	}

	switch lang {
	case arena.LangPython:
		if strings.Contains(code, "range(len(") {
			out = append(out, "Iterate directly over the sequence instead of range(len(...)).")
		}
	case arena.LangJavaScript:
		if strings.Contains(code, "var ") {
			out = append(out, "Prefer const or let over var.")
		}
	case arena.LangJava:
		if strings.Contains(code, "System.out.println") && codeLines > 20 {
			out = append(out, "Route diagnostics through a logger rather than println.")
		}
	case arena.LangCPP:
		if strings.Contains(code, "using namespace std") {
			out = append(out, "Avoid using namespace std at file scope.")
		}
	}

	if len(out) == 0 {
		out = append(out, "Looks clean. Consider adding a test for the edge cases.")
	}
	return out
}

// nestedLoops reports whether a loop keyword appears at two different
// indentation depths — a cheap stand-in for real control-flow analysis.
func nestedLoops(code string) bool {
	depths := map[int]bool{}
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "for") || strings.HasPrefix(trimmed, "while") {
			depths[indentDepth(line)] = true
		}
	}
	return len(depths) >= 2
}

func indentDepth(line string) int {
	spaces := 0
	for _, r := range line {
		switch r {
		case ' ':
			spaces++
		case '\t':
			spaces += 4
		default:
			return spaces / 4
		}
	}
	return 0
}

func isComment(trimmed string, lang arena.Language) bool {
	switch lang {
	case arena.LangPython:
		return strings.HasPrefix(trimmed, "#")
	case arena.LangJavaScript, arena.LangJava, arena.LangCPP:
		return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") || strings.HasPrefix(trimmed, "*")
	default:
		return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
	}
}

func commentLine(text string, lang arena.Language) string {
	switch lang {
	case arena.LangPython:
		return "# " + text
	default:
		return "// " + text
	}
}

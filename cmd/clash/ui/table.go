package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScoreTable renders static tabular data, sized to its widest cell. The
// leaderboard panel and the top command both draw through it.
type ScoreTable struct {
	Title   string
	Headers []string
	Rows    [][]string

	// RightAlign marks columns rendered flush right (scores, ranks).
	RightAlign map[int]bool

	// Empty is shown instead of the table body when there are no rows.
	Empty string
}

// NewScoreTable creates a ScoreTable with the given title and headers.
func NewScoreTable(title string, headers ...string) *ScoreTable {
	return &ScoreTable{
		Title:      title,
		Headers:    headers,
		Rows:       make([][]string, 0),
		RightAlign: make(map[int]bool),
	}
}

// AlignRight marks columns as right-aligned.
func (t *ScoreTable) AlignRight(cols ...int) *ScoreTable {
	for _, c := range cols {
		t.RightAlign[c] = true
	}
	return t
}

// AddRow appends one row.
func (t *ScoreTable) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// View renders the table using the provided styles.
func (t *ScoreTable) View(styles Styles) string {
	var sb strings.Builder

	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	if len(t.Rows) == 0 {
		empty := t.Empty
		if empty == "" {
			empty = "No entries yet."
		}
		sb.WriteString(styles.Muted.Render(empty))
		sb.WriteString("\n")
		return sb.String()
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := lipgloss.Width(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	headerStyle := styles.Bold.Padding(0, 1)
	sepStyle := styles.Muted

	for i, h := range t.Headers {
		sb.WriteString(t.renderCell(headerStyle, h, widths[i], i))
		if i < len(t.Headers)-1 {
			sb.WriteString(sepStyle.Render("│"))
		}
	}
	sb.WriteString("\n")

	totalWidth := len(t.Headers) - 1
	for _, w := range widths {
		totalWidth += w + 2 // cell padding
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("─", totalWidth)))
	sb.WriteString("\n")

	for rowIdx, row := range t.Rows {
		rowStyle := styles.Body.Padding(0, 1)
		if len(t.Headers) > 0 && t.Headers[0] == "Rank" {
			rowStyle = styles.RankStyle(rowIdx + 1).Padding(0, 1)
		}
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(t.renderCell(rowStyle, cell, widths[i], i))
			if i < len(row)-1 && i < len(t.Headers)-1 {
				sb.WriteString(sepStyle.Render("│"))
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (t *ScoreTable) renderCell(style lipgloss.Style, text string, width, col int) string {
	cell := style.Width(width + 2)
	if t.RightAlign[col] {
		cell = cell.Align(lipgloss.Right)
	}
	return cell.Render(text)
}

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeclash/cmd/clash/ui"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()

	form := m.renderForm()
	standings := m.renderStandings()
	columns := lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", standings)

	sections := []string{header, columns}

	if m.errMsg != "" {
		sections = append(sections, m.renderErrorBanner())
	}
	if m.notice != "" {
		sections = append(sections, m.styles.Muted.Render(m.notice))
	}
	if m.result != nil {
		sections = append(sections, m.renderAnalysis())
	}
	if m.optimized != "" {
		sections = append(sections, m.renderOptimized())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" CodeClash ")
	version := m.styles.Badge.Render("v1.0")

	var status string
	if m.loading {
		status = lipgloss.JoinHorizontal(lipgloss.Center,
			m.spinner.View(), " ", m.styles.Badge.Render("Analyzing..."))
	} else {
		status = m.styles.Success.Render("Ready")
	}

	headerLine := lipgloss.JoinHorizontal(lipgloss.Center, title, " ", version, "  ", status)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderForm() string {
	var sb strings.Builder

	userLabel := m.styles.FieldLabel.Render("Username")
	if m.focus == focusUsername {
		userLabel += m.styles.Muted.Render("  (editing)")
	}
	sb.WriteString(userLabel + "\n")
	sb.WriteString(m.username.View() + "\n\n")

	sb.WriteString(m.styles.FieldLabel.Render("Language") + "  ")
	sb.WriteString(m.styles.Badge.Render(string(m.language)))
	sb.WriteString(m.styles.Muted.Render("  Ctrl+L cycles") + "\n\n")

	codeLabel := m.styles.FieldLabel.Render("Code")
	if m.focus == focusCode {
		codeLabel += m.styles.Muted.Render("  (editing)")
	}
	if m.filePath != "" {
		codeLabel += m.styles.Muted.Render("  from " + m.filePath)
	}
	sb.WriteString(codeLabel + "\n")
	sb.WriteString(m.code.View())

	return m.styles.Panel.Render(sb.String())
}

func (m Model) renderStandings() string {
	table := ui.NewScoreTable("Leaderboard", "Rank", "User", "Score").AlignRight(0, 2)
	table.Empty = "No entries yet."
	for i, entry := range m.board {
		table.AddRow(strconv.Itoa(i+1), entry.Username, fmt.Sprintf("%.1f", entry.Score))
	}
	return table.View(m.styles)
}

func (m Model) renderAnalysis() string {
	r := m.result

	scoreLine := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Bold.Render("Readability "),
		m.styles.Success.Render(fmt.Sprintf("%.1f", r.ReadabilityScore)),
		m.styles.Muted.Render("/100"),
		m.styles.Bold.Render("   Runtime "),
		m.styles.Body.Render(r.Runtime),
		m.styles.Bold.Render("   Memory "),
		m.styles.Body.Render(r.Memory),
	)

	body := scoreLine
	if len(r.Suggestions) > 0 {
		var md strings.Builder
		md.WriteString("**Suggestions**\n\n")
		for _, s := range r.Suggestions {
			md.WriteString("- " + s + "\n")
		}
		body = lipgloss.JoinVertical(lipgloss.Left, scoreLine, m.safeRenderMarkdown(md.String()))
	}

	title := m.styles.Title.Render("Analysis")
	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m Model) renderOptimized() string {
	md := fmt.Sprintf("```%s\n%s\n```", m.language, strings.TrimRight(m.optimized, "\n"))

	title := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("Optimized Code"),
		m.styles.Muted.Render("  Ctrl+Y copies"),
	)
	return m.styles.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, title, m.safeRenderMarkdown(md)))
}

func (m Model) renderErrorBanner() string {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(ui.Destructive).
		Render("Error")

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.Destructive).
		Padding(0, 1)

	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, m.styles.Body.Render(m.errMsg)))
}

func (m Model) renderFooter() string {
	hints := []string{
		"Tab focus",
		"Ctrl+S submit",
		"Ctrl+O optimize",
		"Ctrl+R refresh",
		"Ctrl+L language",
		"Ctrl+Y copy",
		"Esc quit",
	}
	return m.styles.Footer.Render(strings.Join(hints, " • "))
}

// safeRenderMarkdown renders markdown with panic recovery; if glamour
// chokes, the raw text is better than a crash.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

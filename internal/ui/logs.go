package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// logChromeRows is the overlay border, padding and title.
const logChromeRows = 8

// renderLogs renders the recent log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	lineWidth := max(m.width-10, 20)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Recent log"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	switch {
	case m.logErr != nil:
		b.WriteString(styles.DangerText.Render(truncate(m.logErr.Error(), lineWidth)))
	case len(m.logEntries) == 0:
		b.WriteString(styles.MutedText.Render("No log entries"))
	default:
		lines := make([]string, 0, len(m.logEntries))
		for _, e := range m.logEntries {
			style := styles.MutedText
			if e.Problem() {
				style = styles.DangerText
			}
			text := e.Message
			if !e.Time.IsZero() {
				text = e.Time.Format("15:04:05") + " " + text
			}
			lines = append(lines, style.Render(truncate(text, lineWidth)))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

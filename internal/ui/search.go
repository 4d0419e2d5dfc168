package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hansard/internal/search"
)

// renderHome renders the search view.
func (m Model) renderHome(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	var b strings.Builder
	b.WriteString(bg.Render("Find your MP", styles.Text.Bold(true)))
	b.WriteString("\n")
	for _, line := range wrap("Search by postcode, constituency or MP name to see their registered financial interests.", width) {
		b.WriteString(bg.Render(line, styles.MutedText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.form.Busy():
		b.WriteString(m.spinner.View() + bg.Space() + bg.Render("Searching...", styles.InfoText))
		b.WriteString("\n")
	case !m.typing:
		b.WriteString(bg.Render("Press / to search", styles.FaintText))
		b.WriteString("\n")
	}

	if notice, ok := m.currentNotice(); ok {
		b.WriteString("\n")
		b.WriteString(m.renderNotice(notice, width))
		b.WriteString("\n")
	}

	return b.String()
}

// currentNotice prefers the search form's notice over the controller's
// profile-failure notice; both are dismissed together with esc.
func (m Model) currentNotice() (search.Notice, bool) {
	if n, ok := m.form.Notice(); ok {
		return n, true
	}
	if msg := m.nav.Notice(); msg != "" {
		return search.Notice{Kind: search.Warning, Title: "Notice: " + msg}, true
	}
	return search.Notice{}, false
}

// renderNotice renders a dismissible alert panel.
func (m Model) renderNotice(n search.Notice, width int) string {
	color := m.theme.Info
	if n.Kind == search.Warning {
		color = m.theme.Warning
	}
	panelWidth := width - 2
	if panelWidth > 72 {
		panelWidth = 72
	}

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Text))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Muted))

	lines := []string{titleStyle.Render(n.Title)}
	for i, line := range n.Lines {
		style := textStyle
		if n.Kind == search.Info && i == len(n.Lines)-1 {
			style = hintStyle
		}
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, hintStyle.Render("esc to dismiss"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, 1).
		Width(maxInt(panelWidth, 20)).
		Render(strings.Join(lines, "\n"))
}

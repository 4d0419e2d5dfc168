package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// titleSuffix is stripped from registry titles when rendering in-app labels.
const titleSuffix = " · Hansard"

// BgStyle renders text segments on a shared background. Lipgloss resets the
// background between separately styled segments, which leaves gaps; see
// https://github.com/charmbracelet/lipgloss/discussions/78
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a background helper for bgColor.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render styles text word by word so the spaces keep the background too.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	wordStyle := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return wordStyle.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = wordStyle.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns a single styled space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n styled spaces.
func (b BgStyle) Spaces(n int) string {
	return lipgloss.NewStyle().Background(b.bg).Render(strings.Repeat(" ", n))
}

// Join joins parts with a styled separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, lipgloss.NewStyle().Background(b.bg).Render(sep))
}

// renderTitledBox renders content in a box with the title in the top border:
// ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColorStr, bgColorStr := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColorStr, bgColorStr = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := maxInt(width-2, 0)
	titleWidth := lipgloss.Width(title)
	leftPad := maxInt((innerWidth-titleWidth-2)/2, 0)
	rightPad := maxInt(innerWidth-titleWidth-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	lines := strings.Split(content, "\n")
	boxHeight := maxInt(height-2, 0)

	rows := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+contentStyle.Render(line)+bg.Render("│", borderStyle))
	}

	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}

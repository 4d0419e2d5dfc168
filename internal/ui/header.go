package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/present"
)

const (
	statsLoadingText = "Loading statistics..."
	statsOfflineText = "Unable to load statistics"
)

// renderHeader renders the title bar with the statistics banner.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("hansard", styles.Logo)}
	parts = append(parts, m.statsParts(styles, bg)...)

	if m.width >= LayoutCompactWidth && m.apiBase != "" {
		parts = append(parts,
			bg.Render("api", styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(m.apiBase, 40), styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// statsParts renders the banner segments for the current snapshot.
func (m Model) statsParts(styles Styles, bg BgStyle) []string {
	snap := m.snapshot
	switch {
	case snap.IsOffline():
		return []string{bg.Render(statsOfflineText, styles.DangerText)}
	case !snap.HasStats && snap.LastError != nil:
		return []string{bg.Render("Statistics unavailable, retrying...", styles.WarningText)}
	case !snap.HasStats:
		return []string{bg.Render(statsLoadingText, styles.MutedText)}
	}

	stats := snap.Stats
	label := func(name, value string) string {
		return bg.Render(name, styles.MutedText) + bg.Space() + bg.Render(value, styles.Text)
	}

	parts := []string{
		label("MPs:", present.FormatCount(stats.TotalMembers)),
		label("Parties:", present.FormatCount(len(stats.Parties))),
		label("Interests:", present.FormatCount(stats.TotalInterests)),
	}
	if m.width >= LayoutCompactWidth {
		if synced := stats.ParsedLastSync(); !synced.IsZero() {
			parts = append(parts, label("Synced:", present.FormatDate(synced)))
		}
	}
	if snap.LastError != nil {
		// Stale figures from an earlier poll.
		parts = append(parts, bg.Render("(stale)", styles.WarningText))
	}
	return parts
}

// renderTabs renders the view switcher.
func (m Model) renderTabs() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	registry := m.nav.Registry()

	tabs := []struct {
		key  string
		view nav.View
	}{
		{"1", nav.ViewHome},
		{"2", nav.ViewResearch},
		{"3", nav.ViewAbout},
	}

	var rendered []string
	for _, tab := range tabs {
		text := fmt.Sprintf("%s %s", tab.key, strings.TrimSuffix(nav.TitleFor(tab.view), titleSuffix))
		if registry.Visible(tab.view) {
			rendered = append(rendered, styles.ActiveTab.Render(text))
		} else {
			rendered = append(rendered, styles.Tab.Render(text))
		}
	}
	if registry.Visible(nav.ViewProfile) {
		rendered = append(rendered, styles.ActiveTab.Render(strings.TrimSuffix(nav.TitleFor(nav.ViewProfile), titleSuffix)))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		Width(m.width).
		Render(strings.Join(rendered, " "))
}

// renderFooter renders the key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints []string
	if m.typing {
		hints = []string{
			bg.Render("enter", styles.AccentText) + bg.Space() + bg.Render("Search", styles.MutedText),
			bg.Render("esc", styles.AccentText) + bg.Space() + bg.Render("Leave input", styles.MutedText),
		}
	} else {
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Space()+bg.Render(h.Desc, styles.MutedText))
		}
	}
	return styles.Footer.Width(m.width).Render(bg.Join(hints, "  "))
}

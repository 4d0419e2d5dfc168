package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/parliament"
	"github.com/five82/hansard/internal/present"
)

const (
	interestsFailedText  = "Failed to load interests. Please try again."
	noInterestsTitle     = "No Financial Interests Recorded"
	noInterestsSubtitle  = "This MP has no registered financial interests in our database."
	profileLoadingText   = "Loading MP profile..."
	interestsLoadingText = "Loading interests..."
)

// renderProfile renders the member card and grouped interests.
func (m Model) renderProfile(width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	profile := m.nav.Profile()

	if profile.Entity == nil {
		return m.spinner.View() + bg.Space() + bg.Render(profileLoadingText, styles.InfoText)
	}

	var b strings.Builder
	b.WriteString(m.renderMemberCard(*profile.Entity, width))
	b.WriteString("\n\n")
	b.WriteString(bg.Render("Financial Interests", styles.Text.Bold(true)))
	b.WriteString("\n")
	b.WriteString(bg.Render(strings.Repeat("─", maxInt(width, 1)), styles.FaintText))
	b.WriteString("\n")
	b.WriteString(m.renderInterests(profile, width, styles, bg))
	return b.String()
}

// renderMemberCard renders the identity block and headline figures.
func (m Model) renderMemberCard(e parliament.Entity, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	partyColor := m.theme.PartyColor(e.Party)

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(partyColor)).
		Bold(true).
		Padding(0, 1).
		Render(present.Initials(e.Name))

	partyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(partyColor)).
		Background(lipgloss.Color(m.theme.FocusBg)).
		Bold(true)

	identity := []string{
		bg.Render(e.Name, styles.Text.Bold(true)),
		bg.Render(e.Party, partyStyle),
		bg.Render(e.Constituency, styles.MutedText),
	}
	if e.CurrentStatus {
		identity = append(identity, bg.Render("Sitting MP", styles.SuccessText))
	} else {
		identity = append(identity, bg.Render("Former MP", styles.FaintText))
	}
	if e.HasPortrait() {
		identity = append(identity, bg.Render("Portrait: "+truncateMiddle(present.PortraitText(e), maxInt(width-16, 10)), styles.FaintText))
	}

	card := lipgloss.JoinHorizontal(lipgloss.Top, badge, bg.Spaces(2), strings.Join(identity, "\n"))

	fact := func(label, value string) string {
		return bg.Render(label, styles.MutedText) + bg.Space() + bg.Render(value, styles.Text.Bold(true))
	}
	facts := []string{
		fact("Interests", present.FormatCount(e.InterestCount)),
		fact("Influence (CRI)", present.Score(e.InfluenceScore)),
		fact("Conflict", present.Score(e.ConflictScore)),
		fact("Updated", present.FormatDate(e.ParsedLastUpdated())),
	}

	if width >= LayoutTwoColumnWidth {
		return card + "\n\n" + bg.Join(facts, "    ")
	}
	return card + "\n\n" + strings.Join(facts, "\n")
}

// renderInterests renders the interests panel for the current phase.
func (m Model) renderInterests(profile nav.ProfileData, width int, styles Styles, bg BgStyle) string {
	switch profile.InterestsPhase {
	case nav.InterestsPending, nav.InterestsLoading:
		return m.spinner.View() + bg.Space() + bg.Render(interestsLoadingText, styles.InfoText)
	case nav.InterestsFailed:
		return bg.Render(interestsFailedText, styles.DangerText)
	}

	if len(profile.Interests) == 0 {
		return bg.Render(noInterestsTitle, styles.Text.Bold(true)) + "\n" +
			bg.Render(noInterestsSubtitle, styles.MutedText)
	}

	var b strings.Builder
	for i, group := range present.GroupBySector(profile.Interests) {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("%s (%d)", group.Label, len(group.Records))
		b.WriteString(bg.Render(header, styles.AccentText.Bold(true)))
		b.WriteString("\n")
		for _, rec := range group.Records {
			b.WriteString(m.renderInterest(rec, width, styles, bg))
		}
	}
	return b.String()
}

// renderInterest renders one record as a bullet with its details.
func (m Model) renderInterest(rec parliament.InterestRecord, width int, styles Styles, bg BgStyle) string {
	var b strings.Builder

	category := strings.TrimSpace(rec.Category)
	if category == "" {
		category = "Interest"
	}
	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Background)).
		Background(lipgloss.Color(m.theme.Muted)).
		Padding(0, 1).
		Render(truncate(category, 40))

	confidenceStyle := styles.SuccessText
	if _, ok := present.ConfidencePercent(rec); !ok {
		confidenceStyle = styles.WarningText
	}
	b.WriteString(bg.Render("•", styles.AccentText) + bg.Space() + badge + bg.Space() +
		bg.Render(present.ConfidenceLabel(rec), confidenceStyle))
	if !rec.IsCurrent {
		b.WriteString(bg.Space() + bg.Render("(historical)", styles.FaintText))
	}
	b.WriteString("\n")

	for _, line := range wrap(rec.Summary, width-2) {
		b.WriteString(bg.Spaces(2) + bg.Render(line, styles.Text))
		b.WriteString("\n")
	}

	var details []string
	if payer := rec.PayerName(); payer != "" {
		details = append(details, bg.Render("Organisation:", styles.MutedText)+bg.Space()+bg.Render(payer, styles.Text))
	}
	details = append(details, bg.Render("Value:", styles.MutedText)+bg.Space()+bg.Render(present.FormatValue(rec.Value), styles.Text))
	if registered := rec.ParsedRegisteredDate(); !registered.IsZero() {
		details = append(details, bg.Render("Registered:", styles.MutedText)+bg.Space()+bg.Render(present.FormatDate(registered), styles.Text))
	}
	b.WriteString(bg.Spaces(2) + bg.Join(details, "   "))
	b.WriteString("\n")
	return b.String()
}

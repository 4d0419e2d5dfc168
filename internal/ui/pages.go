package ui

import "strings"

var researchParagraphs = []string{
	"Every MP must declare financial interests that might reasonably be thought to influence their actions in Parliament: employment, donations, gifts, visits, shareholdings and property.",
	"hansard reads those declarations from the Register of Members' Financial Interests and tags each one with the economic sector it relates to, the organisation paying and an estimated value.",
	"Influence (CRI) combines how closely an MP's votes track their declared sectors with how large those interests are. Conflict measures the share of divisions touching a sector the MP holds interests in. Both are averaged across all scored divisions.",
	"Sector tags are machine-generated. Records marked \"Not processed\" have not been tagged yet and their confidence is not shown.",
}

var aboutParagraphs = []string{
	"hansard is a terminal client for exploring the financial interests of Members of Parliament.",
	"Search by postcode, constituency or name. When the MP has been imported you get their profile and every declared interest grouped by sector.",
	"Data comes from the UK Parliament Members and Interests APIs. Figures are only as current as the last sync shown in the header.",
}

func (m Model) renderResearch(width int) string {
	return m.renderArticle("How the figures are built", researchParagraphs, width)
}

func (m Model) renderAbout(width int) string {
	return m.renderArticle("About hansard", aboutParagraphs, width)
}

func (m Model) renderArticle(heading string, paragraphs []string, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	var b strings.Builder
	b.WriteString(bg.Render(heading, styles.Text.Bold(true)))
	b.WriteString("\n")
	for _, p := range paragraphs {
		b.WriteString("\n")
		for _, line := range wrap(p, width) {
			b.WriteString(bg.Render(line, styles.Text))
			b.WriteString("\n")
		}
	}
	return b.String()
}

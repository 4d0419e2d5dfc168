// Package present turns raw API records into display-ready values. Every
// function here is pure.
package present

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/hansard/internal/parliament"
)

// UncategorizedLabel is the group label for records without a sector.
const UncategorizedLabel = "Uncategorized"

const (
	notDisclosedLabel = "Value not disclosed"
	notProcessedLabel = "Not processed"
	unknownDateLabel  = "Unknown"
	displayDate       = "2 January 2006"
)

var printer = message.NewPrinter(language.BritishEnglish)

// SectorGroup is a labelled run of records sharing a sector.
type SectorGroup struct {
	Label   string
	Records []parliament.InterestRecord
}

// GroupBySector buckets records by sector and orders buckets by label
// (byte-wise, case-sensitive). Records keep their input order inside a
// bucket. The input slice is not modified.
func GroupBySector(records []parliament.InterestRecord) []SectorGroup {
	buckets := make(map[string][]parliament.InterestRecord)
	for _, rec := range records {
		label := rec.SectorName()
		if label == "" {
			label = UncategorizedLabel
		}
		buckets[label] = append(buckets[label], rec)
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	groups := make([]SectorGroup, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, SectorGroup{Label: label, Records: buckets[label]})
	}
	return groups
}

// ConfidencePercent returns round(confidence*100). ok is false for
// unprocessed records, whose confidence must not be shown.
func ConfidencePercent(rec parliament.InterestRecord) (pct int, ok bool) {
	if !rec.Processed {
		return 0, false
	}
	var c float64
	if rec.Confidence != nil {
		c = *rec.Confidence
	}
	return int(math.Round(c * 100)), true
}

// ConfidenceLabel renders the confidence indicator for a record.
func ConfidenceLabel(rec parliament.InterestRecord) string {
	pct, ok := ConfidencePercent(rec)
	if !ok {
		return notProcessedLabel
	}
	return fmt.Sprintf("%d%% confidence", pct)
}

// FormatValue renders an estimated value as grouped-thousands sterling.
// Nil and zero both mean the value was not disclosed.
func FormatValue(value *float64) string {
	if value == nil || *value == 0 {
		return notDisclosedLabel
	}
	v := *value
	if v == math.Trunc(v) {
		return printer.Sprintf("£%.0f", v)
	}
	return printer.Sprintf("£%.2f", v)
}

// FormatCount renders a count with grouped thousands ("4,210").
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// Initials concatenates the first character of each whitespace-separated
// token in name.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		for _, r := range token {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

// PortraitText returns the portrait URL, or the initials fallback when the
// entity has no portrait.
func PortraitText(e parliament.Entity) string {
	if e.HasPortrait() {
		return strings.TrimSpace(e.PortraitURL)
	}
	return Initials(e.Name)
}

// FormatDate renders t like "2 January 2006".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return unknownDateLabel
	}
	return t.Format(displayDate)
}

// Score renders a derived score with two decimals.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

var partyKeys = []struct{ match, key string }{
	{"labour", "labour"},
	{"conservative", "conservative"},
	{"snp", "snp"},
	{"liberal", "libdem"},
	{"green", "green"},
}

// PartyKey maps a party name onto a colour key, "" when unrecognised.
func PartyKey(party string) string {
	lower := strings.ToLower(party)
	for _, p := range partyKeys {
		if strings.Contains(lower, p.match) {
			return p.key
		}
	}
	return ""
}

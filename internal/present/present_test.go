package present

import (
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/hansard/internal/parliament"
)

func strPtr(s string) *string    { return &s }
func fltPtr(f float64) *float64 { return &f }

func TestGroupBySector_EnergyAndUncategorized(t *testing.T) {
	records := []parliament.InterestRecord{
		{ID: 1, Sector: strPtr("Energy")},
		{ID: 2, Sector: nil},
		{ID: 3, Sector: strPtr("Energy")},
	}

	groups := GroupBySector(records)
	require.Len(t, groups, 2)
	assert.Equal(t, "Energy", groups[0].Label)
	assert.Equal(t, UncategorizedLabel, groups[1].Label)
	require.Len(t, groups[0].Records, 2)
	assert.Equal(t, int64(1), groups[0].Records[0].ID)
	assert.Equal(t, int64(3), groups[0].Records[1].ID)
	require.Len(t, groups[1].Records, 1)
	assert.Equal(t, int64(2), groups[1].Records[0].ID)
}

func TestGroupBySector_BlankSectorIsUncategorized(t *testing.T) {
	groups := GroupBySector([]parliament.InterestRecord{
		{ID: 1, Sector: strPtr("   ")},
		{ID: 2, Sector: strPtr("")},
	})
	require.Len(t, groups, 1)
	assert.Equal(t, UncategorizedLabel, groups[0].Label)
	assert.Len(t, groups[0].Records, 2)
}

func TestGroupBySector_CaseSensitiveOrder(t *testing.T) {
	groups := GroupBySector([]parliament.InterestRecord{
		{Sector: strPtr("energy")},
		{Sector: strPtr("Finance")},
		{Sector: strPtr("Energy")},
	})
	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"Energy", "Finance", "energy"}, labels)
}

func TestGroupBySector_Empty(t *testing.T) {
	assert.Empty(t, GroupBySector(nil))
}

func genRecords() gopter.Gen {
	sectors := gen.OneConstOf("", "Energy", "Finance", "defence", "Media", "Uncategorized")
	return gen.SliceOf(sectors, reflect.TypeOf("")).Map(func(names []string) []parliament.InterestRecord {
		out := make([]parliament.InterestRecord, len(names))
		for i, name := range names {
			out[i] = parliament.InterestRecord{ID: int64(i)}
			if name != "" {
				out[i].Sector = strPtr(name)
			}
		}
		return out
	})
}

func TestGroupBySector_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("groups are sorted by label", prop.ForAll(
		func(records []parliament.InterestRecord) bool {
			groups := GroupBySector(records)
			return sort.SliceIsSorted(groups, func(i, j int) bool { return groups[i].Label < groups[j].Label })
		},
		genRecords(),
	))

	properties.Property("within-group order follows input order", prop.ForAll(
		func(records []parliament.InterestRecord) bool {
			total := 0
			for _, g := range GroupBySector(records) {
				total += len(g.Records)
				for i := 1; i < len(g.Records); i++ {
					if g.Records[i-1].ID >= g.Records[i].ID {
						return false
					}
				}
			}
			return total == len(records)
		},
		genRecords(),
	))

	properties.Property("grouping is deterministic", prop.ForAll(
		func(records []parliament.InterestRecord) bool {
			return reflect.DeepEqual(GroupBySector(records), GroupBySector(records))
		},
		genRecords(),
	))

	properties.TestingRun(t)
}

func TestConfidenceLabel(t *testing.T) {
	assert.Equal(t, "87% confidence", ConfidenceLabel(parliament.InterestRecord{Processed: true, Confidence: fltPtr(0.866)}))
	assert.Equal(t, "0% confidence", ConfidenceLabel(parliament.InterestRecord{Processed: true}))
	assert.Equal(t, "Not processed", ConfidenceLabel(parliament.InterestRecord{Processed: false, Confidence: fltPtr(0.99)}))

	_, ok := ConfidencePercent(parliament.InterestRecord{Confidence: fltPtr(0.5)})
	assert.False(t, ok, "unprocessed confidence must not be reported")
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		name string
		in   *float64
		want string
	}{
		{"nil", nil, "Value not disclosed"},
		{"zero", fltPtr(0), "Value not disclosed"},
		{"small", fltPtr(500), "£500"},
		{"thousands", fltPtr(12500), "£12,500"},
		{"millions", fltPtr(1250000), "£1,250,000"},
		{"fractional", fltPtr(1234.5), "£1,234.50"},
		{"beyond int64", fltPtr(1e19), "£10,000,000,000,000,000,000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatValue(tc.in); got != tc.want {
				t.Fatalf("FormatValue = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "650", FormatCount(650))
	assert.Equal(t, "12,345", FormatCount(12345))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "JD", Initials("Jane Doe"))
	assert.Equal(t, "M", Initials("Madonna"))
	assert.Equal(t, "JRM", Initials("  Jacob   Rees  Mogg "))
	assert.Equal(t, "ÉM", Initials("Émile Moreau"))
	assert.Equal(t, "", Initials("   "))
}

func TestPortraitText(t *testing.T) {
	assert.Equal(t, "JD", PortraitText(parliament.Entity{Name: "Jane Doe"}))
	assert.Equal(t, "https://img/1.jpg", PortraitText(parliament.Entity{Name: "Jane Doe", PortraitURL: " https://img/1.jpg "}))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Unknown", FormatDate(time.Time{}))
	assert.Equal(t, "3 March 2025", FormatDate(time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)))
}

func TestPartyKey(t *testing.T) {
	cases := map[string]string{
		"Labour":                      "labour",
		"Labour (Co-op)":              "labour",
		"Conservative":                "conservative",
		"Scottish National Party SNP": "snp",
		"Liberal Democrat":            "libdem",
		"Green Party":                 "green",
		"Independent":                 "",
	}
	for party, want := range cases {
		assert.Equal(t, want, PartyKey(party), party)
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, "1.25", Score(1.249999))
	assert.Equal(t, "0.00", Score(0))
}

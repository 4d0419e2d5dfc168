package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/five82/hansard/internal/parliament"
)

//go:embed dataset.json
var defaultDataset []byte

// Member is an imported MP with their declared interests.
type Member struct {
	Profile   parliament.Entity           `json:"profile"`
	Interests []parliament.InterestRecord `json:"interests"`
}

// UpstreamMember is an MP known to Parliament but not imported locally.
// Searches that land on one produce a partial match.
type UpstreamMember struct {
	Name         string `json:"name"`
	Party        string `json:"party"`
	Constituency string `json:"constituency"`
}

// Dataset is the in-memory database behind the demo API.
type Dataset struct {
	Postcodes map[string]string `json:"postcodes"`
	Members   []Member          `json:"members"`
	Upstream  []UpstreamMember  `json:"upstream"`

	byID map[int64]int
}

// DefaultDataset returns the dataset bundled with the binary.
func DefaultDataset() (*Dataset, error) {
	return LoadDataset(bytes.NewReader(defaultDataset))
}

// LoadDataset decodes a dataset and derives the per-member interest counts.
func LoadDataset(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	d.byID = make(map[int64]int, len(d.Members))
	normalized := make(map[string]string, len(d.Postcodes))
	for code, constituency := range d.Postcodes {
		normalized[normalizePostcode(code)] = constituency
	}
	d.Postcodes = normalized

	for i := range d.Members {
		m := &d.Members[i]
		if m.Profile.ID <= 0 {
			return nil, fmt.Errorf("member %q: missing member_id", m.Profile.Name)
		}
		if _, dup := d.byID[m.Profile.ID]; dup {
			return nil, fmt.Errorf("member %d: duplicate member_id", m.Profile.ID)
		}
		if m.Interests == nil {
			m.Interests = []parliament.InterestRecord{}
		}
		m.Profile.InterestCount = len(m.Interests)
		d.byID[m.Profile.ID] = i
	}
	return &d, nil
}

// Member returns the member with id.
func (d *Dataset) Member(id int64) (Member, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Member{}, false
	}
	return d.Members[i], true
}

// SearchResult is the /api/search/ payload.
type SearchResult struct {
	InDatabase   bool   `json:"in_database"`
	MemberID     int64  `json:"member_id,omitempty"`
	Name         string `json:"name"`
	Party        string `json:"party"`
	Constituency string `json:"constituency"`
	PortraitURL  string `json:"portrait_url,omitempty"`
	TotalMatches int    `json:"total_matches,omitempty"`
	SearchMethod string `json:"search_method"`
}

// Search resolves a postcode, constituency or name. Postcodes are tried
// first; a postcode miss falls through to the text match.
func (d *Dataset) Search(query string) (SearchResult, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResult{}, false
	}

	if looksLikePostcode(query) {
		if constituency, ok := d.postcodeConstituency(query); ok {
			for _, m := range d.Members {
				if strings.EqualFold(m.Profile.Constituency, constituency) {
					return memberResult(m, 1, "postcode"), true
				}
			}
			for _, u := range d.Upstream {
				if strings.EqualFold(u.Constituency, constituency) {
					return upstreamResult(u, "postcode"), true
				}
			}
		}
	}

	needle := strings.ToLower(query)
	var matches []Member
	for _, m := range d.Members {
		if !m.Profile.CurrentStatus {
			continue
		}
		if strings.Contains(strings.ToLower(m.Profile.Constituency), needle) ||
			strings.Contains(strings.ToLower(m.Profile.Name), needle) {
			matches = append(matches, m)
		}
	}
	if len(matches) > 0 {
		return memberResult(matches[0], len(matches), "name"), true
	}

	for _, u := range d.Upstream {
		if strings.Contains(strings.ToLower(u.Constituency), needle) ||
			strings.Contains(strings.ToLower(u.Name), needle) {
			return upstreamResult(u, "name"), true
		}
	}
	return SearchResult{}, false
}

// Stats summarises the sitting members.
func (d *Dataset) Stats() parliament.Stats {
	stats := parliament.Stats{Parties: []string{}}
	seen := make(map[string]bool)
	var latest string
	for _, m := range d.Members {
		stats.TotalInterests += len(m.Interests)
		if m.Profile.LastUpdated > latest {
			latest = m.Profile.LastUpdated
		}
		if !m.Profile.CurrentStatus {
			continue
		}
		stats.TotalMembers++
		if !seen[m.Profile.Party] {
			seen[m.Profile.Party] = true
			stats.Parties = append(stats.Parties, m.Profile.Party)
		}
	}
	sort.Strings(stats.Parties)
	stats.LastSync = latest
	return stats
}

// ListFilter narrows /api/members/.
type ListFilter struct {
	Party        string
	Constituency string
	Page         int
	PageSize     int
}

// List returns one page of sitting members plus the total match count.
func (d *Dataset) List(f ListFilter) ([]parliament.Entity, int) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 50
	}

	var matched []parliament.Entity
	for _, m := range d.Members {
		p := m.Profile
		if !p.CurrentStatus {
			continue
		}
		if f.Party != "" && !strings.EqualFold(p.Party, f.Party) {
			continue
		}
		if f.Constituency != "" && !strings.Contains(strings.ToLower(p.Constituency), strings.ToLower(f.Constituency)) {
			continue
		}
		matched = append(matched, p)
	}

	start := (f.Page - 1) * f.PageSize
	if start >= len(matched) {
		return []parliament.Entity{}, len(matched)
	}
	end := start + f.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], len(matched)
}

func (d *Dataset) postcodeConstituency(query string) (string, bool) {
	code := normalizePostcode(query)
	// Longest outward-code prefix wins, so "N1" does not shadow "N12".
	best := ""
	for prefix := range d.Postcodes {
		if strings.HasPrefix(code, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return "", false
	}
	return d.Postcodes[best], true
}

func memberResult(m Member, total int, method string) SearchResult {
	return SearchResult{
		InDatabase:   true,
		MemberID:     m.Profile.ID,
		Name:         m.Profile.Name,
		Party:        m.Profile.Party,
		Constituency: m.Profile.Constituency,
		PortraitURL:  m.Profile.PortraitURL,
		TotalMatches: total,
		SearchMethod: method,
	}
}

func upstreamResult(u UpstreamMember, method string) SearchResult {
	return SearchResult{
		Name:         u.Name,
		Party:        u.Party,
		Constituency: u.Constituency,
		SearchMethod: method,
	}
}

func looksLikePostcode(query string) bool {
	if len(query) > 8 {
		return false
	}
	return strings.IndexFunc(query, unicode.IsDigit) >= 0
}

func normalizePostcode(code string) string {
	return strings.ToUpper(strings.ReplaceAll(code, " ", ""))
}

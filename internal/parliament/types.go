package parliament

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// searchResponse mirrors the payload returned by /api/search/.
type searchResponse struct {
	InDatabase   bool   `json:"in_database"`
	MemberID     int64  `json:"member_id"`
	Name         string `json:"name"`
	Party        string `json:"party"`
	Constituency string `json:"constituency"`
	PortraitURL  string `json:"portrait_url"`
	Error        string `json:"error"`
}

// errorResponse is the body the API sends alongside 4xx/5xx statuses.
type errorResponse struct {
	Error string `json:"error"`
}

// Entity is the profile record for a located MP.
type Entity struct {
	ID             int64   `json:"member_id"`
	Name           string  `json:"name"`
	Party          string  `json:"party"`
	Constituency   string  `json:"constituency"`
	PortraitURL    string  `json:"portrait_url"`
	CurrentStatus  bool    `json:"current_status"`
	InterestCount  int     `json:"interest_count"`
	ConflictScore  float64 `json:"avg_conflict"`
	InfluenceScore float64 `json:"avg_cri"`
	LastUpdated    string  `json:"last_updated"`
}

// ParsedLastUpdated returns LastUpdated as time.Time, zero when unparseable.
func (e Entity) ParsedLastUpdated() time.Time {
	return parseTime(e.LastUpdated)
}

// HasPortrait reports whether the API supplied a portrait image.
func (e Entity) HasPortrait() bool {
	return strings.TrimSpace(e.PortraitURL) != ""
}

// InterestRecord is one declared financial-interest disclosure.
type InterestRecord struct {
	ID             int64    `json:"id"`
	Category       string   `json:"category"`
	CategoryCode   string   `json:"category_code"`
	Summary        string   `json:"summary"`
	RegisteredDate *string  `json:"registered_date"`
	Sector         *string  `json:"ai_sector"`
	Confidence     *float64 `json:"ai_confidence"`
	Payer          *string  `json:"ai_payer"`
	Value          *float64 `json:"ai_value"`
	IsCurrent      bool     `json:"is_current"`
	Processed      bool     `json:"processed"`
}

// SectorName returns the trimmed sector, or "" when the record has none.
func (r InterestRecord) SectorName() string {
	if r.Sector == nil {
		return ""
	}
	return strings.TrimSpace(*r.Sector)
}

// PayerName returns the trimmed payer, or "" when the record has none.
func (r InterestRecord) PayerName() string {
	if r.Payer == nil {
		return ""
	}
	return strings.TrimSpace(*r.Payer)
}

// ParsedRegisteredDate returns the registration date, zero when absent.
func (r InterestRecord) ParsedRegisteredDate() time.Time {
	if r.RegisteredDate == nil {
		return time.Time{}
	}
	return parseTime(*r.RegisteredDate)
}

// interestsResponse mirrors /api/members/<id>/interests/.
type interestsResponse struct {
	MemberID       int64            `json:"member_id"`
	Name           string           `json:"name"`
	TotalInterests int              `json:"total_interests"`
	Interests      []InterestRecord `json:"interests"`
}

// Stats mirrors /api/stats/ and feeds the header banner.
type Stats struct {
	TotalMembers   int      `json:"total_members"`
	Parties        []string `json:"parties"`
	TotalInterests int      `json:"total_interests"`
	LastSync       string   `json:"last_sync"`
}

// ParsedLastSync returns the last sync time, zero when absent.
func (s Stats) ParsedLastSync() time.Time {
	return parseTime(s.LastSync)
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(dateLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/hansard/internal/config"
	"github.com/five82/hansard/internal/parliament"
	"github.com/five82/hansard/internal/present"
	"github.com/five82/hansard/internal/search"
)

// ErrNoMatch is returned by Lookup when the query finds nobody.
var ErrNoMatch = errors.New("no matching MP")

// ProfileLoader is what a headless lookup needs from the API.
type ProfileLoader interface {
	Search(ctx context.Context, query string) parliament.SearchOutcome
	FetchEntity(ctx context.Context, id int64) (parliament.Entity, error)
	FetchInterests(ctx context.Context, id int64) ([]parliament.InterestRecord, error)
}

// RunLookup loads the config and runs Lookup against the configured API.
func RunLookup(ctx context.Context, configPath, query string, w io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	client, err := parliament.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	return Lookup(ctx, client, query, w)
}

// Lookup searches for query and prints the matching profile with its
// interests grouped by sector. A partial match prints what is known and
// returns nil.
func Lookup(ctx context.Context, loader ProfileLoader, query string, w io.Writer) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("lookup: empty query")
	}

	switch outcome := loader.Search(ctx, query).(type) {
	case parliament.Found:
		return printProfile(ctx, loader, outcome.MemberID, w)
	case parliament.PartialMatch:
		fmt.Fprintln(w, outcome.Name)
		fmt.Fprintf(w, "Party: %s\n", outcome.Party)
		fmt.Fprintf(w, "Constituency: %s\n", outcome.Constituency)
		fmt.Fprintln(w, search.PartialMatchHint)
		return nil
	case parliament.NotFound:
		return fmt.Errorf("%s: %w", outcome.Message, ErrNoMatch)
	case parliament.TransportError:
		return fmt.Errorf("%s: %w", outcome.Message, parliament.ErrTransport)
	default:
		return fmt.Errorf("search %q: unexpected outcome %T", query, outcome)
	}
}

func printProfile(ctx context.Context, loader ProfileLoader, id int64, w io.Writer) error {
	entity, err := loader.FetchEntity(ctx, id)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	status := "Former MP"
	if entity.CurrentStatus {
		status = "Sitting MP"
	}
	fmt.Fprintln(w, entity.Name)
	fmt.Fprintf(w, "%s · %s · %s\n", entity.Party, entity.Constituency, status)
	fmt.Fprintf(w, "Interests: %s   Influence (CRI): %s   Conflict: %s   Updated: %s\n",
		present.FormatCount(entity.InterestCount),
		present.Score(entity.InfluenceScore),
		present.Score(entity.ConflictScore),
		present.FormatDate(entity.ParsedLastUpdated()))

	records, err := loader.FetchInterests(ctx, id)
	if err != nil {
		return fmt.Errorf("load interests: %w", err)
	}
	fmt.Fprintln(w)
	if len(records) == 0 {
		fmt.Fprintln(w, "No Financial Interests Recorded")
		return nil
	}

	for _, group := range present.GroupBySector(records) {
		fmt.Fprintf(w, "%s (%d)\n", group.Label, len(group.Records))
		for _, rec := range group.Records {
			line := fmt.Sprintf("  • %s · %s", rec.Category, present.ConfidenceLabel(rec))
			if !rec.IsCurrent {
				line += " (historical)"
			}
			fmt.Fprintln(w, line)
			if summary := strings.TrimSpace(rec.Summary); summary != "" {
				fmt.Fprintf(w, "    %s\n", summary)
			}

			details := []string{"Value: " + present.FormatValue(rec.Value)}
			if payer := rec.PayerName(); payer != "" {
				details = append([]string{"Organisation: " + payer}, details...)
			}
			if registered := rec.ParsedRegisteredDate(); !registered.IsZero() {
				details = append(details, "Registered: "+present.FormatDate(registered))
			}
			fmt.Fprintf(w, "    %s\n", strings.Join(details, " · "))
		}
	}
	return nil
}

// Package search holds the search box's transient state: whether a lookup is
// in flight and what notice, if any, sits under the box.
package search

import (
	"context"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/parliament"
)

// Searcher resolves a free-text query. parliament.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, query string) parliament.SearchOutcome
}

// Phase is the form's busy state.
type Phase int

const (
	Idle Phase = iota
	Submitting
)

func (p Phase) String() string {
	if p == Submitting {
		return "submitting"
	}
	return "idle"
}

// NoticeKind picks the notice styling.
type NoticeKind int

const (
	Info NoticeKind = iota
	Warning
)

// PartialMatchHint is shown under a partial match.
const PartialMatchHint = "This MP is not yet in our database."

// Notice is a dismissible message under the search box.
type Notice struct {
	Kind  NoticeKind
	Title string
	Lines []string
}

// ResultMsg delivers a search outcome to the event loop.
type ResultMsg struct {
	Query   string
	Outcome parliament.SearchOutcome
}

// Form is the search controller. Like nav.Controller it is only touched from
// the UI event loop.
type Form struct {
	ctx      context.Context
	searcher Searcher
	phase    Phase
	notice   *Notice
	last     string
}

// NewForm returns an idle form.
func NewForm(ctx context.Context, searcher Searcher) *Form {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Form{ctx: ctx, searcher: searcher}
}

// Phase returns the busy state.
func (f *Form) Phase() Phase { return f.phase }

// Busy reports whether the submit control is disabled.
func (f *Form) Busy() bool { return f.phase == Submitting }

// LastQuery returns the most recent trimmed query that was submitted.
func (f *Form) LastQuery() string { return f.last }

// Notice returns the current notice.
func (f *Form) Notice() (Notice, bool) {
	if f.notice == nil {
		return Notice{}, false
	}
	n := *f.notice
	n.Lines = append([]string(nil), n.Lines...)
	return n, true
}

// Dismiss clears the notice.
func (f *Form) Dismiss() { f.notice = nil }

// Submit starts a lookup for raw. Blank input and submissions while a lookup
// is in flight return nil and change nothing.
func (f *Form) Submit(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	if query == "" || f.phase == Submitting {
		return nil
	}
	f.phase = Submitting
	f.notice = nil
	f.last = query

	ctx, searcher := f.ctx, f.searcher
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("search %q panicked: %v", query, r)
				msg = ResultMsg{Query: query, Outcome: parliament.NewTransportError()}
			}
		}()
		outcome := searcher.Search(ctx, query)
		if outcome == nil {
			outcome = parliament.NewTransportError()
		}
		return ResultMsg{Query: query, Outcome: outcome}
	}
}

// Handle applies a search result. The form is always idle afterwards. When
// ok is true the caller should navigate to target.
func (f *Form) Handle(msg ResultMsg) (target nav.ViewState, ok bool) {
	defer func() { f.phase = Idle }()

	switch out := msg.Outcome.(type) {
	case parliament.Found:
		f.notice = nil
		target = nav.Profile(out.MemberID)
		if _, isProfile := target.EntityID(); !isProfile {
			f.notice = warning(parliament.NewNotFound("").Message)
			return nav.ViewState{}, false
		}
		return target, true
	case parliament.PartialMatch:
		f.notice = &Notice{
			Kind:  Info,
			Title: out.Name,
			Lines: []string{
				"Party: " + out.Party,
				"Constituency: " + out.Constituency,
				PartialMatchHint,
			},
		}
	case parliament.NotFound:
		f.notice = warning(out.Message)
	case parliament.TransportError:
		f.notice = warning(out.Message)
	default:
		f.notice = warning(parliament.NewTransportError().Message)
	}
	return nav.ViewState{}, false
}

func warning(message string) *Notice {
	if strings.TrimSpace(message) == "" {
		message = parliament.NewTransportError().Message
	}
	return &Notice{Kind: Warning, Title: fmt.Sprintf("Notice: %s", message)}
}

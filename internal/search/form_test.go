package search

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/parliament"
)

type stubSearcher struct {
	outcome parliament.SearchOutcome
	panic   any
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string) parliament.SearchOutcome {
	s.queries = append(s.queries, query)
	if s.panic != nil {
		panic(s.panic)
	}
	return s.outcome
}

func submitAndHandle(t *testing.T, f *Form, raw string) (nav.ViewState, bool) {
	t.Helper()
	cmd := f.Submit(raw)
	require.NotNil(t, cmd)
	require.Equal(t, Submitting, f.Phase())
	msg, ok := cmd().(ResultMsg)
	require.True(t, ok, "command must yield a ResultMsg")
	return f.Handle(msg)
}

func TestSubmit_FoundNavigatesToProfile(t *testing.T) {
	searcher := &stubSearcher{outcome: parliament.Found{MemberID: 42}}
	f := NewForm(context.Background(), searcher)

	target, ok := submitAndHandle(t, f, "  SW1A 1AA ")
	assert.True(t, ok)
	assert.Equal(t, nav.Profile(42), target)
	assert.Equal(t, []string{"SW1A 1AA"}, searcher.queries)
	assert.Equal(t, "SW1A 1AA", f.LastQuery())
	assert.Equal(t, Idle, f.Phase())
	_, hasNotice := f.Notice()
	assert.False(t, hasNotice)
}

func TestSubmit_NotFoundShowsWarning(t *testing.T) {
	msg := "MP not found. Try searching by constituency name or MP name."
	f := NewForm(context.Background(), &stubSearcher{outcome: parliament.NotFound{Message: msg}})

	_, ok := submitAndHandle(t, f, "Nonexistent Place")
	assert.False(t, ok, "no navigation on not found")

	notice, shown := f.Notice()
	require.True(t, shown)
	assert.Equal(t, Warning, notice.Kind)
	assert.Equal(t, "Notice: "+msg, notice.Title)

	f.Dismiss()
	_, shown = f.Notice()
	assert.False(t, shown)
}

func TestSubmit_PartialMatchShowsInfo(t *testing.T) {
	f := NewForm(context.Background(), &stubSearcher{outcome: parliament.PartialMatch{
		Name: "Jane Doe", Party: "Green Party", Constituency: "Brighton Pavilion",
	}})

	_, ok := submitAndHandle(t, f, "Brighton")
	assert.False(t, ok)

	notice, shown := f.Notice()
	require.True(t, shown)
	assert.Equal(t, Info, notice.Kind)
	assert.Equal(t, "Jane Doe", notice.Title)
	assert.Equal(t, []string{"Party: Green Party", "Constituency: Brighton Pavilion", PartialMatchHint}, notice.Lines)
}

func TestSubmit_TransportErrorShowsWarning(t *testing.T) {
	f := NewForm(context.Background(), &stubSearcher{outcome: parliament.NewTransportError()})
	_, ok := submitAndHandle(t, f, "x")
	assert.False(t, ok)
	notice, _ := f.Notice()
	assert.Equal(t, "Notice: Network error. Please try again.", notice.Title)
}

func TestSubmit_PanicBecomesTransportError(t *testing.T) {
	f := NewForm(context.Background(), &stubSearcher{panic: "boom"})
	_, ok := submitAndHandle(t, f, "anything")
	assert.False(t, ok)
	assert.Equal(t, Idle, f.Phase())
	notice, shown := f.Notice()
	require.True(t, shown)
	assert.Equal(t, Warning, notice.Kind)
}

func TestSubmit_NilOutcomeBecomesTransportError(t *testing.T) {
	f := NewForm(context.Background(), &stubSearcher{})
	cmd := f.Submit("q")
	msg := cmd().(ResultMsg)
	assert.IsType(t, parliament.TransportError{}, msg.Outcome)
}

func TestSubmit_BlankIsNoOp(t *testing.T) {
	searcher := &stubSearcher{outcome: parliament.NewNotFound("gone")}
	f := NewForm(context.Background(), searcher)
	_, _ = submitAndHandle(t, f, "first")
	before, _ := f.Notice()

	for _, raw := range []string{"", "   ", "\t\n"} {
		assert.Nil(t, f.Submit(raw), "blank %q", raw)
	}
	after, shown := f.Notice()
	assert.True(t, shown, "blank submit must not clear the notice")
	assert.Equal(t, before, after)
	assert.Equal(t, Idle, f.Phase())
	assert.Len(t, searcher.queries, 1)
}

func TestSubmit_IgnoredWhileSubmitting(t *testing.T) {
	searcher := &stubSearcher{outcome: parliament.Found{MemberID: 1}}
	f := NewForm(context.Background(), searcher)

	first := f.Submit("one")
	require.NotNil(t, first)
	assert.True(t, f.Busy())
	assert.Nil(t, f.Submit("two"))
	assert.Equal(t, "one", f.LastQuery())

	f.Handle(first().(ResultMsg))
	assert.False(t, f.Busy())
	assert.NotNil(t, f.Submit("two"))
}

func TestFoundWithInvalidIDDoesNotNavigate(t *testing.T) {
	f := NewForm(context.Background(), &stubSearcher{outcome: parliament.Found{MemberID: 0}})
	_, ok := submitAndHandle(t, f, "q")
	assert.False(t, ok)
	notice, _ := f.Notice()
	assert.Equal(t, Warning, notice.Kind)
}

func TestFormAlwaysEndsIdle(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every outcome leaves the form idle", prop.ForAll(
		func(kind int, id int64, text string) bool {
			searcher := &stubSearcher{}
			switch kind {
			case 0:
				searcher.outcome = parliament.Found{MemberID: id}
			case 1:
				searcher.outcome = parliament.PartialMatch{Name: text}
			case 2:
				searcher.outcome = parliament.NotFound{Message: text}
			case 3:
				searcher.outcome = parliament.NewTransportError()
			case 4:
				searcher.outcome = nil
			default:
				searcher.panic = text
			}
			f := NewForm(context.Background(), searcher)
			cmd := f.Submit("query")
			if cmd == nil || !f.Busy() {
				return false
			}
			f.Handle(cmd().(ResultMsg))
			return f.Phase() == Idle && !f.Busy()
		},
		gen.IntRange(0, 5),
		gen.Int64Range(-5, 1000),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

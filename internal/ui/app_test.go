package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/parliament"
	"github.com/five82/hansard/internal/prefs"
	"github.com/five82/hansard/internal/search"
	"github.com/five82/hansard/internal/state"
)

type stubLoader struct {
	outcome   parliament.SearchOutcome
	entity    parliament.Entity
	entityErr error
	interests []parliament.InterestRecord
	queries   []string
}

func (s *stubLoader) Search(_ context.Context, query string) parliament.SearchOutcome {
	s.queries = append(s.queries, query)
	return s.outcome
}

func (s *stubLoader) FetchEntity(_ context.Context, id int64) (parliament.Entity, error) {
	if s.entityErr != nil {
		return parliament.Entity{}, s.entityErr
	}
	e := s.entity
	e.ID = id
	return e, nil
}

func (s *stubLoader) FetchInterests(context.Context, int64) ([]parliament.InterestRecord, error) {
	return s.interests, nil
}

func strPtr(s string) *string { return &s }

func newTestModel(t *testing.T, loader *stubLoader, start string) Model {
	t.Helper()
	m := New(Options{
		Loader:    loader,
		Start:     nav.ParseLocation(start),
		PollTick:  time.Millisecond,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	m = settle(m, m.Init())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 60})
	return next.(Model)
}

// settle runs cmd and feeds controller and search results back into the
// model until nothing is left. Timer and spinner messages are dropped so
// the loop terminates.
func settle(m Model, cmd tea.Cmd) Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case search.ResultMsg, nav.EntityLoadedMsg, nav.InterestsLoadedMsg, snapshotMsg:
			next, more := m.Update(msg)
			m = next.(Model)
			queue = append(queue, more)
		}
	}
	return m
}

func press(m Model, keys string) Model {
	var msg tea.KeyMsg
	switch keys {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	return settle(next.(Model), cmd)
}

func submit(m Model, query string) Model {
	m.typing = true
	m.input.Focus()
	m.input.SetValue(query)
	return press(m, "enter")
}

func TestNumberKeysSwitchViews(t *testing.T) {
	m := newTestModel(t, &stubLoader{}, "/")

	m = press(m, "2")
	if !m.nav.Registry().Visible(nav.ViewResearch) {
		t.Fatalf("expected research view, got %v", m.nav.State())
	}
	if !strings.Contains(m.View(), "How the figures are built") {
		t.Fatalf("research page not rendered")
	}

	m = press(m, "3")
	if m.nav.Location().String() != "/about/" {
		t.Fatalf("location = %q, want /about/", m.nav.Location().String())
	}

	m = press(m, "[")
	if m.nav.State() != nav.Research() {
		t.Fatalf("back should return to research, got %v", m.nav.State())
	}
	m = press(m, "]")
	if m.nav.State() != nav.About() {
		t.Fatalf("forward should return to about, got %v", m.nav.State())
	}
}

func TestSearchFoundOpensProfile(t *testing.T) {
	loader := &stubLoader{
		outcome: parliament.Found{MemberID: 172},
		entity: parliament.Entity{
			Name:          "Diane Abbott",
			Party:         "Labour",
			Constituency:  "Hackney North and Stoke Newington",
			CurrentStatus: true,
			InterestCount: 2,
		},
		interests: []parliament.InterestRecord{
			{ID: 1, Category: "Employment and earnings", Summary: "Payment for article", Sector: strPtr("Media"), Processed: true, IsCurrent: true},
			{ID: 2, Category: "Gifts", Summary: "Theatre tickets", IsCurrent: true},
		},
	}
	m := newTestModel(t, loader, "/")

	m = submit(m, "  Hackney North  ")
	if len(loader.queries) != 1 || loader.queries[0] != "Hackney North" {
		t.Fatalf("unexpected queries %#v", loader.queries)
	}
	if m.nav.State() != nav.Profile(172) {
		t.Fatalf("state = %v, want profile 172", m.nav.State())
	}
	if m.typing {
		t.Fatalf("search box should lose focus after a hit")
	}
	if m.form.Busy() {
		t.Fatalf("form should be idle after the result")
	}

	view := m.View()
	for _, want := range []string{"Diane Abbott", "Sitting MP", "Media (1)", "Uncategorized (1)", "Not processed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("profile view missing %q", want)
		}
	}
}

func TestSearchNotFoundShowsDismissibleNotice(t *testing.T) {
	loader := &stubLoader{outcome: parliament.NewNotFound("MP not found")}
	m := newTestModel(t, loader, "/")

	m = submit(m, "zzz")
	if m.nav.State() != nav.Home() {
		t.Fatalf("miss should stay on home, got %v", m.nav.State())
	}
	if !strings.Contains(m.View(), "Notice: MP not found") {
		t.Fatalf("notice not rendered")
	}

	m = press(m, "esc") // leaves the input
	m = press(m, "esc") // dismisses
	if _, ok := m.currentNotice(); ok {
		t.Fatalf("notice should be dismissed")
	}
}

func TestPartialMatchNotice(t *testing.T) {
	loader := &stubLoader{outcome: parliament.PartialMatch{Name: "Jane Doe", Party: "Green", Constituency: "Brighton"}}
	m := newTestModel(t, loader, "/")

	m = submit(m, "Brighton")
	view := m.View()
	for _, want := range []string{"Jane Doe", "Party: Green", "Constituency: Brighton", search.PartialMatchHint} {
		if !strings.Contains(view, want) {
			t.Fatalf("partial match view missing %q", want)
		}
	}
}

func TestProfileFailureReturnsHomeWithNotice(t *testing.T) {
	loader := &stubLoader{entityErr: fmt.Errorf("get member: %w", parliament.ErrTransport)}
	m := newTestModel(t, loader, "/mp/9/")

	if m.nav.State() != nav.Home() {
		t.Fatalf("state = %v, want home", m.nav.State())
	}
	if !strings.Contains(m.View(), "Network error loading profile") {
		t.Fatalf("failure notice not rendered")
	}
}

func TestProfileEmptyInterests(t *testing.T) {
	loader := &stubLoader{entity: parliament.Entity{Name: "New Member"}}
	m := newTestModel(t, loader, "/mp/5/")

	view := m.View()
	if !strings.Contains(view, noInterestsTitle) {
		t.Fatalf("empty-interests title missing")
	}
	if !strings.Contains(view, "Former MP") {
		t.Fatalf("status missing")
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, &stubLoader{}, "/")

	m = press(m, "?")
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = press(m, "2")
	if m.showHelp {
		t.Fatalf("help should close")
	}
	if m.nav.State() != nav.Home() {
		t.Fatalf("key closing help must not navigate")
	}
}

func TestCycleThemePersists(t *testing.T) {
	m := newTestModel(t, &stubLoader{}, "/")

	m = press(m, "T")
	if m.theme.Name != "Slate" {
		t.Fatalf("theme = %q, want Slate", m.theme.Name)
	}
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.Theme != "Slate" {
		t.Fatalf("saved theme = %q, want Slate", p.Theme)
	}
}

func TestQuitRemembersLocation(t *testing.T) {
	m := newTestModel(t, &stubLoader{}, "/")
	m = press(m, "2")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	p, err := prefs.Load(m.prefsPath)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.LastLocation != "/research/" {
		t.Fatalf("last location = %q, want /research/", p.LastLocation)
	}
}

func TestStatsBanner(t *testing.T) {
	store := &state.Store{}
	m := newTestModel(t, &stubLoader{}, "/")
	m.store = store

	m = settle(m, fetchSnapshotCmd(store))
	if !strings.Contains(m.renderHeader(), statsLoadingText) {
		t.Fatalf("expected loading text before first poll")
	}

	store.Update(&parliament.Stats{TotalMembers: 650, Parties: []string{"Labour", "Conservative"}, TotalInterests: 12345}, nil)
	m = settle(m, fetchSnapshotCmd(store))
	header := m.renderHeader()
	for _, want := range []string{"MPs: 650", "Parties: 2", "Interests: 12,345"} {
		if !strings.Contains(header, want) {
			t.Fatalf("header missing %q: %q", want, header)
		}
	}

	store.Update(nil, errors.New("boom"))
	store.Update(nil, errors.New("boom"))
	m = settle(m, fetchSnapshotCmd(store))
	if !strings.Contains(m.renderHeader(), statsOfflineText) {
		t.Fatalf("expected offline text after repeated failures")
	}
}

package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hansard/internal/nav"
	"github.com/five82/hansard/internal/parliament"
	"github.com/five82/hansard/internal/prefs"
	"github.com/five82/hansard/internal/search"
	"github.com/five82/hansard/internal/state"
)

// Loader is what the UI needs from the data layer.
type Loader interface {
	search.Searcher
	nav.EntityLoader
}

var _ Loader = (*parliament.Client)(nil)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    Loader
	Store     *state.Store
	Start     nav.Location
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	APIBase   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	prefsPath string
	pollTick  time.Duration
	apiBase   string
	keys      keyMap

	// Controllers
	nav  *nav.Controller
	form *search.Form

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	typing   bool

	// Components
	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	// Stats banner
	snapshot    state.Snapshot
	lastUpdated time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	start := opts.Start
	if start.Path == "" {
		start = nav.Location{Path: "/"}
	}

	input := textinput.New()
	input.Placeholder = "Postcode, constituency or MP name"
	input.Prompt = "Search › "
	input.CharLimit = 120

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		prefsPath: opts.PrefsPath,
		pollTick:  pollTick,
		apiBase:   opts.APIBase,
		keys:      DefaultKeyMap(),
		nav:       nav.NewController(ctx, opts.Loader, nav.NewMemoryHistory(start), nav.NewRegistry()),
		form:      search.NewForm(ctx, opts.Loader),
		theme:     GetTheme(themeName),
		input:     input,
		spinner:   spin,
		viewport:  viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.nav.Start()}
	cmds = append(cmds,
		tea.SetWindowTitle(m.nav.Title()),
		tickCmd(m.pollTick),
	)
	if m.busy() {
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		var next tea.Model
		next, cmd = m.handleKey(msg)
		m = next.(Model)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeViewport()

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmd = tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()

	case spinner.TickMsg:
		if m.busy() {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case search.ResultMsg:
		if target, ok := m.form.Handle(msg); ok {
			m.typing = false
			m.input.Blur()
			cmd = m.navigate(m.nav.Navigate(target))
		}

	case nav.EntityLoadedMsg, nav.InterestsLoadedMsg:
		before := m.nav.State()
		cmd = m.nav.Update(msg)
		if m.nav.State() != before {
			cmd = tea.Batch(cmd, tea.SetWindowTitle(m.nav.Title()))
		}
	}

	m.refreshViewport()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.typing {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveLastLocation()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.saveTheme()
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		m.form.Dismiss()
		m.nav.DismissNotice()
		return m, nil
	case key.Matches(msg, m.keys.Search):
		var cmd tea.Cmd
		if m.nav.State().View() != nav.ViewHome {
			cmd = m.navigate(m.nav.Navigate(nav.Home()))
		}
		m.typing = true
		return m, tea.Batch(cmd, m.input.Focus())
	case key.Matches(msg, m.keys.ViewHome):
		return m, m.navigate(m.nav.Navigate(nav.Home()))
	case key.Matches(msg, m.keys.ViewResearch):
		return m, m.navigate(m.nav.Navigate(nav.Research()))
	case key.Matches(msg, m.keys.ViewAbout):
		return m, m.navigate(m.nav.Navigate(nav.About()))
	case key.Matches(msg, m.keys.Back):
		return m, m.navigate(m.nav.Back())
	case key.Matches(msg, m.keys.Forward):
		return m, m.navigate(m.nav.Forward())
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfPageDown()
	}
	return m, nil
}

// handleInputKey routes keys while the search box has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.saveLastLocation()
		return m, tea.Quit
	case "esc":
		m.typing = false
		m.input.Blur()
		return m, nil
	case "enter":
		cmd := m.form.Submit(m.input.Value())
		if cmd == nil {
			return m, nil
		}
		return m, tea.Batch(cmd, m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// navigate wraps a controller transition with the title update and, for
// profiles, the loading spinner.
func (m *Model) navigate(cmd tea.Cmd) tea.Cmd {
	m.viewport.GotoTop()
	cmds := []tea.Cmd{cmd, tea.SetWindowTitle(m.nav.Title())}
	if m.busy() {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// busy reports whether any spinner-worthy request is in flight.
func (m Model) busy() bool {
	if m.form.Busy() {
		return true
	}
	if m.nav.State().View() == nav.ViewProfile {
		p := m.nav.Profile()
		return p.Entity == nil || p.InterestsPhase == nav.InterestsLoading
	}
	return false
}

func (m *Model) resizeViewport() {
	// header + tabs + footer + box borders
	m.viewport.Width = maxInt(m.width-4, 10)
	m.viewport.Height = maxInt(m.height-5, 3)
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderContent(m.viewport.Width))
}

func (m Model) saveTheme() {
	if m.prefsPath == "" {
		return
	}
	name := m.theme.Name
	if err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.Theme = name }); err != nil {
		log.Printf("save theme: %v", err)
	}
}

func (m Model) saveLastLocation() {
	if m.prefsPath == "" {
		return
	}
	loc := m.nav.Location().String()
	if err := prefs.Update(m.prefsPath, func(p *prefs.Prefs) { p.LastLocation = loc }); err != nil {
		log.Printf("save last location: %v", err)
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	title := strings.TrimSuffix(m.nav.Title(), titleSuffix)
	b.WriteString(m.renderTitledBox(title, m.viewport.View(), m.width, m.height-3, true))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderContent renders the body of the visible view.
func (m Model) renderContent(width int) string {
	switch m.nav.Registry().Active() {
	case nav.ViewProfile:
		return m.renderProfile(width)
	case nav.ViewResearch:
		return m.renderResearch(width)
	case nav.ViewAbout:
		return m.renderAbout(width)
	default:
		return m.renderHome(width)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		// Cancellation of ctx is a normal shutdown.
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

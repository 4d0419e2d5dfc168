package nav

import (
	"context"
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/hansard/internal/parliament"
)

// EntityLoader is the subset of the data loader the controller drives.
type EntityLoader interface {
	FetchEntity(ctx context.Context, id int64) (parliament.Entity, error)
	FetchInterests(ctx context.Context, id int64) ([]parliament.InterestRecord, error)
}

// Mode says whether a transition adds a history entry or rewrites the
// current one.
type Mode int

const (
	ModeReplace Mode = iota
	ModePush
)

// InterestsPhase tracks the interests panel of a profile.
type InterestsPhase int

const (
	InterestsPending InterestsPhase = iota
	InterestsLoading
	InterestsLoaded
	InterestsFailed
)

// ProfileData is what the profile view renders. Entity is nil while the
// profile fetch is in flight.
type ProfileData struct {
	EntityID       int64
	Entity         *parliament.Entity
	InterestsPhase InterestsPhase
	Interests      []parliament.InterestRecord
}

// EntityLoadedMsg carries a profile fetch result back into the event loop.
type EntityLoadedMsg struct {
	Generation uint64
	ID         int64
	Entity     parliament.Entity
	Err        error
}

// InterestsLoadedMsg carries an interests fetch result back into the event loop.
type InterestsLoadedMsg struct {
	Generation uint64
	ID         int64
	Records    []parliament.InterestRecord
	Err        error
}

const (
	profileLoadFailed      = "Failed to load MP profile"
	profileTransportFailed = "Network error loading profile"
)

// Controller owns the session's ViewState. All methods must be called from
// the UI event loop; fetches run as tea.Cmds and report back through
// Update.
type Controller struct {
	ctx      context.Context
	loader   EntityLoader
	history  History
	registry *Registry

	state      ViewState
	generation uint64
	profile    ProfileData
	notice     string
}

// NewController wires a controller. Call Start before anything else.
func NewController(ctx context.Context, loader EntityLoader, history History, registry *Registry) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	if registry == nil {
		registry = NewRegistry()
	}
	if history == nil {
		history = NewMemoryHistory(Location{Path: "/"})
	}
	return &Controller{
		ctx:      ctx,
		loader:   loader,
		history:  history,
		registry: registry,
		state:    Home(),
	}
}

// Start resolves the history's current location (the initial address).
func (c *Controller) Start() tea.Cmd {
	return c.transition(c.history.Current(), ModeReplace)
}

// Navigate is an in-app navigation request: push the target's location,
// then resolve and apply it.
func (c *Controller) Navigate(target ViewState) tea.Cmd {
	return c.transition(LocationFor(target), ModePush)
}

// Back handles a history-pop towards older entries.
func (c *Controller) Back() tea.Cmd {
	loc, ok := c.history.Back()
	if !ok {
		return nil
	}
	return c.transition(loc, ModeReplace)
}

// Forward handles a history-pop towards newer entries.
func (c *Controller) Forward() tea.Cmd {
	loc, ok := c.history.Forward()
	if !ok {
		return nil
	}
	return c.transition(loc, ModeReplace)
}

// Update consumes fetch results. Results stamped with a superseded
// generation are dropped.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EntityLoadedMsg:
		return c.handleEntity(msg)
	case InterestsLoadedMsg:
		c.handleInterests(msg)
	}
	return nil
}

// State returns the live view state.
func (c *Controller) State() ViewState { return c.state }

// Location returns the history's current location.
func (c *Controller) Location() Location { return c.history.Current() }

// Title returns the window title for the visible view.
func (c *Controller) Title() string { return c.registry.Title() }

// Registry exposes view visibility to the renderer.
func (c *Controller) Registry() *Registry { return c.registry }

// Profile returns a copy of the profile data for the current activation.
func (c *Controller) Profile() ProfileData {
	p := c.profile
	if p.Entity != nil {
		e := *p.Entity
		p.Entity = &e
	}
	if p.Interests != nil {
		p.Interests = append(make([]parliament.InterestRecord, 0, len(p.Interests)), p.Interests...)
	}
	return p
}

// Notice returns the message left by a failed profile load, if any.
func (c *Controller) Notice() string { return c.notice }

// DismissNotice clears the notice.
func (c *Controller) DismissNotice() { c.notice = "" }

// Generation returns the current activation stamp.
func (c *Controller) Generation() uint64 { return c.generation }

func (c *Controller) transition(loc Location, mode Mode) tea.Cmd {
	if mode == ModePush {
		c.history.Push(loc)
	} else {
		c.history.Replace(loc)
	}
	c.notice = ""
	return c.apply(Resolve(c.history.Current()))
}

func (c *Controller) apply(next ViewState) tea.Cmd {
	c.registry.Activate(next.View())
	c.state = next
	c.generation++
	c.profile = ProfileData{}

	id, ok := next.EntityID()
	if !ok {
		return nil
	}
	c.profile.EntityID = id
	return c.fetchEntityCmd(c.generation, id)
}

func (c *Controller) isCurrent(gen uint64, id int64) bool {
	current, ok := c.state.EntityID()
	return ok && gen == c.generation && current == id
}

func (c *Controller) handleEntity(msg EntityLoadedMsg) tea.Cmd {
	if !c.isCurrent(msg.Generation, msg.ID) {
		log.Printf("dropping stale profile %d (generation %d, current %d)", msg.ID, msg.Generation, c.generation)
		return nil
	}
	if msg.Err != nil {
		log.Printf("profile %d failed: %v", msg.ID, msg.Err)
		c.transition(LocationFor(Home()), ModeReplace)
		c.notice = profileLoadFailed
		if errors.Is(msg.Err, parliament.ErrTransport) {
			c.notice = profileTransportFailed
		}
		return nil
	}
	entity := msg.Entity
	c.profile.Entity = &entity
	c.profile.InterestsPhase = InterestsLoading
	return c.fetchInterestsCmd(msg.Generation, msg.ID)
}

func (c *Controller) handleInterests(msg InterestsLoadedMsg) {
	if !c.isCurrent(msg.Generation, msg.ID) || c.profile.Entity == nil {
		log.Printf("dropping stale interests %d (generation %d, current %d)", msg.ID, msg.Generation, c.generation)
		return
	}
	if msg.Err != nil {
		log.Printf("interests %d failed: %v", msg.ID, msg.Err)
		c.profile.InterestsPhase = InterestsFailed
		c.profile.Interests = nil
		return
	}
	c.profile.InterestsPhase = InterestsLoaded
	c.profile.Interests = msg.Records
	if c.profile.Interests == nil {
		c.profile.Interests = []parliament.InterestRecord{}
	}
}

func (c *Controller) fetchEntityCmd(gen uint64, id int64) tea.Cmd {
	ctx, loader := c.ctx, c.loader
	return func() tea.Msg {
		entity, err := loader.FetchEntity(ctx, id)
		return EntityLoadedMsg{Generation: gen, ID: id, Entity: entity, Err: err}
	}
}

func (c *Controller) fetchInterestsCmd(gen uint64, id int64) tea.Cmd {
	ctx, loader := c.ctx, c.loader
	return func() tea.Msg {
		records, err := loader.FetchInterests(ctx, id)
		return InterestsLoadedMsg{Generation: gen, ID: id, Records: records, Err: err}
	}
}

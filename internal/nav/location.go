package nav

import (
	"net/url"
	"strconv"
	"strings"
)

// View enumerates the screens hansard can show.
type View int

const (
	ViewHome View = iota
	ViewResearch
	ViewAbout
	ViewProfile
)

// String returns the view's path segment name.
func (v View) String() string {
	switch v {
	case ViewResearch:
		return "research"
	case ViewAbout:
		return "about"
	case ViewProfile:
		return "profile"
	default:
		return "home"
	}
}

// ViewState is the resolved screen plus, for profiles, the member it shows.
// The zero value is Home. Use the constructors; they keep EntityID set if
// and only if View is ViewProfile.
type ViewState struct {
	view     View
	entityID int64
}

// Home returns the home state.
func Home() ViewState { return ViewState{view: ViewHome} }

// Research returns the research state.
func Research() ViewState { return ViewState{view: ViewResearch} }

// About returns the about state.
func About() ViewState { return ViewState{view: ViewAbout} }

// Profile returns the profile state for id. A non-positive id has no
// profile and degrades to Home.
func Profile(id int64) ViewState {
	if id <= 0 {
		return Home()
	}
	return ViewState{view: ViewProfile, entityID: id}
}

// View returns the active view.
func (s ViewState) View() View { return s.view }

// EntityID returns the member id and whether one is set.
func (s ViewState) EntityID() (int64, bool) {
	return s.entityID, s.view == ViewProfile
}

// String is used in logs.
func (s ViewState) String() string {
	if s.view == ViewProfile {
		return "profile(" + strconv.FormatInt(s.entityID, 10) + ")"
	}
	return s.view.String()
}

// Location is the addressable "where the user is": a path plus optional
// parameters. Treat it as immutable.
type Location struct {
	Path   string
	Params url.Values
}

const (
	segResearch = "research"
	segAbout    = "about"
	segMP       = "mp"
	segProfile  = "profile"
)

// ParseLocation splits raw ("/mp/42/?tab=x") into a Location. Anything
// unparseable becomes the root location.
func ParseLocation(raw string) Location {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Location{Path: "/"}
	}
	u, err := url.Parse(raw)
	if err != nil {
		return Location{Path: "/"}
	}
	loc := Location{Path: u.Path}
	if loc.Path == "" {
		loc.Path = "/"
	}
	if q := u.Query(); len(q) > 0 {
		loc.Params = q
	}
	return loc
}

// String returns the canonical textual form.
func (l Location) String() string {
	path := l.Path
	if path == "" {
		path = "/"
	}
	if len(l.Params) == 0 {
		return path
	}
	return path + "?" + l.Params.Encode()
}

// Equal compares paths and parameters.
func (l Location) Equal(other Location) bool {
	return l.String() == other.String()
}

// Resolve maps a location onto a view state. Unrecognised paths resolve to
// Home; this is a soft fallback, never an error.
func Resolve(loc Location) ViewState {
	segments := splitPath(loc.Path)
	switch len(segments) {
	case 0:
		return Home()
	case 1:
		switch segments[0] {
		case segResearch:
			return Research()
		case segAbout:
			return About()
		}
	case 2:
		if segments[0] == segMP || segments[0] == segProfile {
			if id, ok := parseID(segments[1]); ok {
				return Profile(id)
			}
		}
	}
	return Home()
}

// LocationFor builds the canonical location for a view state.
func LocationFor(s ViewState) Location {
	switch s.view {
	case ViewResearch:
		return Location{Path: "/" + segResearch + "/"}
	case ViewAbout:
		return Location{Path: "/" + segAbout + "/"}
	case ViewProfile:
		return Location{Path: "/" + segMP + "/" + strconv.FormatInt(s.entityID, 10) + "/"}
	default:
		return Location{Path: "/"}
	}
}

func splitPath(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}

func parseID(seg string) (int64, bool) {
	for _, r := range seg {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(seg, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

package nav

const titleSuffix = " · Hansard"

var viewTitles = map[View]string{
	ViewHome:     "Find your MP",
	ViewResearch: "Research",
	ViewAbout:    "About",
	ViewProfile:  "MP Profile",
}

// Views lists every view in tab order.
var Views = []View{ViewHome, ViewResearch, ViewAbout, ViewProfile}

// Registry tracks which view is visible and the window title. Activate has
// no side effects beyond those two.
type Registry struct {
	active View
	title  string
}

// NewRegistry returns a registry with Home visible.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Activate(ViewHome)
	return r
}

// Activate hides the previous view and shows v.
func (r *Registry) Activate(v View) {
	r.active = v
	r.title = TitleFor(v)
}

// Visible reports whether v is the shown view.
func (r *Registry) Visible(v View) bool {
	return r.active == v
}

// Active returns the shown view.
func (r *Registry) Active() View {
	return r.active
}

// Title returns the current window title.
func (r *Registry) Title() string {
	return r.title
}

// TitleFor returns the static title for v.
func TitleFor(v View) string {
	name, ok := viewTitles[v]
	if !ok {
		name = viewTitles[ViewHome]
	}
	return name + titleSuffix
}

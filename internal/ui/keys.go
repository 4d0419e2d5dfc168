package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Views
	ViewHome     key.Binding
	ViewResearch key.Binding
	ViewAbout    key.Binding
	Back         key.Binding
	Forward      key.Binding

	// Search
	Search  key.Binding
	Confirm key.Binding

	// Scrolling
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q/ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Dismiss notice"),
		),

		ViewHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Find your MP"),
		),
		ViewResearch: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Research"),
		),
		ViewAbout: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "About"),
		),
		Back: key.NewBinding(
			key.WithKeys("[", "alt+left", "backspace"),
			key.WithHelp("[", "Back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("]", "alt+right"),
			key.WithHelp("]", "Forward"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Submit search"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.ViewHome, k.ViewResearch, k.ViewAbout, k.Back, k.Forward, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay, one group per section.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ViewHome, k.ViewResearch, k.ViewAbout, k.Back, k.Forward},
		{k.Search, k.Confirm, k.Escape},
		{k.Up, k.Down, k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

package nav

// History is the host navigation surface: a stack of locations with a
// cursor, like a browser's session history.
type History interface {
	Current() Location
	Push(Location)
	Replace(Location)
	Back() (Location, bool)
	Forward() (Location, bool)
}

// MemoryHistory is an in-process History. It is not safe for concurrent
// use; the controller only touches it from the UI event loop.
type MemoryHistory struct {
	entries []Location
	cursor  int
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory starts a history at initial.
func NewMemoryHistory(initial Location) *MemoryHistory {
	if initial.Path == "" {
		initial.Path = "/"
	}
	return &MemoryHistory{entries: []Location{initial}}
}

// Current returns the location under the cursor.
func (h *MemoryHistory) Current() Location {
	return h.entries[h.cursor]
}

// Push adds loc after the cursor, discarding any forward entries.
func (h *MemoryHistory) Push(loc Location) {
	h.entries = append(h.entries[:h.cursor+1], loc)
	h.cursor = len(h.entries) - 1
}

// Replace overwrites the current entry.
func (h *MemoryHistory) Replace(loc Location) {
	h.entries[h.cursor] = loc
}

// Back moves the cursor one entry back. ok is false at the oldest entry.
func (h *MemoryHistory) Back() (Location, bool) {
	if h.cursor == 0 {
		return h.Current(), false
	}
	h.cursor--
	return h.Current(), true
}

// Forward moves the cursor one entry forward. ok is false at the newest entry.
func (h *MemoryHistory) Forward() (Location, bool) {
	if h.cursor >= len(h.entries)-1 {
		return h.Current(), false
	}
	h.cursor++
	return h.Current(), true
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	return len(h.entries)
}

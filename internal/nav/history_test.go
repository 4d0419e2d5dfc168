package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryHistoryPushTruncatesForward(t *testing.T) {
	h := NewMemoryHistory(Location{})
	assert.Equal(t, "/", h.Current().String())

	h.Push(ParseLocation("/research/"))
	h.Push(ParseLocation("/about/"))
	assert.Equal(t, 3, h.Len())

	loc, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "/research/", loc.String())

	h.Push(ParseLocation("/mp/7/"))
	assert.Equal(t, 3, h.Len())
	_, ok = h.Forward()
	assert.False(t, ok, "forward entries are discarded by push")
}

func TestMemoryHistoryBoundsAndReplace(t *testing.T) {
	h := NewMemoryHistory(ParseLocation("/about/"))

	loc, ok := h.Back()
	assert.False(t, ok)
	assert.Equal(t, "/about/", loc.String())

	h.Replace(ParseLocation("/"))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, "/", h.Current().String())
}

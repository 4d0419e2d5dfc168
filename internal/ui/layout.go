package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutTwoColumnWidth is the minimum width for side-by-side profile facts.
	LayoutTwoColumnWidth = 120
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI re-reads the stats store.
	DefaultUIInterval = time.Second
)

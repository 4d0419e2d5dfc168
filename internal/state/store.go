package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/hansard/internal/parliament"
)

// offlineThreshold is the number of consecutive failed polls after which the
// banner gives up on showing stale figures.
const offlineThreshold = 2

// Snapshot is the latest statistics view available to the UI.
type Snapshot struct {
	Stats               parliament.Stats
	HasStats            bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= offlineThreshold
}

// Store coordinates the poller's writes with the UI's reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a poll result. When err is non-nil the previous figures are
// kept and the failure is counted.
func (s *Store) Update(stats *parliament.Stats, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	if stats != nil {
		s.snapshot.Stats = cloneStats(*stats)
		s.snapshot.HasStats = true
	} else {
		s.snapshot.Stats = parliament.Stats{}
		s.snapshot.HasStats = false
	}
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Stats = cloneStats(s.snapshot.Stats)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneStats(in parliament.Stats) parliament.Stats {
	out := in
	if len(in.Parties) == 0 {
		out.Parties = nil
		return out
	}
	out.Parties = make([]string, len(in.Parties))
	copy(out.Parties, in.Parties)
	return out
}

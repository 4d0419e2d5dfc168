// Package state holds the statistics banner's shared data.
//
// # Overview
//
// The stats poller (internal/app) runs on its own goroutine and the Bubble
// Tea program reads the latest figures on every frame. Store sits between
// them:
//
//	Producer (poller):               Consumer (UI):
//	┌──────────────────┐            ┌──────────────────┐
//	│ FetchStats()     │            │                  │
//	│      ↓           │            │                  │
//	│ store.Update()   │───────────→│ store.Snapshot() │
//	│      ↓           │  (mutex)   │      ↓           │
//	│ sleep / backoff  │            │ render banner    │
//	└──────────────────┘            └──────────────────┘
//
// Navigation state is not stored here. It is owned by nav.Controller and
// only ever touched from the UI loop.
//
// # Update Semantics
//
//	// Success: replace the figures, reset the failure count
//	store.Update(&stats, nil)
//
//	// Failure: keep the old figures, record the error
//	store.Update(nil, err)
//
// After two consecutive failures Snapshot.IsOffline reports true and the
// banner stops showing stale counts.
//
// # Copying
//
// Update and Snapshot copy the Parties slice and Snapshot wraps LastError in
// a fresh value, so neither side can mutate what the other holds.
//
// The zero Store is ready to use.
package state

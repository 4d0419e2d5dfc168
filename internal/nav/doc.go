// Package nav owns hansard's navigation state: which view is visible, which
// member a profile shows, and how that maps onto addressable locations.
//
// # Overview
//
// A Location ("/mp/42/") is what the user can type, bookmark or step through
// with back/forward. A ViewState (Profile(42)) is what the UI renders. The
// two are linked by a pair of pure functions:
//
//	Resolve(Location)     → ViewState   (unknown paths fall back to Home)
//	LocationFor(ViewState) → Location   (canonical form)
//
// Resolve(LocationFor(s)) == s for every valid state, and canonicalising a
// location twice gives the same state as doing it once.
//
// # Recognised Paths
//
//	/               Home
//	/research/      Research
//	/about/         About
//	/mp/<id>/       Profile(id), id a positive integer
//	/profile/<id>/  alias of /mp/<id>/
//
// # Controller
//
// Controller is the single owner of the live ViewState. Every transition,
// whether from an in-app link (Navigate, push) or a history pop (Back,
// Forward, replace), runs the same steps:
//
//  1. Record the location in History
//  2. Resolve it to a ViewState
//  3. Activate the view in the Registry (visibility and title)
//  4. Bump the generation counter and, for profiles, return a tea.Cmd that
//     fetches the member
//
// # Stale Results
//
// Fetches run off the event loop and come back as EntityLoadedMsg and
// InterestsLoadedMsg stamped with the generation that issued them. Update
// drops any message whose generation is not current, so a slow response for
// a profile the user already left can never overwrite the one on screen.
//
// Interests are fetched only after the profile lands. A failed profile
// replaces the location with Home and leaves a Notice; a failed interests
// fetch keeps the profile and marks the panel InterestsFailed.
//
// # Concurrency
//
// Controller, Registry and MemoryHistory are not synchronised. They are
// touched only from the bubbletea Update loop, which runs one message at a
// time. The tea.Cmd closures capture the loader, context, id and generation
// by value and never read controller fields.
package nav

// Package app is the composition root for hansard.
//
// # Overview
//
// Run wires configuration, preferences, the API client, the statistics
// poller and the UI together, then blocks until the user quits or the
// context is cancelled:
//
//	Run()
//	 ├─> config.Load()          ~/.config/hansard/config.toml
//	 ├─> initLogging()          log output to the configured file
//	 ├─> prefs.Load()           theme and last location
//	 ├─> parliament.NewClient() HTTP client for the interests API
//	 ├─> StartPoller()          background stats refresh into state.Store
//	 └─> ui.Run()               Bubble Tea program (blocks)
//
// RunLookup and Lookup are the headless path used by `hansard lookup`: the
// same client and grouping, printed as plain text.
//
// # Polling Behavior
//
// The poller fetches /api/stats/ every interval (default 60s). Each
// consecutive failure doubles the wait, capped at ten minutes; a success
// resets it. Failures are logged and recorded in the store, where the UI
// reads them as "retrying" and, after two in a row, "offline".
//
// Shutdown cancels the poller and waits for its goroutine to exit before
// Run returns.
//
// # Start Location
//
// Options.Open wins when set. Otherwise the location saved in prefs on the
// previous exit is used, and failing that Home. Unrecognised locations
// resolve to Home.
package app

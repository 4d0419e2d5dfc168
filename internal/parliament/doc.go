// Package parliament provides the HTTP data loader for the MP interests API.
//
// # Overview
//
// The Client performs the three dependent reads behind a profile lookup
// (search, member profile, member interests) plus the statistics read used by
// the header banner. It is the only package in hansard that touches the
// network.
//
// # Result Mapping
//
// Search never returns an error. Every response is folded into a
// SearchOutcome:
//
//   - Found: 2xx with in_database=true and a member_id
//   - PartialMatch: 2xx without a resolvable member_id
//   - NotFound: 4xx/5xx, carrying the server's "error" text or a fallback
//   - TransportError: connection failure or an undecodable 2xx body
//
// FetchEntity and FetchInterests return wrapped sentinel errors:
//
//   - ErrNotFound: non-positive id, non-2xx status or malformed profile body
//   - ErrTransport: network failure (and any interests failure)
//
// Callers branch with errors.Is.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json and User-Agent: hansard/0.1
//   - Carry a fresh X-Request-ID (uuid) that is echoed in failure logs
//   - Are single-attempt; retry policy belongs to callers
//
// # API Endpoints
//
//   - GET /api/search/?q=<query>
//   - GET /api/members/<id>/
//   - GET /api/members/<id>/interests/
//   - GET /api/stats/
//
// # Testing Considerations
//
// Use httptest.Server (or internal/fixture) to stand in for the API, and the
// Loader interface to fake the client in controller tests.
package parliament

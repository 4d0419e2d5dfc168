// Package fixture serves a small bundled dataset over the same HTTP API that
// hansard's client consumes. It backs the `hansard demo` command and the
// end-to-end tests.
//
// Routes:
//
//	GET /api/search/?q=<query>
//	GET /api/members/?party=&constituency=&page=&page_size=
//	GET /api/members/{id}/
//	GET /api/members/{id}/interests/
//	GET /api/stats/
//	GET /health
//
// Search tries the query as a postcode first (any digit, at most eight
// characters), then as a case-insensitive substring of a sitting member's
// name or constituency. Members known only upstream produce a result with
// in_database set to false.
package fixture

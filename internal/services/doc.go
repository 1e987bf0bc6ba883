// Package services implements one client per upstream API consumed by the
// aggregation layer.
//
// # Clients
//
//   - [GitHubService] : GraphQL queries for pinned repositories and the
//     per-repository description override blob
//   - [SpotifyService] : refresh-token exchange via [oauth2] plus the
//     currently-playing, recently-played, and playlist endpoints
//   - [WakaTimeService] : daily summaries and heartbeat history
//
// # Error Handling
//
// Clients distinguish transport failures ([shared.ErrAPIRequest]) from
// unexpected upstream statuses ([shared.ErrUpstreamStatus]). Statuses that
// the upstream uses to mean "no data" (Spotify's 204, a missing override
// blob) are not errors: those methods return nil results so the aggregation
// layer can continue its fallback chain.
//
// Clients are stateless and safe for concurrent use. Nothing is cached:
// every request performs fresh upstream calls, including the Spotify token
// exchange.
package services

// Package server provides HTTP routing, middleware, and the JSON endpoints
// consumed by the portfolio page's live widgets.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally with method filtering; all portfolio routes
// are read-only GETs.
//
// # Handlers
//
// Each widget endpoint is a [Handler] implementation delegating to the
// aggregation engine in the tasks package:
//
//	GET /api/github-pinned?username=  → [PinsHandler]
//	GET /api/spotify/now-playing      → [MusicHandler] (alias: /api/spotify)
//	GET /api/wakatime                 → [ActivityHandler]
//	GET /api/profile                  → [ProfileHandler]
//	GET /api/health                   → [HealthHandler]
//
// # Failure policy
//
// Handlers never leak upstream error bodies. Each endpoint's documented
// default payload is served instead, with a 500 only where the contract
// calls for one (pins configuration/fetch failures, activity summary
// failures).
package server

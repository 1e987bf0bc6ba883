// Package tasks normalizes the three heterogeneous upstream APIs into the
// uniform widget contracts consumed by the HTTP handlers, the status CLI,
// and the TUI dashboard.
//
// # Fallback chains
//
// Each aggregation is a best-effort pass over its upstream:
//
//   - [Aggregator.PinnedRepos] : pinned listing, then a concurrent join-all
//     over per-repository description overrides with isolated failures
//   - [Aggregator.NowPlaying] : token exchange → currently-playing →
//     recently-played → playlist-name suppression, strictly sequential since
//     each step consumes the previous step's output
//   - [Aggregator.Activity] : three-way parallel fetch (today summary, week
//     summary, heartbeats) joined before computing the snapshot
//
// # Failure policy
//
// NowPlaying never fails: all errors collapse to the not-playing default.
// PinnedRepos and Activity return errors only for the failures the contract
// promotes to HTTP 500 (missing GitHub token, pinned-list fetch failure,
// summary fetch failure); everything else degrades silently.
package tasks

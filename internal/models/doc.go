// Package models defines the output contracts served to widget consumers.
//
// Every type here is a complete response shape: handlers always return a
// fully-formed value, substituting the documented empty/inactive default on
// upstream failure rather than leaking an error body.
//
//   - [PinnedRepo] : pinned repository listing entries
//   - [NowPlaying] : music playback status
//   - [CodingActivity] : time-tracking snapshot
//
// Upstream (provider-specific) response types live with their clients in the
// services package; this package only describes what leaves the server.
package models

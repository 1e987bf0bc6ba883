// Package ui implements a terminal dashboard using bubbletea's Elm architecture.
//
// The dashboard is a consumer of the same widget contracts the web page
// polls: it fetches the now-playing, coding-activity, and pinned-repository
// payloads from the aggregation engine and re-renders on a fixed interval.
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View
// pattern. Status fetches run as commands off the update loop; a tick
// message reschedules the next poll after each status arrives so slow
// upstreams never stack requests.
//
// Keyboard bindings: r refreshes immediately, q quits. Contextual help is
// rendered via charmbracelet/bubbles/help.
package ui

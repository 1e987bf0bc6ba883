// package formatter provides text formatting for widget payloads (durations, dates, artist lists)
package formatter

import (
	"fmt"
	"strings"
	"time"
)

// FormatSeconds renders a duration in seconds as human-readable coding time.
//
// Matches the widget contract: "<H> hrs <M> mins" when at least one full
// hour, otherwise "<M> mins". Zero and negative values render as "0 mins".
func FormatSeconds(total float64) string {
	if total < 0 {
		total = 0
	}

	hours := int(total) / 3600
	minutes := (int(total) % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%d hrs %d mins", hours, minutes)
	}
	return fmt.Sprintf("%d mins", minutes)
}

// Day formats a point in time as a UTC calendar date (YYYY-MM-DD), the form
// the time-tracking API expects for summary ranges.
func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// JoinNames joins a list of names with ", " preserving order.
func JoinNames(names []string) string {
	return strings.Join(names, ", ")
}

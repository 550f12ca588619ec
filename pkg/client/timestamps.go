package client

import (
	"time"
)

// parseTimestamp converts an ISO 8601 timestamp string to time.Time.
// Timestamps without an offset are read as UTC.
// Returns zero time if parsing fails.
func parseTimestamp(ts string) time.Time {
	if ts == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t
		}
	}
	return time.Time{}
}

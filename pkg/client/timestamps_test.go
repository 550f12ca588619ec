package client

import (
	"testing"
	"time"
)

// TestParseTimestamp tests the parseTimestamp helper function
func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "valid RFC3339 timestamp",
			input: "2023-11-20T10:30:45Z",
			want:  time.Date(2023, 11, 20, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "valid RFC3339 with offset",
			input: "2023-11-20T10:30:45-03:00",
			want:  time.Date(2023, 11, 20, 13, 30, 45, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			input: "2023-11-20T10:30:45.1234567Z",
			want:  time.Date(2023, 11, 20, 10, 30, 45, 123456700, time.UTC),
		},
		{
			name:  "no offset is read as UTC",
			input: "2023-11-20T10:30:45",
			want:  time.Date(2023, 11, 20, 10, 30, 45, 0, time.UTC),
		},
		{
			name:  "empty timestamp",
			input: "",
		},
		{
			name:  "invalid timestamp format",
			input: "not-a-timestamp",
		},
		{
			name:  "space separated",
			input: "2023-11-20 10:30:45",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTimestamp(tt.input)
			if tt.want.IsZero() {
				if !got.IsZero() {
					t.Errorf("parseTimestamp(%q) = %v, want zero time", tt.input, got)
				}
				return
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

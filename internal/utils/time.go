package utils

import (
	"fmt"
	"time"
)

// startTimeLayouts are the formats accepted from the show form, most
// specific first. The first is what the listing pages display and the
// seed data uses.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseStartTime parses a submitted show start time.
func ParseStartTime(value string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", value)
}

// FormatStartTime renders a start time the way listing pages display it.
func FormatStartTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

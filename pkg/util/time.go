package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTrackLength renders a track length in milliseconds as mm:ss, or
// hh:mm:ss once the track is an hour or longer.
//
// Example:
//
//	FormatTrackLength(215000) // "3:35"
//	FormatTrackLength(3723000) // "1:02:03"
func FormatTrackLength(ms int64) string {
	if ms <= 0 {
		return "0:00"
	}

	total := ms / 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// ParseTimestamp reads a user-supplied position in hh:mm:ss or mm:ss form
// (a bare number of seconds also works) and returns it as a duration.
func ParseTimestamp(input string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(input), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q", input)
	}

	var total int64
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid timestamp segment %q", part)
		}
		// Only the leading segment may exceed 59.
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("invalid timestamp segment %q", part)
		}
		total = total*60 + n
	}

	return time.Duration(total) * time.Second, nil
}

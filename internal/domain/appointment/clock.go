package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
// Stored schedule times are expected to already be well formed; a failure
// here is a data-integrity problem, not a user error.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("clock string %q out of range", s)
	}

	return hours*60 + minutes, nil
}

// FormatClock converts minutes since midnight to "HH:MM:SS".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)
}

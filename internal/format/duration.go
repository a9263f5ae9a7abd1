package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Microsecond {
		return "< 1µs"
	} else if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatSeconds renders d as a number of seconds using Go's default float
// formatting, e.g. "0.004521", "1.2e-05" or "0". Negative durations render
// as "0".
func FormatSeconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprint(d.Seconds())
}

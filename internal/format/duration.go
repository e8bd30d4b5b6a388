// Package format renders durations, byte sizes and large decimal numbers for
// terminal output.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders d in whole microseconds below 1ms, whole
// milliseconds below 1s and with time.Duration.String above.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

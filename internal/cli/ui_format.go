// Number and duration formatting for CLI output.

package cli

import (
	"time"

	"github.com/agbru/fibs/internal/format"
)

// FormatNumberString delegates to format.FormatNumberString.
func FormatNumberString(s string) string {
	return format.FormatNumberString(s)
}

// FormatExecutionDuration delegates to format.FormatExecutionDuration. A zero
// duration renders as "< 1µs".
func FormatExecutionDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// truncateTerm shortens values longer than TruncationLimit digits.
func truncateTerm(value string) (string, bool) {
	digits := len(value)
	if value != "" && value[0] == '-' {
		digits--
	}
	if digits <= TruncationLimit {
		return value, false
	}
	return format.TruncateDigits(value, 2*DisplayEdges), true
}

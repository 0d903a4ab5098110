package utils

import (
	"fmt"
	"strings"
)

// FormatMinutes renders a minute total as "1h 30m", "2h", or "45m".
// Zero comes out as "0m".
func FormatMinutes(total int) string {
	hours := total / 60
	minutes := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours == 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	return strings.Join(parts, " ")
}

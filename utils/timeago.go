package utils

import (
	"fmt"
	"time"
)

// FormatTimeAgo renders a Unix-millisecond timestamp as a coarse relative
// label ("42s ago", "3h ago") for stats responses.
func FormatTimeAgo(unixMilli int64) string {
	seconds := int64(time.Since(time.UnixMilli(unixMilli)).Seconds())
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	default:
		return fmt.Sprintf("%dd ago", seconds/86400)
	}
}

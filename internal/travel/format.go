package travel

import (
	"fmt"
	"time"
)

// FormatDuration renders a travel time the way it is shown to users,
// e.g. "2 h 5 min" or "45 min".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0 min"
	}

	mins := int((d + 30*time.Second) / time.Minute)
	if mins == 0 {
		mins = 1
	}

	h, m := mins/60, mins%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d h", h)
	default:
		return fmt.Sprintf("%d h %d min", h, m)
	}
}

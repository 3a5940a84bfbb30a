package secops

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCount renders a counter with thousands separators, the way the
// dashboards display every KPI value.
func FormatCount(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatBytes renders a byte counter in a compact human unit.
func FormatBytes(v int64) string {
	const unit = 1024
	if v < unit {
		return strconv.FormatInt(v, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := v / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(v)/float64(div), "KMGTPE"[exp])
}

// FormatUptime renders an uptime counter as days/hours/minutes.
func FormatUptime(seconds int64) string {
	if seconds <= 0 {
		return "—"
	}
	d := time.Duration(seconds) * time.Second
	days := int64(d.Hours()) / 24
	hours := int64(d.Hours()) % 24
	minutes := int64(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// StalenessLabel classifies snapshot age for the footer badge.
func StalenessLabel(generatedAt, now time.Time) string {
	if generatedAt.IsZero() {
		return "unknown"
	}
	age := now.Sub(generatedAt)
	switch {
	case age < 5*time.Minute:
		return "live"
	case age < time.Hour:
		return "recent"
	default:
		return "stale"
	}
}

package views

import (
	"strings"
	"time"
	"unicode"

	"github.com/soclens/soclens/internal/secops"
)

// FormatCount is the thousands-separated rendering every KPI uses.
func FormatCount(v int64) string {
	return secops.FormatCount(v)
}

func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}

func SeverityBadgeClass(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical":
		return "badge bg-rose-100 text-rose-800 dark:bg-rose-900/50 dark:text-rose-100"
	case "high":
		return "badge bg-amber-100 text-amber-800 dark:bg-amber-900/50 dark:text-amber-100"
	case "medium":
		return "badge bg-sky-100 text-sky-800 dark:bg-sky-900/50 dark:text-sky-100"
	case "low":
		return "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"
	default:
		return "badge-outline"
	}
}

func StalenessBadgeClass(label string) string {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "live":
		return "badge bg-emerald-100 text-emerald-800 dark:bg-emerald-900/50 dark:text-emerald-100"
	case "recent":
		return "badge bg-sky-100 text-sky-800 dark:bg-sky-900/50 dark:text-sky-100"
	case "stale":
		return "badge bg-amber-100 text-amber-800 dark:bg-amber-900/50 dark:text-amber-100"
	default:
		return "badge-outline"
	}
}

func KPIToneClass(tone string) string {
	switch strings.ToLower(strings.TrimSpace(tone)) {
	case "ok":
		return "kpi-card kpi-ok"
	case "warn":
		return "kpi-card kpi-warn"
	case "alert":
		return "kpi-card kpi-alert"
	default:
		return "kpi-card"
	}
}

func HumanizeSeverity(severity string) string {
	switch strings.ToLower(strings.TrimSpace(severity)) {
	case "critical":
		return "Critical"
	case "high":
		return "High"
	case "medium":
		return "Medium"
	case "low":
		return "Low"
	default:
		return fallbackHumanized(severity)
	}
}

// HumanizeSourceName turns a data-source key like "sonicwall_syslog" into
// a display label.
func HumanizeSourceName(source string) string {
	switch strings.ToLower(strings.TrimSpace(source)) {
	case "sonicwall":
		return "SonicWall"
	case "sonicwall_syslog":
		return "SonicWall Syslog"
	case "siem":
		return "SIEM"
	default:
		return fallbackHumanized(source)
	}
}

func IsActivePath(activePath, target string) bool {
	activePath = strings.TrimSpace(activePath)
	target = strings.TrimSpace(target)
	if target == "/" {
		return activePath == "/"
	}
	return strings.HasPrefix(activePath, target)
}

func AriaCurrent(activePath, target string) string {
	if IsActivePath(activePath, target) {
		return "page"
	}
	return ""
}

func fallbackHumanized(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "—"
	}
	parts := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return r == '_' || r == ':' || r == '-'
	})
	for idx, part := range parts {
		runes := []rune(part)
		if len(runes) == 0 {
			continue
		}
		runes[0] = unicode.ToUpper(runes[0])
		parts[idx] = string(runes)
	}
	if len(parts) == 0 {
		return value
	}
	return strings.Join(parts, " ")
}

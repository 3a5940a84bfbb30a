// Package secops defines the pre-shaped snapshot types the dashboards
// render. Snapshots are produced by external systems; nothing in this
// repository computes or mutates them.
package secops

import "time"

// Snapshot kinds, used as store/cache keys.
const (
	KindSIEM      = "siem"
	KindSonicWall = "sonicwall"
)

// SIEMData is the SIEM metrics snapshot shown on the overview dashboard.
type SIEMData struct {
	TotalLogEntries      int64             `json:"total_log_entries"`
	BlockedAttempts      int64             `json:"blocked_attempts"`
	IntrusionAttempts    int64             `json:"intrusion_attempts"`
	ActiveVPNConnections int64             `json:"active_vpn_connections"`
	TotalVPNConnections  int64             `json:"total_vpn_connections"`
	Analytics            *AnalyticsSummary `json:"analytics,omitempty"`
	GeneratedAt          time.Time         `json:"generated_at"`
}

// AnalyticsSummary carries the optional enhanced-analytics fields. Every
// field may be absent; display code omits what is missing.
type AnalyticsSummary struct {
	AlertCounts       *AlertCounts     `json:"alert_counts,omitempty"`
	SeverityBreakdown map[string]int64 `json:"severity_breakdown,omitempty"`
	TopUsers          []UserActivity   `json:"top_users,omitempty"`
	Sources           []string         `json:"sources,omitempty"`
}

// AlertCounts breaks alerts down by severity.
type AlertCounts struct {
	Critical int64 `json:"critical"`
	High     int64 `json:"high"`
	Medium   int64 `json:"medium"`
	Low      int64 `json:"low"`
	Total    int64 `json:"total"`
}

// UserActivity is one row of the per-user event breakdown.
type UserActivity struct {
	User       string `json:"user"`
	EventCount int64  `json:"event_count"`
}

// SonicWallData is the firewall metrics snapshot.
type SonicWallData struct {
	BlockedIntrusions  int64              `json:"blocked_intrusions"`
	VirusBlocks        int64              `json:"virus_blocks"`
	SpywareBlocks      int64              `json:"spyware_blocks"`
	BotnetHits         int64              `json:"botnet_hits"`
	ActiveConnections  int64              `json:"active_connections"`
	MaxConnections     int64              `json:"max_connections"`
	Interfaces         []InterfaceTraffic `json:"interfaces,omitempty"`
	UptimeSeconds      int64              `json:"uptime_seconds"`
	FirmwareVersion    string             `json:"firmware_version"`
	SecurityServicesOn bool               `json:"security_services_on"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

// InterfaceTraffic is throughput for a single firewall interface.
type InterfaceTraffic struct {
	Name    string `json:"name"`
	RxBytes int64  `json:"rx_bytes"`
	TxBytes int64  `json:"tx_bytes"`
}

// HasAnalytics reports whether the snapshot carries any enhanced-analytics
// content worth rendering.
func (d SIEMData) HasAnalytics() bool {
	if d.Analytics == nil {
		return false
	}
	a := d.Analytics
	return a.AlertCounts != nil || len(a.SeverityBreakdown) > 0 || len(a.TopUsers) > 0 || len(a.Sources) > 0
}

// Severities lists the severity keys in display order.
var Severities = []string{"critical", "high", "medium", "low"}

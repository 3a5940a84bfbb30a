package views

import (
	"strings"
	"testing"
	"time"

	"github.com/soclens/soclens/internal/secops"
)

func TestEnhancedAnalyticsAlertNilRendersNothing(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, EnhancedAnalyticsAlert(nil))
	if html != "" {
		t.Fatalf("expected empty output, got %q", html)
	}
}

func TestEnhancedAnalyticsAlertOmitsAbsentFields(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, EnhancedAnalyticsAlert(&secops.AnalyticsSummary{
		AlertCounts: &secops.AlertCounts{Critical: 2, High: 5, Medium: 11, Low: 40, Total: 58},
	}))

	assertContains(t, html, `data-analytics="alert-counts"`)
	assertContains(t, html, "58 alerts")
	assertContains(t, html, "Critical: 2")
	assertNotContains(t, html, `data-analytics="severity-breakdown"`)
	assertNotContains(t, html, `data-analytics="top-users"`)
}

func TestEnhancedAnalyticsAlertSeverityBreakdownUsesDisplayOrder(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, EnhancedAnalyticsAlert(&secops.AnalyticsSummary{
		SeverityBreakdown: map[string]int64{"low": 4, "critical": 1},
	}))

	critical := strings.Index(html, `data-severity="critical"`)
	low := strings.Index(html, `data-severity="low"`)
	if critical < 0 || low < 0 || critical > low {
		t.Fatalf("severity order wrong: critical=%d low=%d\n%s", critical, low, html)
	}
	assertNotContains(t, html, `data-severity="medium"`)
}

func TestEnhancedAnalyticsAlertTopUsers(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, EnhancedAnalyticsAlert(&secops.AnalyticsSummary{
		TopUsers: []secops.UserActivity{{User: "ops@example.com", EventCount: 1200}},
	}))

	assertContains(t, html, `data-analytics="top-users"`)
	assertContains(t, html, "ops@example.com")
	assertContains(t, html, "1,200 events")
}

func TestEnhancedAnalyticsAlertEscapesUserContent(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, EnhancedAnalyticsAlert(&secops.AnalyticsSummary{
		TopUsers: []secops.UserActivity{{User: `<script>alert(1)</script>`, EventCount: 1}},
	}))

	assertNotContains(t, html, "<script>alert(1)</script>")
	assertContains(t, html, "&lt;script&gt;")
}

func TestPerformanceMonitorRendersStaticText(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, PerformanceMonitor())

	assertContains(t, html, "Performance Monitor")
	assertContains(t, html, "coming soon")
}

func TestDashboardFooterListsSourcesAndTimestamp(t *testing.T) {
	t.Parallel()

	renderedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	generatedAt := renderedAt.Add(-2 * time.Minute)

	html := renderViewComponent(t, DashboardFooter([]string{"sonicwall", "windows_events"}, generatedAt, renderedAt))

	assertContains(t, html, `data-source="sonicwall"`)
	assertContains(t, html, "SonicWall")
	assertContains(t, html, "Windows Events")
	assertContains(t, html, `data-staleness="live"`)
	assertContains(t, html, "Rendered 2026-02-01 12:00:00 UTC")
}

func TestDashboardFooterNoSources(t *testing.T) {
	t.Parallel()

	renderedAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	html := renderViewComponent(t, DashboardFooter(nil, time.Time{}, renderedAt))

	assertNotContains(t, html, "footer-sources")
	assertContains(t, html, `data-staleness="unknown"`)
}

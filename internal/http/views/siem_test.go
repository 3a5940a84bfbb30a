package views

import (
	"testing"
	"time"

	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/secops"
)

func siemFixture() viewmodels.SIEMViewData {
	return viewmodels.SIEMViewData{
		Layout: viewmodels.LayoutData{Title: "SIEM", CSRFToken: "csrf-token-123"},
		Data: secops.SIEMData{
			TotalLogEntries:      1204503,
			BlockedAttempts:      321,
			IntrusionAttempts:    17,
			ActiveVPNConnections: 9,
			TotalVPNConnections:  42,
			GeneratedAt:          time.Date(2026, 2, 1, 11, 58, 0, 0, time.UTC),
		},
		RenderedAt: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSIEMKPIGridDisplaysFormattedCounters(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, SIEMKPIGrid(siemFixture()))

	assertContains(t, html, `data-kpi="total-log-entries"`)
	assertContains(t, html, "1,204,503")
	assertContains(t, html, "321")
	assertContains(t, html, "17")
	assertContains(t, html, `of 42 provisioned`)
}

func TestSIEMKPIGridIsHTMXRefreshTarget(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, SIEMKPIGrid(siemFixture()))

	assertContains(t, html, `id="siem-kpis"`)
	assertContains(t, html, `hx-get="/"`)
	assertContains(t, html, `hx-target="#siem-kpis"`)
	assertContains(t, html, `hx-swap="outerHTML"`)
}

func TestSIEMPageWithoutAnalyticsOmitsAlert(t *testing.T) {
	t.Parallel()

	html := renderViewComponent(t, SIEMPage(siemFixture()))

	assertNotContains(t, html, "analytics-alert")
	assertNotContains(t, html, "data-analytics")
}

func TestSIEMPageEmptyAnalyticsOmitsAlert(t *testing.T) {
	t.Parallel()

	data := siemFixture()
	data.Data.Analytics = &secops.AnalyticsSummary{}

	html := renderViewComponent(t, SIEMPage(data))

	assertNotContains(t, html, "analytics-alert")
	assertNotContains(t, html, "data-analytics")
}

func TestSIEMPageRendersAnalyticsAlert(t *testing.T) {
	t.Parallel()

	data := siemFixture()
	data.Data.Analytics = &secops.AnalyticsSummary{
		SeverityBreakdown: map[string]int64{"critical": 3},
		Sources:           []string{"firewall"},
	}

	html := renderViewComponent(t, SIEMPage(data))

	assertContains(t, html, `data-analytics="severity-breakdown"`)
}

func TestSIEMKPICardsToneTracksCounters(t *testing.T) {
	t.Parallel()

	quiet := siemFixture()
	quiet.Data.IntrusionAttempts = 0
	quiet.Data.BlockedAttempts = 0

	cards := SIEMKPICards(quiet)
	byKey := make(map[string]viewmodels.KPICardData, len(cards))
	for _, card := range cards {
		byKey[card.Key] = card
	}
	if byKey["intrusion-attempts"].Tone != "ok" {
		t.Fatalf("intrusion tone = %q", byKey["intrusion-attempts"].Tone)
	}

	noisy := siemFixture()
	cards = SIEMKPICards(noisy)
	for _, card := range cards {
		if card.Key == "intrusion-attempts" && card.Tone != "alert" {
			t.Fatalf("intrusion tone = %q, want alert", card.Tone)
		}
	}
}

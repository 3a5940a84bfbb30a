package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

// SIEMPage is the full SIEM overview page.
func SIEMPage(data viewmodels.SIEMViewData) templ.Component {
	return Layout(data.Layout, siemContent(data))
}

func siemContent(data viewmodels.SIEMViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<h1>SIEM overview</h1>`)
		if data.NoData {
			h.component(ctx, NoDataNotice("siem"))
		}
		h.component(ctx, SIEMKPIGrid(data))
		if data.Data.HasAnalytics() {
			h.component(ctx, EnhancedAnalyticsAlert(data.Data.Analytics))
		}

		var sources []string
		if data.Data.Analytics != nil {
			sources = data.Data.Analytics.Sources
		}
		h.component(ctx, DashboardFooter(sources, data.Data.GeneratedAt, data.RenderedAt))
		return h.err
	})
}

// SIEMKPIGrid is the counter grid, also served alone as the htmx refresh
// target.
func SIEMKPIGrid(data viewmodels.SIEMViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<div id="siem-kpis" class="kpi-grid" hx-get="/" hx-target="#siem-kpis" hx-swap="outerHTML" hx-trigger="every 60s">`)
		for _, card := range SIEMKPICards(data) {
			h.component(ctx, KPICard(card))
		}
		h.raw(`</div>`)
		return h.err
	})
}

// SIEMKPICards maps the snapshot counters onto display tiles.
func SIEMKPICards(data viewmodels.SIEMViewData) []viewmodels.KPICardData {
	d := data.Data
	intrusionTone := "ok"
	if d.IntrusionAttempts > 0 {
		intrusionTone = "alert"
	}
	blockedTone := "neutral"
	if d.BlockedAttempts > 0 {
		blockedTone = "warn"
	}
	return []viewmodels.KPICardData{
		{
			Key:   "total-log-entries",
			Label: "Log entries",
			Value: FormatCount(d.TotalLogEntries),
			Tone:  "neutral",
		},
		{
			Key:   "blocked-attempts",
			Label: "Blocked attempts",
			Value: FormatCount(d.BlockedAttempts),
			Tone:  blockedTone,
		},
		{
			Key:   "intrusion-attempts",
			Label: "Intrusion attempts",
			Value: FormatCount(d.IntrusionAttempts),
			Tone:  intrusionTone,
		},
		{
			Key:   "vpn-connections",
			Label: "VPN connections",
			Value: FormatCount(d.ActiveVPNConnections),
			Hint:  "of " + FormatCount(d.TotalVPNConnections) + " provisioned",
			Tone:  "ok",
		},
	}
}

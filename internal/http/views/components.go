package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/secops"
)

// KPICard renders one counter tile.
func KPICard(card viewmodels.KPICardData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.rawf(`<div class="%s" data-kpi="%s">`, esc(KPIToneClass(card.Tone)), esc(card.Key))
		h.rawf(`<span class="kpi-label">%s</span>`, esc(card.Label))
		h.rawf(`<span class="kpi-value">%s</span>`, esc(card.Value))
		if card.Hint != "" {
			h.rawf(`<span class="kpi-hint">%s</span>`, esc(card.Hint))
		}
		h.raw(`</div>`)
		return h.err
	})
}

// SeverityBadge renders a single severity count pill.
func SeverityBadge(severity string, count int64) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.rawf(`<span class="%s" data-severity="%s">%s: %s</span>`,
			esc(SeverityBadgeClass(severity)), esc(severity),
			esc(HumanizeSeverity(severity)), esc(FormatCount(count)))
		return h.err
	})
}

// EnhancedAnalyticsAlert renders the enhanced-analytics banner. Optional
// fields that are absent from the summary are omitted; a nil summary
// renders nothing at all.
func EnhancedAnalyticsAlert(analytics *secops.AnalyticsSummary) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if analytics == nil {
			return nil
		}
		h := newHTML(w)
		h.raw(`<section class="analytics-alert" role="status" aria-live="polite">`)
		h.raw(`<h2 class="analytics-alert-title">Enhanced analytics</h2>`)

		if counts := analytics.AlertCounts; counts != nil {
			h.raw(`<div class="analytics-alert-counts" data-analytics="alert-counts">`)
			h.rawf(`<span class="analytics-alert-total">%s alerts</span>`, esc(FormatCount(counts.Total)))
			h.component(ctx, SeverityBadge("critical", counts.Critical))
			h.component(ctx, SeverityBadge("high", counts.High))
			h.component(ctx, SeverityBadge("medium", counts.Medium))
			h.component(ctx, SeverityBadge("low", counts.Low))
			h.raw(`</div>`)
		}

		if len(analytics.SeverityBreakdown) > 0 {
			h.raw(`<div class="analytics-alert-breakdown" data-analytics="severity-breakdown">`)
			for _, severity := range secops.Severities {
				count, ok := analytics.SeverityBreakdown[severity]
				if !ok {
					continue
				}
				h.component(ctx, SeverityBadge(severity, count))
			}
			h.raw(`</div>`)
		}

		if len(analytics.TopUsers) > 0 {
			h.raw(`<ul class="analytics-alert-users" data-analytics="top-users">`)
			for _, u := range analytics.TopUsers {
				h.rawf(`<li><span class="analytics-user">%s</span> <span class="analytics-user-count">%s events</span></li>`,
					esc(u.User), esc(FormatCount(u.EventCount)))
			}
			h.raw(`</ul>`)
		}

		h.raw(`</section>`)
		return h.err
	})
}

// DashboardFooter lists the contributing data sources and the render
// timestamp.
func DashboardFooter(sources []string, generatedAt, renderedAt time.Time) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<footer class="dashboard-footer">`)

		if len(sources) > 0 {
			h.raw(`<span class="footer-sources">Sources: `)
			for i, source := range sources {
				if i > 0 {
					h.raw(`, `)
				}
				h.rawf(`<span class="footer-source" data-source="%s">%s</span>`, esc(source), esc(HumanizeSourceName(source)))
			}
			h.raw(`</span>`)
		}

		staleness := secops.StalenessLabel(generatedAt, renderedAt)
		h.rawf(`<span class="%s" data-staleness="%s">%s</span>`,
			esc(StalenessBadgeClass(staleness)), esc(staleness), esc(staleness))
		h.rawf(`<time class="footer-rendered" datetime="%s">Rendered %s</time>`,
			esc(renderedAt.UTC().Format(time.RFC3339)), esc(FormatTimestamp(renderedAt)))
		h.raw(`</footer>`)
		return h.err
	})
}

// PerformanceMonitor is a placeholder panel; the performance view has no
// data feed yet.
func PerformanceMonitor() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<section class="performance-monitor placeholder">`)
		h.raw(`<h2>Performance Monitor</h2>`)
		h.raw(`<p>Performance monitoring is coming soon.</p>`)
		h.raw(`</section>`)
		return h.err
	})
}

// Toast renders a flash message, or nothing when toast is nil.
func Toast(toast *viewmodels.ToastViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if toast == nil {
			return nil
		}
		h := newHTML(w)
		h.rawf(`<div class="toast toast-%s" role="status" aria-live="polite">`, esc(toast.Category))
		h.rawf(`<strong>%s</strong>`, esc(toast.Title))
		if toast.Description != "" {
			h.rawf(` <span>%s</span>`, esc(toast.Description))
		}
		h.raw(`</div>`)
		return h.err
	})
}

// NoDataNotice tells the operator the refresh loop has not produced a
// snapshot yet.
func NoDataNotice(kind string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.rawf(`<div class="no-data-notice" data-kind="%s">`, esc(kind))
		h.raw(`No snapshot available yet. The next refresh will populate this dashboard.`)
		h.raw(`</div>`)
		return h.err
	})
}

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soclens/soclens/internal/http/viewmodels"
	"github.com/soclens/soclens/internal/secops"
)

// SonicWallPage is the full firewall dashboard page.
func SonicWallPage(data viewmodels.SonicWallViewData) templ.Component {
	return Layout(data.Layout, sonicWallContent(data))
}

func sonicWallContent(data viewmodels.SonicWallViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<h1>SonicWall firewall</h1>`)
		if data.NoData {
			h.component(ctx, NoDataNotice("sonicwall"))
		}
		h.component(ctx, SonicWallDashboard(data))
		h.component(ctx, DashboardFooter([]string{"sonicwall"}, data.Data.GeneratedAt, data.RenderedAt))
		return h.err
	})
}

// SonicWallDashboard renders the firewall panel. The legacy theme keeps
// the chrome of the firewall's own status page.
func SonicWallDashboard(data viewmodels.SonicWallViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		theme := viewmodels.NormalizeSonicWallTheme(data.Theme)
		d := data.Data

		h := newHTML(w)
		h.rawf(`<section class="sonicwall-dashboard theme-%s" data-theme="%s">`, esc(theme), esc(theme))

		h.raw(`<div class="kpi-grid">`)
		for _, card := range SonicWallKPICards(d) {
			h.component(ctx, KPICard(card))
		}
		h.raw(`</div>`)

		if len(d.Interfaces) > 0 {
			h.raw(`<table class="interface-table"><thead><tr><th>Interface</th><th>Received</th><th>Sent</th></tr></thead><tbody>`)
			for _, iface := range d.Interfaces {
				h.rawf(`<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
					esc(iface.Name), esc(secops.FormatBytes(iface.RxBytes)), esc(secops.FormatBytes(iface.TxBytes)))
			}
			h.raw(`</tbody></table>`)
		}

		h.raw(`<dl class="appliance-facts">`)
		h.rawf(`<div><dt>Uptime</dt><dd>%s</dd></div>`, esc(secops.FormatUptime(d.UptimeSeconds)))
		if d.FirmwareVersion != "" {
			h.rawf(`<div><dt>Firmware</dt><dd>%s</dd></div>`, esc(d.FirmwareVersion))
		}
		servicesLabel := "Disabled"
		servicesTone := "warn"
		if d.SecurityServicesOn {
			servicesLabel = "Active"
			servicesTone = "ok"
		}
		h.rawf(`<div><dt>Security services</dt><dd class="services-%s">%s</dd></div>`, esc(servicesTone), esc(servicesLabel))
		h.raw(`</dl>`)

		h.raw(`</section>`)
		return h.err
	})
}

// SonicWallKPICards maps the firewall counters onto display tiles.
func SonicWallKPICards(d secops.SonicWallData) []viewmodels.KPICardData {
	intrusionTone := "ok"
	if d.BlockedIntrusions > 0 {
		intrusionTone = "warn"
	}
	botnetTone := "ok"
	if d.BotnetHits > 0 {
		botnetTone = "alert"
	}
	return []viewmodels.KPICardData{
		{
			Key:   "blocked-intrusions",
			Label: "Blocked intrusions",
			Value: FormatCount(d.BlockedIntrusions),
			Tone:  intrusionTone,
		},
		{
			Key:   "virus-blocks",
			Label: "Virus blocks",
			Value: FormatCount(d.VirusBlocks),
			Tone:  "neutral",
		},
		{
			Key:   "spyware-blocks",
			Label: "Spyware blocks",
			Value: FormatCount(d.SpywareBlocks),
			Tone:  "neutral",
		},
		{
			Key:   "botnet-hits",
			Label: "Botnet hits",
			Value: FormatCount(d.BotnetHits),
			Tone:  botnetTone,
		},
		{
			Key:   "active-connections",
			Label: "Active connections",
			Value: FormatCount(d.ActiveConnections),
			Hint:  "of " + FormatCount(d.MaxConnections) + " max",
			Tone:  "neutral",
		},
	}
}

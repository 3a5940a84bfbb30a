package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

type navItem struct {
	Href  string
	Label string
}

var navItems = []navItem{
	{Href: "/", Label: "SIEM"},
	{Href: "/sonicwall", Label: "SonicWall"},
	{Href: "/performance", Label: "Performance"},
}

// Layout wraps page content in the shared chrome: head, nav, topbar,
// toast slot.
func Layout(layout viewmodels.LayoutData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		title := layout.Title
		if title == "" {
			title = "soclens"
		}
		h.rawf(`<title>%s · soclens</title>`, esc(title))
		h.rawf(`<meta name="csrf-token" content="%s">`, esc(layout.CSRFToken))
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`<script src="/static/htmx.min.js" defer></script>`)
		h.raw(`</head>`)
		h.rawf(`<body hx-boost="true" hx-headers='{"X-CSRF-Token": "%s"}'>`, esc(layout.CSRFToken))

		h.raw(`<header class="topbar"><span class="brand">soclens</span><nav class="main-nav">`)
		for _, item := range navItems {
			current := AriaCurrent(layout.ActivePath, item.Href)
			if current != "" {
				h.rawf(`<a href="%s" aria-current="%s">%s</a>`, esc(item.Href), esc(current), esc(item.Label))
			} else {
				h.rawf(`<a href="%s">%s</a>`, esc(item.Href), esc(item.Label))
			}
		}
		h.raw(`</nav>`)

		if layout.UserEmail != "" {
			h.raw(`<div class="session">`)
			h.rawf(`<span class="session-user">%s</span>`, esc(layout.UserEmail))
			h.rawf(`<form method="post" action="/logout" hx-boost="false"><input type="hidden" name="csrf" value="%s"><button type="submit">Sign out</button></form>`, esc(layout.CSRFToken))
			h.raw(`</div>`)
		}
		h.raw(`</header>`)

		h.component(ctx, Toast(layout.Toast))

		h.raw(`<main class="page">`)
		h.component(ctx, content)
		h.raw(`</main>`)

		h.raw(`</body></html>`)
		return h.err
	})
}

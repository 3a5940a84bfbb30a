package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

// LoginPage is the standalone sign-in page; it carries its own minimal
// chrome instead of the dashboard layout.
func LoginPage(data viewmodels.LoginViewData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTML(w)
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>Sign in · soclens</title>`)
		h.raw(`<link rel="stylesheet" href="/static/app.css">`)
		h.raw(`</head><body class="login-body">`)

		h.component(ctx, Toast(data.Toast))

		h.raw(`<main class="login-card">`)
		h.raw(`<h1>soclens</h1>`)

		if data.SetupRequired {
			h.raw(`<p class="login-setup">No users exist yet. Create the first admin with <code>soclens users bootstrap-admin</code>.</p>`)
		}

		if data.ErrorMessage != "" {
			h.rawf(`<p class="login-error" role="alert">%s</p>`, esc(data.ErrorMessage))
		}

		h.raw(`<form method="post" action="/login">`)
		h.rawf(`<input type="hidden" name="csrf" value="%s">`, esc(data.CSRFToken))
		if data.Next != "" {
			h.rawf(`<input type="hidden" name="next" value="%s">`, esc(data.Next))
		}
		h.rawf(`<label>Email<input type="email" name="email" value="%s" autocomplete="username" required></label>`, esc(data.Email))
		h.raw(`<label>Password<input type="password" name="password" autocomplete="current-password" required></label>`)
		h.raw(`<button type="submit">Sign in</button>`)
		h.raw(`</form>`)

		h.raw(`</main></body></html>`)
		return h.err
	})
}

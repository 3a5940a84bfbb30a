// Package views renders the dashboard markup. Every component is a pure
// projection of its viewmodel: immutable data in, HTML out, dynamic
// values escaped.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// html is the error-sticky writer the components share. The first write
// error wins; later writes become no-ops.
type html struct {
	w   io.Writer
	err error
}

func newHTML(w io.Writer) *html {
	return &html{w: w}
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

// rawf formats markup. Dynamic arguments must already be escaped.
func (h *html) rawf(format string, args ...any) {
	if h.err == nil {
		_, h.err = fmt.Fprintf(h.w, format, args...)
	}
}

func (h *html) component(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

// esc is shorthand for the attribute/text escaping every component uses.
func esc(s string) string {
	return templ.EscapeString(s)
}

package views

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	xhtml "golang.org/x/net/html"

	"github.com/soclens/soclens/internal/http/viewmodels"
)

func layoutFixture() viewmodels.LayoutData {
	return viewmodels.LayoutData{
		Title:      "SIEM",
		CSRFToken:  "tok-123",
		UserEmail:  "ops@example.com",
		UserRole:   "admin",
		IsAdmin:    true,
		ActivePath: "/",
	}
}

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestLayoutBoostsNavigationWithCSRFHeader(t *testing.T) {
	t.Parallel()

	out := renderViewComponent(t, Layout(layoutFixture(), textComponent("<p>hello</p>")))

	assertContains(t, out, `<body hx-boost="true"`)
	assertContains(t, out, `hx-headers='{"X-CSRF-Token": "tok-123"}'`)
	assertContains(t, out, `<meta name="csrf-token" content="tok-123">`)
}

func TestLayoutLogoutFormOptsOutOfBoost(t *testing.T) {
	t.Parallel()

	out := renderViewComponent(t, Layout(layoutFixture(), textComponent("")))

	assertContains(t, out, `<form method="post" action="/logout" hx-boost="false">`)
	assertContains(t, out, `ops@example.com`)
}

func TestLayoutHidesSessionBlockWhenAnonymous(t *testing.T) {
	t.Parallel()

	layout := layoutFixture()
	layout.UserEmail = ""

	out := renderViewComponent(t, Layout(layout, textComponent("")))

	assertNotContains(t, out, `action="/logout"`)
}

func TestLayoutMarksActiveNavItem(t *testing.T) {
	t.Parallel()

	layout := layoutFixture()
	layout.ActivePath = "/sonicwall"

	out := renderViewComponent(t, Layout(layout, textComponent("")))

	assertContains(t, out, `<a href="/sonicwall" aria-current="page">`)
	assertNotContains(t, out, `<a href="/" aria-current`)
}

// TestLayoutProducesParsableDocument walks the full document with an HTML
// parser so malformed nesting in the chrome cannot slip past the
// string assertions above.
func TestLayoutProducesParsableDocument(t *testing.T) {
	t.Parallel()

	out := renderViewComponent(t, Layout(layoutFixture(), textComponent("<p>hello</p>")))

	doc, err := xhtml.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse rendered layout: %v", err)
	}

	var navLinks int
	var sawMain bool
	var walk func(n *xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.ElementNode {
			switch n.Data {
			case "main":
				sawMain = true
			case "a":
				for _, attr := range n.Attr {
					if attr.Key == "href" {
						navLinks++
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if !sawMain {
		t.Fatal("rendered layout has no <main> element")
	}
	if navLinks != len(navItems) {
		t.Fatalf("nav links = %d, want %d", navLinks, len(navItems))
	}
}

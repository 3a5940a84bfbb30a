package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v5"
)

type stubRefresher struct {
	err    error
	called int
}

func (s *stubRefresher) RunOnce(context.Context) error {
	s.called++
	return s.err
}

func TestHandleSnapshotAPIUnknownKind(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "http://example.com/api/snapshots/bogus")
	c.SetPathValues(echo.PathValues{{Name: "kind", Value: "bogus"}})

	h := &Handlers{}
	if err := h.HandleSnapshotAPI(c); err != nil {
		t.Fatalf("HandleSnapshotAPI() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "unknown snapshot kind") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestHandleSnapshotAPINoSnapshot(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "http://example.com/api/snapshots/siem")
	c.SetPathValues(echo.PathValues{{Name: "kind", Value: "siem"}})

	h := &Handlers{}
	if err := h.HandleSnapshotAPI(c); err != nil {
		t.Fatalf("HandleSnapshotAPI() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "no snapshot available") {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestHandleRefreshPostSuccess(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "http://example.com/refresh")

	refresher := &stubRefresher{}
	h := &Handlers{Refresher: refresher}
	if err := h.HandleRefreshPost(c); err != nil {
		t.Fatalf("HandleRefreshPost() error = %v", err)
	}

	if refresher.called != 1 {
		t.Fatalf("RunOnce called %d times, want 1", refresher.called)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestHandleRefreshPostHTMXRedirect(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "http://example.com/refresh")
	c.Request().Header.Set("HX-Request", "true")

	h := &Handlers{Refresher: &stubRefresher{}}
	if err := h.HandleRefreshPost(c); err != nil {
		t.Fatalf("HandleRefreshPost() error = %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/" {
		t.Fatalf("HX-Redirect = %q, want /", got)
	}
}

func TestHandleRefreshPostFailureStillRedirects(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "http://example.com/refresh")

	h := &Handlers{Refresher: &stubRefresher{err: errors.New("upstream down")}}
	if err := h.HandleRefreshPost(c); err != nil {
		t.Fatalf("HandleRefreshPost() error = %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	var sawToast bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == flashToastCookieName && cookie.Value != "" {
			sawToast = true
		}
	}
	if !sawToast {
		t.Fatal("failure did not set a flash toast")
	}
}

func TestHandleRefreshPostWithoutRefresher(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "http://example.com/refresh")

	h := &Handlers{}
	if err := h.HandleRefreshPost(c); err != nil {
		t.Fatalf("HandleRefreshPost() error = %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

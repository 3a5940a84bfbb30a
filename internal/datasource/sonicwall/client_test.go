package sonicwall

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewValidates(t *testing.T) {
	if _, err := New("", "admin", "pw", 0); err == nil {
		t.Fatal("expected error for empty base URL")
	}
	if _, err := New("https://fw.example.com", "", "pw", 0); err == nil {
		t.Fatal("expected error for empty username")
	}
	if _, err := New("https://fw.example.com", "admin", "", 0); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestNewHonorsTimeout(t *testing.T) {
	c, err := New("https://fw.example.com", "admin", "pw", 10*time.Second)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.HTTP.Timeout != 10*time.Second {
		t.Fatalf("HTTP.Timeout = %v, want 10s", c.HTTP.Timeout)
	}

	c, err = New("https://fw.example.com", "admin", "pw", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.HTTP.Timeout != defaultTimeout {
		t.Fatalf("HTTP.Timeout = %v, want default %v", c.HTTP.Timeout, defaultTimeout)
	}
}

func TestSnapshotUsesBasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "admin" || pass != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/api/sonicos/reporting/dashboard" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"blocked_intrusions": 58,
			"virus_blocks": 12,
			"active_connections": 1040,
			"max_connections": 25000,
			"uptime_seconds": 86400,
			"firmware_version": "7.1.1-7047",
			"generated_at": "2026-02-01T12:00:00Z"
		}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, "admin", "pw", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data, _, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if data.BlockedIntrusions != 58 {
		t.Fatalf("BlockedIntrusions = %d", data.BlockedIntrusions)
	}
	if data.FirmwareVersion != "7.1.1-7047" {
		t.Fatalf("FirmwareVersion = %q", data.FirmwareVersion)
	}
}

func TestSnapshotRejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "admin", "wrong", 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, _, err := c.Snapshot(context.Background()); err == nil || !strings.Contains(err.Error(), "rejected credentials") {
		t.Fatalf("Snapshot() error = %v", err)
	}
}

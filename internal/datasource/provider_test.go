package datasource

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubProvider struct {
	kind  string
	snap  Snapshot
	err   error
	delay time.Duration
}

func (s *stubProvider) Kind() string { return s.kind }

func (s *stubProvider) Fetch(context.Context) (Snapshot, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.snap, s.err
}

func TestFetchAllCollectsPartialResults(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	providers := []Provider{
		&stubProvider{kind: "siem", snap: Snapshot{Kind: "siem", Payload: []byte(`{}`), GeneratedAt: now}},
		&stubProvider{kind: "sonicwall", err: errors.New("connection refused")},
	}

	snaps, err := FetchAll(context.Background(), providers)
	if len(snaps) != 1 || snaps[0].Kind != "siem" {
		t.Fatalf("snaps = %+v", snaps)
	}
	if err == nil {
		t.Fatal("expected combined error")
	}

	var fe *FetchError
	if !errors.As(err, &fe) || fe.Kind != "sonicwall" {
		t.Fatalf("error = %v, want FetchError for sonicwall", err)
	}
}

func TestFetchAllStampsPerProviderElapsed(t *testing.T) {
	providers := []Provider{
		&stubProvider{kind: "siem", snap: Snapshot{Kind: "siem"}, delay: 30 * time.Millisecond},
		&stubProvider{kind: "sonicwall", snap: Snapshot{Kind: "sonicwall"}},
	}

	snaps, err := FetchAll(context.Background(), providers)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("snaps = %+v", snaps)
	}

	byKind := make(map[string]Snapshot, len(snaps))
	for _, snap := range snaps {
		byKind[snap.Kind] = snap
	}
	if got := byKind["siem"].Elapsed; got < 30*time.Millisecond {
		t.Fatalf("siem Elapsed = %v, want >= 30ms", got)
	}
	// The fast provider must not inherit the slow one's wall time.
	if fast, slow := byKind["sonicwall"].Elapsed, byKind["siem"].Elapsed; fast > slow {
		t.Fatalf("sonicwall Elapsed = %v exceeds siem Elapsed = %v", fast, slow)
	}
}

func TestFetchAllNoProviders(t *testing.T) {
	snaps, err := FetchAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}
	if len(snaps) != 0 {
		t.Fatalf("snaps = %+v", snaps)
	}
}

package refresh

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/soclens/soclens/internal/datasource"
)

type stubProvider struct {
	kind  string
	calls atomic.Int64
	err   error
}

func (s *stubProvider) Kind() string { return s.kind }

func (s *stubProvider) Fetch(context.Context) (datasource.Snapshot, error) {
	s.calls.Add(1)
	if s.err != nil {
		return datasource.Snapshot{}, s.err
	}
	return datasource.Snapshot{
		Kind:        s.kind,
		Payload:     []byte(`{}`),
		GeneratedAt: time.Now(),
	}, nil
}

func TestRunOnceNoStoreNoCache(t *testing.T) {
	p := &stubProvider{kind: "siem"}
	r := NewSnapshotRunner([]datasource.Provider{p}, nil, nil)

	if err := r.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}
	if p.calls.Load() != 1 {
		t.Fatalf("provider calls = %d", p.calls.Load())
	}
}

func TestRunOnceReturnsFetchErrors(t *testing.T) {
	good := &stubProvider{kind: "siem"}
	bad := &stubProvider{kind: "sonicwall", err: errors.New("down")}
	r := NewSnapshotRunner([]datasource.Provider{good, bad}, nil, nil)

	err := r.RunOnce(context.Background())
	if err == nil {
		t.Fatal("expected fetch error")
	}
	var fe *datasource.FetchError
	if !errors.As(err, &fe) || fe.Kind != "sonicwall" {
		t.Fatalf("error = %v", err)
	}
	if good.calls.Load() != 1 {
		t.Fatal("healthy provider should still be fetched")
	}
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	p := &stubProvider{kind: "siem"}
	s := &Scheduler{
		Runner:   NewSnapshotRunner([]datasource.Provider{p}, nil, nil),
		Interval: time.Millisecond,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Wait for at least the startup pass, then cancel.
	deadline := time.After(2 * time.Second)
	for p.calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduler never ran")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

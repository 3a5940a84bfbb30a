// Package datasource defines the boundary to the external systems that
// produce the pre-shaped dashboard snapshots. Providers fetch finished
// payloads; nothing here aggregates or computes.
package datasource

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Snapshot is one fetched payload, kept as the upstream JSON. Elapsed is
// how long this provider's fetch alone took; FetchAll stamps it.
type Snapshot struct {
	Kind        string
	Payload     []byte
	GeneratedAt time.Time
	Elapsed     time.Duration
}

// Provider fetches the current snapshot for one dashboard kind.
type Provider interface {
	Kind() string
	Fetch(ctx context.Context) (Snapshot, error)
}

// FetchAll fetches from every provider concurrently. Snapshots that
// succeed are returned even when other providers fail; the combined error
// carries every failure.
func FetchAll(ctx context.Context, providers []Provider) ([]Snapshot, error) {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		out  []Snapshot
		errs []error
	)

	for _, p := range providers {
		p := p
		g.Go(func() error {
			fetchStart := time.Now()
			snap, err := p.Fetch(ctx)
			elapsed := time.Since(fetchStart)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, &FetchError{Kind: p.Kind(), Err: err})
				return nil
			}
			snap.Elapsed = elapsed
			out = append(out, snap)
			return nil
		})
	}

	_ = g.Wait()
	return out, joinErrs(errs)
}

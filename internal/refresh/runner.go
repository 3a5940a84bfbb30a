// Package refresh keeps the stored and cached snapshots current. It
// fetches finished payloads from the datasources and writes them through;
// it performs no aggregation of its own.
package refresh

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/soclens/soclens/internal/cache"
	"github.com/soclens/soclens/internal/datasource"
	"github.com/soclens/soclens/internal/metrics"
	"github.com/soclens/soclens/internal/store"
)

// Runner executes a single refresh pass.
type Runner interface {
	RunOnce(context.Context) error
}

const defaultHistoryKeep = 288 // one day at 5-minute refreshes

// SnapshotRunner fetches every provider and persists the results.
type SnapshotRunner struct {
	Providers   []datasource.Provider
	Store       *store.Store
	Cache       *cache.Cache
	HistoryKeep int

	now func() time.Time
}

func NewSnapshotRunner(providers []datasource.Provider, st *store.Store, c *cache.Cache) *SnapshotRunner {
	return &SnapshotRunner{
		Providers:   providers,
		Store:       st,
		Cache:       c,
		HistoryKeep: defaultHistoryKeep,
		now:         time.Now,
	}
}

// RunOnce fetches all providers concurrently, stores and caches whatever
// succeeded, and reports every failure. A pass with partial results still
// returns the fetch error so operators see it.
func (r *SnapshotRunner) RunOnce(ctx context.Context) error {
	runID := uuid.NewString()

	snaps, fetchErr := datasource.FetchAll(ctx, r.Providers)
	for _, snap := range snaps {
		metrics.SnapshotFetchDuration.WithLabelValues(snap.Kind).Observe(snap.Elapsed.Seconds())
		metrics.SnapshotFetchesTotal.WithLabelValues(snap.Kind, "success").Inc()
		metrics.SnapshotAge.WithLabelValues(snap.Kind).Set(r.now().Sub(snap.GeneratedAt).Seconds())

		if err := r.persist(ctx, runID, snap); err != nil {
			slog.Error("snapshot persist failed", "run_id", runID, "kind", snap.Kind, "err", err)
			metrics.SnapshotFetchesTotal.WithLabelValues(snap.Kind, "persist_error").Inc()
			continue
		}
		slog.Info("snapshot refreshed", "run_id", runID, "kind", snap.Kind, "generated_at", snap.GeneratedAt)
	}

	if fetchErr != nil {
		metrics.RefreshRunsTotal.WithLabelValues("error").Inc()
		return fetchErr
	}
	metrics.RefreshRunsTotal.WithLabelValues("success").Inc()
	return nil
}

func (r *SnapshotRunner) persist(ctx context.Context, runID string, snap datasource.Snapshot) error {
	if r.Store != nil {
		_, err := r.Store.InsertSnapshot(ctx, store.Snapshot{
			Kind:        snap.Kind,
			RunID:       runID,
			Payload:     snap.Payload,
			GeneratedAt: snap.GeneratedAt,
			FetchedAt:   r.now(),
		})
		if err != nil {
			return err
		}
		if _, err := r.Store.PruneSnapshots(ctx, snap.Kind, r.HistoryKeep); err != nil {
			slog.Warn("snapshot prune failed", "kind", snap.Kind, "err", err)
		}
	}
	return r.Cache.SetSnapshot(ctx, snap.Kind, snap.Payload)
}

package store

import (
	"context"
	"time"
)

// Snapshot is one stored pre-shaped dashboard payload. The payload is kept
// verbatim as JSON; this layer never interprets it.
type Snapshot struct {
	ID          int64
	Kind        string
	RunID       string
	Payload     []byte
	GeneratedAt time.Time
	FetchedAt   time.Time
}

// InsertSnapshot appends a snapshot to the history.
func (s *Store) InsertSnapshot(ctx context.Context, snap Snapshot) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO snapshots (kind, run_id, payload, generated_at, fetched_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		snap.Kind, snap.RunID, snap.Payload, snap.GeneratedAt, snap.FetchedAt,
	).Scan(&id)
	return id, err
}

// LatestSnapshot returns the most recently fetched snapshot of a kind.
// Callers see pgx.ErrNoRows when no snapshot was ever stored.
func (s *Store) LatestSnapshot(ctx context.Context, kind string) (Snapshot, error) {
	var snap Snapshot
	err := s.pool.QueryRow(ctx,
		`SELECT id, kind, run_id, payload, generated_at, fetched_at
		 FROM snapshots
		 WHERE kind = $1
		 ORDER BY fetched_at DESC
		 LIMIT 1`, kind,
	).Scan(&snap.ID, &snap.Kind, &snap.RunID, &snap.Payload, &snap.GeneratedAt, &snap.FetchedAt)
	return snap, err
}

// PruneSnapshots drops history beyond the newest keep rows for a kind.
func (s *Store) PruneSnapshots(ctx context.Context, kind string, keep int) (int64, error) {
	if keep < 1 {
		keep = 1
	}
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM snapshots
		 WHERE kind = $1 AND id NOT IN (
		   SELECT id FROM snapshots WHERE kind = $1 ORDER BY fetched_at DESC LIMIT $2
		 )`, kind, keep)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Package store is the postgres persistence layer: auth users for the web
// UI plus the snapshot history the refresh loop writes and the dashboards
// read.
package store

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps a pgx pool with the queries soclens needs.
type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Pool exposes the underlying pool for collaborators that need raw access,
// such as the session manager's pgxstore.
func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	EntityStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EntityStore provides the read path used by search and the write path used by seeding.
type EntityStore interface {
	// Match returns rows whose match fields contain the term (case-insensitive),
	// ordered by ascending id and capped at the query limit.
	Match(ctx context.Context, q *MatchQuery) ([]Row, error)
	// Insert writes a single row into a collection.
	Insert(ctx context.Context, collection string, row Row) error
}

package entity

import (
	"context"

	"github.com/kailas-cloud/okrsearch/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	matchFn func(ctx context.Context, q *db.MatchQuery) ([]db.Row, error)
	last    *db.MatchQuery
}

func (m *mockStore) Match(ctx context.Context, q *db.MatchQuery) ([]db.Row, error) {
	m.last = q
	if m.matchFn != nil {
		return m.matchFn(ctx, q)
	}
	return nil, nil
}

func rows(r ...db.Row) func(context.Context, *db.MatchQuery) ([]db.Row, error) {
	return func(context.Context, *db.MatchQuery) ([]db.Row, error) { return r, nil }
}

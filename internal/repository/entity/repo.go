package entity

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/okrsearch/internal/db"
	domentity "github.com/kailas-cloud/okrsearch/internal/domain/entity"
	"github.com/kailas-cloud/okrsearch/internal/domain/search/result"
)

// store is the consumer interface for entity lookups (ISP).
type store interface {
	Match(ctx context.Context, q *db.MatchQuery) ([]db.Row, error)
}

// Repo searches one entity collection and parses rows into projections of type T.
// Repo implements usecase/search.Provider[T].
type Repo[T any] struct {
	store   store
	kind    domentity.Kind
	fields  []string
	columns []string
	parse   func(ctx context.Context, row db.Row) T
}

// NewObjectives creates the objectives provider.
func NewObjectives(s store) *Repo[result.Objective] {
	return &Repo[result.Objective]{
		store:   s,
		kind:    domentity.Objective,
		fields:  []string{"title", "description"},
		columns: []string{"title", "description", "progress", "status"},
		parse:   parseObjective,
	}
}

// NewKeyResults creates the key results provider.
func NewKeyResults(s store) *Repo[result.KeyResult] {
	return &Repo[result.KeyResult]{
		store:   s,
		kind:    domentity.KeyResult,
		fields:  []string{"title", "description"},
		columns: []string{"title", "description", "objective_id", "progress"},
		parse:   parseKeyResult,
	}
}

// NewTeams creates the teams provider.
func NewTeams(s store) *Repo[result.Team] {
	return &Repo[result.Team]{
		store:   s,
		kind:    domentity.Team,
		fields:  []string{"name", "description"},
		columns: []string{"name", "description", "member_count"},
		parse:   parseTeam,
	}
}

// NewUsers creates the users provider.
func NewUsers(s store) *Repo[result.User] {
	return &Repo[result.User]{
		store:   s,
		kind:    domentity.User,
		fields:  []string{"username", "first_name", "last_name", "email"},
		columns: []string{"username", "first_name", "last_name", "email", "role"},
		parse:   parseUser,
	}
}

// Kind returns the entity kind this provider serves.
func (r *Repo[T]) Kind() domentity.Kind { return r.kind }

// Search returns up to limit projections whose match fields contain term,
// in ascending id order.
func (r *Repo[T]) Search(ctx context.Context, term string, limit int) ([]T, error) {
	rows, err := r.store.Match(ctx, &db.MatchQuery{
		Collection: r.kind.Collection(),
		Fields:     r.fields,
		Columns:    r.columns,
		Term:       term,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", r.kind, err)
	}

	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, r.parse(ctx, row))
	}
	return out, nil
}

package search

import (
	"context"

	"github.com/kailas-cloud/okrsearch/internal/domain/entity"
)

// Provider looks up one entity kind by substring term.
// Implementations return at most limit items in the store's natural order.
type Provider[T any] interface {
	Kind() entity.Kind
	Search(ctx context.Context, term string, limit int) ([]T, error)
}

package seed

import (
	"context"

	"github.com/kailas-cloud/okrsearch/internal/db"
)

// EntityWriter stores one entity row in a collection.
type EntityWriter interface {
	Insert(ctx context.Context, collection string, row db.Row) error
}

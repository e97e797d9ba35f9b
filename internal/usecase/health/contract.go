package health

import "context"

// DBPinger checks entity store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

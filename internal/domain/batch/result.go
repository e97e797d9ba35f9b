// Package batch describes per-item outcomes of bulk operations such as seeding.
package batch

import "github.com/kailas-cloud/okrsearch/internal/domain/entity"

// ItemStatus is the processing outcome of a single batch item.
type ItemStatus string

// Batch item status values.
const (
	StatusOK    ItemStatus = "ok"
	StatusError ItemStatus = "error"
)

// Result is the outcome of processing one entity in a batch.
type Result struct {
	kind   entity.Kind
	id     string
	status ItemStatus
	err    error
}

// NewOK creates a successful batch result.
func NewOK(kind entity.Kind, id string) Result {
	return Result{kind: kind, id: id, status: StatusOK}
}

// NewError creates a failed batch result.
func NewError(kind entity.Kind, id string, err error) Result {
	return Result{kind: kind, id: id, status: StatusError, err: err}
}

// Kind returns the entity kind of the item.
func (r Result) Kind() entity.Kind { return r.kind }

// ID returns the item identifier. Empty when the item failed before an id was assigned.
func (r Result) ID() string { return r.id }

// Status returns the processing outcome.
func (r Result) Status() ItemStatus { return r.status }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }

// Summary counts results per status.
type Summary struct {
	OK     int
	Failed int
}

// Summarize counts ok and failed items.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.status == StatusOK {
			s.OK++
		} else {
			s.Failed++
		}
	}
	return s
}

package redis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/okrsearch/internal/db"
	"github.com/kailas-cloud/okrsearch/internal/domain"
)

// matchBatchSize is the number of hashes loaded per DoMulti while matching.
const matchBatchSize = 100

func collectionPrefix(collection string) string {
	return domain.KeyPrefix + collection + ":"
}

// Match lists the collection's keys, walks them in ascending id order and keeps
// hashes whose match fields contain the term, stopping at the limit.
func (s *Store) Match(ctx context.Context, q *db.MatchQuery) ([]db.Row, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("match %s: %w", q.Collection, err)
	}

	prefix := collectionPrefix(q.Collection)
	keys, err := s.Scan(ctx, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", q.Collection, err)
	}
	// Same prefix for every key, so key order is id order.
	sort.Strings(keys)

	cols := q.ReturnColumns()
	term := strings.ToLower(q.Term)
	rows := make([]db.Row, 0, min(q.Limit, len(keys)))

	for start := 0; start < len(keys) && len(rows) < q.Limit; start += matchBatchSize {
		end := min(start+matchBatchSize, len(keys))
		hashes, err := s.HGetAllMulti(ctx, keys[start:end])
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", q.Collection, err)
		}

		for i, h := range hashes {
			if len(h) == 0 || !matchesAny(h, q.Fields, term) {
				continue
			}
			row := make(db.Row, len(cols))
			row[db.IDField] = strings.TrimPrefix(keys[start+i], prefix)
			for _, c := range cols[1:] {
				if v, ok := h[c]; ok {
					row[c] = v
				}
			}
			rows = append(rows, row)
			if len(rows) == q.Limit {
				break
			}
		}
	}

	return rows, nil
}

// Insert stores a row as a hash under the collection prefix.
func (s *Store) Insert(ctx context.Context, collection string, row db.Row) error {
	id := row[db.IDField]
	if id == "" {
		return fmt.Errorf("%w: missing %s", db.ErrInvalidRow, db.IDField)
	}

	fields := make(map[string]string, len(row))
	for k, v := range row {
		if k != db.IDField {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields besides %s", db.ErrInvalidRow, db.IDField)
	}

	return s.HSet(ctx, collectionPrefix(collection)+id, fields)
}

// matchesAny reports whether any field contains lowerTerm, ignoring case.
func matchesAny(h map[string]string, fields []string, lowerTerm string) bool {
	for _, f := range fields {
		if v, ok := h[f]; ok && strings.Contains(strings.ToLower(v), lowerTerm) {
			return true
		}
	}
	return false
}

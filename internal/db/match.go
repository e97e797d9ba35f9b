package db

import (
	"errors"
	"fmt"
)

// IDField is the column every collection is keyed and ordered by.
const IDField = "id"

// MatchQuery is the input for a substring match over one collection.
type MatchQuery struct {
	Collection string
	// Fields are matched case-insensitively against Term; a row matches if any field does.
	Fields []string
	// Columns are returned for each matching row. IDField is always returned.
	Columns []string
	Term    string
	Limit   int
}

// Validate checks that the query can be executed.
func (q *MatchQuery) Validate() error {
	if q.Collection == "" {
		return errors.New("collection is required")
	}
	if len(q.Fields) == 0 {
		return errors.New("at least one match field is required")
	}
	if q.Term == "" {
		return errors.New("term is required")
	}
	if q.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", q.Limit)
	}
	return nil
}

// ReturnColumns returns Columns with IDField first and without duplicates.
func (q *MatchQuery) ReturnColumns() []string {
	cols := make([]string, 0, len(q.Columns)+1)
	cols = append(cols, IDField)
	for _, c := range q.Columns {
		if c != IDField {
			cols = append(cols, c)
		}
	}
	return cols
}

// Row is a single entity as flat column values. NULL columns are absent.
type Row map[string]string

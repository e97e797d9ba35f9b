package sqlstore

import (
	"fmt"
	"strconv"
)

// Dialect selects the database/sql driver and its placeholder syntax.
type Dialect string

// Supported dialects.
const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ParseDialect validates a driver name from configuration.
func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case Postgres, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported sql dialect %q", s)
	}
}

// DriverName is the name the driver registers with database/sql.
func (d Dialect) DriverName() string {
	return string(d)
}

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// lower wraps expr in the dialect's case-folding function.
func (d Dialect) lower(expr string) string {
	if d == SQLite {
		return lowerFunc + "(" + expr + ")"
	}
	return "LOWER(" + expr + ")"
}

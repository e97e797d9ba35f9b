// Package sqlstore implements db.Store over database/sql for postgres and sqlite.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq" // postgres driver

	"github.com/kailas-cloud/okrsearch/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a SQL store.
type Config struct {
	Dialect      Dialect
	DSN          string
	MaxOpenConns int
}

// Store implements db.Store on a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Open opens a connection pool for the configured dialect.
func Open(cfg Config) (*Store, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required")
	}
	if _, err := ParseDialect(string(cfg.Dialect)); err != nil {
		return nil, err
	}

	conn, err := sql.Open(cfg.Dialect.DriverName(), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Dialect, err)
	}

	switch {
	case cfg.MaxOpenConns > 0:
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	case cfg.Dialect == SQLite:
		// A single writer avoids SQLITE_BUSY and keeps :memory: databases shared.
		conn.SetMaxOpenConns(1)
	}

	return New(conn, cfg.Dialect), nil
}

// New wraps an existing pool. The caller keeps ownership until Close.
func New(conn *sql.DB, dialect Dialect) *Store {
	return &Store{db: conn, dialect: dialect}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	_ = s.db.Close()
}

// WaitForReady polls Ping until the database responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, s, timeout) //nolint:wrapcheck // already descriptive
}

// Match selects rows where any match field contains the term, case-insensitively,
// ordered by id and capped at the limit.
func (s *Store) Match(ctx context.Context, q *db.MatchQuery) ([]db.Row, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("match %s: %w", q.Collection, err)
	}

	cols := q.ReturnColumns()
	if err := checkColumns(q.Collection, cols); err != nil {
		return nil, err
	}
	if err := checkColumns(q.Collection, q.Fields); err != nil {
		return nil, err
	}

	query, args := s.buildMatch(q, cols)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer func() { _ = rows.Close() }()

	out := make([]db.Row, 0, q.Limit)
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range vals {
			dest[i] = &vals[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &db.Error{Op: db.OpSelect, Err: err}
		}

		row := make(db.Row, len(cols))
		for i, c := range cols {
			if vals[i].Valid {
				row[c] = vals[i].String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}

	return out, nil
}

func (s *Store) buildMatch(q *db.MatchQuery, cols []string) (string, []any) {
	// Both sides are folded by the same database function.
	pattern := "%" + escapeLike(q.Term) + "%"

	conds := make([]string, len(q.Fields))
	args := make([]any, 0, len(q.Fields)+1)
	for i, f := range q.Fields {
		conds[i] = fmt.Sprintf(`%s LIKE %s ESCAPE '\'`,
			s.dialect.lower(f), s.dialect.lower(s.dialect.placeholder(i+1)))
		args = append(args, pattern)
	}
	args = append(args, q.Limit)

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT %s",
		strings.Join(cols, ", "),
		q.Collection,
		strings.Join(conds, " OR "),
		db.IDField,
		s.dialect.placeholder(len(args)),
	)
	return query, args
}

// Insert writes a row. Rows whose id already exists are left untouched.
func (s *Store) Insert(ctx context.Context, collection string, row db.Row) error {
	if row[db.IDField] == "" {
		return fmt.Errorf("%w: missing %s", db.ErrInvalidRow, db.IDField)
	}

	cols := make([]string, 0, len(row))
	for c := range row {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	if err := checkColumns(collection, cols); err != nil {
		return err
	}

	marks := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		marks[i] = s.dialect.placeholder(i + 1)
		args[i] = row[c]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO NOTHING",
		collection, strings.Join(cols, ", "), strings.Join(marks, ", "), db.IDField)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return &db.Error{Op: db.OpInsert, Err: err}
	}
	return nil
}

func checkColumns(collection string, cols []string) error {
	known, ok := tables[collection]
	if !ok {
		return fmt.Errorf("%w: %q", db.ErrUnknownCollection, collection)
	}
	for _, c := range cols {
		if !known[c] {
			return fmt.Errorf("%w: unknown column %q in %s", db.ErrInvalidRow, c, collection)
		}
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally under ESCAPE '\'.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

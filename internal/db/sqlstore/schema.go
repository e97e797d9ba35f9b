package sqlstore

import (
	"context"
	"embed"
	"strings"

	"github.com/kailas-cloud/okrsearch/internal/db"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// tables lists the columns each collection may select or insert.
// Identifiers in generated SQL come only from here.
var tables = map[string]map[string]bool{
	"objectives":  columnSet("id", "title", "description", "progress", "status"),
	"key_results": columnSet("id", "objective_id", "title", "description", "progress"),
	"teams":       columnSet("id", "name", "description", "member_count"),
	"users":       columnSet("id", "username", "first_name", "last_name", "email", "role"),
}

func columnSet(cols ...string) map[string]bool {
	m := make(map[string]bool, len(cols))
	for _, c := range cols {
		m[c] = true
	}
	return m
}

// Migrate creates the entity tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	raw, err := migrationsFS.ReadFile("migrations/schema.sql")
	if err != nil {
		return &db.Error{Op: db.OpMigrate, Err: err}
	}

	for _, stmt := range splitStatements(string(raw)) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return &db.Error{Op: db.OpMigrate, Err: err}
		}
	}
	return nil
}

// splitStatements splits a migration file on semicolons. Statements must not
// contain literal semicolons.
func splitStatements(src string) []string {
	parts := strings.Split(src, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts
}

// Package seed loads fixture entities into the configured store.
package seed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/kailas-cloud/okrsearch/internal/db"
	"github.com/kailas-cloud/okrsearch/internal/domain"
	dombatch "github.com/kailas-cloud/okrsearch/internal/domain/batch"
	"github.com/kailas-cloud/okrsearch/internal/domain/entity"
)

// Service writes fixtures with per-item error reporting.
type Service struct {
	store EntityWriter
	newID func() (string, error)
}

// New creates a seed service. Missing ids are filled with UUIDv7.
func New(store EntityWriter) *Service {
	return &Service{store: store, newID: newUUIDv7}
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// Seed inserts every fixture. Existing ids are left untouched by the store.
// Results follow the order objectives, key results, teams, users.
func (s *Service) Seed(ctx context.Context, f Fixtures) []dombatch.Result {
	results := make([]dombatch.Result, 0, f.Len())

	for _, o := range f.Objectives {
		results = append(results, s.insert(ctx, entity.Objective, o.ID, objectiveRow(o), "title"))
	}
	for _, kr := range f.KeyResults {
		results = append(results, s.insert(ctx, entity.KeyResult, kr.ID, keyResultRow(kr), "title"))
	}
	for _, t := range f.Teams {
		results = append(results, s.insert(ctx, entity.Team, t.ID, teamRow(t), "name"))
	}
	for _, u := range f.Users {
		results = append(results, s.insert(ctx, entity.User, u.ID, userRow(u), "username"))
	}
	return results
}

func (s *Service) insert(ctx context.Context, kind entity.Kind, id string, row db.Row, required string) dombatch.Result {
	if row[required] == "" {
		return dombatch.NewError(kind, id, fmt.Errorf("%w: %s requires %s", domain.ErrInvalidFixture, kind, required))
	}
	if id == "" {
		var err error
		if id, err = s.newID(); err != nil {
			return dombatch.NewError(kind, "", err)
		}
	}
	row[db.IDField] = id

	if err := s.store.Insert(ctx, kind.Collection(), row); err != nil {
		return dombatch.NewError(kind, id, fmt.Errorf("insert %s: %w", kind, err))
	}
	return dombatch.NewOK(kind, id)
}

func objectiveRow(o ObjectiveFixture) db.Row {
	row := db.Row{"title": o.Title, "description": o.Description}
	setFloat(row, "progress", o.Progress)
	setString(row, "status", o.Status)
	return row
}

func keyResultRow(kr KeyResultFixture) db.Row {
	row := db.Row{"title": kr.Title, "description": kr.Description}
	setString(row, "objective_id", kr.ObjectiveID)
	setFloat(row, "progress", kr.Progress)
	return row
}

func teamRow(t TeamFixture) db.Row {
	row := db.Row{"name": t.Name}
	if t.Description != nil {
		row["description"] = *t.Description
	}
	if t.MemberCount != nil {
		row["member_count"] = strconv.Itoa(*t.MemberCount)
	}
	return row
}

func userRow(u UserFixture) db.Row {
	row := db.Row{
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
	}
	setString(row, "role", u.Role)
	return row
}

func setString(row db.Row, col, v string) {
	if v != "" {
		row[col] = v
	}
}

func setFloat(row db.Row, col string, v *float64) {
	if v != nil {
		row[col] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/kailas-cloud/okrsearch/internal/db"
	"github.com/kailas-cloud/okrsearch/internal/domain"
	dombatch "github.com/kailas-cloud/okrsearch/internal/domain/batch"
	"github.com/kailas-cloud/okrsearch/internal/domain/entity"
)

// --- Mocks ---

type insertCall struct {
	collection string
	row        db.Row
}

type mockWriter struct {
	calls    []insertCall
	err      error
	failOnID string // fail only for this ID
}

func (m *mockWriter) Insert(_ context.Context, collection string, row db.Row) error {
	m.calls = append(m.calls, insertCall{collection: collection, row: row})
	if m.err != nil && (m.failOnID == "" || row[db.IDField] == m.failOnID) {
		return m.err
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestSeed_AllKinds(t *testing.T) {
	w := &mockWriter{}
	svc := New(w)

	results := svc.Seed(context.Background(), Fixtures{
		Objectives: []ObjectiveFixture{{ID: "o1", Title: "Align roadmap", Progress: ptr(0.4), Status: "on_track"}},
		KeyResults: []KeyResultFixture{{ID: "k1", ObjectiveID: "o1", Title: "Ship alpha"}},
		Teams:      []TeamFixture{{ID: "t1", Name: "Platform", MemberCount: ptr(7)}},
		Users:      []UserFixture{{ID: "u1", Username: "alice", FirstName: "Alice", Email: "alice@example.com"}},
	})

	if len(results) != 4 {
		t.Fatalf("results = %d, want 4", len(results))
	}
	for _, r := range results {
		if r.Status() != dombatch.StatusOK {
			t.Errorf("%s %s: status %q, err %v", r.Kind(), r.ID(), r.Status(), r.Err())
		}
	}

	wantCollections := []string{"objectives", "key_results", "teams", "users"}
	for i, c := range w.calls {
		if c.collection != wantCollections[i] {
			t.Errorf("call %d collection = %q, want %q", i, c.collection, wantCollections[i])
		}
	}

	obj := w.calls[0].row
	if obj["progress"] != "0.4" || obj["status"] != "on_track" || obj[db.IDField] != "o1" {
		t.Errorf("objective row = %v", obj)
	}
	if _, ok := w.calls[1].row["progress"]; ok {
		t.Error("unset progress must be absent")
	}
	team := w.calls[2].row
	if team["member_count"] != "7" {
		t.Errorf("member_count = %q", team["member_count"])
	}
	if _, ok := team["description"]; ok {
		t.Error("nil team description must be absent")
	}
	if _, ok := w.calls[3].row["role"]; ok {
		t.Error("empty role must be absent")
	}
}

func TestSeed_AssignsUUIDv7(t *testing.T) {
	w := &mockWriter{}
	results := New(w).Seed(context.Background(), Fixtures{
		Teams: []TeamFixture{{Name: "Alpha"}, {Name: "Beta"}},
	})

	ids := make([]string, 0, len(results))
	for _, r := range results {
		id, err := uuid.Parse(r.ID())
		if err != nil {
			t.Fatalf("id %q is not a uuid: %v", r.ID(), err)
		}
		if id.Version() != 7 {
			t.Errorf("id version = %d, want 7", id.Version())
		}
		ids = append(ids, r.ID())
	}
	if ids[0] >= ids[1] {
		t.Errorf("ids not ordered by creation: %q >= %q", ids[0], ids[1])
	}
	if w.calls[0].row[db.IDField] != ids[0] {
		t.Error("assigned id not written to the row")
	}
}

func TestSeed_MissingRequiredField(t *testing.T) {
	w := &mockWriter{}
	results := New(w).Seed(context.Background(), Fixtures{
		Users: []UserFixture{{ID: "u1", FirstName: "No", LastName: "Username"}},
	})

	if results[0].Status() != dombatch.StatusError {
		t.Fatalf("status = %q, want error", results[0].Status())
	}
	if !errors.Is(results[0].Err(), domain.ErrInvalidFixture) {
		t.Errorf("err = %v, want ErrInvalidFixture", results[0].Err())
	}
	if len(w.calls) != 0 {
		t.Errorf("store called %d times, want 0", len(w.calls))
	}
}

func TestSeed_PartialFailure(t *testing.T) {
	errStore := errors.New("connection reset")
	w := &mockWriter{err: errStore, failOnID: "t2"}

	results := New(w).Seed(context.Background(), Fixtures{
		Teams: []TeamFixture{{ID: "t1", Name: "A"}, {ID: "t2", Name: "B"}, {ID: "t3", Name: "C"}},
	})

	sum := dombatch.Summarize(results)
	if sum.OK != 2 || sum.Failed != 1 {
		t.Fatalf("summary = %+v, want 2 ok 1 failed", sum)
	}
	if !errors.Is(results[1].Err(), errStore) {
		t.Errorf("err = %v, want wrapped store error", results[1].Err())
	}
	if results[1].Kind() != entity.Team || results[1].ID() != "t2" {
		t.Errorf("failed item = %s/%s", results[1].Kind(), results[1].ID())
	}
}

func TestSeed_IDGenerationError(t *testing.T) {
	svc := New(&mockWriter{})
	svc.newID = func() (string, error) { return "", errors.New("entropy exhausted") }

	results := svc.Seed(context.Background(), Fixtures{Teams: []TeamFixture{{Name: "A"}}})
	if results[0].Status() != dombatch.StatusError || results[0].ID() != "" {
		t.Errorf("result = %+v", results[0])
	}
}

package result

import "testing"

func TestEmpty(t *testing.T) {
	e := Empty()
	if e.Objectives == nil || e.KeyResults == nil || e.Teams == nil || e.Users == nil {
		t.Fatal("canonical empty envelope must not contain nil sequences")
	}
	if !e.IsEmpty() {
		t.Error("expected IsEmpty() = true")
	}
}

func TestNormalize(t *testing.T) {
	e := Envelope{Users: []User{{ID: "u1", Username: "alice"}}}.Normalize()

	if e.Objectives == nil || e.KeyResults == nil || e.Teams == nil {
		t.Fatal("Normalize left a nil sequence")
	}
	if len(e.Users) != 1 || e.Users[0].Username != "alice" {
		t.Errorf("Normalize changed populated sequence: %+v", e.Users)
	}
}

func TestTotal(t *testing.T) {
	e := Envelope{
		Objectives: []Objective{{ID: "o1"}, {ID: "o2"}},
		Teams:      []Team{{ID: "t1"}},
	}
	if e.Total() != 3 {
		t.Errorf("Total() = %d, want 3", e.Total())
	}
	if e.IsEmpty() {
		t.Error("expected IsEmpty() = false")
	}
}

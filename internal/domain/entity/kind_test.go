package entity

import "testing"

func TestCollection(t *testing.T) {
	tests := map[Kind]string{
		Objective: "objectives",
		KeyResult: "key_results",
		Team:      "teams",
		User:      "users",
		"bogus":   "",
	}
	for k, want := range tests {
		if got := k.Collection(); got != want {
			t.Errorf("%q.Collection() = %q, want %q", k, got, want)
		}
	}
}

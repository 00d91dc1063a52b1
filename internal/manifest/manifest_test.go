package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/papapumpkin/quest/internal/goal"
)

func TestParse(t *testing.T) {
	t.Parallel()

	data := []byte(`
[defaults]
kind = "eternal"
points = 50

[[goals]]
name = "Pray"
description = "Morning and evening"

[[goals]]
kind = "Checklist"
name = "Temple"
description = "Attend the temple"
points = 100
target = 10
bonus = 500
`)

	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []GoalEntry{
		{Kind: "eternal", Name: "Pray", Description: "Morning and evening", Points: 50},
		{Kind: "checklist", Name: "Temple", Description: "Attend the temple", Points: 100, Target: 10, Bonus: 500},
	}
	if diff := cmp.Diff(want, m.Goals); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}
}

func TestParseExplicitZeroPointsKeepsZero(t *testing.T) {
	t.Parallel()

	data := []byte(`
[defaults]
kind = "simple"
points = 50

[[goals]]
name = "Rest"
points = 0

[[goals]]
name = "Hike"
`)
	m, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []GoalEntry{
		{Kind: "simple", Name: "Rest", Points: 0},
		{Kind: "simple", Name: "Hike", Points: 50},
	}
	if diff := cmp.Diff(want, m.Goals); diff != "" {
		t.Errorf("goals mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"no goals", "[defaults]\npoints = 5\n", ErrNoGoals},
		{"unknown kind", "[[goals]]\nkind = \"weekly\"\nname = \"x\"\n", goal.ErrUnknownKind},
		{"missing kind without default", "[[goals]]\nname = \"x\"\n", goal.ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("invalid toml", func(t *testing.T) {
		t.Parallel()
		if _, err := Parse([]byte("[[goals]\nname=")); err == nil {
			t.Fatal("expected error for invalid TOML")
		}
	})

	t.Run("entry error names the goal", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("[[goals]]\nkind = \"simple\"\nname = \"a\"\n[[goals]]\nkind = \"nope\"\nname = \"b\"\n"))
		var ee *EntryError
		if !errors.As(err, &ee) {
			t.Fatalf("err = %T, want *EntryError", err)
		}
		if ee.Index != 2 || ee.Name != "b" {
			t.Errorf("EntryError = %+v", ee)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "goals.toml")
	if err := os.WriteFile(path, []byte("[[goals]]\nkind = \"simple\"\nname = \"Hike\"\npoints = 200\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Goals) != 1 || m.Goals[0].Name != "Hike" {
		t.Errorf("goals = %+v", m.Goals)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

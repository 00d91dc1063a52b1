// Package manifest reads goal manifests: TOML files that declare a batch of
// goals to create at once.
//
//	[defaults]
//	points = 50
//
//	[[goals]]
//	kind = "checklist"
//	name = "Temple"
//	description = "Attend the temple"
//	target = 10
//	bonus = 500
package manifest

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/quest/internal/goal"
)

// ErrNoGoals indicates a manifest without any [[goals]] entries.
var ErrNoGoals = errors.New("manifest declares no goals")

// Manifest is the parsed form of a goal manifest file.
type Manifest struct {
	Defaults Defaults    `toml:"defaults"`
	Goals    []GoalEntry `toml:"goals"`
}

// Defaults fill fields a goal entry leaves out.
type Defaults struct {
	Kind   string `toml:"kind"`
	Points int    `toml:"points"`
}

// GoalEntry is one [[goals]] table.
type GoalEntry struct {
	Kind        string `toml:"kind"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Points      int    `toml:"points"`
	Target      int    `toml:"target"`
	Bonus       int    `toml:"bonus"`
}

// EntryError ties a manifest problem to the 1-based goal entry it came from.
type EntryError struct {
	Index int
	Name  string
	Err   error
}

func (e *EntryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("goal #%d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("goal #%d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *EntryError) Unwrap() error { return e.Err }

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// rawEntry is a [[goals]] table as written. Points is a pointer so an
// explicit zero is kept rather than replaced by the default.
type rawEntry struct {
	Kind        string `toml:"kind"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Points      *int   `toml:"points"`
	Target      int    `toml:"target"`
	Bonus       int    `toml:"bonus"`
}

type rawManifest struct {
	Defaults Defaults   `toml:"defaults"`
	Goals    []rawEntry `toml:"goals"`
}

// Parse decodes manifest TOML, applies defaults and checks that every entry
// names a known goal kind. Domain checks (points, target, bonus) are left to
// goal construction.
func Parse(data []byte) (*Manifest, error) {
	var raw rawManifest
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(raw.Goals) == 0 {
		return nil, ErrNoGoals
	}

	m := &Manifest{Defaults: raw.Defaults, Goals: make([]GoalEntry, len(raw.Goals))}
	for i, r := range raw.Goals {
		e := GoalEntry{
			Kind:        r.Kind,
			Name:        r.Name,
			Description: r.Description,
			Points:      m.Defaults.Points,
			Target:      r.Target,
			Bonus:       r.Bonus,
		}
		if e.Kind == "" {
			e.Kind = m.Defaults.Kind
		}
		if r.Points != nil {
			e.Points = *r.Points
		}
		kind, err := goal.ParseKind(e.Kind)
		if err != nil {
			return nil, &EntryError{Index: i + 1, Name: e.Name, Err: err}
		}
		e.Kind = string(kind)
		m.Goals[i] = e
	}
	return m, nil
}

package goal

import "fmt"

// Store is the ordered collection of goals in a quest. Insertion order is
// preserved and duplicates are allowed. It owns no scoring logic.
type Store struct {
	goals []Goal
}

// NewStore returns a store holding goals in the given order.
func NewStore(goals ...Goal) *Store {
	s := &Store{}
	s.ReplaceAll(goals)
	return s
}

// Append adds g after every existing goal.
func (s *Store) Append(g Goal) {
	s.goals = append(s.goals, g)
}

// All returns the goals in insertion order. The slice is a copy; the goals
// themselves are shared.
func (s *Store) All() []Goal {
	out := make([]Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Get returns the goal at the zero-based index i.
func (s *Store) Get(i int) (Goal, error) {
	if i < 0 || i >= len(s.goals) {
		return nil, invalid("", "index", fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i+1, len(s.goals)))
	}
	return s.goals[i], nil
}

// ReplaceAll swaps the whole collection, as done by a successful load.
func (s *Store) ReplaceAll(goals []Goal) {
	s.goals = make([]Goal, len(goals))
	copy(s.goals, goals)
}

// Len returns the number of goals.
func (s *Store) Len() int { return len(s.goals) }

// CompletedCount returns how many goals report IsComplete.
func (s *Store) CompletedCount() int {
	n := 0
	for _, g := range s.goals {
		if g.IsComplete() {
			n++
		}
	}
	return n
}

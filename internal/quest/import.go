package quest

import (
	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/manifest"
)

// Import creates every goal declared in m. Either all entries are valid and
// appended in manifest order, or none are and the first problem is returned.
func (s *Session) Import(m *manifest.Manifest) ([]goal.Goal, error) {
	built := make([]goal.Goal, 0, len(m.Goals))
	for i, e := range m.Goals {
		g, err := buildGoal(GoalSpec{
			Kind:        goal.Kind(e.Kind),
			Name:        e.Name,
			Description: e.Description,
			Points:      e.Points,
			Target:      e.Target,
			Bonus:       e.Bonus,
		})
		if err != nil {
			return nil, &manifest.EntryError{Index: i + 1, Name: e.Name, Err: err}
		}
		built = append(built, g)
	}
	for _, g := range built {
		s.store.Append(g)
	}
	s.log.Info("goals imported", "count", len(built))
	return built, nil
}

// Package goal defines the three goal variants tracked by a quest and the
// ordered store that holds them. Goals are mutated only by RecordEvent; all
// scoring beyond the points a single event earns lives in package score.
package goal

import (
	"fmt"
	"slices"
	"strings"
)

// Kind identifies a goal variant.
type Kind string

// Goal kinds.
const (
	KindSimple    Kind = "simple"
	KindEternal   Kind = "eternal"
	KindChecklist Kind = "checklist"
)

// Kinds lists every goal kind in menu order.
var Kinds = []Kind{KindSimple, KindEternal, KindChecklist}

// ParseKind maps a user-supplied name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(Kinds, k) {
		return k, nil
	}
	return "", invalid("", "kind", fmt.Errorf("%w: %q", ErrUnknownKind, s))
}

// StreakBonusAt is the eternal streak length from which every event pays
// half the base points again.
const StreakBonusAt = 7

// Goal is the capability shared by every variant.
type Goal interface {
	Kind() Kind
	Name() string
	Description() string
	Points() int

	// RecordEvent advances the goal's progress and returns the points the
	// event earned, computed from the post-event state.
	RecordEvent() (int, error)
	IsComplete() bool

	// Details renders the goal as a single listing line.
	Details() string
}

type base struct {
	name        string
	description string
	points      int
}

func newBase(name, description string, points int) (base, error) {
	if strings.TrimSpace(name) == "" {
		return base{}, invalid("", "name", ErrEmptyName)
	}
	if points < 0 {
		return base{}, invalid(name, "points", ErrNegativePoints)
	}
	return base{name: name, description: description, points: points}, nil
}

func (b *base) Name() string        { return b.name }
func (b *base) Description() string { return b.description }
func (b *base) Points() int         { return b.points }

func checkbox(done bool) string {
	if done {
		return "[X]"
	}
	return "[ ]"
}

// Simple is a one-off goal: the first event completes it.
type Simple struct {
	base
	complete bool
}

// NewSimple validates and returns an incomplete simple goal.
func NewSimple(name, description string, points int) (*Simple, error) {
	b, err := newBase(name, description, points)
	if err != nil {
		return nil, err
	}
	return &Simple{base: b}, nil
}

// RestoreSimple rebuilds a simple goal from persisted state.
func RestoreSimple(name, description string, points int, complete bool) (*Simple, error) {
	g, err := NewSimple(name, description, points)
	if err != nil {
		return nil, err
	}
	g.complete = complete
	return g, nil
}

func (g *Simple) Kind() Kind       { return KindSimple }
func (g *Simple) IsComplete() bool { return g.complete }

// RecordEvent completes the goal. Recording a completed goal again is a
// ValidationError and changes nothing.
func (g *Simple) RecordEvent() (int, error) {
	if g.complete {
		return 0, invalid(g.name, "", ErrAlreadyComplete)
	}
	g.complete = true
	return g.points, nil
}

func (g *Simple) Details() string {
	return fmt.Sprintf("%s %s (%s)", checkbox(g.complete), g.name, g.description)
}

// Eternal is a goal that is never finished. Every event extends the streak,
// and from StreakBonusAt onwards each event pays a 50% bonus.
type Eternal struct {
	base
	streak int
}

// NewEternal validates and returns an eternal goal with no streak.
func NewEternal(name, description string, points int) (*Eternal, error) {
	b, err := newBase(name, description, points)
	if err != nil {
		return nil, err
	}
	return &Eternal{base: b}, nil
}

// RestoreEternal rebuilds an eternal goal from persisted state.
func RestoreEternal(name, description string, points, streak int) (*Eternal, error) {
	g, err := NewEternal(name, description, points)
	if err != nil {
		return nil, err
	}
	if streak < 0 {
		return nil, invalid(name, "streak", ErrNegativeProgress)
	}
	g.streak = streak
	return g, nil
}

func (g *Eternal) Kind() Kind       { return KindEternal }
func (g *Eternal) IsComplete() bool { return false }

// Streak returns the number of events recorded so far.
func (g *Eternal) Streak() int { return g.streak }

// RecordEvent extends the streak and returns the points earned.
func (g *Eternal) RecordEvent() (int, error) {
	g.streak++
	if g.streak >= StreakBonusAt {
		return g.points + g.points/2, nil
	}
	return g.points, nil
}

func (g *Eternal) Details() string {
	return fmt.Sprintf("[∞] %s (%s) - Streak: %d days", g.name, g.description, g.streak)
}

// Checklist is a goal that must be accomplished Target times. Once the target
// is reached every further event also pays the bonus.
type Checklist struct {
	base
	target    int
	bonus     int
	completed int
}

// NewChecklist validates and returns a checklist goal with nothing completed.
func NewChecklist(name, description string, points, target, bonus int) (*Checklist, error) {
	b, err := newBase(name, description, points)
	if err != nil {
		return nil, err
	}
	if target <= 0 {
		return nil, invalid(name, "target", ErrInvalidTarget)
	}
	if bonus < 0 {
		return nil, invalid(name, "bonus", ErrNegativeBonus)
	}
	return &Checklist{base: b, target: target, bonus: bonus}, nil
}

// RestoreChecklist rebuilds a checklist goal from persisted state.
func RestoreChecklist(name, description string, points, target, bonus, completed int) (*Checklist, error) {
	g, err := NewChecklist(name, description, points, target, bonus)
	if err != nil {
		return nil, err
	}
	if completed < 0 {
		return nil, invalid(name, "completed", ErrNegativeProgress)
	}
	g.completed = completed
	return g, nil
}

func (g *Checklist) Kind() Kind       { return KindChecklist }
func (g *Checklist) IsComplete() bool { return g.completed >= g.target }
func (g *Checklist) Target() int      { return g.target }
func (g *Checklist) Bonus() int       { return g.bonus }
func (g *Checklist) Completed() int   { return g.completed }

// RecordEvent counts one more accomplishment and returns the points earned.
// The count is not clamped at the target.
func (g *Checklist) RecordEvent() (int, error) {
	g.completed++
	if g.completed >= g.target {
		return g.points + g.bonus, nil
	}
	return g.points, nil
}

func (g *Checklist) Details() string {
	return fmt.Sprintf("%s %s (%s) -- Completed %d/%d times",
		checkbox(g.IsComplete()), g.name, g.description, g.completed, g.target)
}

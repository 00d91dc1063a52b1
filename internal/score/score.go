// Package score turns recorded goal events into a running score, a level and
// a title. Scores only ever grow; the level is derived from the score and the
// title from the level.
package score

import (
	"fmt"

	"github.com/papapumpkin/quest/internal/goal"
)

// PointsPerLevel is the score span of a single level.
const PointsPerLevel = 1000

// titles maps level-1 to its title. Levels past the end share the last title.
var titles = []string{
	"Novice Adventurer",
	"Determined Seeker",
	"Focused Achiever",
	"Dedicated Warrior",
	"Master Questor",
	"Legendary Champion",
	"Epic Hero",
	"Mythical Legend",
	"Divine Sage",
	"Eternal Master",
}

// LevelFor returns the level reached with the given score.
func LevelFor(score int) int {
	if score < 0 {
		score = 0
	}
	return score/PointsPerLevel + 1
}

// TitleFor returns the title for a level. Levels of 10 and above all map to
// the top title; anything below 1 maps to the first.
func TitleFor(level int) string {
	switch {
	case level < 1:
		return titles[0]
	case level > len(titles):
		return titles[len(titles)-1]
	}
	return titles[level-1]
}

// State is the persisted score header.
type State struct {
	Score int
	Level int
	Title string
}

// Initial is the state of a brand-new quest.
func Initial() State {
	return State{Score: 0, Level: 1, Title: TitleFor(1)}
}

// Result describes what a single recorded event did to the score.
type Result struct {
	Points    int
	Score     int
	Level     int
	Title     string
	LeveledUp bool
}

// Progress is a read-only snapshot of the score.
type Progress struct {
	Level       int
	Title       string
	Score       int
	WithinLevel int
}

// Engine tracks the cumulative score of a quest.
type Engine struct {
	state State
}

// NewEngine returns an engine at the initial state.
func NewEngine() *Engine {
	return &Engine{state: Initial()}
}

// State returns the current header values.
func (e *Engine) State() State { return e.state }

// Restore replaces the header values, as done by a successful load. The
// stored level and title are kept even if they disagree with the score; the
// next event that crosses a level boundary brings them back in line.
func (e *Engine) Restore(s State) { e.state = s }

// Apply records one event against g and adds the points it earns. If g
// rejects the event the score is left untouched and the error is returned.
func (e *Engine) Apply(g goal.Goal) (Result, error) {
	pts, err := g.RecordEvent()
	if err != nil {
		return Result{}, fmt.Errorf("recording %q: %w", g.Name(), err)
	}

	e.state.Score += pts
	res := Result{Points: pts, Score: e.state.Score}

	if lvl := LevelFor(e.state.Score); lvl > e.state.Level {
		e.state.Level = lvl
		e.state.Title = TitleFor(lvl)
		res.LeveledUp = true
	}
	res.Level = e.state.Level
	res.Title = e.state.Title
	return res, nil
}

// Progress reports the current level, title, score and the points earned
// inside the current level.
func (e *Engine) Progress() Progress {
	return Progress{
		Level:       e.state.Level,
		Title:       e.state.Title,
		Score:       e.state.Score,
		WithinLevel: e.state.Score % PointsPerLevel,
	}
}

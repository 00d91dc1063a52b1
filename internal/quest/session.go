// Package quest is the session controller: it owns one quest's goals and
// score and exposes the commands a front end (REPL, CLI, TUI) dispatches.
// State lives in an explicit Session value; there is no package-level state.
package quest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/papapumpkin/quest/internal/codec"
	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/score"
)

// Persister stores and retrieves the encoded quest. Implementations handle
// file names, missing files and the like.
type Persister interface {
	Save(ctx context.Context, text string) error
	Load(ctx context.Context) (string, error)
}

// Recorder receives every successfully recorded event, e.g. to keep a
// history. A nil Recorder is allowed.
type Recorder interface {
	Record(ctx context.Context, ev Event) error
}

// Picker supplies an encouragement line after each event. A nil Picker is
// allowed.
type Picker interface {
	Pick() string
}

// Event is what a Recorder is told about a recorded goal event.
type Event struct {
	Goal      string
	Kind      goal.Kind
	Points    int
	Score     int
	Level     int
	LeveledUp bool
	Completed bool
	At        time.Time
}

// GoalSpec carries the already-parsed arguments of a create command. Target
// and Bonus are only used for checklist goals.
type GoalSpec struct {
	Kind        goal.Kind
	Name        string
	Description string
	Points      int
	Target      int
	Bonus       int
}

// Outcome is the result of a RecordEvent command.
type Outcome struct {
	Goal          goal.Goal
	Result        score.Result
	Encouragement string
}

// Options configures a Session. Only Persister is required for Save/Load.
type Options struct {
	Persister Persister
	Recorder  Recorder
	Picker    Picker
	Logger    *slog.Logger
	Now       func() time.Time
}

// Session is one player's quest in memory.
type Session struct {
	store  *goal.Store
	engine *score.Engine

	persister Persister
	recorder  Recorder
	picker    Picker
	log       *slog.Logger
	now       func() time.Time
}

// New returns an empty quest at level 1.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		store:     goal.NewStore(),
		engine:    score.NewEngine(),
		persister: opts.Persister,
		recorder:  opts.Recorder,
		picker:    opts.Picker,
		log:       log,
		now:       now,
	}
}

// CreateGoal validates spec, appends the new goal and returns it.
func (s *Session) CreateGoal(spec GoalSpec) (goal.Goal, error) {
	g, err := buildGoal(spec)
	if err != nil {
		return nil, err
	}
	s.store.Append(g)
	s.log.Info("goal created", "goal", g.Name(), "kind", string(g.Kind()), "points", g.Points())
	return g, nil
}

func buildGoal(spec GoalSpec) (goal.Goal, error) {
	var (
		g   goal.Goal
		err error
	)
	switch spec.Kind {
	case goal.KindSimple:
		g, err = goal.NewSimple(spec.Name, spec.Description, spec.Points)
	case goal.KindEternal:
		g, err = goal.NewEternal(spec.Name, spec.Description, spec.Points)
	case goal.KindChecklist:
		g, err = goal.NewChecklist(spec.Name, spec.Description, spec.Points, spec.Target, spec.Bonus)
	default:
		_, err = goal.ParseKind(string(spec.Kind))
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

// RecordEvent records one accomplishment of the goal at the zero-based
// index. Finished goals (other than eternal ones, which never finish) are
// refused with a goal.ValidationError and the score is unchanged.
func (s *Session) RecordEvent(ctx context.Context, index int) (Outcome, error) {
	g, err := s.store.Get(index)
	if err != nil {
		return Outcome{}, err
	}
	if g.IsComplete() {
		return Outcome{}, &goal.ValidationError{Goal: g.Name(), Err: goal.ErrAlreadyComplete}
	}

	res, err := s.engine.Apply(g)
	if err != nil {
		return Outcome{}, err
	}
	s.log.Info("event recorded",
		"goal", g.Name(), "points", res.Points, "score", res.Score,
		"level", res.Level, "leveled_up", res.LeveledUp)

	out := Outcome{Goal: g, Result: res}
	if s.picker != nil {
		out.Encouragement = s.picker.Pick()
	}

	if s.recorder != nil {
		ev := Event{
			Goal:      g.Name(),
			Kind:      g.Kind(),
			Points:    res.Points,
			Score:     res.Score,
			Level:     res.Level,
			LeveledUp: res.LeveledUp,
			Completed: g.IsComplete(),
			At:        s.now(),
		}
		// The event already counts; a history failure is logged, not returned.
		if err := s.recorder.Record(ctx, ev); err != nil {
			s.log.Warn("recording history failed", "goal", g.Name(), "error", err)
		}
	}
	return out, nil
}

// Goals returns the goals in creation order.
func (s *Session) Goals() []goal.Goal { return s.store.All() }

// Status returns the current score progress.
func (s *Session) Status() score.Progress { return s.engine.Progress() }

// Achievements returns the badges earned so far.
func (s *Session) Achievements() []score.Achievement {
	return score.Achievements(s.engine.State(), s.store.Len(), s.store.CompletedCount())
}

// Encode renders the session in the save format.
func (s *Session) Encode() (string, error) {
	return codec.Encode(codec.State{Score: s.engine.State(), Goals: s.store.All()})
}

// Save encodes the session and hands it to the configured persister.
func (s *Session) Save(ctx context.Context) error {
	return s.SaveTo(ctx, s.persister)
}

// SaveTo encodes the session and hands it to p.
func (s *Session) SaveTo(ctx context.Context, p Persister) error {
	if p == nil {
		return &IOError{Op: "save", Err: ErrNoPersister}
	}
	text, err := s.Encode()
	if err != nil {
		return fmt.Errorf("encoding quest: %w", err)
	}
	if err := p.Save(ctx, text); err != nil {
		return &IOError{Op: "save", Err: err}
	}
	s.log.Info("quest saved", "goals", s.store.Len(), "score", s.engine.State().Score)
	return nil
}

// SaveText writes text, a snapshot taken earlier with Encode, to the
// configured persister. It does not touch session state, so it may run on
// another goroutine while the session keeps changing.
func (s *Session) SaveText(ctx context.Context, text string) error {
	if s.persister == nil {
		return &IOError{Op: "save", Err: ErrNoPersister}
	}
	if err := s.persister.Save(ctx, text); err != nil {
		return &IOError{Op: "save", Err: err}
	}
	s.log.Info("quest snapshot saved", "bytes", len(text))
	return nil
}

// Load replaces the session with the quest from the configured persister.
func (s *Session) Load(ctx context.Context) error {
	return s.LoadFrom(ctx, s.persister)
}

// LoadFrom replaces the session with the quest read from p. The text is
// decoded completely before anything is swapped, so on any error the
// session is exactly as it was.
func (s *Session) LoadFrom(ctx context.Context, p Persister) error {
	if p == nil {
		return &IOError{Op: "load", Err: ErrNoPersister}
	}
	text, err := p.Load(ctx)
	if err != nil {
		return &IOError{Op: "load", Err: err}
	}
	return s.Restore(text)
}

// Restore decodes text and, on success, swaps it in as the session state.
func (s *Session) Restore(text string) error {
	st, err := codec.Decode(text)
	if err != nil {
		s.log.Warn("quest load rejected", "error", err)
		return err
	}
	s.store.ReplaceAll(st.Goals)
	s.engine.Restore(st.Score)
	s.log.Info("quest loaded", "goals", len(st.Goals), "score", st.Score.Score)
	return nil
}

package codec

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/score"
)

// allFields lets cmp look inside the goal variants' unexported state; an
// empty goal list and a nil one are the same quest.
var allFields = cmp.Options{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

func mustSimple(t *testing.T, name, desc string, pts int, done bool) goal.Goal {
	t.Helper()
	g, err := goal.RestoreSimple(name, desc, pts, done)
	if err != nil {
		t.Fatalf("RestoreSimple: %v", err)
	}
	return g
}

func TestEncode(t *testing.T) {
	t.Parallel()

	e, _ := goal.RestoreEternal("Pray", "Morning prayer", 50, 8)
	c, _ := goal.RestoreChecklist("Temple", "Attend the temple", 50, 10, 500, 3)
	s := State{
		Score: score.State{Score: 1250, Level: 2, Title: "Determined Seeker"},
		Goals: []goal.Goal{mustSimple(t, "Marathon", "Run a marathon", 1000, true), e, c},
	}

	got, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "1250\n2\nDetermined Seeker\n" +
		"SimpleGoal:Marathon,Run a marathon,1000,True\n" +
		"EternalGoal:Pray,Morning prayer,50,8\n" +
		"ChecklistGoal:Temple,Attend the temple,50,10,500,3\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Encode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeOriginalFile(t *testing.T) {
	t.Parallel()

	// A file as written by earlier versions: CRLF endings, lowercase bools.
	text := "300\r\n1\r\nNovice Adventurer\r\n" +
		"SimpleGoal:Hike,Climb the mountain,200,false\r\n" +
		"ChecklistGoal:Read,Read a book,10,5,100,2\r\n"

	st, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if st.Score != (score.State{Score: 300, Level: 1, Title: "Novice Adventurer"}) {
		t.Errorf("header = %+v", st.Score)
	}
	if len(st.Goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(st.Goals))
	}
	if st.Goals[0].IsComplete() {
		t.Error("Hike should not be complete")
	}
	if c := st.Goals[1].(*goal.Checklist); c.Completed() != 2 || c.Target() != 5 || c.Bonus() != 100 {
		t.Errorf("checklist = %+v", c)
	}
}

func TestDelimitersSurviveRoundTrip(t *testing.T) {
	t.Parallel()

	tricky := []string{
		"Eat, sleep, repeat",
		"100% effort",
		"%2C already looks escaped",
		"Line one\nline two\r\n",
		"Tag:Like:Colons",
	}
	var goals []goal.Goal
	for _, s := range tricky {
		goals = append(goals, mustSimple(t, s, s, 5, false))
	}
	in := State{Score: score.State{Score: 0, Level: 1, Title: "Odd, but\nvalid"}, Goals: goals}

	text, err := Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if n := strings.Count(text, "\n"); n != 3+len(tricky) {
		t.Fatalf("encoded text has %d lines, want %d:\n%s", n, 3+len(tricky), text)
	}
	out, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(in, out, allFields); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}

// TestRoundTripRandomSessions builds states from random sequences of goal
// creations and events and checks Decode(Encode(s)) == s.
func TestRoundTripRandomSessions(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(42, 7))
	words := []string{"run", "read, write", "pray", "50%", "gym", "journal\nnightly", ""}

	for iter := 0; iter < 200; iter++ {
		store := goal.NewStore()
		eng := score.NewEngine()

		for n := rng.IntN(8); n > 0; n-- {
			name := "goal " + words[rng.IntN(len(words)-1)]
			desc := words[rng.IntN(len(words))]
			pts := rng.IntN(500)
			var g goal.Goal
			var err error
			switch rng.IntN(3) {
			case 0:
				g, err = goal.NewSimple(name, desc, pts)
			case 1:
				g, err = goal.NewEternal(name, desc, pts)
			default:
				g, err = goal.NewChecklist(name, desc, pts, 1+rng.IntN(6), rng.IntN(300))
			}
			if err != nil {
				t.Fatalf("creating goal: %v", err)
			}
			store.Append(g)
		}

		for n := rng.IntN(30); n > 0 && store.Len() > 0; n-- {
			g, _ := store.Get(rng.IntN(store.Len()))
			_, _ = eng.Apply(g) // completed simple goals refuse; that is fine here
		}

		in := State{Score: eng.State(), Goals: store.All()}
		text, err := Encode(in)
		if err != nil {
			t.Fatalf("iter %d: Encode: %v", iter, err)
		}
		out, err := Decode(text)
		if err != nil {
			t.Fatalf("iter %d: Decode: %v\n%s", iter, err, text)
		}
		if diff := cmp.Diff(in, out, allFields); diff != "" {
			t.Fatalf("iter %d: round trip mismatch (-in +out):\n%s", iter, diff)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	const hdr = "10\n1\nNovice Adventurer\n"

	tests := []struct {
		name     string
		text     string
		wantErr  error
		wantLine int
	}{
		{"empty file", "", ErrShortHeader, 0},
		{"two header lines", "10\n1\n", ErrShortHeader, 0},
		{"bad score", "ten\n1\nNovice Adventurer\n", ErrBadNumber, 1},
		{"negative score", "-5\n1\nNovice Adventurer\n", ErrBadNumber, 1},
		{"zero level", "10\n0\nNovice Adventurer\n", ErrBadNumber, 2},
		{"empty title", "10\n1\n\n", ErrBadField, 3},
		{"no tag", hdr + "just text\n", ErrMissingTag, 4},
		{"unknown tag", hdr + "WeeklyGoal:a,b,1,2\n", ErrUnknownTag, 4},
		{"too few fields", hdr + "SimpleGoal:a,b,1\n", ErrFieldCount, 4},
		{"too many fields", hdr + "EternalGoal:a,b,1,2,3\n", ErrFieldCount, 4},
		{"bad points", hdr + "SimpleGoal:a,b,lots,True\n", ErrBadNumber, 4},
		{"bad bool", hdr + "SimpleGoal:a,b,1,yes\n", ErrBadBool, 4},
		{"bad streak", hdr + "EternalGoal:a,b,1,x\n", ErrBadNumber, 4},
		{"bad escape", hdr + "SimpleGoal:a%ZZ,b,1,True\n", ErrBadEscape, 4},
		{"truncated escape", hdr + "SimpleGoal:a%2,b,1,True\n", ErrBadEscape, 4},
		{"zero target", hdr + "ChecklistGoal:a,b,1,0,5,0\n", goal.ErrInvalidTarget, 4},
		{"empty name", hdr + "EternalGoal:,b,1,0\n", goal.ErrEmptyName, 4},
		{"error after good line", hdr + "EternalGoal:a,b,1,0\n\nSimpleGoal:a\n", ErrFieldCount, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st, err := Decode(tt.text)
			if err == nil {
				t.Fatalf("expected error, got state %+v", st)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %T %v, want *ParseError", err, err)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", pe.Line, tt.wantLine)
			}
			if st.Goals != nil {
				t.Errorf("partial state returned: %d goals", len(st.Goals))
			}
		})
	}
}

func TestDecodeHeaderOnly(t *testing.T) {
	t.Parallel()

	st, err := Decode("0\n1\nNovice Adventurer")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(st.Goals) != 0 {
		t.Errorf("goals = %d, want 0", len(st.Goals))
	}
}

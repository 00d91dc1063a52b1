// Package codec converts a quest's full state to and from its line-oriented
// save format:
//
//	<score>
//	<level>
//	<title>
//	SimpleGoal:<name>,<description>,<points>,<True|False>
//	EternalGoal:<name>,<description>,<points>,<streak>
//	ChecklistGoal:<name>,<description>,<points>,<target>,<bonus>,<completed>
//
// Fields are separated by commas. Inside names, descriptions and the title
// the characters '%', ',', LF and CR are percent-encoded so that any text
// survives a round trip. Decode is all-or-nothing.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/score"
)

// Record type tags.
const (
	TagSimple    = "SimpleGoal"
	TagEternal   = "EternalGoal"
	TagChecklist = "ChecklistGoal"
)

const (
	headerLines = 3
	trueLit     = "True"
	falseLit    = "False"
)

// State is everything a save file holds.
type State struct {
	Score score.State
	Goals []goal.Goal
}

// Encode renders s in the save format, one record per line, goals in order.
func Encode(s State) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%d\n%s\n", s.Score.Score, s.Score.Level, escape(s.Score.Title))
	for i, g := range s.Goals {
		line, err := encodeGoal(g)
		if err != nil {
			return "", fmt.Errorf("encoding goal %d: %w", i+1, err)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func encodeGoal(g goal.Goal) (string, error) {
	head := escape(g.Name()) + "," + escape(g.Description()) + "," + strconv.Itoa(g.Points())
	switch v := g.(type) {
	case *goal.Simple:
		done := falseLit
		if v.IsComplete() {
			done = trueLit
		}
		return TagSimple + ":" + head + "," + done, nil
	case *goal.Eternal:
		return TagEternal + ":" + head + "," + strconv.Itoa(v.Streak()), nil
	case *goal.Checklist:
		return fmt.Sprintf("%s:%s,%d,%d,%d", TagChecklist, head, v.Target(), v.Bonus(), v.Completed()), nil
	}
	return "", fmt.Errorf("%w: %T", goal.ErrUnknownKind, g)
}

// Decode parses a save file. On any malformed line it returns a *ParseError
// and no state.
func Decode(text string) (State, error) {
	lines := strings.Split(text, "\n")
	// A final newline is the normal terminator, not an empty record.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	if len(lines) < headerLines {
		return State{}, &ParseError{Reason: fmt.Sprintf("expected %d header lines, found %d", headerLines, len(lines)), Err: ErrShortHeader}
	}

	hdr, err := decodeHeader(lines[:headerLines])
	if err != nil {
		return State{}, err
	}

	var goals []goal.Goal
	for i := headerLines; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		g, err := decodeGoal(lines[i])
		if err != nil {
			return State{}, lineError(i+1, err)
		}
		goals = append(goals, g)
	}
	return State{Score: hdr, Goals: goals}, nil
}

func decodeHeader(lines []string) (score.State, error) {
	sc, err := strconv.Atoi(lines[0])
	if err != nil || sc < 0 {
		return score.State{}, &ParseError{Line: 1, Reason: fmt.Sprintf("score %q is not a non-negative integer", lines[0]), Err: ErrBadNumber}
	}
	lvl, err := strconv.Atoi(lines[1])
	if err != nil || lvl < 1 {
		return score.State{}, &ParseError{Line: 2, Reason: fmt.Sprintf("level %q is not a positive integer", lines[1]), Err: ErrBadNumber}
	}
	title, err := unescape(lines[2])
	if err != nil {
		return score.State{}, lineError(3, err)
	}
	if strings.TrimSpace(title) == "" {
		return score.State{}, &ParseError{Line: 3, Reason: "title is empty", Err: ErrBadField}
	}
	return score.State{Score: sc, Level: lvl, Title: title}, nil
}

// arity is the number of comma-separated fields each tag carries.
var arity = map[string]int{
	TagSimple:    4,
	TagEternal:   4,
	TagChecklist: 6,
}

func decodeGoal(line string) (goal.Goal, error) {
	tag, rest, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fieldErr(ErrMissingTag, "no type tag")
	}
	want, known := arity[tag]
	if !known {
		return nil, fieldErr(ErrUnknownTag, fmt.Sprintf("unknown type tag %q", tag))
	}
	fields := strings.Split(rest, ",")
	if len(fields) != want {
		return nil, fieldErr(ErrFieldCount, fmt.Sprintf("%s wants %d fields, found %d", tag, want, len(fields)))
	}

	name, err := unescape(fields[0])
	if err != nil {
		return nil, err
	}
	desc, err := unescape(fields[1])
	if err != nil {
		return nil, err
	}
	nums, err := atois(tag, fields[2:])
	if err != nil {
		return nil, err
	}

	var g goal.Goal
	switch tag {
	case TagSimple:
		var done bool
		done, err = parseBool(fields[3])
		if err != nil {
			return nil, err
		}
		g, err = goal.RestoreSimple(name, desc, nums[0], done)
	case TagEternal:
		g, err = goal.RestoreEternal(name, desc, nums[0], nums[1])
	case TagChecklist:
		g, err = goal.RestoreChecklist(name, desc, nums[0], nums[1], nums[2], nums[3])
	}
	if err != nil {
		return nil, &ParseError{Reason: err.Error(), Err: err}
	}
	return g, nil
}

// atois converts the numeric fields of a record. For SimpleGoal only the
// points field is numeric; its trailing boolean is parsed separately.
func atois(tag string, fields []string) ([]int, error) {
	if tag == TagSimple {
		fields = fields[:1]
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fieldErr(ErrBadNumber, fmt.Sprintf("%q is not an integer", f))
		}
		out[i] = n
	}
	return out, nil
}

func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, trueLit):
		return true, nil
	case strings.EqualFold(s, falseLit):
		return false, nil
	}
	return false, fieldErr(ErrBadBool, fmt.Sprintf("%q is not True or False", s))
}

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/quest/internal/ansi"
	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/ledger"
	"github.com/papapumpkin/quest/internal/score"
)

const barWidth = 20

// Printer writes the line-oriented console output of quest.
type Printer struct {
	w     io.Writer
	color bool
	now   func() time.Time
}

// New returns a colored Printer on stderr.
func New() *Printer {
	return NewWriter(os.Stderr, true)
}

// NewWriter returns a Printer on w. With color false no ANSI codes are
// written.
func NewWriter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color, now: time.Now}
}

// c returns code when color is enabled.
func (p *Printer) c(codes ...string) string {
	if !p.color {
		return ""
	}
	return strings.Join(codes, "")
}

func (p *Printer) reset() string { return p.c(ansi.Reset) }

func (p *Printer) Banner() {
	fmt.Fprintln(p.w, p.c(ansi.Bold, ansi.Cyan)+"  ╔═══════════════════════════════════╗"+p.reset())
	fmt.Fprintln(p.w, p.c(ansi.Bold, ansi.Cyan)+"  ║"+p.reset()+p.c(ansi.Bold)+"   ETERNAL QUEST  "+p.c(ansi.Dim)+"goal tracker    "+p.reset()+p.c(ansi.Bold, ansi.Cyan)+"║"+p.reset())
	fmt.Fprintln(p.w, p.c(ansi.Bold, ansi.Cyan)+"  ╚═══════════════════════════════════╝"+p.reset())
	fmt.Fprintln(p.w)
}

// Clear erases the terminal before a full redraw. It is a no-op without
// color, where output is usually not a terminal.
func (p *Printer) Clear() {
	fmt.Fprint(p.w, p.c(ansi.ClearScreen))
}

func (p *Printer) Prompt() {
	fmt.Fprint(p.w, p.c(ansi.Bold, ansi.Cyan)+"quest> "+p.reset())
}

// Ask writes a question prompt for an interactive field.
func (p *Printer) Ask(question string) {
	fmt.Fprint(p.w, p.c(ansi.Cyan)+question+p.reset()+" ")
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.w, p.c(ansi.Red, ansi.Bold)+"error: "+p.reset()+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.w, p.c(ansi.Dim)+"%s"+p.reset()+"\n", msg)
}

func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.w, p.c(ansi.Green, ansi.Bold)+"✓ "+p.reset()+"%s\n", msg)
}

func (p *Printer) ShowHelp() {
	b, r := p.c(ansi.Bold), p.reset()
	lines := []string{
		b + "Menu:" + r,
		"  " + b + "1 create" + r + "   - create a new goal",
		"  " + b + "2 list" + r + "     - list goals",
		"  " + b + "3 save" + r + "     - save goals (optionally to a file: save <file>)",
		"  " + b + "4 load" + r + "     - load goals (optionally from a file: load <file>)",
		"  " + b + "5 record" + r + "   - record an event (optionally by number: record <n>)",
		"  " + b + "6 quit" + r + "     - exit quest",
		"  " + b + "status" + r + "     - show score, level and achievements",
		"  " + b + "help" + r + "       - show this menu",
	}
	fmt.Fprintln(p.w, strings.Join(lines, "\n"))
}

// GoalList prints goals numbered from 1.
func (p *Printer) GoalList(goals []goal.Goal) {
	if len(goals) == 0 {
		p.Info("No goals yet. Create your first goal to start the quest.")
		return
	}
	fmt.Fprintln(p.w, p.c(ansi.Bold)+"Goals:"+p.reset())
	for i, g := range goals {
		color := ""
		if g.IsComplete() {
			color = p.c(ansi.Green)
		}
		fmt.Fprintf(p.w, "  %2d. %s%s%s\n", i+1, color, g.Details(), p.reset())
	}
}

func (p *Printer) GoalCreated(g goal.Goal) {
	p.Success(fmt.Sprintf("%s goal %q created (%d points)", g.Kind(), g.Name(), g.Points()))
}

// EventRecorded reports the points an event earned and any level change.
func (p *Printer) EventRecorded(g goal.Goal, res score.Result, encouragement string) {
	fmt.Fprintf(p.w, p.c(ansi.Green, ansi.Bold)+"+%s"+p.reset()+" points for %q "+p.c(ansi.Dim)+"(total %s)"+p.reset()+"\n",
		humanize.Comma(int64(res.Points)), g.Name(), humanize.Comma(int64(res.Score)))
	if e, ok := g.(*goal.Eternal); ok && e.Streak() >= goal.StreakBonusAt {
		fmt.Fprintf(p.w, p.c(ansi.Yellow)+"  streak bonus: %d in a row"+p.reset()+"\n", e.Streak())
	}
	if g.IsComplete() {
		fmt.Fprintf(p.w, p.c(ansi.Green)+"  goal %q complete!"+p.reset()+"\n", g.Name())
	}
	if res.LeveledUp {
		p.LevelUp(res.Level, res.Title)
	}
	if encouragement != "" {
		fmt.Fprintf(p.w, p.c(ansi.Dim)+"  %s"+p.reset()+"\n", encouragement)
	}
}

func (p *Printer) LevelUp(level int, title string) {
	fmt.Fprintf(p.w, p.c(ansi.Magenta, ansi.Bold)+"★ LEVEL UP! "+p.reset()+"level %d, %s\n", level, title)
}

// ProgressBarLine renders the within-level progress bar without color.
func ProgressBarLine(pr score.Progress) string {
	filled := pr.WithinLevel * barWidth / score.PointsPerLevel
	return fmt.Sprintf("[%s%s] %s/%s",
		strings.Repeat("█", filled), strings.Repeat("░", barWidth-filled),
		humanize.Comma(int64(pr.WithinLevel)), humanize.Comma(score.PointsPerLevel))
}

// Status prints the score header, level progress and earned achievements.
func (p *Printer) Status(pr score.Progress, achievements []score.Achievement) {
	fmt.Fprintf(p.w, p.c(ansi.Bold)+"Level %d"+p.reset()+" %s\n", pr.Level, pr.Title)
	fmt.Fprintf(p.w, "  score:    %s\n", humanize.Comma(int64(pr.Score)))
	fmt.Fprintf(p.w, "  progress: "+p.c(ansi.Cyan)+"%s"+p.reset()+"\n", ProgressBarLine(pr))
	if len(achievements) == 0 {
		return
	}
	fmt.Fprintln(p.w, p.c(ansi.Bold)+"Achievements:"+p.reset())
	for _, a := range achievements {
		fmt.Fprintf(p.w, "  %s %s\n", a.Icon, a.Name)
	}
}

func (p *Printer) Saved(path string, goals int) {
	p.Success(fmt.Sprintf("saved %d goal(s) to %s", goals, path))
}

func (p *Printer) Loaded(path string, goals int) {
	p.Success(fmt.Sprintf("loaded %d goal(s) from %s", goals, path))
}

// Stats prints a ledger summary.
func (p *Printer) Stats(s ledger.Stats) {
	if s.Events == 0 {
		p.Info("No events recorded yet.")
		return
	}
	fmt.Fprintln(p.w, p.c(ansi.Bold)+"History:"+p.reset())
	fmt.Fprintf(p.w, "  events:        %s\n", humanize.Comma(int64(s.Events)))
	fmt.Fprintf(p.w, "  points:        %s\n", humanize.Comma(int64(s.Points)))
	fmt.Fprintf(p.w, "  completions:   %d\n", s.Completions)
	fmt.Fprintf(p.w, "  level-ups:     %d\n", s.LevelUps)
	fmt.Fprintf(p.w, "  active days:   %d\n", s.ActiveDays)
	fmt.Fprintf(p.w, "  points/day:    %.1f\n", s.PointsPerDay)
	fmt.Fprintf(p.w, "  top goal:      %s (%s points)\n", s.TopGoal, humanize.Comma(int64(s.TopPoints)))
	fmt.Fprintf(p.w, "  first event:   %s\n", humanize.RelTime(s.First, p.now(), "ago", "from now"))
	fmt.Fprintf(p.w, "  last event:    %s\n", humanize.RelTime(s.Last, p.now(), "ago", "from now"))
}

// History prints ledger entries, newest first.
func (p *Printer) History(entries []ledger.Entry) {
	if len(entries) == 0 {
		p.Info("No events recorded yet.")
		return
	}
	for _, e := range entries {
		mark := ""
		if e.LeveledUp {
			mark = p.c(ansi.Magenta) + " ★ level " + fmt.Sprint(e.Level) + p.reset()
		}
		fmt.Fprintf(p.w, "  %-14s %-20s "+p.c(ansi.Green)+"+%-6d"+p.reset()+" score %s%s\n",
			humanize.RelTime(e.RecordedAt, p.now(), "ago", "from now"),
			e.Goal, e.Points, humanize.Comma(int64(e.Score)), mark)
	}
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/quest/internal/codec"
	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/quest"
	"github.com/papapumpkin/quest/internal/savefile"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive quest menu",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := setupSignalContext(cmd.Context(), a.printer)
	defer cancel()
	return runREPL(ctx, a, cmd.InOrStdin())
}

// repl is one interactive menu session.
type repl struct {
	a       *app
	scanner *bufio.Scanner
}

// runREPL runs the menu loop until quit, EOF or cancellation. Command
// errors are reported and the loop continues.
func runREPL(ctx context.Context, a *app, in io.Reader) error {
	r := &repl{a: a, scanner: bufio.NewScanner(in)}
	p := a.printer

	p.Banner()
	p.Status(a.session.Status(), a.session.Achievements())
	p.ShowHelp()

	for {
		if ctx.Err() != nil {
			return nil
		}
		p.Prompt()
		line, ok := r.readLine()
		if !ok {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		arg := strings.Join(fields[1:], " ")

		var err error
		switch strings.ToLower(fields[0]) {
		case "6", "quit", "exit", "q":
			p.Info("Thanks for playing Eternal Quest. Keep pursuing your goals!")
			return nil
		case "help", "h", "?":
			p.ShowHelp()
		case "1", "create":
			err = r.create(arg)
		case "2", "list":
			p.GoalList(a.session.Goals())
		case "3", "save":
			err = r.save(ctx, arg)
		case "4", "load":
			err = r.load(ctx, arg)
		case "5", "record":
			err = r.record(ctx, arg)
		case "status":
			p.Status(a.session.Status(), a.session.Achievements())
		default:
			p.Error(fmt.Sprintf("unknown command %q, type 'help' for the menu", fields[0]))
		}
		if err != nil {
			r.report(err)
		}
	}
}

func (r *repl) readLine() (string, bool) {
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// ask prompts for one answer. EOF yields errInputClosed.
func (r *repl) ask(question string) (string, error) {
	r.a.printer.Ask(question)
	line, ok := r.readLine()
	if !ok {
		return "", errInputClosed
	}
	return line, nil
}

func (r *repl) askInt(question string) (int, error) {
	s, err := r.ask(question)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

var errInputClosed = errors.New("input closed")

// kindMenu numbers the goal kinds from 1, e.g. "1 simple, 2 eternal".
func kindMenu() string {
	items := make([]string, len(goal.Kinds))
	for i, k := range goal.Kinds {
		items[i] = fmt.Sprintf("%d %s", i+1, k)
	}
	return strings.Join(items, ", ")
}

// create walks through the goal fields. kind may be given inline.
func (r *repl) create(kind string) error {
	if kind == "" {
		r.a.printer.Info("Goal types: " + kindMenu())
		var err error
		if kind, err = r.ask("Which type of goal?"); err != nil {
			return err
		}
	}
	if n, err := strconv.Atoi(kind); err == nil && n >= 1 && n <= len(goal.Kinds) {
		kind = string(goal.Kinds[n-1])
	}
	k, err := goal.ParseKind(kind)
	if err != nil {
		return err
	}

	spec := quest.GoalSpec{Kind: k}
	if spec.Name, err = r.ask("Name of the goal?"); err != nil {
		return err
	}
	if spec.Description, err = r.ask("Short description?"); err != nil {
		return err
	}
	if spec.Points, err = r.askInt("Points per event?"); err != nil {
		return err
	}
	if k == goal.KindChecklist {
		if spec.Target, err = r.askInt("How many times to complete it?"); err != nil {
			return err
		}
		if spec.Bonus, err = r.askInt("Bonus for finishing it?"); err != nil {
			return err
		}
	}

	g, err := r.a.session.CreateGoal(spec)
	if err != nil {
		return err
	}
	r.a.printer.GoalCreated(g)
	return nil
}

// record asks for a goal number unless one is given inline.
func (r *repl) record(ctx context.Context, arg string) error {
	goals := r.a.session.Goals()
	if len(goals) == 0 {
		r.a.printer.Info("No goals to record yet. Create one first.")
		return nil
	}

	var n int
	if arg != "" {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("%q is not a goal number", arg)
		}
		n = v
	} else {
		r.a.printer.GoalList(goals)
		v, err := r.askInt("Which goal did you accomplish?")
		if err != nil {
			return err
		}
		n = v
	}

	out, err := r.a.session.RecordEvent(ctx, n-1)
	if err != nil {
		return err
	}
	r.a.printer.EventRecorded(out.Goal, out.Result, out.Encouragement)
	return nil
}

func (r *repl) save(ctx context.Context, path string) error {
	f := r.a.file
	if path != "" {
		f = savefile.New(path)
	}
	if err := r.a.session.SaveTo(ctx, f); err != nil {
		return err
	}
	r.a.printer.Saved(f.Path, len(r.a.session.Goals()))
	return nil
}

func (r *repl) load(ctx context.Context, path string) error {
	f := r.a.file
	if path != "" {
		f = savefile.New(path)
	}
	if err := r.a.session.LoadFrom(ctx, f); err != nil {
		return err
	}
	r.a.printer.Loaded(f.Path, len(r.a.session.Goals()))
	return nil
}

// report prints a recoverable command error.
func (r *repl) report(err error) {
	var (
		pe  *codec.ParseError
		ioe *quest.IOError
	)
	switch {
	case errors.Is(err, errInputClosed):
		return
	case errors.Is(err, savefile.ErrNotFound):
		r.a.printer.Error("save file not found")
	case errors.As(err, &pe):
		r.a.printer.Error("invalid save file: " + pe.Error())
	case errors.As(err, &ioe):
		r.a.printer.Error(ioe.Error())
	default:
		r.a.printer.Error(err.Error())
	}
}

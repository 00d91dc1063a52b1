package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/quest/internal/config"
	"github.com/papapumpkin/quest/internal/ledger"
	"github.com/papapumpkin/quest/internal/logging"
	"github.com/papapumpkin/quest/internal/prompt"
	"github.com/papapumpkin/quest/internal/quest"
	"github.com/papapumpkin/quest/internal/savefile"
	"github.com/papapumpkin/quest/internal/ui"
)

// app bundles everything a command needs: config, logger, printer, the
// save file, the optional ledger and the session wired to them.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	closeLog func() error
	printer  *ui.Printer
	file     *savefile.File
	ledger   *ledger.Ledger
	session  *quest.Session
}

// newApp loads config and wires the session. With needLedger set, a
// disabled or unopenable ledger is an error; otherwise the session simply
// runs without history.
func newApp(ctx context.Context, cmd *cobra.Command, needLedger bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	log, closeLog, err := logging.New(logging.Options{
		Level:   level,
		Console: cmd.ErrOrStderr(),
		File:    cfg.LogFile,
	})
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		log:      log,
		closeLog: closeLog,
		printer:  ui.NewWriter(cmd.OutOrStdout(), cfg.Color),
		file:     savefile.New(cfg.SaveFile),
	}

	picker, err := prompt.New(cfg.Seed, nil)
	if err != nil {
		a.close()
		return nil, err
	}

	var recorder quest.Recorder
	if cfg.LedgerPath != "" {
		if l, err := openLedger(ctx, cfg.LedgerPath); err != nil {
			if needLedger {
				a.close()
				return nil, err
			}
			log.Warn("history disabled", "path", cfg.LedgerPath, "error", err)
		} else {
			a.ledger = l
			recorder = ledgerRecorder{l: l}
		}
	} else if needLedger {
		a.close()
		return nil, errors.New("history is disabled (ledger_path is empty)")
	}

	a.session = quest.New(quest.Options{
		Persister: a.file,
		Recorder:  recorder,
		Picker:    picker,
		Logger:    log,
	})
	log.Debug("quest ready", "save_file", cfg.SaveFile, "ledger", cfg.LedgerPath, "seed", cfg.Seed)
	return a, nil
}

func openLedger(ctx context.Context, path string) (*ledger.Ledger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}
	return ledger.Open(ctx, path)
}

func (a *app) close() {
	if a.ledger != nil {
		if err := a.ledger.Close(); err != nil {
			a.log.Warn("closing ledger", "error", err)
		}
	}
	if a.closeLog != nil {
		_ = a.closeLog()
	}
}

// load reads the save file into the session. A missing file is fine unless
// required is set.
func (a *app) load(ctx context.Context, required bool) error {
	err := a.session.Load(ctx)
	if err != nil && !required && errors.Is(err, savefile.ErrNotFound) {
		a.log.Debug("no save file yet", "path", a.file.Path)
		return nil
	}
	return err
}

// ledgerRecorder stores session events in the ledger.
type ledgerRecorder struct {
	l *ledger.Ledger
}

func (r ledgerRecorder) Record(ctx context.Context, ev quest.Event) error {
	return r.l.Record(ctx, ledger.Entry{
		Goal:       ev.Goal,
		Kind:       string(ev.Kind),
		Points:     ev.Points,
		Score:      ev.Score,
		Level:      ev.Level,
		LeveledUp:  ev.LeveledUp,
		Completed:  ev.Completed,
		RecordedAt: ev.At,
	})
}

// setupSignalContext returns a context that is canceled on SIGINT or SIGTERM.
func setupSignalContext(parent context.Context, printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			printer.Info("\nshutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}

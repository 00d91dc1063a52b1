package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show status and goals, refreshing whenever the save file changes",
	Long: `Prints the quest status and goal list, then watches the save file and
prints them again after every change (for example from 'quest record' in
another terminal). Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, cancel := setupSignalContext(cmd.Context(), a.printer)
	defer cancel()

	a.refresh(ctx)
	return watchSaveFile(ctx, a.file.Path, func() { a.refresh(ctx) })
}

// refresh reloads the save file and prints status and goals. Load errors
// are printed; the previous state stays in place.
func (a *app) refresh(ctx context.Context) {
	if err := a.load(ctx, false); err != nil {
		a.printer.Error(err.Error())
		return
	}
	a.printer.Clear()
	a.printer.Status(a.session.Status(), a.session.Achievements())
	a.printer.GoalList(a.session.Goals())
	a.printer.Info("watching " + a.file.Path + " (Ctrl-C to stop)")
}

// watchSaveFile calls onChange after every write to path until ctx is
// done. The directory is watched because saves replace the file by rename.
func watchSaveFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch: watch %s: %w", dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if isSaveEvent(event, path) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

// isSaveEvent reports whether event means new content at path.
func isSaveEvent(event fsnotify.Event, path string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

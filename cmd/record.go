package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <goal-number>",
	Short: "Record an event for a goal and save",
	Long:  "Records one accomplishment of the goal with the given number, as shown by `quest list`.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q is not a goal number", args[0])
	}

	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.load(ctx, true); err != nil {
		return err
	}
	out, err := a.session.RecordEvent(ctx, n-1)
	if err != nil {
		return err
	}
	if err := a.session.Save(ctx); err != nil {
		return err
	}
	a.printer.EventRecorded(out.Goal, out.Result, out.Encouragement)
	return nil
}

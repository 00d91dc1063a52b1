package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/quest/internal/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive goal board",
	Long: `Opens a full-screen board of your goals.

Keys: up/down (or k/j) select, enter records an event, s saves, q quits.`,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().Bool("read-only", false, "browse without recording or saving")
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, _ []string) error {
	readOnly, _ := cmd.Flags().GetBool("read-only")

	// The board owns the terminal; console logs would corrupt it. The log
	// file, if configured, still receives them.
	cmd.SetErr(io.Discard)

	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.load(ctx, false); err != nil {
		return err
	}
	return tui.Run(ctx, a.session, readOnly)
}

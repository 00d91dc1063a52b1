package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize recorded events",
	RunE:  runStats,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent recorded events",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "number of events to show")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	s, err := a.ledger.Stats(cmd.Context())
	if err != nil {
		return err
	}
	a.printer.Stats(s)
	return nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	n, _ := cmd.Flags().GetInt("limit")

	a, err := newApp(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	entries, err := a.ledger.Recent(cmd.Context(), n)
	if err != nil {
		return err
	}
	a.printer.History(entries)
	return nil
}

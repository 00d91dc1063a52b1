package cmd

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals in the save file",
	RunE:    runList,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show score, level and achievements",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statusCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.load(cmd.Context(), false); err != nil {
		return err
	}
	a.printer.GoalList(a.session.Goals())
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.load(cmd.Context(), false); err != nil {
		return err
	}
	a.printer.Status(a.session.Status(), a.session.Achievements())
	return nil
}

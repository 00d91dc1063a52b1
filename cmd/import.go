package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/quest/internal/manifest"
)

var importCmd = &cobra.Command{
	Use:   "import <manifest.toml>",
	Short: "Create goals from a TOML manifest",
	Long: `Reads a TOML manifest of [[goals]] tables and adds every goal to the quest.
Either all goals are valid and saved, or nothing changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().Bool("dry-run", false, "validate the manifest without saving")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	m, err := manifest.Load(args[0])
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.load(ctx, false); err != nil {
		return err
	}
	goals, err := a.session.Import(m)
	if err != nil {
		return err
	}

	if dry, _ := cmd.Flags().GetBool("dry-run"); dry {
		a.printer.Info(fmt.Sprintf("%d goal(s) valid, nothing saved", len(goals)))
		return nil
	}
	if err := a.session.Save(ctx); err != nil {
		return err
	}
	for _, g := range goals {
		a.printer.GoalCreated(g)
	}
	return nil
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/quest/internal/goal"
	"github.com/papapumpkin/quest/internal/quest"
)

var createCmd = &cobra.Command{
	Use:   "create <simple|eternal|checklist>",
	Short: "Create a goal and save it",
	Example: `  quest create simple --name Marathon --desc "Run a marathon" --points 1000
  quest create eternal --name Scriptures --desc "Read daily" --points 100
  quest create checklist --name Temple --desc "Attend the temple" --points 50 --target 10 --bonus 500`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: kindNames(),
	RunE:      runCreate,
}

func init() {
	createCmd.Flags().String("name", "", "goal name (required)")
	createCmd.Flags().String("desc", "", "short description")
	createCmd.Flags().Int("points", 0, "points per recorded event")
	createCmd.Flags().Int("target", 0, "checklist: times to accomplish the goal")
	createCmd.Flags().Int("bonus", 0, "checklist: bonus paid from the target on")
	_ = createCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	kind, err := goal.ParseKind(args[0])
	if err != nil {
		return err
	}
	spec := quest.GoalSpec{Kind: kind}
	spec.Name, _ = cmd.Flags().GetString("name")
	spec.Description, _ = cmd.Flags().GetString("desc")
	spec.Points, _ = cmd.Flags().GetInt("points")
	spec.Target, _ = cmd.Flags().GetInt("target")
	spec.Bonus, _ = cmd.Flags().GetInt("bonus")

	a, err := newApp(cmd.Context(), cmd, false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx := cmd.Context()
	if err := a.load(ctx, false); err != nil {
		return err
	}
	g, err := a.session.CreateGoal(spec)
	if err != nil {
		return err
	}
	if err := a.session.Save(ctx); err != nil {
		return err
	}
	a.printer.GoalCreated(g)
	return nil
}

// kindNames lists the goal kinds as command arguments.
func kindNames() []string {
	names := make([]string, len(goal.Kinds))
	for i, k := range goal.Kinds {
		names[i] = string(k)
	}
	return names
}

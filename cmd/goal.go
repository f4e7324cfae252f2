package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagGoalName   string
	flagGoalTarget float64
	flagGoalSaved  float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
	RunE:  runGoalList,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals with progress",
	RunE:  runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name> <target>",
	Short: "Create a new goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		target, err := parseMoneyArg(args[1])
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, accepted := s.AddGoal(args[0], target)
			if accepted {
				created := next.Goals[len(next.Goals)-1]
				fmt.Printf("  Created new goal: %s (%s)\n", created.Name, cli.FormatMoney(created.Target))
			}
			return next, accepted
		})
	},
}

var goalEditCmd = &cobra.Command{
	Use:   "edit <goal>",
	Short: "Edit a goal's name, target, or saved amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(func(s ledger.State) (ledger.State, bool) {
			goal, err := findGoalArg(s, args[0])
			if err != nil {
				fmt.Printf("  %v\n", err)
				return s, false
			}
			name := goal.Name
			if cmd.Flags().Changed("name") {
				name = flagGoalName
			}
			target := goal.Target
			if cmd.Flags().Changed("target") {
				target = flagGoalTarget
			}
			saved := goal.Saved
			if cmd.Flags().Changed("saved") {
				saved = flagGoalSaved
			}
			next, accepted := s.EditGoal(goal.ID, name, target, saved)
			if accepted {
				fmt.Printf("  Updated goal: %s\n", name)
			}
			return next, accepted
		})
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <goal>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(s ledger.State) (ledger.State, bool) {
			goal, err := findGoalArg(s, args[0])
			if err != nil {
				fmt.Printf("  %v\n", err)
				return s, false
			}
			next, accepted := s.DeleteGoal(goal.ID)
			if accepted {
				fmt.Printf("  Deleted goal: %s\n", goal.Name)
			}
			return next, accepted
		})
	},
}

var goalSaveCmd = &cobra.Command{
	Use:   "save <goal> <amount>",
	Short: "Move available cash into a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseMoneyArg(args[1])
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			goal, err := findGoalArg(s, args[0])
			if err != nil {
				fmt.Printf("  %v\n", err)
				return s, false
			}
			next, moved, accepted := s.TransferToGoal(goal.ID, amount)
			if accepted {
				fmt.Printf("  Saved %s to %s. Available: %s\n",
					cli.FormatMoney(moved), goal.Name, cli.FormatMoney(next.Available))
			}
			return next, accepted
		})
	},
}

var goalReleaseCmd = &cobra.Command{
	Use:   "release <goal> <amount>",
	Short: "Move saved cash back out of a goal",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseMoneyArg(args[1])
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			goal, err := findGoalArg(s, args[0])
			if err != nil {
				fmt.Printf("  %v\n", err)
				return s, false
			}
			next, moved, accepted := s.ReleaseFromGoal(goal.ID, amount)
			if accepted {
				fmt.Printf("  Released %s from %s. Available: %s\n",
					cli.FormatMoney(moved), goal.Name, cli.FormatMoney(next.Available))
			}
			return next, accepted
		})
	},
}

func init() {
	goalEditCmd.Flags().StringVar(&flagGoalName, "name", "", "New goal name")
	goalEditCmd.Flags().Float64Var(&flagGoalTarget, "target", 0, "New target amount")
	goalEditCmd.Flags().Float64Var(&flagGoalSaved, "saved", 0, "New saved amount")

	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalEditCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	goalCmd.AddCommand(goalSaveCmd)
	goalCmd.AddCommand(goalReleaseCmd)
	rootCmd.AddCommand(goalCmd)
}

// findGoalArg resolves a goal by 1-based index, exact name, or unique
// case-insensitive name prefix.
func findGoalArg(s ledger.State, arg string) (ledger.Goal, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(s.Goals) {
			return ledger.Goal{}, fmt.Errorf("no goal #%d", idx)
		}
		return s.Goals[idx-1], nil
	}

	for _, g := range s.Goals {
		if g.Name == arg {
			return g, nil
		}
	}

	var matches []ledger.Goal
	lower := strings.ToLower(arg)
	for _, g := range s.Goals {
		if strings.HasPrefix(strings.ToLower(g.Name), lower) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return ledger.Goal{}, fmt.Errorf("no goal matching %q", arg)
	default:
		return ledger.Goal{}, fmt.Errorf("%q matches %d goals, be more specific", arg, len(matches))
	}
}

func runGoalList(_ *cobra.Command, _ []string) error {
	s, err := loadState()
	if err != nil {
		return err
	}

	if len(s.Goals) == 0 {
		fmt.Println("  No goals yet. Create one with `letssave goal add <name> <target>`.")
		return nil
	}

	t := cli.Table{
		Title:   "Goals",
		Headers: []string{"#", "Name", "Saved", "Target", "Progress", "To go"},
	}
	for i, g := range s.Goals {
		toGo := cli.FormatMoney(g.Remaining())
		if g.Ahead() > 0 {
			toGo = cli.FormatMoney(g.Ahead()) + " ahead"
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			g.Name,
			cli.FormatMoney(g.Saved),
			cli.FormatMoney(g.Target),
			cli.FormatPercent(g.Progress()),
			toGo,
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	return nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"

	"github.com/spf13/cobra"
)

var (
	flagHangoutTrain    float64
	flagHangoutMeals    float64
	flagHangoutActivity float64
	flagHangoutTemplate string
)

var hangoutCmd = &cobra.Command{
	Use:   "hangout",
	Short: "Budget a day out and turn it into a goal",
	RunE:  runHangoutTemplates,
}

var hangoutPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Total up a hangout budget",
	RunE: func(_ *cobra.Command, _ []string) error {
		draft, err := hangoutDraft()
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Print(cli.RenderKV([][2]string{
			{"Train fare", cli.FormatMoney(ledger.Clamp(draft.Train))},
			{"Meals", cli.FormatMoney(ledger.Clamp(draft.Meals))},
			{"Activity", cli.FormatMoney(ledger.Clamp(draft.Activity))},
			{"Day total", cli.FormatMoney(draft.Total())},
		}))
		return nil
	},
}

var hangoutPromoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Create a piggybank goal from a hangout budget",
	RunE: func(_ *cobra.Command, _ []string) error {
		draft, err := hangoutDraft()
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, accepted := s.PromoteHangout(draft)
			if accepted {
				created := next.Goals[len(next.Goals)-1]
				fmt.Printf("  Created new goal: %s (%s)\n", created.Name, cli.FormatMoney(created.Target))
			}
			return next, accepted
		})
	},
}

var hangoutTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List saved hangout templates",
	RunE:  runHangoutTemplates,
}

var hangoutSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the budget as a reusable template",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		draft, err := hangoutDraft()
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, accepted := s.SaveTemplate(args[0], draft)
			if accepted {
				saved := next.HangoutTemplates[len(next.HangoutTemplates)-1]
				fmt.Printf("  Saved template: %s (%s)\n", saved.Name,
					cli.FormatMoney(ledger.DraftFromTemplate(saved).Total()))
			}
			return next, accepted
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{hangoutPlanCmd, hangoutPromoteCmd, hangoutSaveCmd} {
		c.Flags().Float64Var(&flagHangoutTrain, "train", 0, "Train fare")
		c.Flags().Float64Var(&flagHangoutMeals, "meals", 0, "Meals budget")
		c.Flags().Float64Var(&flagHangoutActivity, "activity", 0, "Activity budget")
	}
	hangoutPlanCmd.Flags().StringVar(&flagHangoutTemplate, "template", "", "Start from a saved template (number or name)")
	hangoutPromoteCmd.Flags().StringVar(&flagHangoutTemplate, "template", "", "Start from a saved template (number or name)")

	hangoutCmd.AddCommand(hangoutPlanCmd)
	hangoutCmd.AddCommand(hangoutPromoteCmd)
	hangoutCmd.AddCommand(hangoutTemplatesCmd)
	hangoutCmd.AddCommand(hangoutSaveCmd)
	rootCmd.AddCommand(hangoutCmd)
}

// hangoutDraft builds the draft from flags, optionally starting from a
// saved template. Explicit flags win over template values.
func hangoutDraft() (ledger.HangoutDraft, error) {
	draft := ledger.HangoutDraft{
		Train:    flagHangoutTrain,
		Meals:    flagHangoutMeals,
		Activity: flagHangoutActivity,
	}
	if flagHangoutTemplate == "" {
		return draft, nil
	}

	s, err := loadState()
	if err != nil {
		return draft, err
	}
	tmpl, err := findTemplateArg(s, flagHangoutTemplate)
	if err != nil {
		return draft, err
	}
	base := ledger.DraftFromTemplate(tmpl)
	if draft.Train == 0 {
		draft.Train = base.Train
	}
	if draft.Meals == 0 {
		draft.Meals = base.Meals
	}
	if draft.Activity == 0 {
		draft.Activity = base.Activity
	}
	return draft, nil
}

func findTemplateArg(s ledger.State, arg string) (ledger.HangoutTemplate, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(s.HangoutTemplates) {
			return ledger.HangoutTemplate{}, fmt.Errorf("no template #%d", idx)
		}
		return s.HangoutTemplates[idx-1], nil
	}
	for _, t := range s.HangoutTemplates {
		if t.Name == arg {
			return t, nil
		}
	}
	return ledger.HangoutTemplate{}, fmt.Errorf("no template matching %q", arg)
}

func runHangoutTemplates(_ *cobra.Command, _ []string) error {
	s, err := loadState()
	if err != nil {
		return err
	}

	if len(s.HangoutTemplates) == 0 {
		fmt.Println("  No templates saved yet.")
		return nil
	}

	t := cli.Table{
		Title:   "Hangout templates",
		Headers: []string{"#", "Name", "Train", "Meals", "Activity", "Total"},
	}
	for i, tmpl := range s.HangoutTemplates {
		d := ledger.DraftFromTemplate(tmpl)
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			tmpl.Name,
			cli.FormatMoney(d.Train),
			cli.FormatMoney(d.Meals),
			cli.FormatMoney(d.Activity),
			cli.FormatMoney(d.Total()),
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	return nil
}

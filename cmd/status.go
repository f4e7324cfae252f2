package cmd

import (
	"fmt"

	"github.com/wrenhale/letssave/internal/cli"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show balances, goals, and wishlist at a glance",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, err := loadState()
	if err != nil {
		return err
	}
	totals := s.Totals()

	fmt.Println()
	fmt.Print(cli.RenderKV([][2]string{
		{"Available cash", cli.FormatMoney(s.Available)},
		{"Credit card", cli.FormatMoney(s.CreditCardBalance)},
		{"Net available", cli.FormatMoney(s.NetAvailable())},
		{"Total saved", cli.FormatMoney(totals.Saved)},
		{"Left to save", cli.FormatMoney(s.LeftToSave())},
	}))
	fmt.Println()

	if len(s.Goals) > 0 {
		t := cli.Table{
			Title:   "Goals",
			Headers: []string{"Name", "Saved", "Target", "Progress"},
		}
		for _, g := range s.Goals {
			t.Rows = append(t.Rows, []string{
				g.Name,
				cli.FormatMoney(g.Saved),
				cli.FormatMoney(g.Target),
				cli.FormatPercent(g.Progress()),
			})
		}
		fmt.Print(cli.RenderTable(t))
		fmt.Println()
	}

	if len(s.Wishlist) > 0 {
		t := cli.Table{
			Title:   "Wishlist",
			Headers: []string{"Wish", "Price"},
		}
		for _, item := range s.Wishlist {
			t.Rows = append(t.Rows, []string{item.Title, cli.FormatMoney(item.Price)})
		}
		fmt.Print(cli.RenderTable(t))
		fmt.Println()
	}

	return nil
}

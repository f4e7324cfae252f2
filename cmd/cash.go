package cmd

import (
	"fmt"
	"strconv"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"

	"github.com/spf13/cobra"
)

var cashCmd = &cobra.Command{
	Use:   "cash",
	Short: "Adjust available cash",
}

var cashAddCmd = &cobra.Command{
	Use:   "add <amount>",
	Short: "Add cash to your balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return adjustCash(args[0], ledger.Add)
	},
}

var cashSpendCmd = &cobra.Command{
	Use:   "spend <amount>",
	Short: "Log a spend against your balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return adjustCash(args[0], ledger.Spend)
	},
}

func init() {
	cashCmd.AddCommand(cashAddCmd)
	cashCmd.AddCommand(cashSpendCmd)
	rootCmd.AddCommand(cashCmd)
}

// parseMoneyArg parses a positional money amount. Junk input is an
// error here, unlike the TUI where it is silently ignored.
func parseMoneyArg(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

func adjustCash(arg string, dir ledger.AdjustDirection) error {
	amount, err := parseMoneyArg(arg)
	if err != nil {
		return err
	}
	return mutate(func(s ledger.State) (ledger.State, bool) {
		next, accepted := s.AdjustCash(amount, dir)
		if accepted {
			verb, tail := "Added", "to"
			if dir == ledger.Spend {
				verb, tail = "Removed", "from"
			}
			fmt.Printf("  %s %s %s your balance. Available: %s\n",
				verb, cli.FormatMoney(ledger.Clamp(amount)), tail, cli.FormatMoney(next.Available))
		}
		return next, accepted
	})
}

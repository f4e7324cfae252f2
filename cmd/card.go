package cmd

import (
	"fmt"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"

	"github.com/spf13/cobra"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Track your credit card balance",
}

var cardChargeCmd = &cobra.Command{
	Use:   "charge <amount>",
	Short: "Add a charge to the card balance",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseMoneyArg(args[0])
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, accepted := s.ChargeCard(amount)
			if accepted {
				fmt.Printf("  Added %s to card balance. Owed: %s\n",
					cli.FormatMoney(ledger.Clamp(amount)), cli.FormatMoney(next.CreditCardBalance))
			}
			return next, accepted
		})
	},
}

var cardPayCmd = &cobra.Command{
	Use:   "pay <amount>",
	Short: "Pay down the card from available cash",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		amount, err := parseMoneyArg(args[0])
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, paid, accepted := s.PayCard(amount)
			if accepted {
				fmt.Printf("  Paid %s to credit card. Owed: %s, available: %s\n",
					cli.FormatMoney(paid), cli.FormatMoney(next.CreditCardBalance), cli.FormatMoney(next.Available))
			}
			return next, accepted
		})
	},
}

var cardResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Write the card balance off to zero",
	RunE: func(_ *cobra.Command, _ []string) error {
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, accepted := s.ResetCard()
			if accepted {
				fmt.Printf("  Credit card balance reset from %s\n", cli.FormatMoney(s.CreditCardBalance))
			}
			return next, accepted
		})
	},
}

func init() {
	cardCmd.AddCommand(cardChargeCmd)
	cardCmd.AddCommand(cardPayCmd)
	cardCmd.AddCommand(cardResetCmd)
	rootCmd.AddCommand(cardCmd)
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"

	"github.com/spf13/cobra"
)

var flagWishLink string

var wishCmd = &cobra.Command{
	Use:   "wish",
	Short: "Manage the wishlist",
	RunE:  runWishList,
}

var wishListCmd = &cobra.Command{
	Use:   "list",
	Short: "List wishlist items",
	RunE:  runWishList,
}

var wishAddCmd = &cobra.Command{
	Use:   "add <title> <price>",
	Short: "Add something to the wishlist",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		price, err := parseMoneyArg(args[1])
		if err != nil {
			return err
		}
		return mutate(func(s ledger.State) (ledger.State, bool) {
			next, accepted := s.AddWish(args[0], price, flagWishLink)
			if accepted {
				added := next.Wishlist[len(next.Wishlist)-1]
				fmt.Printf("  Added to wishlist: %s (%s)\n", added.Title, cli.FormatMoney(added.Price))
			}
			return next, accepted
		})
	},
}

var wishDeleteCmd = &cobra.Command{
	Use:   "delete <wish>",
	Short: "Remove a wishlist item",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(s ledger.State) (ledger.State, bool) {
			item, err := findWishArg(s, args[0])
			if err != nil {
				fmt.Printf("  %v\n", err)
				return s, false
			}
			next, accepted := s.DeleteWish(item.ID)
			if accepted {
				fmt.Printf("  Removed from wishlist: %s\n", item.Title)
			}
			return next, accepted
		})
	},
}

var wishPromoteCmd = &cobra.Command{
	Use:   "promote <wish>",
	Short: "Turn a wish into a savings goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return mutate(func(s ledger.State) (ledger.State, bool) {
			item, err := findWishArg(s, args[0])
			if err != nil {
				fmt.Printf("  %v\n", err)
				return s, false
			}
			next, accepted := s.PromoteWish(item.ID)
			if accepted {
				created := next.Goals[len(next.Goals)-1]
				fmt.Printf("  Created new goal: %s (%s)\n", created.Name, cli.FormatMoney(created.Target))
			}
			return next, accepted
		})
	},
}

func init() {
	wishAddCmd.Flags().StringVar(&flagWishLink, "link", "", "Link to the item")

	wishCmd.AddCommand(wishListCmd)
	wishCmd.AddCommand(wishAddCmd)
	wishCmd.AddCommand(wishDeleteCmd)
	wishCmd.AddCommand(wishPromoteCmd)
	rootCmd.AddCommand(wishCmd)
}

// findWishArg resolves a wishlist item by 1-based index, exact title,
// or unique case-insensitive title prefix.
func findWishArg(s ledger.State, arg string) (ledger.WishItem, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		if idx < 1 || idx > len(s.Wishlist) {
			return ledger.WishItem{}, fmt.Errorf("no wish #%d", idx)
		}
		return s.Wishlist[idx-1], nil
	}

	for _, item := range s.Wishlist {
		if item.Title == arg {
			return item, nil
		}
	}

	var matches []ledger.WishItem
	lower := strings.ToLower(arg)
	for _, item := range s.Wishlist {
		if strings.HasPrefix(strings.ToLower(item.Title), lower) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return ledger.WishItem{}, fmt.Errorf("no wish matching %q", arg)
	default:
		return ledger.WishItem{}, fmt.Errorf("%q matches %d wishes, be more specific", arg, len(matches))
	}
}

func runWishList(_ *cobra.Command, _ []string) error {
	s, err := loadState()
	if err != nil {
		return err
	}

	if len(s.Wishlist) == 0 {
		fmt.Println("  Wishlist is empty. Add something with `letssave wish add <title> <price>`.")
		return nil
	}

	t := cli.Table{
		Title:   "Wishlist",
		Headers: []string{"#", "Wish", "Price", "Link"},
	}
	for i, item := range s.Wishlist {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			item.Title,
			cli.FormatMoney(item.Price),
			item.Link,
		})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(t))
	return nil
}

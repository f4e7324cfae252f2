// Package cmd implements the letssave CLI commands.
package cmd

import (
	"fmt"

	"github.com/wrenhale/letssave/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Ledger file:    %s\n", config.DataPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Ledger]")
	if cfg.Ledger.SeedAvailable != nil {
		fmt.Printf("    Starting cash (new ledgers): $%.0f\n", *cfg.Ledger.SeedAvailable)
	} else {
		fmt.Println("    Starting cash (new ledgers): default ($500)")
	}
	fmt.Println()

	fmt.Println("  Run the TUI's Settings tab to reconfigure.")
	return nil
}

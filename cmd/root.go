package cmd

import (
	"fmt"
	"os"

	"github.com/wrenhale/letssave/internal/config"
	"github.com/wrenhale/letssave/internal/ledger"
	"github.com/wrenhale/letssave/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "letssave",
	Short: "A tiny piggybank for your spare cash",
	Long:  "Track available cash, a credit card balance, savings goals, a wishlist, and hangout budgets. Run with no arguments for the interactive TUI.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Directory holding the ledger database (overrides config)")
}

// loadConfig reads the config file and applies the --data-dir override.
func loadConfig() config.Config {
	cfg, _ := config.Load()
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg
}

// openLedger opens the store and loads the ledger, initializing a fresh
// one (and persisting it) when nothing is stored yet. The third return
// reports whether the ledger was freshly created.
func openLedger() (*store.Store, ledger.State, bool, error) {
	cfg := loadConfig()

	st, err := store.Open(config.DataPath(cfg))
	if err != nil {
		return nil, ledger.State{}, false, fmt.Errorf("opening ledger store: %w", err)
	}

	data, found, err := st.Load(ledger.StorageKey)
	if err != nil {
		st.Close()
		return nil, ledger.State{}, false, fmt.Errorf("loading ledger: %w", err)
	}

	if !found {
		state := ledger.DefaultState()
		if cfg.Ledger.SeedAvailable != nil {
			state.Available = ledger.Clamp(*cfg.Ledger.SeedAvailable)
		}
		encoded, err := ledger.Encode(state)
		if err != nil {
			st.Close()
			return nil, ledger.State{}, false, err
		}
		if err := st.Save(ledger.StorageKey, encoded); err != nil {
			st.Close()
			return nil, ledger.State{}, false, fmt.Errorf("initializing ledger: %w", err)
		}
		return st, state, true, nil
	}

	return st, ledger.Decode(data), false, nil
}

// mutate loads the ledger, applies fn, and persists the result when the
// mutation is accepted. Rejected mutations print a short note and leave
// the ledger untouched.
func mutate(fn func(ledger.State) (ledger.State, bool)) error {
	st, state, _, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	next, accepted := fn(state)
	if !accepted {
		fmt.Println("  Nothing to do.")
		return nil
	}

	encoded, err := ledger.Encode(next)
	if err != nil {
		return err
	}
	if err := st.Save(ledger.StorageKey, encoded); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// loadState is the read-only path used by reporting commands.
func loadState() (ledger.State, error) {
	st, state, _, err := openLedger()
	if err != nil {
		return ledger.State{}, err
	}
	st.Close()
	return state, nil
}

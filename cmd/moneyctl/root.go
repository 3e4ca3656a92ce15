package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moneybook/internal/clock"
	"moneybook/internal/config"
	"moneybook/internal/database"
	"moneybook/internal/logger"
	"moneybook/internal/notify"
	"moneybook/internal/services"
	"moneybook/internal/store"
)

var flagQuiet bool

var rootCmd = &cobra.Command{
	Use:           "moneyctl",
	Short:         "Moneybook operator CLI",
	Long:          "Issue access tokens and inspect budgets and sync feeds without going through the API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		env := os.Getenv("ENV")
		if flagQuiet {
			env = "test"
		}
		logger.Init(env)
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "moneyctl: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress log output")
}

// app is the service stack the read commands work against.
type app struct {
	db           *database.Manager
	transactions services.TransactionServicer
	budgets      services.BudgetServicer
	syncLog      services.SyncLogServicer
}

// openApp connects with the same configuration the API server uses. No
// migrations are run and sync events are never published.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return nil, err
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return nil, err
	}

	db := dbManager.DB()
	clk := clock.System{}
	transactionStore := store.NewTransactionStore(db)
	syncLog := services.NewSyncLogService(store.NewSyncLogStore(db), notify.Nop{})

	var snapshots store.SnapshotStore = store.NewFileSnapshotStore(cfg.DataDir)
	if cfg.BudgetStore == config.BudgetStoreDB {
		snapshots = store.NewDBSnapshotStore(db)
	}

	return &app{
		db:           dbManager,
		transactions: services.NewTransactionService(transactionStore, syncLog, clk),
		budgets:      services.NewBudgetService(services.NewBudgetStore(snapshots, clk), transactionStore, clk),
		syncLog:      syncLog,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Get().Warnw("failed to close database", "error", err)
	}
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

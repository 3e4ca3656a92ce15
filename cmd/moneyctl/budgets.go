package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	flagUsageUser     string
	flagUsageYear     int
	flagUsageMonth    int
	flagUsageCategory string
)

var statsCmd = &cobra.Command{
	Use:   "stats <budget-id>",
	Short: "Print period statistics for a budget as of today",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Print a user's spend against a monthly budget",
	RunE:  runUsage,
}

func init() {
	now := time.Now()
	usageCmd.Flags().StringVarP(&flagUsageUser, "user", "u", "", "User id (required)")
	usageCmd.Flags().IntVar(&flagUsageYear, "year", now.Year(), "Year")
	usageCmd.Flags().IntVar(&flagUsageMonth, "month", int(now.Month()), "Month 1-12")
	usageCmd.Flags().StringVarP(&flagUsageCategory, "category", "c", "", "Category (default: total budget)")
	_ = usageCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(usageCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	stats, err := a.budgets.StatsForBudget(args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, stats)
}

func runUsage(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	var category *string
	if flagUsageCategory != "" {
		category = &flagUsageCategory
	}
	usage, err := a.budgets.MonthlyUsage(flagUsageUser, category, flagUsageYear, flagUsageMonth)
	if err != nil {
		return err
	}
	return printJSON(cmd, usage)
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"moneybook/internal/models"
	"moneybook/internal/services"
)

var (
	flagSummaryUser string
	flagSummaryFrom string
	flagSummaryTo   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print income, expense and net totals for a user",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagSummaryUser, "user", "u", "", "User id (required)")
	summaryCmd.Flags().StringVar(&flagSummaryFrom, "from", "", "First day, YYYY-MM-DD")
	summaryCmd.Flags().StringVar(&flagSummaryTo, "to", "", "Last day, YYYY-MM-DD")
	_ = summaryCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	from, to, err := parseRange(flagSummaryFrom, flagSummaryTo)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	txs, err := a.transactions.GetVisibleForUser(flagSummaryUser)
	if err != nil {
		return err
	}
	return printJSON(cmd, services.Summarize(inRange(txs, from, to)))
}

// parseRange reads an inclusive day range; the upper bound becomes the
// start of the following day.
func parseRange(fromRaw, toRaw string) (from, to *time.Time, err error) {
	if fromRaw != "" {
		t, err := time.Parse("2006-01-02", fromRaw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --from: %w", err)
		}
		from = &t
	}
	if toRaw != "" {
		t, err := time.Parse("2006-01-02", toRaw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --to: %w", err)
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	return from, to, nil
}

func inRange(txs []models.Transaction, from, to *time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if from != nil && tx.Date.Before(*from) {
			continue
		}
		if to != nil && !tx.Date.Before(*to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagChangesUser  string
	flagChangesSince int64
	flagChangesLimit int
)

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Print a user's sync log after a version",
	RunE:  runChanges,
}

func init() {
	changesCmd.Flags().StringVarP(&flagChangesUser, "user", "u", "", "User id (required)")
	changesCmd.Flags().Int64Var(&flagChangesSince, "since", 0, "Print entries after this version")
	changesCmd.Flags().IntVarP(&flagChangesLimit, "limit", "l", 100, "Maximum entries")
	_ = changesCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(changesCmd)
}

func runChanges(cmd *cobra.Command, _ []string) error {
	if flagChangesLimit < 1 {
		return fmt.Errorf("--limit must be positive")
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	maxVersion, err := a.syncLog.MaxVersion(flagChangesUser)
	if err != nil {
		return err
	}
	changes, err := a.syncLog.ChangesSince(flagChangesUser, flagChangesSince, flagChangesLimit)
	if err != nil {
		return err
	}
	return printJSON(cmd, map[string]interface{}{
		"changes":    changes,
		"maxVersion": maxVersion,
	})
}

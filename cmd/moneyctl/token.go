package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"moneybook/internal/middleware"
)

var (
	flagTokenUser   string
	flagTokenDevice string
	flagTokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVarP(&flagTokenUser, "user", "u", "", "User id (required)")
	tokenCmd.Flags().StringVar(&flagTokenDevice, "device", "", "Device id carried in the token")
	tokenCmd.Flags().DurationVar(&flagTokenTTL, "ttl", 0, "Token lifetime (default JWT_EXPIRES_IN)")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	token, err := middleware.GenerateAccessToken(flagTokenUser, flagTokenDevice, flagTokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

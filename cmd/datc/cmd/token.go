package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/freeeve/datc-orders/internal/auth"
	"github.com/freeeve/datc-orders/internal/config"
)

var (
	tokenSubject string
	tokenExpiry  time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Print a signed API access token",
	Long: `Prints a bearer token for the case endpoints of the HTTP API, signed
with JWT_SECRET.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenSubject == "" {
			return errors.New("--subject is required")
		}
		token, err := auth.NewJWTManager(config.Load().JWTSecret).GenerateToken(tokenSubject, tokenExpiry)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "client name embedded in the token")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", auth.DefaultTokenExpiry, "token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

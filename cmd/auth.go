package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/drivecopy/internal/drive"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth [code]",
		Short: "Authorize access to a Google account",
		Long: `Without arguments, print the URL to visit to authorize drivecopy for the
given Google account. Visit the URL, grant access, and re-run the command
with the authorization code you receive:

  drivecopy auth
  drivecopy auth 4/0AX4XfW...`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if drive.HasTokenForAccount(account) {
					fmt.Printf("Account %q is already authorized. Continue to re-authorize.\n\n", account)
				}
				fmt.Printf("Visit the following URL to authorize access:\n\n  %s\n\nThen run 'drivecopy auth <code>' with the code you receive.\n",
					drive.GetAuthURLForAccount(account))
				return nil
			}

			ctx := context.Background()
			if err := drive.SaveTokenForAccount(ctx, account, args[0]); err != nil {
				return fmt.Errorf("failed to save token for account %s: %w", account, err)
			}
			fmt.Printf("Account %q authorized.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")

	return cmd
}

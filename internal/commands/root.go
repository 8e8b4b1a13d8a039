// Package commands wires the CLI surface: each subcommand
// authenticates, builds a session ledger from the profile or the
// built-in seed, applies one operation, and prints the result.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andino-dev/andino/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &sessionOptions{}

	rootCmd := &cobra.Command{
		Use:     "andino",
		Short:   "Banking session console for the Andino prototype",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	opts.register(rootCmd)

	rootCmd.AddCommand(
		newInitCommand(),
		newAccountsCommand(opts),
		newCardsCommand(opts),
		newHistoryCommand(opts),
		newDepositCommand(opts),
		newWithdrawCommand(opts),
		newPayCommand(opts),
		newTransferCommand(opts),
		newLoanCommand(opts),
		newExportCommand(opts),
	)

	return rootCmd
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andino-dev/andino/internal/statement"
)

func newExportCommand(opts *sessionOptions) *cobra.Command {
	var account string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the transaction history as a CSV statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			txns := s.store.Transactions()
			if account != "" {
				txns = s.store.TransactionsFor(account)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating statement file: %w", err)
			}
			defer f.Close()

			if err := statement.Write(f, txns); err != nil {
				return fmt.Errorf("writing statement: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", len(txns), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "filter by account number")
	cmd.Flags().StringVar(&out, "out", "statement.csv", "output file")

	return cmd
}

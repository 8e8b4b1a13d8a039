package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andino-dev/andino/internal/format"
)

func newHistoryCommand(opts *sessionOptions) *cobra.Command {
	var account string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the transaction history, most recent first",
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
			if limit > 0 && len(txns) > limit {
				txns = txns[:limit]
			}

			w := cmd.OutOrStdout()
			for _, t := range txns {
				fmt.Fprintf(w, "%-7s  %-14s  %12s  %s\n",
					format.ShortDate(t.Date), t.Type, format.Currency(t.Amount), t.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "filter by account number")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 = all)")

	return cmd
}

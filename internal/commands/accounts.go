package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andino-dev/andino/internal/format"
)

func newAccountsCommand(opts *sessionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List the session's deposit accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Cuentas de %s\n", s.user.Name)
			for _, a := range s.store.Accounts() {
				fmt.Fprintf(w, "%s  %-9s  %s\n",
					format.AccountNumber(a.AccountNumber), a.AccountType, format.Currency(a.Balance))
			}
			return nil
		},
	}
}

func newCardsCommand(opts *sessionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "List the session's credit cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, c := range s.store.Cards() {
				fmt.Fprintf(w, "%s  %-10s  vence %s  disponible %s de %s\n",
					format.MaskCard(c.CardNumber), c.CardType, c.ExpiryDate,
					format.Currency(c.AvailableCredit), format.Currency(c.CreditLimit))
			}
			return nil
		},
	}
}

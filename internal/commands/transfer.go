package commands

import (
	"github.com/spf13/cobra"
)

func newTransferCommand(opts *sessionOptions) *cobra.Command {
	var from string
	var to string
	var amount string
	var description string

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer to another account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseAmount(amount)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			acct, err := s.store.AccountByNumber(from)
			if err != nil {
				return err
			}

			txn, err := s.store.Transfer(acct.ID, to, value, description)
			if err != nil {
				return err
			}

			acct, err = s.store.Account(acct.ID)
			if err != nil {
				return err
			}
			printReceipt(cmd.OutOrStdout(), txn, acct.Balance)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source account number (required)")
	_ = cmd.MarkFlagRequired("from")
	cmd.Flags().StringVar(&to, "to", "", "destination account number (required)")
	_ = cmd.MarkFlagRequired("to")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to transfer (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "transfer description (required)")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}

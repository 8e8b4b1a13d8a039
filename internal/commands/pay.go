package commands

import (
	"github.com/spf13/cobra"
)

func newPayCommand(opts *sessionOptions) *cobra.Command {
	var account string
	var amount string
	var service string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay a service from one of the session's accounts",
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

			acct, err := s.store.AccountByNumber(account)
			if err != nil {
				return err
			}

			txn, err := s.store.Pay(acct.ID, value, "Pago "+service)
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

	cmd.Flags().StringVar(&account, "account", "", "source account number (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to pay (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&service, "service", "", "service name, e.g. \"CNT - Internet\" (required)")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}

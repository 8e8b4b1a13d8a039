package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var depositMethods = map[string]string{
	"cash":     "Depósito en efectivo",
	"transfer": "Depósito por transferencia",
	"check":    "Depósito con cheque",
}

func newDepositCommand(opts *sessionOptions) *cobra.Command {
	var account string
	var amount string
	var method string

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit into one of the session's accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			description, ok := depositMethods[method]
			if !ok {
				return fmt.Errorf("unknown deposit method %q (cash, transfer, check)", method)
			}

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

			txn, err := s.store.Deposit(acct.ID, value, description)
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

	cmd.Flags().StringVar(&account, "account", "", "destination account number (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&amount, "amount", "", "amount to deposit (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&method, "method", "cash", "deposit method: cash, transfer, or check")

	return cmd
}

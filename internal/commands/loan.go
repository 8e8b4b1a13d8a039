package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andino-dev/andino/internal/format"
	"github.com/andino-dev/andino/internal/loanmath"
)

func newLoanCommand(opts *sessionOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Loan portfolio, payments, and simulations",
	}

	cmd.AddCommand(
		newLoanListCommand(opts),
		newLoanPayCommand(opts),
		newLoanSimulateCommand(),
		newLoanScheduleCommand(opts),
	)

	return cmd
}

func newLoanListCommand(opts *sessionOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the session's loans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, l := range s.store.Loans() {
				fmt.Fprintf(w, "[%s] %-12s  saldo %s de %s  cuota %s  %.2f%%  próximo pago %s\n",
					l.ID, l.Type, format.Currency(l.RemainingBalance), format.Currency(l.Amount),
					format.Currency(l.MonthlyPayment), l.InterestRate, format.LongDate(l.NextPaymentDate))
			}
			return nil
		},
	}
}

func newLoanPayCommand(opts *sessionOptions) *cobra.Command {
	var loanID string
	var account string

	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Pay one monthly loan installment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			acct, err := s.store.AccountByNumber(account)
			if err != nil {
				return err
			}

			txn, err := s.store.PayLoan(loanID, acct.ID)
			if err != nil {
				return err
			}

			acct, err = s.store.Account(acct.ID)
			if err != nil {
				return err
			}
			printReceipt(cmd.OutOrStdout(), txn, acct.Balance)

			loan, err := s.store.Loan(loanID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saldo del préstamo: %s\n", format.Currency(loan.RemainingBalance))
			return nil
		},
	}

	cmd.Flags().StringVar(&loanID, "loan", "", "loan ID (required)")
	_ = cmd.MarkFlagRequired("loan")
	cmd.Flags().StringVar(&account, "account", "", "source account number (required)")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newLoanSimulateCommand() *cobra.Command {
	var amount string
	var rate float64
	var months int

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a fixed-payment loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := parseAmount(amount)
			if err != nil {
				return err
			}

			result, err := loanmath.Simulate(principal, rate, months)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Cuota mensual:  %s\n", format.Currency(result.MonthlyPayment))
			fmt.Fprintf(w, "Total a pagar:  %s\n", format.Currency(result.TotalPayment))
			fmt.Fprintf(w, "Total interés:  %s\n", format.Currency(result.TotalInterest))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "loan principal (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual interest rate in percent (required)")
	_ = cmd.MarkFlagRequired("rate")
	cmd.Flags().IntVar(&months, "months", 0, "term in months (required)")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}

func newLoanScheduleCommand(opts *sessionOptions) *cobra.Command {
	var loanID string
	var months int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the amortization table for a loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), opts)
			if err != nil {
				return err
			}

			loan, err := s.store.Loan(loanID)
			if err != nil {
				return err
			}

			rows, err := loanmath.Schedule(loan.RemainingBalance, loan.MonthlyPayment, loan.InterestRate, months)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Préstamo %s  saldo %s  cuota %s\n",
				loan.Type, format.Currency(loan.RemainingBalance), format.Currency(loan.MonthlyPayment))
			fmt.Fprintln(w, "mes      cuota    capital    interés      saldo")
			for _, r := range rows {
				fmt.Fprintf(w, "%3d  %9s  %9s  %9s  %9s\n",
					r.Month,
					r.Payment.StringFixed(2), r.Principal.StringFixed(2),
					r.Interest.StringFixed(2), r.Balance.StringFixed(2))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&loanID, "loan", "", "loan ID (required)")
	_ = cmd.MarkFlagRequired("loan")
	cmd.Flags().IntVar(&months, "months", 12, "maximum months to show")

	return cmd
}

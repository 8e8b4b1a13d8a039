// Package ledger maintains the authoritative state of one signed-in
// banking session: the customer's accounts, the ordered transaction
// log, and the loan and card portfolios. Every balance-changing
// operation either fully succeeds (balance updated and exactly one
// transaction prepended) or leaves the state untouched.
//
// The store assumes a single writer: one interactive caller issues one
// mutation at a time, so no locking is needed.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andino-dev/andino/internal/id"
	"github.com/andino-dev/andino/internal/model"
)

// Store holds the session ledger. Transactions are kept most recent
// first (new entries are prepended).
type Store struct {
	accounts []model.Account
	acctByID map[string]int

	txns []model.Transaction

	loans    []model.Loan
	loanByID map[string]int

	cards    []model.CreditCard
	cardByID map[string]int

	now func() time.Time
}

// New creates a Store from the session's seed collections. The
// transaction slice is expected most recent first and is copied.
func New(accounts []model.Account, txns []model.Transaction, loans []model.Loan, cards []model.CreditCard) *Store {
	s := &Store{
		accounts: append([]model.Account(nil), accounts...),
		acctByID: make(map[string]int, len(accounts)),
		txns:     append([]model.Transaction(nil), txns...),
		loans:    append([]model.Loan(nil), loans...),
		loanByID: make(map[string]int, len(loans)),
		cards:    append([]model.CreditCard(nil), cards...),
		cardByID: make(map[string]int, len(cards)),
		now:      time.Now,
	}
	for i, a := range s.accounts {
		s.acctByID[a.ID] = i
	}
	for i, l := range s.loans {
		s.loanByID[l.ID] = i
	}
	for i, c := range s.cards {
		s.cardByID[c.ID] = i
	}
	return s
}

// Deposit credits an account and records a positive Depósito
// transaction. The method description ("Depósito en efectivo", etc.)
// becomes the transaction description.
func (s *Store) Deposit(accountID string, amount decimal.Decimal, method string) (model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Transaction{}, ErrInvalidAmount
	}

	i, ok := s.acctByID[accountID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	acct := &s.accounts[i]

	acct.Balance = acct.Balance.Add(amount)
	txn := model.Transaction{
		ID:          id.NewTransactionID(),
		Type:        model.TransactionDeposit,
		Amount:      amount,
		Date:        s.now(),
		Description: method,
		Status:      model.StatusCompleted,
		To:          acct.AccountNumber,
	}
	s.prepend(txn)
	return txn, nil
}

// Withdraw debits an account and records a negative Retiro transaction.
func (s *Store) Withdraw(accountID string, amount decimal.Decimal, description string) (model.Transaction, error) {
	return s.debit(accountID, amount, description, model.TransactionWithdrawal)
}

// Pay debits an account and records a negative Pago transaction
// (service payments, installments, and similar outflows).
func (s *Store) Pay(accountID string, amount decimal.Decimal, description string) (model.Transaction, error) {
	return s.debit(accountID, amount, description, model.TransactionPayment)
}

func (s *Store) debit(accountID string, amount decimal.Decimal, description string, typ model.TransactionType) (model.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Transaction{}, ErrInvalidAmount
	}

	i, ok := s.acctByID[accountID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	acct := &s.accounts[i]

	if amount.GreaterThan(acct.Balance) {
		return model.Transaction{}, ErrInsufficientFunds
	}

	acct.Balance = acct.Balance.Sub(amount)
	txn := model.Transaction{
		ID:          id.NewTransactionID(),
		Type:        typ,
		Amount:      amount.Neg(),
		Date:        s.now(),
		Description: description,
		Status:      model.StatusCompleted,
		From:        acct.AccountNumber,
	}
	s.prepend(txn)
	return txn, nil
}

// Transfer debits the source account and records a negative
// Transferencia transaction carrying both account numbers.
//
// The destination is treated as external to the session: only the
// source balance changes, even when destNumber matches another account
// in the store. The destination number is kept on the transaction.
func (s *Store) Transfer(sourceAccountID, destNumber string, amount decimal.Decimal, description string) (model.Transaction, error) {
	if strings.TrimSpace(destNumber) == "" {
		return model.Transaction{}, fmt.Errorf("destination account number required: %w", ErrInvalidInput)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return model.Transaction{}, ErrInvalidAmount
	}

	i, ok := s.acctByID[sourceAccountID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("account %s: %w", sourceAccountID, ErrNotFound)
	}
	acct := &s.accounts[i]

	if amount.GreaterThan(acct.Balance) {
		return model.Transaction{}, ErrInsufficientFunds
	}

	acct.Balance = acct.Balance.Sub(amount)
	txn := model.Transaction{
		ID:          id.NewTransactionID(),
		Type:        model.TransactionTransfer,
		Amount:      amount.Neg(),
		Date:        s.now(),
		Description: description,
		Status:      model.StatusCompleted,
		From:        acct.AccountNumber,
		To:          destNumber,
	}
	s.prepend(txn)
	return txn, nil
}

// PayLoan debits one monthly installment from the source account,
// records a Pago transaction referencing the loan type, and applies
// the principal portion of the installment to the loan's remaining
// balance (interest accrues on the remaining balance at the monthly
// rate; the rest amortizes principal, floored at zero).
func (s *Store) PayLoan(loanID, sourceAccountID string) (model.Transaction, error) {
	li, ok := s.loanByID[loanID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("loan %s: %w", loanID, ErrNotFound)
	}
	ai, ok := s.acctByID[sourceAccountID]
	if !ok {
		return model.Transaction{}, fmt.Errorf("account %s: %w", sourceAccountID, ErrNotFound)
	}
	loan := &s.loans[li]
	acct := &s.accounts[ai]

	if loan.MonthlyPayment.GreaterThan(acct.Balance) {
		return model.Transaction{}, ErrInsufficientFunds
	}

	acct.Balance = acct.Balance.Sub(loan.MonthlyPayment)

	monthlyRate := decimal.NewFromFloat(loan.InterestRate / 100 / 12)
	interest := loan.RemainingBalance.Mul(monthlyRate)
	principal := loan.MonthlyPayment.Sub(interest)
	loan.RemainingBalance = loan.RemainingBalance.Sub(principal)
	if loan.RemainingBalance.IsNegative() {
		loan.RemainingBalance = decimal.Zero
	}
	loan.NextPaymentDate = loan.NextPaymentDate.AddDate(0, 1, 0)

	txn := model.Transaction{
		ID:          id.NewTransactionID(),
		Type:        model.TransactionPayment,
		Amount:      loan.MonthlyPayment.Neg(),
		Date:        s.now(),
		Description: fmt.Sprintf("Pago cuota préstamo %s", loan.Type),
		Status:      model.StatusCompleted,
		From:        acct.AccountNumber,
	}
	s.prepend(txn)
	return txn, nil
}

func (s *Store) prepend(txn model.Transaction) {
	s.txns = append([]model.Transaction{txn}, s.txns...)
}

package ledger

import (
	"fmt"

	"github.com/andino-dev/andino/internal/model"
)

// Read accessors. All return copies so callers cannot modify internal
// state behind the store's back.

// Accounts returns the session's accounts in seed order.
func (s *Store) Accounts() []model.Account {
	return append([]model.Account(nil), s.accounts...)
}

// Account returns an account by ID.
func (s *Store) Account(accountID string) (model.Account, error) {
	i, ok := s.acctByID[accountID]
	if !ok {
		return model.Account{}, fmt.Errorf("account %s: %w", accountID, ErrNotFound)
	}
	return s.accounts[i], nil
}

// AccountByNumber returns an account by its account number. Account
// numbers are unique by construction in the session dataset.
func (s *Store) AccountByNumber(number string) (model.Account, error) {
	for _, a := range s.accounts {
		if a.AccountNumber == number {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("account number %s: %w", number, ErrNotFound)
}

// Transactions returns the full transaction log, most recent first.
func (s *Store) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.txns...)
}

// TransactionsFor returns the transactions whose From or To field
// references the given account number, most recent first.
func (s *Store) TransactionsFor(accountNumber string) []model.Transaction {
	var out []model.Transaction
	for _, t := range s.txns {
		if t.From == accountNumber || t.To == accountNumber {
			out = append(out, t)
		}
	}
	return out
}

// Loans returns the loan portfolio.
func (s *Store) Loans() []model.Loan {
	return append([]model.Loan(nil), s.loans...)
}

// Loan returns a loan by ID.
func (s *Store) Loan(loanID string) (model.Loan, error) {
	i, ok := s.loanByID[loanID]
	if !ok {
		return model.Loan{}, fmt.Errorf("loan %s: %w", loanID, ErrNotFound)
	}
	return s.loans[i], nil
}

// Cards returns the credit cards.
func (s *Store) Cards() []model.CreditCard {
	return append([]model.CreditCard(nil), s.cards...)
}

// Card returns a credit card by ID.
func (s *Store) Card(cardID string) (model.CreditCard, error) {
	i, ok := s.cardByID[cardID]
	if !ok {
		return model.CreditCard{}, fmt.Errorf("card %s: %w", cardID, ErrNotFound)
	}
	return s.cards[i], nil
}

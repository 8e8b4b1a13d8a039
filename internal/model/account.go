package model

import "github.com/shopspring/decimal"

// AccountType classifies deposit accounts.
type AccountType string

const (
	AccountTypeSavings  AccountType = "Ahorros"
	AccountTypeChecking AccountType = "Corriente"
)

// Account is one of the customer's deposit accounts for the session.
// Balance is mutated only through ledger operations and never goes
// negative after a successful operation.
type Account struct {
	ID            string
	AccountNumber string
	AccountType   AccountType
	Balance       decimal.Decimal
	Currency      string // single-currency dataset, always "USD"
}

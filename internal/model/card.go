package model

import "github.com/shopspring/decimal"

// CardType is the card network brand.
type CardType string

const (
	CardVisa       CardType = "Visa"
	CardMastercard CardType = "Mastercard"
)

// CreditCard is read-mostly session state; no ledger operation mutates
// the available credit.
type CreditCard struct {
	ID              string
	CardNumber      string
	CardType        CardType
	ExpiryDate      string // "MM/YY"
	AvailableCredit decimal.Decimal
	CreditLimit     decimal.Decimal
}

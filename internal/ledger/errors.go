package ledger

import "errors"

// Domain errors returned by Store operations. The presentation layer
// maps these to user-facing messages.
var (
	// ErrInvalidAmount means the amount was zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds means the amount exceeds the account balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidInput means a non-amount parameter was malformed
	// (e.g. an empty destination account number).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means an unknown account, loan, or card ID.
	ErrNotFound = errors.New("not found")
)

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tags a ledger entry with the movement that created it.
type TransactionType string

const (
	TransactionTransfer   TransactionType = "Transferencia"
	TransactionPayment    TransactionType = "Pago"
	TransactionDeposit    TransactionType = "Depósito"
	TransactionWithdrawal TransactionType = "Retiro"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "Completada"
	StatusPending   TransactionStatus = "Pendiente"
	StatusFailed    TransactionStatus = "Fallida"
)

// Transaction is one immutable row in the session's transaction log.
// Amount is signed: outflows (transfers sent, payments, withdrawals)
// are negative, inflows (deposits) positive. From carries the account
// number debited for outflows; To carries the credited account number
// for inflows and the external destination for transfers. Either may
// be empty.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	Status      TransactionStatus
	From        string
	To          string
}

// Outflow reports whether the transaction took money out of one of the
// session's accounts.
func (t Transaction) Outflow() bool {
	return t.Amount.IsNegative()
}

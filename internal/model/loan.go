package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType classifies loan products.
type LoanType string

const (
	LoanMortgage LoanType = "Hipotecario"
	LoanVehicle  LoanType = "Vehicular"
	LoanPersonal LoanType = "Personal"
	LoanMicro    LoanType = "Microcrédito"
)

// Loan is an amortized loan. Amount is the original principal;
// RemainingBalance is decremented by the principal portion of each
// installment paid through the ledger.
type Loan struct {
	ID               string
	Type             LoanType
	Amount           decimal.Decimal
	RemainingBalance decimal.Decimal
	MonthlyPayment   decimal.Decimal
	InterestRate     float64 // annual, percent (9.5 = 9.5%)
	NextPaymentDate  time.Time
}

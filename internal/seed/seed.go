// Package seed provides the built-in demo dataset a session starts
// from when no profile overrides it.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andino-dev/andino/internal/model"
)

// Data is everything a fresh session needs: the customer and the
// opening collections. Transactions are most recent first.
type Data struct {
	User         model.User
	Accounts     []model.Account
	Transactions []model.Transaction
	Loans        []model.Loan
	Cards        []model.CreditCard
}

// Session returns the demo dataset.
func Session() Data {
	return Data{
		User: model.User{
			ID:     "1",
			Name:   "Carlos Andrés Méndez",
			Email:  "carlos.mendez@email.com",
			Cedula: "1723456789",
			Phone:  "+593 99 234 5678",
		},
		Accounts: []model.Account{
			{ID: "1", AccountNumber: "2200123456", AccountType: model.AccountTypeSavings, Balance: dec("8542.75"), Currency: "USD"},
			{ID: "2", AccountNumber: "2200654321", AccountType: model.AccountTypeChecking, Balance: dec("12350.25"), Currency: "USD"},
			{ID: "3", AccountNumber: "2200789012", AccountType: model.AccountTypeSavings, Balance: dec("3200.00"), Currency: "USD"},
		},
		Transactions: []model.Transaction{
			{ID: "1", Type: model.TransactionTransfer, Amount: dec("-250.00"), Date: date(2025, 12, 5), Description: "Transferencia a María López", Status: model.StatusCompleted, From: "2200123456", To: "2200987654"},
			{ID: "2", Type: model.TransactionPayment, Amount: dec("-85.50"), Date: date(2025, 12, 4), Description: "Pago CNT - Internet", Status: model.StatusCompleted},
			{ID: "3", Type: model.TransactionDeposit, Amount: dec("1500.00"), Date: date(2025, 12, 3), Description: "Depósito en efectivo", Status: model.StatusCompleted},
			{ID: "4", Type: model.TransactionPayment, Amount: dec("-125.30"), Date: date(2025, 12, 2), Description: "Pago CNEL - Luz", Status: model.StatusCompleted},
			{ID: "5", Type: model.TransactionTransfer, Amount: dec("-500.00"), Date: date(2025, 12, 1), Description: "Transferencia a Carlos Ruiz", Status: model.StatusCompleted, From: "2200654321", To: "2200111222"},
			{ID: "6", Type: model.TransactionPayment, Amount: dec("-45.75"), Date: date(2025, 11, 30), Description: "Pago ETAPA - Agua", Status: model.StatusCompleted},
			{ID: "7", Type: model.TransactionPayment, Amount: dec("-35.00"), Date: date(2025, 11, 29), Description: "Pago Claro - Móvil", Status: model.StatusCompleted},
			{ID: "8", Type: model.TransactionWithdrawal, Amount: dec("-200.00"), Date: date(2025, 11, 28), Description: "Retiro en cajero", Status: model.StatusCompleted},
			{ID: "9", Type: model.TransactionDeposit, Amount: dec("800.00"), Date: date(2025, 11, 27), Description: "Depósito por transferencia", Status: model.StatusCompleted},
			{ID: "10", Type: model.TransactionPayment, Amount: dec("-95.20"), Date: date(2025, 11, 26), Description: "Pago DirecTV", Status: model.StatusCompleted},
		},
		Loans: []model.Loan{
			{ID: "1", Type: model.LoanVehicle, Amount: dec("25000"), RemainingBalance: dec("18500"), MonthlyPayment: dec("520"), InterestRate: 9.5, NextPaymentDate: date(2025, 12, 15)},
			{ID: "2", Type: model.LoanPersonal, Amount: dec("8000"), RemainingBalance: dec("4200"), MonthlyPayment: dec("280"), InterestRate: 11.2, NextPaymentDate: date(2025, 12, 10)},
		},
		Cards: []model.CreditCard{
			{ID: "1", CardNumber: "4539 1488 0343 1234", CardType: model.CardVisa, ExpiryDate: "12/26", AvailableCredit: dec("3500"), CreditLimit: dec("5000")},
			{ID: "2", CardNumber: "5412 7512 3412 5678", CardType: model.CardMastercard, ExpiryDate: "08/27", AvailableCredit: dec("8200"), CreditLimit: dec("10000")},
		},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

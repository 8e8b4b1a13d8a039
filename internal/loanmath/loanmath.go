// Package loanmath provides pure amortized-loan calculations: the
// fixed-payment formula and month-by-month schedule generation. No
// shared state; safe to call from anywhere.
package loanmath

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput means a parameter outside the formula's domain
// (non-positive principal or payment, months below one, negative rate).
var ErrInvalidInput = errors.New("invalid loan parameters")

// FixedMonthlyPayment computes the constant payment that fully
// amortizes principal over months at the given annual rate (percent):
//
//	r = rate / 100 / 12
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate degenerates to an even split. The rate factor is
// computed in float64 (math.Pow), then the result returns to decimal
// for monetary use.
func FixedMonthlyPayment(principal decimal.Decimal, annualRatePercent float64, months int) (decimal.Decimal, error) {
	if months < 1 || annualRatePercent < 0 || principal.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrInvalidInput
	}

	if annualRatePercent == 0 {
		return principal.Div(decimal.NewFromInt(int64(months))), nil
	}

	r := annualRatePercent / 100 / 12
	factor := math.Pow(1+r, float64(months))
	payment := principal.InexactFloat64() * r * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2), nil
}

// Summary is the result of simulating a loan: the fixed installment
// and the totals over the full term.
type Summary struct {
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// Simulate computes the fixed installment for a prospective loan plus
// the total paid and total interest over the term.
func Simulate(principal decimal.Decimal, annualRatePercent float64, months int) (Summary, error) {
	payment, err := FixedMonthlyPayment(principal, annualRatePercent, months)
	if err != nil {
		return Summary{}, err
	}

	total := payment.Mul(decimal.NewFromInt(int64(months)))
	return Summary{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total.Sub(principal),
	}, nil
}

// Row is one month of an amortization schedule.
type Row struct {
	Month     int
	Payment   decimal.Decimal
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule generates up to maxMonths rows of the amortization of
// remaining at the given annual rate (percent) under a fixed payment.
// The row count is min(maxMonths, ceil(remaining/payment)); per row,
// interest accrues on the running balance and the rest of the payment
// amortizes principal.
//
// A payment that does not cover the month's interest yields a negative
// principal portion and a growing balance; that input is allowed and
// the rows reflect it.
func Schedule(remaining, payment decimal.Decimal, annualRatePercent float64, maxMonths int) ([]Row, error) {
	if maxMonths < 1 || annualRatePercent < 0 ||
		remaining.LessThanOrEqual(decimal.Zero) || payment.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidInput
	}

	months := int(remaining.Div(payment).Ceil().IntPart())
	if months > maxMonths {
		months = maxMonths
	}

	rate := decimal.NewFromFloat(annualRatePercent / 100 / 12)
	rows := make([]Row, 0, months)
	balance := remaining
	for month := 1; month <= months; month++ {
		interest := balance.Mul(rate)
		principal := payment.Sub(interest)
		balance = balance.Sub(principal)

		rows = append(rows, Row{
			Month:     month,
			Payment:   payment,
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return rows, nil
}

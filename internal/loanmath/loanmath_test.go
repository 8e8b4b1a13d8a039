package loanmath

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFixedMonthlyPayment_ZeroRate(t *testing.T) {
	payment, err := FixedMonthlyPayment(dec("1000"), 0, 10)
	require.NoError(t, err)
	assert.True(t, payment.Equal(dec("100")), "zero rate is an even split, got %s", payment)
}

func TestFixedMonthlyPayment(t *testing.T) {
	payment, err := FixedMonthlyPayment(dec("5000"), 12, 12)
	require.NoError(t, err)
	assert.InDelta(t, 444.24, payment.InexactFloat64(), 0.01)
}

func TestFixedMonthlyPayment_InvalidInput(t *testing.T) {
	_, err := FixedMonthlyPayment(dec("1000"), 12, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FixedMonthlyPayment(dec("0"), 12, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = FixedMonthlyPayment(dec("1000"), -1, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSimulate(t *testing.T) {
	result, err := Simulate(dec("5000"), 12, 12)
	require.NoError(t, err)

	assert.True(t, result.MonthlyPayment.Equal(dec("444.24")))
	assert.True(t, result.TotalPayment.Equal(dec("5330.88")))
	assert.True(t, result.TotalInterest.Equal(dec("330.88")))
}

func TestSchedule_RowCountAndResidual(t *testing.T) {
	rows, err := Schedule(dec("1200"), dec("120"), 12, 12)
	require.NoError(t, err)

	// ceil(1200/120) = 10 <= 12, so exactly 10 rows.
	require.Len(t, rows, 10)

	// First row: interest accrues on the full balance at 1% monthly.
	assert.InDelta(t, 12.00, rows[0].Interest.InexactFloat64(), 0.001)
	assert.InDelta(t, 108.00, rows[0].Principal.InexactFloat64(), 0.001)

	for i := 1; i < len(rows); i++ {
		assert.Equal(t, i+1, rows[i].Month)
		assert.True(t, rows[i].Balance.LessThan(rows[i-1].Balance), "balance decreases every month")
	}

	// Ten payments of 120 do not fully amortize 1200 at 12%: the
	// row-count rule ignores interest, so a residual remains.
	assert.InDelta(t, 70.08, rows[9].Balance.InexactFloat64(), 0.01)
}

func TestSchedule_ZeroRateReachesZero(t *testing.T) {
	rows, err := Schedule(dec("1200"), dec("120"), 0, 12)
	require.NoError(t, err)

	require.Len(t, rows, 10)
	for _, r := range rows {
		assert.True(t, r.Interest.IsZero())
		assert.True(t, r.Principal.Equal(dec("120")))
	}
	assert.True(t, rows[9].Balance.IsZero(), "zero-rate schedule ends exactly at zero")
}

func TestSchedule_CappedByMaxMonths(t *testing.T) {
	rows, err := Schedule(dec("1200"), dec("120"), 12, 6)
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

func TestSchedule_PaymentBelowInterest(t *testing.T) {
	// 1% monthly on 10000 is 100; a 50 payment doesn't cover it, so
	// the principal portion goes negative and the balance grows.
	rows, err := Schedule(dec("10000"), dec("50"), 12, 3)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.True(t, rows[0].Principal.IsNegative())
	assert.True(t, rows[0].Balance.GreaterThan(dec("10000")))
	assert.True(t, rows[2].Balance.GreaterThan(rows[0].Balance))
}

func TestSchedule_SingleRowWhenBalanceBelowPayment(t *testing.T) {
	rows, err := Schedule(dec("100"), dec("120"), 0, 12)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSchedule_InvalidInput(t *testing.T) {
	_, err := Schedule(dec("1200"), dec("120"), 12, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Schedule(dec("1200"), dec("0"), 12, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Schedule(dec("0"), dec("120"), 12, 12)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"8542.75", "$8,542.75"},
		{"100", "$100.00"},
		{"0", "$0.00"},
		{"-250", "$-250.00"},
		{"1234567.5", "$1,234,567.50"},
		{"-1234.56", "$-1,234.56"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Currency(decimal.RequireFromString(c.in)), "Currency(%s)", c.in)
	}
}

func TestAccountNumber(t *testing.T) {
	assert.Equal(t, "2200 1234 56", AccountNumber("2200123456"))
	assert.Equal(t, "2200", AccountNumber("2200"))
	assert.Equal(t, "", AccountNumber(""))
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "**** **** **** 1234", MaskCard("4539 1488 0343 1234"))
	assert.Equal(t, "**** **** **** 5678", MaskCard("5412751234125678"))
}

func TestDates(t *testing.T) {
	d := time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "5 de diciembre de 2025", LongDate(d))
	assert.Equal(t, "5 dic", ShortDate(d))

	d = time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15 de enero de 2026", LongDate(d))
	assert.Equal(t, "15 ene", ShortDate(d))
}

// Package format renders amounts, dates, and account numbers the way
// the presentation layer displays them.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Currency renders an amount as "$8,542.75" with thousands separators.
// The sign stays with the digits ("$-250.00"), matching the display
// convention of the transaction history.
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")

	intPart := digits[:len(digits)-3]
	fracPart := digits[len(digits)-3:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "$-" + b.String() + fracPart
	}
	return "$" + b.String() + fracPart
}

// AccountNumber groups digits in blocks of four: "2200 1234 56".
func AccountNumber(number string) string {
	var b strings.Builder
	for i, r := range number {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MaskCard hides all but the last four digits of a card number.
func MaskCard(cardNumber string) string {
	cleaned := strings.ReplaceAll(cardNumber, " ", "")
	if len(cleaned) < 4 {
		return "**** **** **** " + cleaned
	}
	return "**** **** **** " + cleaned[len(cleaned)-4:]
}

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate renders a date as "5 de diciembre de 2025".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthNames[t.Month()-1], t.Year())
}

// ShortDate renders a date as "5 dic".
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), monthNames[t.Month()-1][:3])
}

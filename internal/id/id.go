// Package id generates transaction identifiers and the human-readable
// receipt references printed on confirmations.
package id

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const refDateFormat = "20060102"

// NewTransactionID returns a globally unique transaction ID.
func NewTransactionID() string {
	return uuid.NewString()
}

// Reference derives the receipt number shown to the customer, like
// "TRX-20251205-9F86D0": the transaction date plus a short prefix of
// the transaction ID.
func Reference(txnID string, date time.Time) string {
	short := txnID
	if i := strings.IndexByte(short, '-'); i > 0 {
		short = short[:i]
	}
	if len(short) > 6 {
		short = short[:6]
	}
	return fmt.Sprintf("TRX-%s-%s", date.Format(refDateFormat), strings.ToUpper(short))
}

// ParseReference parses a receipt reference back into its date and
// short transaction-ID prefix.
func ParseReference(ref string) (date time.Time, short string, err error) {
	parts := strings.SplitN(ref, "-", 3)
	if len(parts) != 3 || parts[0] != "TRX" {
		return time.Time{}, "", fmt.Errorf("invalid reference format: %q", ref)
	}

	date, err = time.Parse(refDateFormat, parts[1])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid date in reference %q: %w", ref, err)
	}

	if parts[2] == "" {
		return time.Time{}, "", fmt.Errorf("empty transaction prefix in reference %q", ref)
	}
	return date, parts[2], nil
}

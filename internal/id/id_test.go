package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransactionID(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestReference(t *testing.T) {
	date := time.Date(2025, 12, 5, 14, 0, 0, 0, time.UTC)

	ref := Reference("9f86d0ab-1c2d-4e5f-8a9b-0c1d2e3f4a5b", date)
	assert.Equal(t, "TRX-20251205-9F86D0", ref)
}

func TestParseReference(t *testing.T) {
	date, short, err := ParseReference("TRX-20251205-9F86D0")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC), date)
	assert.Equal(t, "9F86D0", short)
}

func TestParseReference_Invalid(t *testing.T) {
	for _, ref := range []string{"", "TRX-20251205", "RCP-20251205-ABCDEF", "TRX-notadate-ABCDEF", "TRX-20251205-"} {
		_, _, err := ParseReference(ref)
		assert.Error(t, err, "ref %q", ref)
	}
}

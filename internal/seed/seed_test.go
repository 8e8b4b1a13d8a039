package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andino-dev/andino/internal/model"
)

func TestSession(t *testing.T) {
	data := Session()

	assert.Equal(t, "Carlos Andrés Méndez", data.User.Name)
	require.Len(t, data.Accounts, 3)
	require.Len(t, data.Transactions, 10)
	require.Len(t, data.Loans, 2)
	require.Len(t, data.Cards, 2)
}

func TestSession_AccountNumbersUnique(t *testing.T) {
	data := Session()

	seen := make(map[string]bool)
	for _, a := range data.Accounts {
		assert.False(t, seen[a.AccountNumber], "duplicate account number %s", a.AccountNumber)
		seen[a.AccountNumber] = true
		assert.Equal(t, "USD", a.Currency)
		assert.False(t, a.Balance.IsNegative())
	}
}

func TestSession_HistoryMostRecentFirst(t *testing.T) {
	data := Session()

	for i := 1; i < len(data.Transactions); i++ {
		prev, cur := data.Transactions[i-1], data.Transactions[i]
		assert.False(t, cur.Date.After(prev.Date), "history out of order at index %d", i)
	}
}

func TestSession_SignConvention(t *testing.T) {
	data := Session()

	for _, txn := range data.Transactions {
		switch txn.Type {
		case model.TransactionDeposit:
			assert.False(t, txn.Outflow(), "deposits are inflows: %s", txn.Description)
		default:
			assert.True(t, txn.Outflow(), "non-deposits in the seed are outflows: %s", txn.Description)
		}
	}
}

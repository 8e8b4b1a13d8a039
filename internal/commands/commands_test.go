package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andino-dev/andino/internal/config"
)

// fastProfile writes a profile with a near-zero login delay so command
// tests don't wait out the simulated network round-trip.
func fastProfile(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "andino.yaml")
	cfg := &config.Config{Login: config.LoginConfig{DelayMillis: 1}}
	require.NoError(t, config.Save(path, cfg))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func sessionArgs(profile string, args ...string) []string {
	return append(args, "--email", "carlos.mendez@email.com", "--password", "secreto", "--profile", profile)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "andino.yaml")

	cfg, err := config.Load(filepath.Join(dir, "andino.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.Accounts, 3)
}

func TestAccountsCommand(t *testing.T) {
	out, err := run(t, sessionArgs(fastProfile(t), "accounts")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Carlos Andrés Méndez")
	assert.Contains(t, out, "2200 1234 56")
	assert.Contains(t, out, "$8,542.75")
}

func TestAccountsCommand_MissingCredentials(t *testing.T) {
	profile := fastProfile(t)

	_, err := run(t, "accounts", "--email", "", "--password", "", "--profile", profile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestDepositCommand(t *testing.T) {
	out, err := run(t, sessionArgs(fastProfile(t),
		"deposit", "--account", "2200123456", "--amount", "100", "--method", "cash")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Depósito en efectivo")
	assert.Contains(t, out, "Saldo disponible: $8,642.75")
	assert.Contains(t, out, "Referencia: TRX-")
}

func TestTransferCommand_InsufficientFunds(t *testing.T) {
	_, err := run(t, sessionArgs(fastProfile(t),
		"transfer", "--from", "2200123456", "--to", "2200987654",
		"--amount", "99999", "--description", "demasiado")...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestLoanSimulateCommand(t *testing.T) {
	out, err := run(t, "loan", "simulate", "--amount", "5000", "--rate", "12", "--months", "12")
	require.NoError(t, err)

	assert.Contains(t, out, "Cuota mensual:  $444.24")
	assert.Contains(t, out, "Total a pagar:  $5,330.88")
	assert.Contains(t, out, "Total interés:  $330.88")
}

func TestLoanScheduleCommand(t *testing.T) {
	out, err := run(t, sessionArgs(fastProfile(t),
		"loan", "schedule", "--loan", "1", "--months", "3")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Vehicular")
	assert.Contains(t, out, "  1  ")
	assert.Contains(t, out, "  3  ")
}

func TestExportCommand(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "statement.csv")

	out, err := run(t, sessionArgs(fastProfile(t), "export", "--out", outFile)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 10 transactions")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Transferencia a María López")
}

func TestProfileOverridesAccounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "andino.yaml")
	cfg := &config.Config{
		Customer: config.CustomerConfig{Name: "Lucía Paredes"},
		Login:    config.LoginConfig{DelayMillis: 1},
		Accounts: []config.AccountConfig{
			{Number: "2209999999", Type: "Ahorros", OpeningBalance: "42.00"},
		},
	}
	require.NoError(t, config.Save(path, cfg))

	out, err := run(t, sessionArgs(path, "accounts")...)
	require.NoError(t, err)

	assert.Contains(t, out, "Lucía Paredes")
	assert.Contains(t, out, "2209 9999 99")
	assert.Contains(t, out, "$42.00")
	assert.NotContains(t, out, "2200 1234 56", "profile accounts replace the seed set")
}

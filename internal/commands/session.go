package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/andino-dev/andino/internal/auth"
	"github.com/andino-dev/andino/internal/config"
	"github.com/andino-dev/andino/internal/format"
	"github.com/andino-dev/andino/internal/id"
	"github.com/andino-dev/andino/internal/ledger"
	"github.com/andino-dev/andino/internal/model"
	"github.com/andino-dev/andino/internal/seed"
)

// sessionOptions carries the credential and profile flags shared by
// every command that opens a session. Defaults come from the
// environment (loaded from .env by main).
type sessionOptions struct {
	email    string
	password string
	profile  string
}

func (o *sessionOptions) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&o.email, "email", os.Getenv("ANDINO_EMAIL"), "login email")
	cmd.PersistentFlags().StringVar(&o.password, "password", os.Getenv("ANDINO_PASSWORD"), "login password")
	cmd.PersistentFlags().StringVar(&o.profile, "profile", os.Getenv("ANDINO_PROFILE"), "session profile YAML (optional)")
}

// session is one authenticated banking session.
type session struct {
	user  model.User
	store *ledger.Store
}

func openSession(ctx context.Context, opts *sessionOptions) (*session, error) {
	data := seed.Session()
	authn := auth.New()

	if opts.profile != "" {
		cfg, err := config.Load(opts.profile)
		if err != nil {
			return nil, err
		}
		if err := applyProfile(&data, cfg); err != nil {
			return nil, err
		}
		if cfg.Login.DelayMillis > 0 {
			authn.Delay = time.Duration(cfg.Login.DelayMillis) * time.Millisecond
		}
	}

	if err := authn.Authenticate(ctx, opts.email, opts.password); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return &session{
		user:  data.User,
		store: ledger.New(data.Accounts, data.Transactions, data.Loans, data.Cards),
	}, nil
}

// applyProfile overlays the profile onto the seed dataset. Overriding
// the accounts drops the built-in history, which references the seed
// account numbers.
func applyProfile(data *seed.Data, cfg *config.Config) error {
	if cfg.Customer.Name != "" {
		data.User.Name = cfg.Customer.Name
	}
	if cfg.Customer.Email != "" {
		data.User.Email = cfg.Customer.Email
	}
	if cfg.Customer.Cedula != "" {
		data.User.Cedula = cfg.Customer.Cedula
	}
	if cfg.Customer.Phone != "" {
		data.User.Phone = cfg.Customer.Phone
	}

	if len(cfg.Accounts) > 0 {
		accounts := make([]model.Account, 0, len(cfg.Accounts))
		for i, ac := range cfg.Accounts {
			a, err := ac.Account(strconv.Itoa(i + 1))
			if err != nil {
				return err
			}
			accounts = append(accounts, a)
		}
		data.Accounts = accounts
		data.Transactions = nil
	}
	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return amount, nil
}

func printReceipt(w io.Writer, txn model.Transaction, balance decimal.Decimal) {
	fmt.Fprintf(w, "Referencia: %s\n", id.Reference(txn.ID, txn.Date))
	fmt.Fprintf(w, "%s  %s\n", txn.Type, format.Currency(txn.Amount))
	fmt.Fprintf(w, "%s\n", txn.Description)
	fmt.Fprintf(w, "Saldo disponible: %s\n", format.Currency(balance))
}

// Package config reads the optional andino.yaml session profile. A
// profile overrides the built-in demo customer and opening balances;
// without one the CLI falls back to the seed dataset.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/andino-dev/andino/internal/model"
)

// Config represents the top-level andino.yaml profile.
type Config struct {
	Customer CustomerConfig  `yaml:"customer"`
	Login    LoginConfig     `yaml:"login"`
	Accounts []AccountConfig `yaml:"accounts,omitempty"`
}

// CustomerConfig identifies the session's customer.
type CustomerConfig struct {
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Cedula string `yaml:"cedula"`
	Phone  string `yaml:"phone"`
}

// LoginConfig controls the simulated login behavior.
type LoginConfig struct {
	DelayMillis int `yaml:"delay_millis"`
}

// AccountConfig declares one deposit account and its opening balance.
type AccountConfig struct {
	Number         string `yaml:"number"`
	Type           string `yaml:"type"` // "Ahorros" or "Corriente"
	OpeningBalance string `yaml:"opening_balance"`
}

// Account converts the declaration to a domain account with the given
// session-local ID.
func (a AccountConfig) Account(id string) (model.Account, error) {
	balance, err := decimal.NewFromString(a.OpeningBalance)
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing opening balance for %s: %w", a.Number, err)
	}
	return model.Account{
		ID:            id,
		AccountNumber: a.Number,
		AccountType:   model.AccountType(a.Type),
		Balance:       balance,
		Currency:      "USD",
	}, nil
}

// Load reads an andino.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// Default returns a profile mirroring the built-in demo dataset.
func Default() *Config {
	return &Config{
		Customer: CustomerConfig{
			Name:   "Carlos Andrés Méndez",
			Email:  "carlos.mendez@email.com",
			Cedula: "1723456789",
			Phone:  "+593 99 234 5678",
		},
		Login: LoginConfig{
			DelayMillis: 800,
		},
		Accounts: []AccountConfig{
			{Number: "2200123456", Type: "Ahorros", OpeningBalance: "8542.75"},
			{Number: "2200654321", Type: "Corriente", OpeningBalance: "12350.25"},
			{Number: "2200789012", Type: "Ahorros", OpeningBalance: "3200.00"},
		},
	}
}

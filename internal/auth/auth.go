// Package auth is the mock credential check guarding a session. There
// is no backend: any non-empty email/password pair succeeds after a
// simulated network round-trip.
package auth

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidCredentials means the email or password was empty.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultDelay approximates the network latency of a real login.
const DefaultDelay = 800 * time.Millisecond

// Authenticator validates demo credentials.
type Authenticator struct {
	Delay time.Duration
}

// New returns an Authenticator with the default simulated delay.
func New() *Authenticator {
	return &Authenticator{Delay: DefaultDelay}
}

// Authenticate checks the credentials, waiting out the simulated delay
// unless ctx is cancelled first. No retries, no timeout beyond ctx.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(a.Delay):
	}
	return nil
}

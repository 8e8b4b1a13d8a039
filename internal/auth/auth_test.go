package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	a := &Authenticator{Delay: time.Millisecond}

	err := a.Authenticate(context.Background(), "carlos.mendez@email.com", "secreto")
	require.NoError(t, err)
}

func TestAuthenticate_EmptyCredentials(t *testing.T) {
	a := &Authenticator{Delay: time.Millisecond}

	assert.ErrorIs(t, a.Authenticate(context.Background(), "", "secreto"), ErrInvalidCredentials)
	assert.ErrorIs(t, a.Authenticate(context.Background(), "carlos.mendez@email.com", ""), ErrInvalidCredentials)
}

func TestAuthenticate_ContextCancelled(t *testing.T) {
	a := &Authenticator{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Authenticate(ctx, "carlos.mendez@email.com", "secreto")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New().Delay)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
	"github.com/rakibul/unibus/internal/pkg/oauth"
)

func TestGoogleAuthURLWithoutProvider(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, nil)

	_, err := svc.GoogleAuthURL(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrOAuthProviderMisconfigured)
}

func TestGoogleSignInWithoutProvider(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, nil)

	_, err := svc.GoogleSignIn(context.Background(), dto.OAuthSignInRequest{Code: "code"})
	assert.ErrorIs(t, err, apperrors.ErrOAuthProviderMisconfigured)
}

func TestGoogleAuthURLIssuesUniqueStates(t *testing.T) {
	provider := oauth.NewGoogleProvider(oauth.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/callback",
	})
	svc := NewAuthService(nil, nil, nil, provider)

	first, err := svc.GoogleAuthURL(context.Background())
	require.NoError(t, err)
	second, err := svc.GoogleAuthURL(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, first.State)
	assert.NotEqual(t, first.State, second.State)
	assert.Contains(t, first.URL, "state="+first.State)
}

func TestConsumeStateSingleUse(t *testing.T) {
	provider := oauth.NewGoogleProvider(oauth.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:3000/callback",
	})
	svc := NewAuthService(nil, nil, nil, provider).(*authServiceImpl)

	resp, err := svc.GoogleAuthURL(context.Background())
	require.NoError(t, err)

	assert.NoError(t, svc.consumeState(resp.State))

	// Reuse is rejected
	assert.ErrorIs(t, svc.consumeState(resp.State), apperrors.ErrOAuthStateMismatch)
}

func TestConsumeStateUnknownAndExpired(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, nil).(*authServiceImpl)

	assert.ErrorIs(t, svc.consumeState("never-issued"), apperrors.ErrOAuthStateMismatch)

	svc.mu.Lock()
	svc.states["stale"] = time.Now().Add(-time.Minute)
	svc.mu.Unlock()

	assert.ErrorIs(t, svc.consumeState("stale"), apperrors.ErrOAuthStateMismatch)
}

func TestConsumeStateEmptyIsAccepted(t *testing.T) {
	// Clients that skip the URL endpoint send no state at all
	svc := NewAuthService(nil, nil, nil, nil).(*authServiceImpl)

	assert.NoError(t, svc.consumeState(""))
}

package oauth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

func TestClassifyProviderErrorNil(t *testing.T) {
	assert.NoError(t, ClassifyProviderError(nil))
}

func TestClassifyProviderErrorMisconfiguration(t *testing.T) {
	cases := []string{
		"oauth2: \"invalid_client\" \"Unauthorized\"",
		"Error 400: redirect_uri_mismatch",
		"provider is not enabled for this project",
		"Unsupported provider: google",
		"oauth2: \"unauthorized_client\"",
		"access blocked: admin_policy_enforced",
		"403 org_internal: this client is restricted",
		"403 disallowed_useragent",
	}

	for _, msg := range cases {
		err := ClassifyProviderError(errors.New(msg))
		assert.ErrorIs(t, err, apperrors.ErrOAuthProviderMisconfigured, "message: %s", msg)
		assert.NotErrorIs(t, err, apperrors.ErrOAuthExchangeFailed, "message: %s", msg)
	}
}

func TestClassifyProviderErrorMarkerIsCaseInsensitive(t *testing.T) {
	err := ClassifyProviderError(errors.New("OAuth2: INVALID_CLIENT"))
	assert.ErrorIs(t, err, apperrors.ErrOAuthProviderMisconfigured)
}

func TestClassifyProviderErrorPlainFailure(t *testing.T) {
	cases := []string{
		"oauth2: \"invalid_grant\" \"Bad Request\"",
		"context deadline exceeded",
		"connection refused",
		"userinfo request failed with status 500",
	}

	for _, msg := range cases {
		err := ClassifyProviderError(errors.New(msg))
		assert.ErrorIs(t, err, apperrors.ErrOAuthExchangeFailed, "message: %s", msg)
		assert.NotErrorIs(t, err, apperrors.ErrOAuthProviderMisconfigured, "message: %s", msg)
	}
}

func TestClassifyProviderErrorKeepsOriginalMessage(t *testing.T) {
	orig := fmt.Errorf("oauth2: cannot fetch token: 401")
	err := ClassifyProviderError(orig)

	assert.Contains(t, err.Error(), "cannot fetch token")
}

package oauth

import (
	"fmt"
	"strings"

	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

// Substrings seen in provider error bodies when the OAuth application
// itself is not set up correctly. Matching on message text is admittedly
// fragile; the provider does not expose a stable machine-readable code
// for these cases.
var misconfigurationMarkers = []string{
	"provider is not enabled",
	"unsupported provider",
	"redirect_uri_mismatch",
	"invalid_client",
	"unauthorized_client",
	"admin_policy_enforced",
	"org_internal",
	"disallowed_useragent",
}

// ClassifyProviderError sorts a provider failure into one of two classes:
// a misconfigured/not-enabled provider (actionable by the operator) or a
// plain exchange failure (bad code, network, expired grant). The original
// error is wrapped so callers can still inspect it.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range misconfigurationMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", apperrors.ErrOAuthProviderMisconfigured, err)
		}
	}

	return fmt.Errorf("%w: %v", apperrors.ErrOAuthExchangeFailed, err)
}

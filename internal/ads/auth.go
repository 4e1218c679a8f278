package ads

import (
	"context"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jacsander/google-ads-mcp-server/internal/errors"
)

// AdsScope is the OAuth scope covering all Google Ads API access.
const AdsScope = "https://www.googleapis.com/auth/adwords"

// Credentials holds the OAuth material used to authorize API calls. The
// fields mirror the GOOGLE_ADS_CLIENT_ID / GOOGLE_ADS_CLIENT_SECRET /
// GOOGLE_ADS_REFRESH_TOKEN settings; an incomplete triple falls back to
// Application Default Credentials.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// HasRefreshToken reports whether the explicit refresh-token triple is
// complete.
func (c Credentials) HasRefreshToken() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// OAuthConfig returns the oauth2 client configuration for the Google
// endpoint with the Ads scope.
func (c Credentials) OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{AdsScope},
	}
}

// TokenSource builds the token source backing API calls. The explicit
// refresh-token triple wins; otherwise Application Default Credentials are
// used, which covers service identities on Cloud Run and GCE.
func (c Credentials) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if c.HasRefreshToken() {
		conf := c.OAuthConfig()
		return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken}), nil
	}
	ts, err := google.DefaultTokenSource(ctx, AdsScope)
	if err != nil {
		return nil, errors.CredentialsMissing(err)
	}
	return ts, nil
}

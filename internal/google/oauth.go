package google

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// Config holds the OAuth client credentials for the calendar service.
// All values are supplied out-of-band (environment or config file); this
// package never persists anything itself.
type Config struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURI  string `mapstructure:"redirect_uri"`

	// RefreshToken is the long-lived credential. When set, TokenSource can
	// mint short-lived access tokens without user interaction.
	RefreshToken string `mapstructure:"refresh_token"`
}

// oauthConfig builds the oauth2 configuration for all calendar requests.
func (c Config) oauthConfig() *oauth2.Config {
	redirect := c.RedirectURI
	if redirect == "" {
		redirect = "urn:ietf:wg:oauth:2.0:oob"
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  redirect,
		Scopes:       Scopes(),
	}
}

// AuthURL returns the URL the user visits to authorize calendar access.
// offline access is requested so the exchange yields a refresh token.
func (c Config) AuthURL() string {
	return c.oauthConfig().AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for a token pair. The returned
// token carries both the short-lived access token and the long-lived
// refresh token the caller should persist.
func (c Config) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange auth code: %w", err)
	}
	return token, nil
}

// TokenSource returns a caching token source backed by the held refresh
// token. The first API call exchanges the refresh token for an access
// token; subsequent calls reuse it until Google reports it expired.
// There is no proactive expiry tracking beyond what oauth2 provides.
func (c Config) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if c.RefreshToken == "" {
		return nil, fmt.Errorf("no Google refresh token configured; run get_google_auth_url and set_google_auth_code first")
	}

	seed := &oauth2.Token{
		RefreshToken: c.RefreshToken,
		Expiry:       time.Unix(1, 0), // force an immediate refresh
	}
	return c.oauthConfig().TokenSource(ctx, seed), nil
}

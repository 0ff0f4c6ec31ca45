package github

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

// refreshMargin is how long before expiry a cached token is replaced
const refreshMargin = time.Minute

// Token is an access token and its expiry. Zero ExpiresAt never expires.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenFetcher obtains a fresh token
type TokenFetcher func(ctx context.Context) (*Token, error)

// Credential hands out a cached GitHub access token. The token is fetched on
// first use and again once it is about to expire. Safe for concurrent use.
type Credential struct {
	fetch TokenFetcher
	now   func() time.Time

	mu     sync.Mutex
	cached *Token
}

// CredentialOption configures Credential
type CredentialOption func(*Credential)

// WithClock replaces the clock used for expiry checks
func WithClock(now func() time.Time) CredentialOption {
	return func(c *Credential) {
		c.now = now
	}
}

// NewCredential creates a Credential backed by fetch
func NewCredential(fetch TokenFetcher, opts ...CredentialOption) *Credential {
	c := &Credential{
		fetch: fetch,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns a valid access token, fetching one if needed
func (c *Credential) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil && (c.cached.ExpiresAt.IsZero() || c.now().Add(refreshMargin).Before(c.cached.ExpiresAt)) {
		return c.cached.Value, nil
	}

	token, err := c.fetch(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch GitHub access token")
	}
	if token == nil || token.Value == "" {
		return "", goerr.New("empty GitHub access token")
	}

	ctxlog.From(ctx).Debug("GitHub access token refreshed", "expires_at", token.ExpiresAt)
	c.cached = token
	return token.Value, nil
}

// StaticToken returns a fetcher for a fixed token such as a PAT or the
// GITHUB_TOKEN of an Actions job
func StaticToken(value string) TokenFetcher {
	return func(ctx context.Context) (*Token, error) {
		return &Token{Value: value}, nil
	}
}

// InstallationToken returns a fetcher that exchanges a GitHub App JWT for an
// installation access token
func InstallationToken(appID, installationID int64, privateKey []byte, opts ...ClientOption) (TokenFetcher, error) {
	cfg := newClientConfig(opts...)

	atr, err := ghinstallation.NewAppsTransport(cfg.baseTransport(), appID, privateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("app_id", appID))
	}

	apps := github.NewClient(&http.Client{Transport: atr})
	if cfg.baseURL != nil {
		apps.BaseURL = cfg.baseURL
	}

	return func(ctx context.Context) (*Token, error) {
		token, _, err := apps.Apps.CreateInstallationToken(ctx, installationID, nil)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create installation token",
				goerr.V("app_id", appID),
				goerr.V("installation_id", installationID),
			)
		}
		return &Token{
			Value:     token.GetToken(),
			ExpiresAt: token.GetExpiresAt().Time,
		}, nil
	}, nil
}

// tokenSource adapts Credential to oauth2.TokenSource
type tokenSource struct {
	ctx  context.Context
	cred *Credential
}

func (x *tokenSource) Token() (*oauth2.Token, error) {
	v, err := x.cred.Token(x.ctx)
	if err != nil {
		return nil, err
	}
	return &oauth2.Token{AccessToken: v, TokenType: "Bearer"}, nil
}

package config

import (
	"context"
	"net/url"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	githubinfra "github.com/m-mizutani/shipnote/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub configuration. Either a GitHub App installation or a
// plain token authenticates API calls.
type GitHub struct {
	AppID          int64
	InstallationID int64
	PrivateKey     string `masq:"secret"`
	PrivateKeyFile string
	Token          string `masq:"secret"`
	WebhookSecret  string `masq:"secret"`
	BaseURL        string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-private-key-file",
			Usage:       "Path to the GitHub App private key",
			Destination: &c.PrivateKeyFile,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_PRIVATE_KEY_FILE"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token used instead of App authentication",
			Destination: &c.Token,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-webhook-secret",
			Usage:       "GitHub webhook secret",
			Destination: &c.WebhookSecret,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_WEBHOOK_SECRET"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise Server",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("SHIPNOTE_GITHUB_BASE_URL"),
		},
	}
}

// ClientOptions returns options for the GitHub client and token fetcher
func (c *GitHub) ClientOptions() ([]githubinfra.ClientOption, error) {
	if c.BaseURL == "" {
		return nil, nil
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub base URL", goerr.V("url", c.BaseURL))
	}
	return []githubinfra.ClientOption{githubinfra.WithBaseURL(u)}, nil
}

func (c *GitHub) privateKey() ([]byte, error) {
	if c.PrivateKey != "" {
		return []byte(c.PrivateKey), nil
	}
	if c.PrivateKeyFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.PrivateKeyFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", c.PrivateKeyFile))
	}
	return data, nil
}

// Credential builds the token source. A static token wins over App
// authentication.
func (c *GitHub) Credential() (*githubinfra.Credential, error) {
	if c.Token != "" {
		return githubinfra.NewCredential(githubinfra.StaticToken(c.Token)), nil
	}

	key, err := c.privateKey()
	if err != nil {
		return nil, err
	}
	if c.AppID == 0 || c.InstallationID == 0 || len(key) == 0 {
		return nil, goerr.New("GitHub credential is not configured: set a token or app ID, installation ID and private key")
	}

	opts, err := c.ClientOptions()
	if err != nil {
		return nil, err
	}
	fetch, err := githubinfra.InstallationToken(c.AppID, c.InstallationID, key, opts...)
	if err != nil {
		return nil, err
	}
	return githubinfra.NewCredential(fetch), nil
}

// NewClient builds the GitHub API client and the credential behind it
func (c *GitHub) NewClient(ctx context.Context) (interfaces.GitHubClient, *githubinfra.Credential, error) {
	cred, err := c.Credential()
	if err != nil {
		return nil, nil, err
	}
	opts, err := c.ClientOptions()
	if err != nil {
		return nil, nil, err
	}
	return githubinfra.NewClient(ctx, cred, opts...), cred, nil
}

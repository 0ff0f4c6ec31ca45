package config

import (
	"github.com/m-mizutani/shipnote/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds notification configuration
type Slack struct {
	WebhookURL  string `masq:"secret"`
	JiraBaseURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL. Notifications are logged when empty",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("SHIPNOTE_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "jira-base-url",
			Usage:       "Jira base URL used to link issue keys, e.g. https://example.atlassian.net",
			Destination: &c.JiraBaseURL,
			Sources:     cli.EnvVars("SHIPNOTE_JIRA_BASE_URL"),
		},
	}
}

// Notifier builds the Slack notifier
func (c *Slack) Notifier() *slack.Notifier {
	var opts []slack.Option
	if c.JiraBaseURL != "" {
		opts = append(opts, slack.WithJiraBaseURL(c.JiraBaseURL))
	}
	return slack.New(c.WebhookURL, opts...)
}

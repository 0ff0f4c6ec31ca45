package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/pathspec"
	"github.com/slack-go/slack"
)

const (
	maxListedFiles    = 10
	maxListedMessages = 20
)

// Notifier posts release deltas to a Slack incoming webhook. Without a
// webhook URL the message is written to the log.
type Notifier struct {
	webhookURL  string
	jiraBaseURL string
	httpClient  *http.Client
}

var _ interfaces.Notifier = (*Notifier)(nil)

// Option configures Notifier
type Option func(*Notifier)

// WithJiraBaseURL renders Jira keys as links below baseURL
func WithJiraBaseURL(baseURL string) Option {
	return func(n *Notifier) {
		n.jiraBaseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces http.DefaultClient
func WithHTTPClient(client *http.Client) Option {
	return func(n *Notifier) {
		n.httpClient = client
	}
}

// New creates a Notifier
func New(webhookURL string, opts ...Option) *Notifier {
	n := &Notifier{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify sends delta to Slack
func (x *Notifier) Notify(ctx context.Context, delta *model.ReleaseDelta) error {
	if delta.Range == nil || delta.Run == nil {
		return goerr.New("release delta is not resolved")
	}

	msg := x.buildMessage(ctx, delta)

	if x.webhookURL == "" {
		ctxlog.From(ctx).Info("Release delta", "app", delta.AppName, "message", msg.Text)
		return nil
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, x.webhookURL, x.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack message", goerr.V("run_id", delta.Run.ID))
	}
	return nil
}

func (x *Notifier) buildMessage(ctx context.Context, delta *model.ReleaseDelta) *slack.WebhookMessage {
	files := pathspec.ParseDocument(delta.Range.Diff).Paths()
	stat, err := pathspec.Stat(delta.Range.Diff)
	if err != nil {
		ctxlog.From(ctx).Warn("failed to read diff statistics", "error", err)
		stat = &pathspec.DiffStat{Files: len(files)}
	}

	title := fmt.Sprintf("%s released", delta.AppName)
	if delta.Summary != nil && delta.Summary.Title != "" {
		title = fmt.Sprintf("%s released: %s", delta.AppName, delta.Summary.Title)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "*%s*\n", title)
	fmt.Fprintf(&text, "%s\n", x.rangeLine(delta))
	fmt.Fprintf(&text, "%d files changed, +%d -%d (%s backend)\n", stat.Files, stat.Added, stat.Deleted, delta.Range.Backend)

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
		markdownSection(x.rangeLine(delta) + "\n" + runLine(delta)),
		slack.NewContextBlock("stat", slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("%d files changed, +%d -%d · %s backend", stat.Files, stat.Added, stat.Deleted, delta.Range.Backend),
			false, false)),
	}

	if delta.Summary != nil && len(delta.Summary.Categories) > 0 {
		var b strings.Builder
		for _, c := range delta.Summary.Categories {
			fmt.Fprintf(&b, "*%s*\n", c.Name)
			for _, item := range c.Items {
				fmt.Fprintf(&b, "• %s\n", item)
			}
		}
		blocks = append(blocks, slack.NewDividerBlock(), markdownSection(b.String()))
		text.WriteString(b.String())
	} else if msgs := firstLines(delta.Range.CommitMessages, maxListedMessages); len(msgs) > 0 {
		body := "*Commits*\n" + bullets(msgs)
		blocks = append(blocks, slack.NewDividerBlock(), markdownSection(body))
		text.WriteString(body)
	}

	if len(delta.PullRequests) > 0 {
		lines := make([]string, len(delta.PullRequests))
		for i, pr := range delta.PullRequests {
			lines[i] = pullRequestLine(pr)
		}
		body := "*Pull requests*\n" + bullets(lines)
		blocks = append(blocks, markdownSection(body))
		text.WriteString(body)
	}

	if len(delta.JiraKeys) > 0 {
		keys := make([]string, len(delta.JiraKeys))
		for i, key := range delta.JiraKeys {
			keys[i] = x.jiraLink(key)
		}
		body := "*Issues* " + strings.Join(keys, ", ")
		blocks = append(blocks, markdownSection(body))
		text.WriteString(body + "\n")
	}

	if len(files) > 0 {
		listed := files
		if len(listed) > maxListedFiles {
			listed = listed[:maxListedFiles]
		}
		body := "*Files*\n" + bullets(quote(listed))
		if rest := len(files) - len(listed); rest > 0 {
			body += fmt.Sprintf("and %d more\n", rest)
		}
		blocks = append(blocks, markdownSection(body))
	}

	return &slack.WebhookMessage{
		Text:   text.String(),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

func (x *Notifier) rangeLine(delta *model.ReleaseDelta) string {
	label := fmt.Sprintf("%s...%s", shortSHA(delta.Range.From), shortSHA(delta.Range.To))
	if url := delta.CompareURL(); url != "" {
		return fmt.Sprintf("*Changes:* <%s|%s>", url, label)
	}
	return "*Changes:* " + label
}

func (x *Notifier) jiraLink(key string) string {
	if x.jiraBaseURL == "" {
		return key
	}
	return fmt.Sprintf("<%s/browse/%s|%s>", x.jiraBaseURL, key, key)
}

func runLine(delta *model.ReleaseDelta) string {
	line := fmt.Sprintf("*Run:* <%s|#%d> attempt %d", delta.Run.HTMLURL, delta.Run.ID, delta.Run.Attempt)
	if delta.PreviousRun != nil {
		line += fmt.Sprintf(", previous <%s|#%d>", delta.PreviousRun.HTMLURL, delta.PreviousRun.ID)
	}
	return line
}

func pullRequestLine(pr *model.PullRequest) string {
	line := fmt.Sprintf("<%s|#%d> %s", pr.HTMLURL, pr.Number, pr.Title)
	if pr.Author != "" {
		line += " by " + pr.Author
	}
	return line
}

func markdownSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

func bullets(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "• %s\n", l)
	}
	return b.String()
}

func quote(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = "`" + p + "`"
	}
	return out
}

func firstLines(msgs []string, limit int) []string {
	var lines []string
	for _, m := range msgs {
		if len(lines) >= limit {
			break
		}
		line, _, _ := strings.Cut(m, "\n")
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

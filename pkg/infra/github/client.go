package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
	"golang.org/x/oauth2"
)

const defaultPerPage = 100

type client struct {
	githubClient *github.Client
}

type clientConfig struct {
	baseURL   *url.URL
	transport http.RoundTripper
}

func newClientConfig(opts ...ClientOption) *clientConfig {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (x *clientConfig) baseTransport() http.RoundTripper {
	if x.transport != nil {
		return x.transport
	}
	return http.DefaultTransport
}

// ClientOption configures the GitHub client
type ClientOption func(*clientConfig)

// WithBaseURL points the client at another API endpoint, e.g. GitHub
// Enterprise Server or a test server
func WithBaseURL(u *url.URL) ClientOption {
	return func(c *clientConfig) {
		v := *u
		if !strings.HasSuffix(v.Path, "/") {
			v.Path += "/"
		}
		c.baseURL = &v
	}
}

// WithTransport replaces the underlying HTTP transport
func WithTransport(t http.RoundTripper) ClientOption {
	return func(c *clientConfig) {
		c.transport = t
	}
}

// NewClient creates a new GitHub client authenticated by cred
func NewClient(ctx context.Context, cred *Credential, opts ...ClientOption) interfaces.GitHubClient {
	cfg := newClientConfig(opts...)

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: &tokenSource{ctx: ctx, cred: cred},
			Base:   cfg.baseTransport(),
		},
	}

	githubClient := github.NewClient(httpClient)
	if cfg.baseURL != nil {
		githubClient.BaseURL = cfg.baseURL
	}

	return &client{
		githubClient: githubClient,
	}
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}

// GetRepository returns repository metadata
func (c *client) GetRepository(ctx context.Context, repo types.RepoID) (*model.Repository, error) {
	r, _, err := c.githubClient.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository", goerr.V("repo", repo.String()))
	}
	return ToRepository(r), nil
}

// GetWorkflowRun returns the latest attempt of a workflow run
func (c *client) GetWorkflowRun(ctx context.Context, repo types.RepoID, runID int64) (*model.Run, error) {
	run, _, err := c.githubClient.Actions.GetWorkflowRunByID(ctx, repo.Owner, repo.Name, runID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get workflow run", goerr.V("repo", repo.String()), goerr.V("run_id", runID))
	}
	return ToRun(run), nil
}

// GetWorkflowRunAttempt returns a specific attempt of a workflow run
func (c *client) GetWorkflowRunAttempt(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
	run, _, err := c.githubClient.Actions.GetWorkflowRunAttempt(ctx, repo.Owner, repo.Name, runID, attempt, nil)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get workflow run attempt",
			goerr.V("repo", repo.String()), goerr.V("run_id", runID), goerr.V("attempt", attempt))
	}
	return ToRun(run), nil
}

// ListWorkflowRuns returns one page of the run history, newest first
func (c *client) ListWorkflowRuns(ctx context.Context, repo types.RepoID, query *model.RunQuery, page int) ([]*model.Run, error) {
	opts := &github.ListWorkflowRunsOptions{
		Branch: query.Branch,
		Event:  query.Event,
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage(query.PerPage),
		},
	}
	if !query.CreatedBefore.IsZero() {
		opts.Created = "<" + query.CreatedBefore.UTC().Format(time.RFC3339)
	}

	runs, _, err := c.githubClient.Actions.ListRepositoryWorkflowRuns(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list workflow runs", goerr.V("repo", repo.String()), goerr.V("page", page))
	}

	result := make([]*model.Run, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		result = append(result, ToRun(run))
	}
	return result, nil
}

// CompareDiff returns the unified diff between two commits
func (c *client) CompareDiff(ctx context.Context, repo types.RepoID, base, head string) (string, error) {
	diff, _, err := c.githubClient.Repositories.CompareCommitsRaw(ctx, repo.Owner, repo.Name, base, head, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", goerr.Wrap(err, "failed to compare commits",
			goerr.V("repo", repo.String()), goerr.V("base", base), goerr.V("head", head))
	}
	return diff, nil
}

// ListCommits returns one page of commits, newest first
func (c *client) ListCommits(ctx context.Context, repo types.RepoID, query *model.CommitQuery, page int) ([]*model.Commit, error) {
	opts := &github.CommitsListOptions{
		Path:  query.Path,
		Since: query.Since,
		Until: query.Until,
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: perPage(query.PerPage),
		},
	}

	commits, _, err := c.githubClient.Repositories.ListCommits(ctx, repo.Owner, repo.Name, opts)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list commits",
			goerr.V("repo", repo.String()), goerr.V("path", query.Path), goerr.V("page", page))
	}

	result := make([]*model.Commit, 0, len(commits))
	for _, commit := range commits {
		result = append(result, ToCommit(commit))
	}
	return result, nil
}

// ListPullRequestFiles returns one page of file paths changed by a pull
// request. A renamed file contributes both names. A missing pull request
// yields an empty page.
func (c *client) ListPullRequestFiles(ctx context.Context, repo types.RepoID, number int, page int) ([]string, error) {
	files, _, err := c.githubClient.PullRequests.ListFiles(ctx, repo.Owner, repo.Name, number, &github.ListOptions{
		Page:    page,
		PerPage: defaultPerPage,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to list pull request files",
			goerr.V("repo", repo.String()), goerr.V("number", number), goerr.V("page", page))
	}

	var paths []string
	for _, f := range files {
		paths = append(paths, f.GetFilename())
		if prev := f.GetPreviousFilename(); prev != "" {
			paths = append(paths, prev)
		}
	}
	return paths, nil
}

// GetPullRequest returns a pull request
func (c *client) GetPullRequest(ctx context.Context, repo types.RepoID, number int) (*model.PullRequest, error) {
	pr, _, err := c.githubClient.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get pull request", goerr.V("repo", repo.String()), goerr.V("number", number))
	}
	return ToPullRequest(pr), nil
}

// GetFileContent returns the decoded content of a file at ref
func (c *client) GetFileContent(ctx context.Context, repo types.RepoID, path, ref string) ([]byte, error) {
	file, _, _, err := c.githubClient.Repositories.GetContents(ctx, repo.Owner, repo.Name, path, &github.RepositoryContentGetOptions{
		Ref: ref,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get file content",
			goerr.V("repo", repo.String()), goerr.V("path", path), goerr.V("ref", ref))
	}
	if file == nil {
		return nil, goerr.New("path is not a file", goerr.V("repo", repo.String()), goerr.V("path", path))
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode file content", goerr.V("repo", repo.String()), goerr.V("path", path))
	}
	return []byte(content), nil
}

func perPage(n int) int {
	if n <= 0 {
		return defaultPerPage
	}
	return n
}

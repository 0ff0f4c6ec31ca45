package interfaces

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHubClient

import (
	"context"

	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

// GitHubClient defines operations for interacting with GitHub API. Lookups
// of a single resource return nil without error when it does not exist.
type GitHubClient interface {
	// GetRepository returns repository metadata
	GetRepository(ctx context.Context, repo types.RepoID) (*model.Repository, error)

	// GetWorkflowRun returns the latest attempt of a workflow run
	GetWorkflowRun(ctx context.Context, repo types.RepoID, runID int64) (*model.Run, error)

	// GetWorkflowRunAttempt returns a specific attempt of a workflow run
	GetWorkflowRunAttempt(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error)

	// ListWorkflowRuns returns one page of the run history, newest first
	ListWorkflowRuns(ctx context.Context, repo types.RepoID, query *model.RunQuery, page int) ([]*model.Run, error)

	// CompareDiff returns the unified diff between two commits
	CompareDiff(ctx context.Context, repo types.RepoID, base, head string) (string, error)

	// ListCommits returns one page of commits, newest first
	ListCommits(ctx context.Context, repo types.RepoID, query *model.CommitQuery, page int) ([]*model.Commit, error)

	// ListPullRequestFiles returns one page of file paths changed by a pull request
	ListPullRequestFiles(ctx context.Context, repo types.RepoID, number int, page int) ([]string, error)

	// GetPullRequest returns a pull request
	GetPullRequest(ctx context.Context, repo types.RepoID, number int) (*model.PullRequest, error)

	// GetFileContent returns the decoded content of a file at ref
	GetFileContent(ctx context.Context, repo types.RepoID, path, ref string) ([]byte, error)
}

// TokenProvider hands out a GitHub access token, refreshing it as needed
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

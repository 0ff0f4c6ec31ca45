package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/shipnote/pkg/domain/interfaces/mocks"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

var (
	testRepoID   = types.RepoID{Owner: "acme", Name: "web"}
	testWorkflow = ".github/workflows/deploy.yml"
	testBaseTime = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
)

// attemptChain builds the attempts of one run; index i is attempt i+1
func attemptChain(runID int64, conclusions ...model.Conclusion) []*model.Run {
	runs := make([]*model.Run, len(conclusions))
	for i, c := range conclusions {
		run := &model.Run{
			ID:         runID,
			Attempt:    i + 1,
			Repository: testRepoID,
			HeadSHA:    fmt.Sprintf("sha-%d", runID),
			HeadBranch: "main",
			Event:      "push",
			Path:       testWorkflow,
			CreatedAt:  testBaseTime.Add(time.Duration(runID) * time.Hour),
			Conclusion: c,
		}
		if i > 0 {
			run.PreviousAttemptURL = fmt.Sprintf("https://api.github.com/repos/acme/web/actions/runs/%d/attempts/%d", runID, i)
		}
		runs[i] = run
	}
	return runs
}

// attemptLookup serves GetWorkflowRunAttempt from chains keyed by run ID
func attemptLookup(chains ...[]*model.Run) func(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
	index := map[int64][]*model.Run{}
	for _, chain := range chains {
		if len(chain) > 0 {
			index[chain[0].ID] = chain
		}
	}

	return func(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
		chain, ok := index[runID]
		if !ok || attempt < 1 || attempt > len(chain) {
			return nil, nil
		}
		return chain[attempt-1], nil
	}
}

func last(runs []*model.Run) *model.Run {
	return runs[len(runs)-1]
}

// pagedRuns serves ListWorkflowRuns from fixed pages
func pagedRuns(pages ...[]*model.Run) func(ctx context.Context, repo types.RepoID, query *model.RunQuery, page int) ([]*model.Run, error) {
	return func(ctx context.Context, repo types.RepoID, query *model.RunQuery, page int) ([]*model.Run, error) {
		if page < 1 || page > len(pages) {
			return nil, nil
		}
		return pages[page-1], nil
	}
}

// pagedCommits serves ListCommits from pages keyed by path filter
func pagedCommits(byPath map[string][][]*model.Commit) func(ctx context.Context, repo types.RepoID, query *model.CommitQuery, page int) ([]*model.Commit, error) {
	return func(ctx context.Context, repo types.RepoID, query *model.CommitQuery, page int) ([]*model.Commit, error) {
		pages := byPath[query.Path]
		if page < 1 || page > len(pages) {
			return nil, nil
		}
		return pages[page-1], nil
	}
}

// pagedPullRequestFiles serves ListPullRequestFiles with one page per PR
func pagedPullRequestFiles(files map[int][]string) func(ctx context.Context, repo types.RepoID, number int, page int) ([]string, error) {
	return func(ctx context.Context, repo types.RepoID, number int, page int) ([]string, error) {
		if page != 1 {
			return nil, nil
		}
		return files[number], nil
	}
}

func commit(sha, msg string, files ...string) *model.Commit {
	return &model.Commit{SHA: sha, Message: msg, Files: files}
}

func newGitHubMock() *mocks.GitHubClientMock {
	return &mocks.GitHubClientMock{}
}

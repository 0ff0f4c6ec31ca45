package github

import (
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

// ToRun converts a workflow run from the API or a webhook payload
func ToRun(run *github.WorkflowRun) *model.Run {
	if run == nil {
		return nil
	}

	return &model.Run{
		ID:      run.GetID(),
		Attempt: run.GetRunAttempt(),
		Repository: types.RepoID{
			Owner: run.GetRepository().GetOwner().GetLogin(),
			Name:  run.GetRepository().GetName(),
		},
		HeadSHA:            run.GetHeadSHA(),
		HeadBranch:         run.GetHeadBranch(),
		Event:              run.GetEvent(),
		Path:               run.GetPath(),
		CreatedAt:          run.GetCreatedAt().Time,
		HeadCommitAt:       run.GetHeadCommit().GetTimestamp().Time,
		Conclusion:         model.Conclusion(run.GetConclusion()),
		HTMLURL:            run.GetHTMLURL(),
		PreviousAttemptURL: run.GetPreviousAttemptURL(),
	}
}

// ToRepository converts repository metadata
func ToRepository(repo *github.Repository) *model.Repository {
	if repo == nil {
		return nil
	}

	return &model.Repository{
		ID: types.RepoID{
			Owner: repo.GetOwner().GetLogin(),
			Name:  repo.GetName(),
		},
		DefaultBranch: repo.GetDefaultBranch(),
		SizeKB:        repo.GetSize(),
		HTMLURL:       repo.GetHTMLURL(),
		CloneURL:      repo.GetCloneURL(),
	}
}

// ToCommit converts a commit listing entry. Files are not part of the
// listing response.
func ToCommit(commit *github.RepositoryCommit) *model.Commit {
	return &model.Commit{
		SHA:         commit.GetSHA(),
		Message:     commit.GetCommit().GetMessage(),
		CommittedAt: commit.GetCommit().GetCommitter().GetDate().Time,
	}
}

// ToPullRequest converts a pull request
func ToPullRequest(pr *github.PullRequest) *model.PullRequest {
	return &model.PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		Author:  pr.GetUser().GetLogin(),
		HTMLURL: pr.GetHTMLURL(),
	}
}

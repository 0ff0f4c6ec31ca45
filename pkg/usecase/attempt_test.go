package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
	"github.com/m-mizutani/shipnote/pkg/usecase"
)

const (
	success = model.ConclusionSuccess
	failure = model.ConclusionFailure
)

func TestAttemptChain_IsFirstSuccessfulAttempt(t *testing.T) {
	tests := []struct {
		name      string
		chain     []model.Conclusion
		wantFirst bool
		wantPrior bool
	}{
		{name: "root success", chain: []model.Conclusion{success}, wantFirst: true},
		{name: "root failure", chain: []model.Conclusion{failure}, wantFirst: false},
		{name: "root pending", chain: []model.Conclusion{model.ConclusionNone}, wantFirst: false},
		{name: "retry after failure", chain: []model.Conclusion{failure, success}, wantFirst: true},
		{name: "retry after success", chain: []model.Conclusion{success, success}, wantFirst: false, wantPrior: true},
		{name: "success deep in chain", chain: []model.Conclusion{success, failure, failure, success}, wantFirst: false, wantPrior: true},
		{name: "failed retry after success", chain: []model.Conclusion{success, failure}, wantFirst: false, wantPrior: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := attemptChain(1, tt.chain...)
			client := newGitHubMock()
			client.GetWorkflowRunAttemptFunc = attemptLookup(chain)

			ac := usecase.NewAttemptChain(client)
			ctx := context.Background()

			first, err := ac.IsFirstSuccessfulAttempt(ctx, last(chain))
			gt.NoError(t, err)
			gt.Equal(t, first, tt.wantFirst)

			prior, err := ac.HasPriorSuccessfulAttempt(ctx, last(chain))
			gt.NoError(t, err)
			gt.Equal(t, prior, tt.wantPrior)
		})
	}
}

func TestAttemptChain_Properties(t *testing.T) {
	ctx := context.Background()
	conclusions := []model.Conclusion{success, failure}

	// every chain of length 1 to 5 over success/failure
	for length := 1; length <= 5; length++ {
		for mask := 0; mask < 1<<length; mask++ {
			chainConclusions := make([]model.Conclusion, length)
			priorSuccess := false
			for i := range length {
				chainConclusions[i] = conclusions[(mask>>i)&1]
				if i < length-1 && chainConclusions[i] == success {
					priorSuccess = true
				}
			}

			chain := attemptChain(1, chainConclusions...)
			client := newGitHubMock()
			client.GetWorkflowRunAttemptFunc = attemptLookup(chain)
			ac := usecase.NewAttemptChain(client)
			run := last(chain)

			prior, err := ac.HasPriorSuccessfulAttempt(ctx, run)
			gt.NoError(t, err)
			gt.Equal(t, prior, priorSuccess)

			first, err := ac.IsFirstSuccessfulAttempt(ctx, run)
			gt.NoError(t, err)
			if prior {
				gt.False(t, first)
			}
			gt.Equal(t, first, ac.IsSuccessful(run) && !prior)

			has, err := ac.HasSuccessfulAttempt(ctx, run)
			gt.NoError(t, err)
			gt.Equal(t, has, ac.IsSuccessful(run) || prior)
		}
	}
}

func TestAttemptChain_RootDoesNotFetch(t *testing.T) {
	client := newGitHubMock()
	ac := usecase.NewAttemptChain(client)

	first, err := ac.IsFirstSuccessfulAttempt(context.Background(), attemptChain(1, success)[0])
	gt.NoError(t, err)
	gt.True(t, first)
	gt.Equal(t, len(client.GetWorkflowRunAttemptCalls()), 0)
}

func TestAttemptChain_VanishedAttemptEndsChain(t *testing.T) {
	chain := attemptChain(1, success, success)
	client := newGitHubMock()
	client.GetWorkflowRunAttemptFunc = func(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
		return nil, nil
	}

	first, err := usecase.NewAttemptChain(client).IsFirstSuccessfulAttempt(context.Background(), last(chain))
	gt.NoError(t, err)
	gt.True(t, first)
}

func TestAttemptChain_FetchErrorIsFatal(t *testing.T) {
	chain := attemptChain(1, failure, success)
	client := newGitHubMock()
	client.GetWorkflowRunAttemptFunc = func(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
		return nil, errors.New("connection reset")
	}

	_, err := usecase.NewAttemptChain(client).IsFirstSuccessfulAttempt(context.Background(), last(chain))
	gt.Error(t, err)
}

func TestAttemptChain_TooLong(t *testing.T) {
	conclusions := make([]model.Conclusion, 10)
	for i := range conclusions {
		conclusions[i] = failure
	}
	conclusions[9] = success
	chain := attemptChain(7, conclusions...)

	client := newGitHubMock()
	client.GetWorkflowRunAttemptFunc = attemptLookup(chain)

	_, err := usecase.NewAttemptChain(client, usecase.WithMaxAttemptHops(3)).
		IsFirstSuccessfulAttempt(context.Background(), last(chain))
	gt.Error(t, err)

	var tooLong *usecase.AttemptChainTooLongError
	gt.True(t, errors.As(err, &tooLong))
	gt.Equal(t, tooLong.RunID, int64(7))
	gt.Equal(t, tooLong.MaxHops, 3)
	gt.Equal(t, len(client.GetWorkflowRunAttemptCalls()), 3)
}

func TestAttemptChain_NonDecreasingAttemptIsMalformed(t *testing.T) {
	run := &model.Run{
		ID:                 3,
		Attempt:            2,
		Repository:         testRepoID,
		Conclusion:         success,
		PreviousAttemptURL: "https://api.github.com/repos/acme/web/actions/runs/3/attempts/1",
	}
	looping := &model.Run{
		ID:                 3,
		Attempt:            1,
		Repository:         testRepoID,
		Conclusion:         failure,
		PreviousAttemptURL: "https://api.github.com/repos/acme/web/actions/runs/3/attempts/1",
	}

	client := newGitHubMock()
	client.GetWorkflowRunAttemptFunc = func(ctx context.Context, repo types.RepoID, runID int64, attempt int) (*model.Run, error) {
		return looping, nil
	}

	_, err := usecase.NewAttemptChain(client).HasPriorSuccessfulAttempt(context.Background(), run)
	var tooLong *usecase.AttemptChainTooLongError
	gt.True(t, errors.As(err, &tooLong))
	gt.Equal(t, len(client.GetWorkflowRunAttemptCalls()), 1)
}

package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// DefaultRunsPerPage is the page size of the run history search
const DefaultRunsPerPage = 30

// RunHistory searches the run history for the previous successful
// deployment of the same workflow
type RunHistory struct {
	client  interfaces.GitHubClient
	chain   *AttemptChain
	perPage int
}

// RunHistoryOption configures RunHistory
type RunHistoryOption func(*RunHistory)

// WithRunsPerPage sets the page size of the run history listing
func WithRunsPerPage(n int) RunHistoryOption {
	return func(h *RunHistory) {
		h.perPage = n
	}
}

// NewRunHistory creates a RunHistory
func NewRunHistory(client interfaces.GitHubClient, chain *AttemptChain, opts ...RunHistoryOption) *RunHistory {
	h := &RunHistory{
		client:  client,
		chain:   chain,
		perPage: DefaultRunsPerPage,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FindPreviousSuccessful returns the newest run created before run, on the
// same workflow file and event, whose own attempt or an earlier attempt
// succeeded. Runs on the same head commit are skipped. When sameBranch is
// true the search is limited to run's branch. It returns nil when the
// history is exhausted.
//
// An empty page ends the search. The listing API is assumed not to return
// an empty page before later non-empty ones.
func (h *RunHistory) FindPreviousSuccessful(ctx context.Context, run *model.Run, sameBranch bool) (*model.Run, error) {
	logger := ctxlog.From(ctx)

	query := &model.RunQuery{
		Event:         run.Event,
		CreatedBefore: run.CreatedAt,
		PerPage:       h.perPage,
	}
	if sameBranch {
		query.Branch = run.HeadBranch
	}

	for page := 1; ; page++ {
		runs, err := h.client.ListWorkflowRuns(ctx, run.Repository, query, page)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list workflow runs", goerr.V("page", page))
		}
		if len(runs) == 0 {
			logger.Debug("run history exhausted on empty page", "run_id", run.ID, "page", page)
			return nil, nil
		}

		for _, candidate := range runs {
			if candidate.Path != run.Path || candidate.HeadSHA == run.HeadSHA {
				continue
			}

			ok, err := h.chain.HasSuccessfulAttempt(ctx, candidate)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to resolve candidate run", goerr.V("candidate_id", candidate.ID))
			}
			if ok {
				logger.Debug("found previous successful run",
					"run_id", run.ID,
					"previous_id", candidate.ID,
					"previous_sha", candidate.HeadSHA,
					"page", page,
				)
				return candidate, nil
			}
		}
	}
}

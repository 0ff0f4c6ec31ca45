package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/types"
)

// DefaultMaxAttemptHops bounds how many previous attempts are followed
const DefaultMaxAttemptHops = 32

// AttemptChainTooLongError is returned when an attempt chain exceeds the hop
// bound, or when attempt numbers do not strictly decrease along the chain
type AttemptChainTooLongError struct {
	Repo    types.RepoID
	RunID   int64
	MaxHops int
	Attempt int
}

func (e *AttemptChainTooLongError) Error() string {
	return fmt.Sprintf("attempt chain of run %d in %s exceeds %d hops or is malformed at attempt %d",
		e.RunID, e.Repo.String(), e.MaxHops, e.Attempt)
}

// AttemptChain walks the retries of a workflow run backward
type AttemptChain struct {
	client  interfaces.GitHubClient
	maxHops int
}

// AttemptChainOption configures AttemptChain
type AttemptChainOption func(*AttemptChain)

// WithMaxAttemptHops overrides DefaultMaxAttemptHops
func WithMaxAttemptHops(n int) AttemptChainOption {
	return func(c *AttemptChain) {
		c.maxHops = n
	}
}

// NewAttemptChain creates an AttemptChain
func NewAttemptChain(client interfaces.GitHubClient, opts ...AttemptChainOption) *AttemptChain {
	c := &AttemptChain{
		client:  client,
		maxHops: DefaultMaxAttemptHops,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSuccessful reports whether run itself succeeded
func (c *AttemptChain) IsSuccessful(run *model.Run) bool {
	return run.IsSuccessful()
}

// HasPriorSuccessfulAttempt reports whether any earlier attempt of run
// succeeded. A chain that ends, including by a vanished attempt, without a
// success yields false.
func (c *AttemptChain) HasPriorSuccessfulAttempt(ctx context.Context, run *model.Run) (bool, error) {
	logger := ctxlog.From(ctx)

	current := run
	for hops := 0; ; hops++ {
		attempt, ok := current.PreviousAttempt()
		if !ok {
			return false, nil
		}
		if hops >= c.maxHops || (current.Attempt > 0 && attempt >= current.Attempt) {
			return false, &AttemptChainTooLongError{
				Repo:    run.Repository,
				RunID:   run.ID,
				MaxHops: c.maxHops,
				Attempt: current.Attempt,
			}
		}

		prev, err := c.client.GetWorkflowRunAttempt(ctx, run.Repository, run.ID, attempt)
		if err != nil {
			return false, goerr.Wrap(err, "failed to fetch previous attempt",
				goerr.V("run_id", run.ID),
				goerr.V("attempt", attempt),
			)
		}
		if prev == nil {
			logger.Debug("previous attempt no longer exists", "run_id", run.ID, "attempt", attempt)
			return false, nil
		}

		logger.Debug("visited previous attempt",
			"run_id", run.ID,
			"attempt", prev.Attempt,
			"conclusion", prev.Conclusion,
		)
		if prev.IsSuccessful() {
			return true, nil
		}

		current = prev
	}
}

// HasSuccessfulAttempt reports whether run or any earlier attempt succeeded
func (c *AttemptChain) HasSuccessfulAttempt(ctx context.Context, run *model.Run) (bool, error) {
	if run.IsSuccessful() {
		return true, nil
	}
	return c.HasPriorSuccessfulAttempt(ctx, run)
}

// IsFirstSuccessfulAttempt reports whether run succeeded and no earlier
// attempt did. Only such runs trigger a release.
func (c *AttemptChain) IsFirstSuccessfulAttempt(ctx context.Context, run *model.Run) (bool, error) {
	if !run.IsSuccessful() {
		return false, nil
	}
	prior, err := c.HasPriorSuccessfulAttempt(ctx, run)
	if err != nil {
		return false, err
	}
	return !prior, nil
}

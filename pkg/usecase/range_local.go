package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/pathspec"
)

// LocalRange reads a commit range from a local clone
type LocalRange struct {
	repo interfaces.GitRepository
}

var _ interfaces.RangeFetcher = (*LocalRange)(nil)

// NewLocalRange creates a LocalRange over an opened clone
func NewLocalRange(repo interfaces.GitRepository) *LocalRange {
	return &LocalRange{repo: repo}
}

// Backend returns model.BackendLocal
func (x *LocalRange) Backend() model.Backend {
	return model.BackendLocal
}

// Diff returns the tree diff between the range ends, filtered by spec
func (x *LocalRange) Diff(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec) (string, error) {
	raw, err := x.repo.Diff(ctx, rng.OldSHA, rng.NewSHA)
	if err != nil {
		return "", goerr.Wrap(err, "failed to diff local range", goerr.V("old", rng.OldSHA), goerr.V("new", rng.NewSHA))
	}
	return spec.FilterDiff(raw), nil
}

// CommitMessages returns messages of commits in the range, newest first.
// With a spec, only commits touching an in-scope file are kept.
func (x *LocalRange) CommitMessages(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec) ([]string, error) {
	commits, err := x.repo.CommitsBetween(ctx, rng.OldSHA, rng.NewSHA)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk local range", goerr.V("old", rng.OldSHA), goerr.V("new", rng.NewSHA))
	}

	var msgs []string
	for _, c := range commits {
		if spec != nil && !touchesScope(spec, c.Files) {
			continue
		}
		msgs = append(msgs, c.Message)
	}

	ctxlog.From(ctx).Debug("walked local range",
		"old", rng.OldSHA,
		"new", rng.NewSHA,
		"commits", len(commits),
		"in_scope", len(msgs),
	)
	return model.UniqueMessages(msgs), nil
}

func touchesScope(spec *pathspec.Spec, files []string) bool {
	for _, f := range files {
		if spec.IsIncluded(f) {
			return true
		}
	}
	return false
}

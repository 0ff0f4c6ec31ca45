package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/pathspec"
	"golang.org/x/sync/errgroup"
)

// commitPhase is the progress of a remote commit range fetch
type commitPhase string

const (
	phasePending        commitPhase = "pending"
	phaseDirect         commitPhase = "direct"
	phaseReconciliation commitPhase = "reconciliation"
	phaseDone           commitPhase = "done"
)

// RemoteRange reads a commit range through the GitHub API. Path scoped
// commit listings omit merge commits, so merges are reconciled through the
// files of their pull requests.
type RemoteRange struct {
	client  interfaces.GitHubClient
	perPage int
}

var _ interfaces.RangeFetcher = (*RemoteRange)(nil)

// RemoteRangeOption configures RemoteRange
type RemoteRangeOption func(*RemoteRange)

// WithCommitsPerPage sets the page size of the commit listing
func WithCommitsPerPage(n int) RemoteRangeOption {
	return func(r *RemoteRange) {
		r.perPage = n
	}
}

// NewRemoteRange creates a RemoteRange
func NewRemoteRange(client interfaces.GitHubClient, opts ...RemoteRangeOption) *RemoteRange {
	r := &RemoteRange{client: client}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Backend returns model.BackendRemote
func (x *RemoteRange) Backend() model.Backend {
	return model.BackendRemote
}

// Diff returns the compare diff of the range, filtered by spec
func (x *RemoteRange) Diff(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec) (string, error) {
	raw, err := x.client.CompareDiff(ctx, rng.Repo, rng.OldSHA, rng.NewSHA)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch compare diff")
	}
	return spec.FilterDiff(raw), nil
}

// messageSet is an insertion ordered set of commit messages
type messageSet struct {
	seen  map[string]struct{}
	items []string
}

func newMessageSet() *messageSet {
	return &messageSet{seen: map[string]struct{}{}}
}

func (x *messageSet) add(msg string) {
	if _, ok := x.seen[msg]; ok {
		return
	}
	x.seen[msg] = struct{}{}
	x.items = append(x.items, msg)
}

// CommitMessages returns the deduplicated messages of in-scope commits in
// the range time window. The order is not meaningful.
func (x *RemoteRange) CommitMessages(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec) ([]string, error) {
	logger := ctxlog.From(ctx)
	result := newMessageSet()

	phase := phasePending
	transit := func(next commitPhase) {
		logger.Debug("remote commit phase", "from", phase, "to", next, "messages", len(result.items))
		phase = next
	}

	transit(phaseDirect)
	if err := x.collectDirect(ctx, rng, spec, result); err != nil {
		return nil, err
	}

	if spec != nil {
		transit(phaseReconciliation)
		if err := x.reconcileMerges(ctx, rng, spec, result); err != nil {
			return nil, err
		}
	}

	transit(phaseDone)
	return result.items, nil
}

// collectDirect lists commits per sanitized include prefix, or once
// without a path when there is no prefix to scope by. Under a spec, merge
// commits are left to reconcileMerges.
func (x *RemoteRange) collectDirect(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec, result *messageSet) error {
	prefixes := spec.SanitizedIncludedPrefixes()
	if len(prefixes) == 0 {
		prefixes = []string{""}
	}

	for _, prefix := range prefixes {
		err := x.eachCommit(ctx, rng, prefix, func(c *model.Commit) {
			if spec != nil && c.IsMerge() {
				return
			}
			result.add(c.Message)
		})
		if err != nil {
			return goerr.Wrap(err, "failed to list scoped commits", goerr.V("path", prefix))
		}
	}
	return nil
}

// reconcileMerges adds merge commits whose pull request touched an in-scope file
func (x *RemoteRange) reconcileMerges(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec, result *messageSet) error {
	var merges []*model.Commit
	err := x.eachCommit(ctx, rng, "", func(c *model.Commit) {
		if c.IsMerge() {
			merges = append(merges, c)
		}
	})
	if err != nil {
		return goerr.Wrap(err, "failed to list merge commits")
	}

	included := make([]bool, len(merges))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, merge := range merges {
		number := model.ParsePullRequestNumber(merge.Message)
		if number == 0 {
			continue
		}

		eg.Go(func() error {
			ok, err := x.pullRequestInScope(egCtx, rng, number, spec)
			if err != nil {
				return goerr.Wrap(err, "failed to inspect pull request files", goerr.V("number", number), goerr.V("sha", merge.SHA))
			}
			included[i] = ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	for i, merge := range merges {
		if included[i] {
			result.add(merge.Message)
		}
	}
	return nil
}

func (x *RemoteRange) pullRequestInScope(ctx context.Context, rng model.CommitRange, number int, spec *pathspec.Spec) (bool, error) {
	for page := 1; ; page++ {
		files, err := x.client.ListPullRequestFiles(ctx, rng.Repo, number, page)
		if err != nil {
			return false, err
		}
		if len(files) == 0 {
			return false, nil
		}
		if touchesScope(spec, files) {
			return true, nil
		}
	}
}

func (x *RemoteRange) eachCommit(ctx context.Context, rng model.CommitRange, path string, fn func(c *model.Commit)) error {
	query := &model.CommitQuery{
		Path:    path,
		Since:   rng.Since,
		Until:   rng.Until,
		PerPage: x.perPage,
	}

	for page := 1; ; page++ {
		commits, err := x.client.ListCommits(ctx, rng.Repo, query, page)
		if err != nil {
			return goerr.Wrap(err, "failed to list commits", goerr.V("page", page))
		}
		if len(commits) == 0 {
			return nil
		}
		for _, c := range commits {
			fn(c)
		}
	}
}

package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/pathspec"
	"golang.org/x/sync/errgroup"
)

// DefaultCloneSizeThreshold is the repository size in KB above which the
// remote backend is used instead of a local clone
const DefaultCloneSizeThreshold = 60000

const (
	SkipNotFirstSuccess    = "run is not the first successful attempt"
	SkipNotDefaultBranch   = "run is not on the default branch"
	SkipSummaryDisabled    = "workflow does not enable " + model.EnvSummaryEnabled
	SkipNoPreviousRun      = "no previous successful run"
	SkipNoChangesInScope   = "no changes in scope"
	SkipWorkflowConfigGone = "workflow file not found at head commit"
)

type releaseDeltaUseCase struct {
	client     interfaces.GitHubClient
	gitStore   interfaces.GitStore
	summarizer interfaces.Summarizer
	notifier   interfaces.Notifier
	settings   model.RepositorySettingsSet

	maxAttemptHops     int
	historyPageSize    int
	commitPageSize     int
	cloneSizeThreshold int
	requireSummaryFlag bool
	historySameBranch  bool
	jiraProject        string
}

// ReleaseDeltaOption configures the release delta use case
type ReleaseDeltaOption func(*releaseDeltaUseCase)

// WithGitStore enables the local clone backend for small repositories
func WithGitStore(store interfaces.GitStore) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.gitStore = store
	}
}

// WithSummarizer sets the summarizer used by Publish
func WithSummarizer(s interfaces.Summarizer) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.summarizer = s
	}
}

// WithNotifier sets the notifier used by Publish
func WithNotifier(n interfaces.Notifier) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.notifier = n
	}
}

// WithRepositorySettings sets per-repository overrides
func WithRepositorySettings(settings model.RepositorySettingsSet) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.settings = settings
	}
}

// WithAttemptHops bounds the attempt chain walk
func WithAttemptHops(n int) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.maxAttemptHops = n
	}
}

// WithPageSizes sets the page sizes of run history and commit listings
func WithPageSizes(runs, commits int) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.historyPageSize = runs
		uc.commitPageSize = commits
	}
}

// WithCloneSizeThreshold overrides DefaultCloneSizeThreshold
func WithCloneSizeThreshold(kb int) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.cloneSizeThreshold = kb
	}
}

// WithRequireSummaryFlag skips workflows whose env block does not set
// SHIPNOTE_SUMMARY_ENABLED to true
func WithRequireSummaryFlag(required bool) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.requireSummaryFlag = required
	}
}

// WithHistorySameBranch limits the previous run search to the run's branch
func WithHistorySameBranch(same bool) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.historySameBranch = same
	}
}

// WithJiraProject limits Jira key extraction to one project
func WithJiraProject(project string) ReleaseDeltaOption {
	return func(uc *releaseDeltaUseCase) {
		uc.jiraProject = project
	}
}

// NewReleaseDelta creates the release delta use case
func NewReleaseDelta(client interfaces.GitHubClient, opts ...ReleaseDeltaOption) interfaces.ReleaseDeltaUseCase {
	uc := &releaseDeltaUseCase{
		client:             client,
		maxAttemptHops:     DefaultMaxAttemptHops,
		historyPageSize:    DefaultRunsPerPage,
		cloneSizeThreshold: DefaultCloneSizeThreshold,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func skipped(req *model.DeltaRequest, reason string) *model.ReleaseDelta {
	return &model.ReleaseDelta{
		Run:        req.Run,
		Repository: req.Repository,
		SkipReason: reason,
	}
}

// Resolve computes the delta between req.Run and the previous successful
// run of the same workflow
func (uc *releaseDeltaUseCase) Resolve(ctx context.Context, req *model.DeltaRequest) (*model.ReleaseDelta, error) {
	run := req.Run
	logger := ctxlog.From(ctx).With("run_id", run.ID, "repo", run.Repository.String(), "attempt", run.Attempt)
	ctx = ctxlog.With(ctx, logger)

	chain := NewAttemptChain(uc.client, WithMaxAttemptHops(uc.maxAttemptHops))
	first, err := chain.IsFirstSuccessfulAttempt(ctx, run)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check attempt chain")
	}
	if !first {
		logger.Info("skip run", "reason", SkipNotFirstSuccess, "conclusion", run.Conclusion)
		return skipped(req, SkipNotFirstSuccess), nil
	}

	repo := req.Repository
	if repo == nil {
		if repo, err = uc.client.GetRepository(ctx, run.Repository); err != nil {
			return nil, err
		}
	}
	if repo.DefaultBranch != "" && run.HeadBranch != repo.DefaultBranch {
		logger.Info("skip run", "reason", SkipNotDefaultBranch, "branch", run.HeadBranch, "default_branch", repo.DefaultBranch)
		return skipped(req, SkipNotDefaultBranch), nil
	}
	settings := uc.settings.Lookup(run.Repository)

	content, err := uc.client.GetFileContent(ctx, run.Repository, run.Path, run.HeadSHA)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get workflow file")
	}
	if content == nil {
		logger.Warn("skip run", "reason", SkipWorkflowConfigGone, "path", run.Path)
		return skipped(req, SkipWorkflowConfigGone), nil
	}
	cfg, err := model.ParseWorkflowConfig(content)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse workflow file", goerr.V("path", run.Path))
	}

	if enabled, set := cfg.SummaryEnabled(); (set && !enabled) || (!set && uc.requireSummaryFlag) {
		logger.Info("skip run", "reason", SkipSummaryDisabled)
		return skipped(req, SkipSummaryDisabled), nil
	}

	sameBranch := uc.historySameBranch
	if settings.HistorySameBranch != nil {
		sameBranch = *settings.HistorySameBranch
	}
	history := NewRunHistory(uc.client, chain, WithRunsPerPage(uc.historyPageSize))
	prev, err := history.FindPreviousSuccessful(ctx, run, sameBranch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search previous successful run")
	}
	if prev == nil {
		logger.Info("skip run", "reason", SkipNoPreviousRun)
		return skipped(req, SkipNoPreviousRun), nil
	}

	spec, err := uc.pathSpec(settings, cfg)
	if err != nil {
		return nil, err
	}

	fetcher, err := uc.rangeFetcher(ctx, repo, settings)
	if err != nil {
		return nil, err
	}

	rng := model.CommitRange{
		Repo:   run.Repository,
		OldSHA: prev.HeadSHA,
		NewSHA: run.HeadSHA,
		Since:  prev.HeadCommitAt.Add(time.Second),
		Until:  run.HeadCommitAt,
	}
	logger.Info("resolving release delta",
		"backend", fetcher.Backend(),
		"from", rng.OldSHA,
		"to", rng.NewSHA,
		"previous_run_id", prev.ID,
		"included", spec.Included(),
		"excluded", spec.Excluded(),
	)

	diff, err := fetcher.Diff(ctx, rng, spec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch range diff")
	}
	if strings.TrimSpace(diff) == "" {
		logger.Warn("skip run", "reason", SkipNoChangesInScope, "included", spec.Included())
		return skipped(req, SkipNoChangesInScope), nil
	}

	msgs, err := fetcher.CommitMessages(ctx, rng, spec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch range commits")
	}

	prs, err := uc.pullRequests(ctx, run, msgs)
	if err != nil {
		return nil, err
	}

	return &model.ReleaseDelta{
		Run:         run,
		PreviousRun: prev,
		Repository:  repo,
		AppName:     appName(settings, cfg, repo),
		Range: &model.RangeResult{
			Backend:        fetcher.Backend(),
			From:           rng.OldSHA,
			To:             rng.NewSHA,
			Diff:           diff,
			CommitMessages: msgs,
			Ordered:        fetcher.Backend() == model.BackendLocal,
		},
		PullRequests: prs,
		JiraKeys:     model.ExtractJiraKeys(msgs, uc.jiraProject),
	}, nil
}

func (uc *releaseDeltaUseCase) pathSpec(settings model.RepositorySettings, cfg *model.WorkflowConfig) (*pathspec.Spec, error) {
	if settings.Paths != "" {
		spec, err := pathspec.FromInput(settings.Paths)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid paths in repository settings", goerr.V("repo", settings.Name))
		}
		return spec, nil
	}
	return pathspec.FromWorkflow(cfg)
}

func (uc *releaseDeltaUseCase) rangeFetcher(ctx context.Context, repo *model.Repository, settings model.RepositorySettings) (interfaces.RangeFetcher, error) {
	backend := settings.ForceBackend
	if backend == "" {
		backend = model.BackendLocal
		if uc.gitStore == nil || repo.SizeKB > uc.cloneSizeThreshold {
			backend = model.BackendRemote
		}
	}

	switch backend {
	case model.BackendLocal:
		if uc.gitStore == nil {
			return nil, goerr.New("local backend requested but no repository directory is configured", goerr.V("repo", repo.ID.String()))
		}
		gitRepo, err := uc.gitStore.Open(ctx, repo)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open local clone")
		}
		return NewLocalRange(gitRepo), nil

	case model.BackendRemote:
		return NewRemoteRange(uc.client, WithCommitsPerPage(uc.commitPageSize)), nil

	default:
		return nil, goerr.New("unknown backend", goerr.V("backend", backend))
	}
}

// pullRequests fetches the pull requests referenced by msgs. Missing pull
// requests are ignored.
func (uc *releaseDeltaUseCase) pullRequests(ctx context.Context, run *model.Run, msgs []string) ([]*model.PullRequest, error) {
	numbers := model.PullRequestNumbers(msgs)
	found := make([]*model.PullRequest, len(numbers))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, number := range numbers {
		eg.Go(func() error {
			pr, err := uc.client.GetPullRequest(egCtx, run.Repository, number)
			if err != nil {
				return goerr.Wrap(err, "failed to get pull request", goerr.V("number", number))
			}
			found[i] = pr
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var prs []*model.PullRequest
	for _, pr := range found {
		if pr != nil {
			prs = append(prs, pr)
		}
	}
	sort.Slice(prs, func(i, j int) bool { return prs[i].Number < prs[j].Number })
	return prs, nil
}

func appName(settings model.RepositorySettings, cfg *model.WorkflowConfig, repo *model.Repository) string {
	switch {
	case settings.AppName != "":
		return settings.AppName
	case cfg.AppName() != "":
		return cfg.AppName()
	default:
		return repo.ID.Name
	}
}

// Publish summarizes the delta and sends it to the notifier
func (uc *releaseDeltaUseCase) Publish(ctx context.Context, delta *model.ReleaseDelta) error {
	if delta.Skipped() {
		return nil
	}
	logger := ctxlog.From(ctx)

	if uc.summarizer != nil {
		summary, err := uc.summarizer.Summarize(ctx, delta)
		if err != nil {
			return goerr.Wrap(err, "failed to summarize release delta")
		}
		delta.Summary = summary
	}

	if uc.notifier == nil {
		logger.Info("no notifier configured, release delta not published", "run_id", delta.Run.ID)
		return nil
	}
	if err := uc.notifier.Notify(ctx, delta); err != nil {
		return goerr.Wrap(err, "failed to notify release delta")
	}

	logger.Info("release delta published",
		"run_id", delta.Run.ID,
		"app", delta.AppName,
		"commits", len(delta.Range.CommitMessages),
		"pull_requests", len(delta.PullRequests),
	)
	return nil
}

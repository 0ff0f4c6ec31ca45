package config

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/infra/git"
	"github.com/m-mizutani/shipnote/pkg/usecase"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Delta holds release delta resolution settings
type Delta struct {
	RepoDir            string
	CloneSizeThreshold int
	MaxAttemptHops     int
	RunsPerPage        int
	CommitsPerPage     int
	RequireSummaryFlag bool
	HistorySameBranch  bool
	JiraProject        string
	SettingsFile       string
}

// Flags returns CLI flags for delta resolution
func (c *Delta) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-dir",
			Usage:       "Directory for local clones. Remote API only when empty",
			Destination: &c.RepoDir,
			Sources:     cli.EnvVars("SHIPNOTE_REPO_DIR"),
		},
		&cli.IntFlag{
			Name:        "clone-size-threshold",
			Usage:       "Repository size in KB above which the remote API is used instead of a clone",
			Value:       usecase.DefaultCloneSizeThreshold,
			Destination: &c.CloneSizeThreshold,
			Sources:     cli.EnvVars("SHIPNOTE_CLONE_SIZE_THRESHOLD"),
		},
		&cli.IntFlag{
			Name:        "max-attempt-hops",
			Usage:       "Maximum number of previous attempts followed for one run",
			Value:       usecase.DefaultMaxAttemptHops,
			Destination: &c.MaxAttemptHops,
			Sources:     cli.EnvVars("SHIPNOTE_MAX_ATTEMPT_HOPS"),
		},
		&cli.IntFlag{
			Name:        "runs-per-page",
			Usage:       "Page size of the workflow run history search",
			Value:       usecase.DefaultRunsPerPage,
			Destination: &c.RunsPerPage,
			Sources:     cli.EnvVars("SHIPNOTE_RUNS_PER_PAGE"),
		},
		&cli.IntFlag{
			Name:        "commits-per-page",
			Usage:       "Page size of commit listings",
			Value:       100,
			Destination: &c.CommitsPerPage,
			Sources:     cli.EnvVars("SHIPNOTE_COMMITS_PER_PAGE"),
		},
		&cli.BoolFlag{
			Name:        "require-summary-flag",
			Usage:       "Only process workflows whose env sets " + model.EnvSummaryEnabled + " to true",
			Destination: &c.RequireSummaryFlag,
			Sources:     cli.EnvVars("SHIPNOTE_REQUIRE_SUMMARY_FLAG"),
		},
		&cli.BoolFlag{
			Name:        "history-same-branch",
			Usage:       "Search the previous successful run on the same branch only",
			Destination: &c.HistorySameBranch,
			Sources:     cli.EnvVars("SHIPNOTE_HISTORY_SAME_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "jira-project",
			Usage:       "Only extract Jira keys of this project",
			Destination: &c.JiraProject,
			Sources:     cli.EnvVars("SHIPNOTE_JIRA_PROJECT"),
		},
		&cli.StringFlag{
			Name:        "settings",
			Usage:       "Path to the TOML file of per-repository settings",
			Destination: &c.SettingsFile,
			Sources:     cli.EnvVars("SHIPNOTE_SETTINGS"),
		},
	}
}

type settingsFile struct {
	Repository []model.RepositorySettings `toml:"repository"`
}

// LoadSettings reads per-repository settings. No file yields no settings.
func (c *Delta) LoadSettings() (model.RepositorySettingsSet, error) {
	if c.SettingsFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(c.SettingsFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read settings file", goerr.V("path", c.SettingsFile))
	}
	return ParseSettings(data)
}

// ParseSettings decodes per-repository settings from TOML
func ParseSettings(data []byte) (model.RepositorySettingsSet, error) {
	var file settingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse settings file")
	}

	for _, s := range file.Repository {
		if s.Name == "" {
			return nil, goerr.New("repository settings without name")
		}
		switch s.ForceBackend {
		case "", model.BackendLocal, model.BackendRemote:
		default:
			return nil, goerr.New("invalid force_backend", goerr.V("repo", s.Name), goerr.V("backend", s.ForceBackend))
		}
	}
	return model.RepositorySettingsSet(file.Repository), nil
}

// Options builds the release delta use case options. tokens authenticates
// clones when RepoDir is set.
func (c *Delta) Options(tokens interfaces.TokenProvider) ([]usecase.ReleaseDeltaOption, error) {
	settings, err := c.LoadSettings()
	if err != nil {
		return nil, err
	}

	opts := []usecase.ReleaseDeltaOption{
		usecase.WithRepositorySettings(settings),
		usecase.WithAttemptHops(c.MaxAttemptHops),
		usecase.WithPageSizes(c.RunsPerPage, c.CommitsPerPage),
		usecase.WithCloneSizeThreshold(c.CloneSizeThreshold),
		usecase.WithRequireSummaryFlag(c.RequireSummaryFlag),
		usecase.WithHistorySameBranch(c.HistorySameBranch),
		usecase.WithJiraProject(c.JiraProject),
	}

	if c.RepoDir != "" {
		if err := os.MkdirAll(c.RepoDir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create repository directory", goerr.V("path", c.RepoDir))
		}
		opts = append(opts, usecase.WithGitStore(git.New(c.RepoDir, git.WithTokenProvider(tokens))))
	}

	return opts, nil
}

// RepoDirCheck verifies that clones can be written under RepoDir. It
// returns nil when no local backend is configured.
func (c *Delta) RepoDirCheck() func(ctx context.Context) error {
	if c.RepoDir == "" {
		return nil
	}

	dir := c.RepoDir
	return func(ctx context.Context) error {
		f, err := os.CreateTemp(dir, ".health-*")
		if err != nil {
			return goerr.Wrap(err, "repository directory is not writable", goerr.V("path", dir))
		}
		name := f.Name()
		if err := f.Close(); err != nil {
			return goerr.Wrap(err, "failed to close check file", goerr.V("path", name))
		}
		if err := os.Remove(name); err != nil {
			return goerr.Wrap(err, "failed to remove check file", goerr.V("path", name))
		}
		return nil
	}
}

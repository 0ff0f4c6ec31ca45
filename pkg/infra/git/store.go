// Package git keeps local clones of GitHub repositories and reads commit
// history from them with go-git.
package git

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// Store manages one bare clone per repository under baseDir/<owner>/<name>.
// Open calls for the same repository are serialized.
type Store struct {
	baseDir   string
	tokens    interfaces.TokenProvider
	remoteURL func(repo *model.Repository) string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option configures Store
type Option func(*Store)

// WithTokenProvider authenticates clone and fetch with a GitHub token
func WithTokenProvider(tokens interfaces.TokenProvider) Option {
	return func(s *Store) {
		s.tokens = tokens
	}
}

// WithRemoteURL overrides how the remote URL of a repository is derived
func WithRemoteURL(f func(repo *model.Repository) string) Option {
	return func(s *Store) {
		s.remoteURL = f
	}
}

// New creates a Store rooted at baseDir
func New(baseDir string, opts ...Option) *Store {
	s := &Store{
		baseDir:   baseDir,
		remoteURL: defaultRemoteURL,
		locks:     map[string]*sync.Mutex{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultRemoteURL(repo *model.Repository) string {
	if repo.CloneURL != "" {
		return repo.CloneURL
	}
	return fmt.Sprintf("https://github.com/%s.git", repo.ID.String())
}

func (s *Store) lock(path string) func() {
	s.mu.Lock()
	l, ok := s.locks[path]
	if !ok {
		l = &sync.Mutex{}
		s.locks[path] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (s *Store) auth(ctx context.Context) (transport.AuthMethod, error) {
	if s.tokens == nil {
		return nil, nil
	}
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	return &githttp.BasicAuth{Username: "x-access-token", Password: token}, nil
}

// Open returns the clone of repo, fetching the default branch into an
// existing clone or cloning it when absent
func (s *Store) Open(ctx context.Context, repo *model.Repository) (interfaces.GitRepository, error) {
	logger := ctxlog.From(ctx)
	path := filepath.Join(s.baseDir, repo.ID.Owner, repo.ID.Name)
	defer s.lock(path)()

	auth, err := s.auth(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get token for git", goerr.V("repo", repo.ID.String()))
	}

	r, err := gogit.PlainOpen(path)
	switch {
	case err == nil:
		logger.Info("fetching existing clone", "repo", repo.ID.String(), "path", path, "branch", repo.DefaultBranch)
		if err := fetchBranch(ctx, r, repo.DefaultBranch, auth); err != nil {
			return nil, goerr.Wrap(err, "failed to fetch repository", goerr.V("repo", repo.ID.String()), goerr.V("path", path))
		}

	case errors.Is(err, gogit.ErrRepositoryNotExists):
		logger.Info("cloning repository", "repo", repo.ID.String(), "path", path)
		r, err = gogit.PlainCloneContext(ctx, path, true, &gogit.CloneOptions{
			URL:  s.remoteURL(repo),
			Auth: auth,
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to clone repository", goerr.V("repo", repo.ID.String()), goerr.V("path", path))
		}

	default:
		return nil, goerr.Wrap(err, "failed to open repository", goerr.V("repo", repo.ID.String()), goerr.V("path", path))
	}

	return &Repository{repo: r}, nil
}

func fetchBranch(ctx context.Context, r *gogit.Repository, branch string, auth transport.AuthMethod) error {
	opts := &gogit.FetchOptions{
		RemoteName: gogit.DefaultRemoteName,
		Auth:       auth,
		Tags:       gogit.NoTags,
	}
	if branch != "" {
		opts.RefSpecs = []config.RefSpec{
			config.RefSpec(fmt.Sprintf("+refs/heads/%s:refs/heads/%s", branch, branch)),
		}
	}

	if err := r.FetchContext(ctx, opts); err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return err
	}
	return nil
}

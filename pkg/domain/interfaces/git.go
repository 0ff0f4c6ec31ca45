package interfaces

//go:generate moq -out mocks/git_mock.go -pkg mocks . GitStore GitRepository

import (
	"context"

	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// GitStore keeps local clones of repositories
type GitStore interface {
	// Open returns an up-to-date clone of repo, cloning it on first use
	Open(ctx context.Context, repo *model.Repository) (GitRepository, error)
}

// GitRepository reads history from a local clone
type GitRepository interface {
	// CommitsBetween returns commits reachable from newSHA but not from
	// oldSHA, newest first, with their changed files
	CommitsBetween(ctx context.Context, oldSHA, newSHA string) ([]*model.Commit, error)

	// Diff returns the unified diff between the trees of two commits
	Diff(ctx context.Context, oldSHA, newSHA string) (string, error)
}

package git

import (
	"context"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// Repository reads history from a local clone
type Repository struct {
	repo *gogit.Repository
}

// OpenPath opens an existing repository at path without fetching
func OpenPath(path string) (*Repository, error) {
	r, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository", goerr.V("path", path))
	}
	return &Repository{repo: r}, nil
}

func (x *Repository) commit(sha string) (*object.Commit, error) {
	c, err := x.repo.CommitObject(plumbing.NewHash(sha))
	if err != nil {
		return nil, goerr.Wrap(err, "commit not found", goerr.V("sha", sha))
	}
	return c, nil
}

// CommitsBetween returns commits reachable from newSHA but not from oldSHA
// in commit time order, newest first
func (x *Repository) CommitsBetween(ctx context.Context, oldSHA, newSHA string) ([]*model.Commit, error) {
	oldCommit, err := x.commit(oldSHA)
	if err != nil {
		return nil, err
	}
	newCommit, err := x.commit(newSHA)
	if err != nil {
		return nil, err
	}

	known := map[plumbing.Hash]bool{}
	err = object.NewCommitPreorderIter(oldCommit, nil, nil).ForEach(func(c *object.Commit) error {
		known[c.Hash] = true
		return ctx.Err()
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk ancestors", goerr.V("sha", oldSHA))
	}

	var commits []*model.Commit
	err = object.NewCommitIterCTime(newCommit, known, nil).ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		files, err := changedFiles(ctx, c)
		if err != nil {
			return err
		}
		commits = append(commits, &model.Commit{
			SHA:         c.Hash.String(),
			Message:     c.Message,
			Files:       files,
			CommittedAt: c.Committer.When,
		})
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk commits", goerr.V("old", oldSHA), goerr.V("new", newSHA))
	}

	return commits, nil
}

// changedFiles lists paths changed by c against its first parent, or
// against the empty tree for a root commit. Both sides of a rename are listed.
func changedFiles(ctx context.Context, c *object.Commit) ([]string, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get tree", goerr.V("sha", c.Hash.String()))
	}

	parentTree := &object.Tree{}
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get parent", goerr.V("sha", c.Hash.String()))
		}
		if parentTree, err = parent.Tree(); err != nil {
			return nil, goerr.Wrap(err, "failed to get parent tree", goerr.V("sha", parent.Hash.String()))
		}
	}

	changes, err := parentTree.DiffContext(ctx, tree)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to diff trees", goerr.V("sha", c.Hash.String()))
	}

	files := make([]string, 0, len(changes))
	for _, change := range changes {
		if change.To.Name != "" {
			files = append(files, change.To.Name)
		}
		if change.From.Name != "" && change.From.Name != change.To.Name {
			files = append(files, change.From.Name)
		}
	}
	return files, nil
}

// Diff returns the unified diff between the trees of two commits
func (x *Repository) Diff(ctx context.Context, oldSHA, newSHA string) (string, error) {
	oldCommit, err := x.commit(oldSHA)
	if err != nil {
		return "", err
	}
	newCommit, err := x.commit(newSHA)
	if err != nil {
		return "", err
	}

	oldTree, err := oldCommit.Tree()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get tree", goerr.V("sha", oldSHA))
	}
	newTree, err := newCommit.Tree()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get tree", goerr.V("sha", newSHA))
	}

	patch, err := oldTree.PatchContext(ctx, newTree)
	if err != nil {
		return "", goerr.Wrap(err, "failed to compute patch", goerr.V("old", oldSHA), goerr.V("new", newSHA))
	}
	return patch.String(), nil
}

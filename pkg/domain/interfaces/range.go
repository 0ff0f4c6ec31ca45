package interfaces

//go:generate moq -out mocks/range_mock.go -pkg mocks . RangeFetcher

import (
	"context"

	"github.com/m-mizutani/shipnote/pkg/domain/model"
	"github.com/m-mizutani/shipnote/pkg/domain/pathspec"
)

// RangeFetcher reconstructs the scoped diff and commit messages of a range.
// A nil spec means no path scoping.
type RangeFetcher interface {
	Backend() model.Backend
	Diff(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec) (string, error)
	CommitMessages(ctx context.Context, rng model.CommitRange, spec *pathspec.Spec) ([]string, error)
}

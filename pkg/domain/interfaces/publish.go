package interfaces

//go:generate moq -out mocks/publish_mock.go -pkg mocks . Summarizer Notifier

import (
	"context"

	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// Summarizer turns a release delta into a human readable summary
type Summarizer interface {
	Summarize(ctx context.Context, delta *model.ReleaseDelta) (*model.ReleaseSummary, error)
}

// Notifier delivers a release delta to humans
type Notifier interface {
	Notify(ctx context.Context, delta *model.ReleaseDelta) error
}

package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . WebhookUseCase ReleaseDeltaUseCase

import (
	"context"

	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// WebhookUseCase defines the interface for webhook event processing
type WebhookUseCase interface {
	// ProcessEvent processes a webhook event
	ProcessEvent(ctx context.Context, event *model.WebhookEvent) error
}

// ReleaseDeltaUseCase resolves and publishes the release delta of a run
type ReleaseDeltaUseCase interface {
	// Resolve computes the delta between the run and the previous
	// successful run. A skipped delta is not an error.
	Resolve(ctx context.Context, req *model.DeltaRequest) (*model.ReleaseDelta, error)

	// Publish summarizes and notifies a resolved delta
	Publish(ctx context.Context, delta *model.ReleaseDelta) error
}

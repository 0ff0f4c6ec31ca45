package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
)

// Dispatcher runs a handler outside the request lifecycle
type Dispatcher interface {
	Dispatch(ctx context.Context, handler func(ctx context.Context) error)
}

type webhookUseCase struct {
	releaseDelta interfaces.ReleaseDeltaUseCase
	dispatcher   Dispatcher
}

// WebhookOption configures the webhook use case
type WebhookOption func(*webhookUseCase)

// WithDispatcher processes supported events asynchronously
func WithDispatcher(d Dispatcher) WebhookOption {
	return func(uc *webhookUseCase) {
		uc.dispatcher = d
	}
}

// NewWebhook creates a new instance of WebhookUseCase
func NewWebhook(releaseDelta interfaces.ReleaseDeltaUseCase, opts ...WebhookOption) *webhookUseCase {
	uc := &webhookUseCase{releaseDelta: releaseDelta}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ProcessEvent resolves and publishes the release delta of a completed
// workflow run. Other events are logged and ignored.
func (uc *webhookUseCase) ProcessEvent(ctx context.Context, event *model.WebhookEvent) error {
	logger := ctxlog.From(ctx)

	logger.Info("Processing webhook event",
		"id", event.ID,
		"type", event.Type,
		"action", event.Action,
		"repository", event.Repository,
		"sender", event.Sender,
		"supported", event.IsSupportedEvent(),
	)

	if !event.IsSupportedEvent() {
		logger.Debug("Ignoring unsupported event",
			"type", event.Type,
			"action", event.Action,
		)
		return nil
	}

	req := &model.DeltaRequest{
		Run:        event.Run,
		Repository: event.Repo,
	}
	handler := func(ctx context.Context) error {
		return uc.handle(ctx, event.ID, req)
	}

	if uc.dispatcher != nil {
		uc.dispatcher.Dispatch(ctx, handler)
		return nil
	}
	return handler(ctx)
}

func (uc *webhookUseCase) handle(ctx context.Context, deliveryID string, req *model.DeltaRequest) error {
	logger := ctxlog.From(ctx).With("delivery_id", deliveryID)
	ctx = ctxlog.With(ctx, logger)

	delta, err := uc.releaseDelta.Resolve(ctx, req)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve release delta", goerr.V("run_id", req.Run.ID))
	}
	if delta.Skipped() {
		logger.Info("Nothing to publish", "reason", delta.SkipReason)
		return nil
	}

	if err := uc.releaseDelta.Publish(ctx, delta); err != nil {
		return goerr.Wrap(err, "failed to publish release delta", goerr.V("run_id", req.Run.ID))
	}
	return nil
}

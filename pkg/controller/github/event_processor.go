package github

import (
	"context"
	"errors"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/shipnote/pkg/domain/interfaces"
	"github.com/m-mizutani/shipnote/pkg/domain/model"
	githubinfra "github.com/m-mizutani/shipnote/pkg/infra/github"
)

// ErrInvalidPayload is returned when a webhook body cannot be parsed
var ErrInvalidPayload = errors.New("invalid webhook payload")

// EventProcessor turns GitHub webhook payloads into domain events
type EventProcessor struct {
	webhookUC interfaces.WebhookUseCase
}

// NewEventProcessor creates a new GitHub event processor
func NewEventProcessor(webhookUC interfaces.WebhookUseCase) *EventProcessor {
	return &EventProcessor{
		webhookUC: webhookUC,
	}
}

// ProcessEvent parses a webhook body of eventType and passes it to the
// webhook use case
func (p *EventProcessor) ProcessEvent(ctx context.Context, deliveryID, eventType string, body []byte) error {
	payload, err := github.ParseWebHook(eventType, body)
	if err != nil {
		return goerr.Wrap(errors.Join(ErrInvalidPayload, err), "failed to parse webhook payload",
			goerr.V("event_type", eventType),
			goerr.V("delivery_id", deliveryID),
		)
	}

	event := NewWebhookEvent(deliveryID, eventType, body, payload)
	ctxlog.From(ctx).Debug("Parsed webhook event",
		"delivery_id", event.ID,
		"type", event.Type,
		"action", event.Action,
	)

	return p.webhookUC.ProcessEvent(ctx, event)
}

// NewWebhookEvent converts a parsed go-github payload into a WebhookEvent
func NewWebhookEvent(deliveryID, eventType string, body []byte, payload any) *model.WebhookEvent {
	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}

	switch e := payload.(type) {
	case *github.WorkflowRunEvent:
		event.Action = e.GetAction()
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()
		event.Repo = githubinfra.ToRepository(e.GetRepo())
		event.Run = githubinfra.ToRun(e.GetWorkflowRun())

		// workflow_run.repository may be trimmed in some payloads
		if event.Run != nil && event.Run.Repository.IsZero() && event.Repo != nil {
			event.Run.Repository = event.Repo.ID
		}

	case *github.PingEvent:
		event.Type = model.EventTypePing
		event.Action = e.GetZen()

	default:
		event.Type = model.EventTypeUnknown
	}

	return event
}

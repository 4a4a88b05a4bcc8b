package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-token-gate/internal/domain"
)

// WebhookWorker defines the workflows that fan screening events out to webhook clients
//
//go:generate mockgen -source=worker.go -destination=../mocks/webhook_worker.go -package=mocks -mock_names=WebhookWorker=MockWebhookWorker
type WebhookWorker interface {
	// NotifyWebhookClients starts a delivery workflow for every client subscribed to the event type
	NotifyWebhookClients(ctx workflow.Context, event domain.ScreeningEvent) error

	// DeliverWebhook delivers an event to a single client
	DeliverWebhook(ctx workflow.Context, clientID string, event domain.ScreeningEvent) error
}

// webhookWorker is the concrete implementation of WebhookWorker
type webhookWorker struct {
	executor Executor
}

// NewWebhookWorker creates a new webhook worker instance.
// A nil executor is enough to reference the workflow functions when starting them.
func NewWebhookWorker(executor Executor) WebhookWorker {
	return &webhookWorker{
		executor: executor,
	}
}

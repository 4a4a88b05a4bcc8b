package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
	"github.com/feral-file/ff-token-gate/internal/webhook"
)

const (
	defaultWebhookMaxAttempts = 5
	deliveryWorkflowTimeout   = time.Hour
)

// lookupOptions covers the short database activities
func lookupOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: 10 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: 5 * time.Second,
			MaximumAttempts: 2,
		},
	}
}

// deliveryOptions backs off 5s, 10s, 20s... within the client's attempt budget.
// Temporal treats zero attempts as unlimited so zero falls back to the default.
func deliveryOptions(maxAttempts int) workflow.ActivityOptions {
	if maxAttempts <= 0 {
		maxAttempts = defaultWebhookMaxAttempts
	}
	return workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        5 * time.Second,
			BackoffCoefficient:     2.0,
			MaximumAttempts:        int32(maxAttempts), //nolint:gosec,G115
			NonRetryableErrorTypes: []string{"SignPayload", "ClientRejected"},
		},
	}
}

// deliveryWorkflowID is stable per client and event so a replayed event reuses the same id
func deliveryWorkflowID(clientID, eventID string) string {
	return fmt.Sprintf("webhook-delivery-%s-%s", clientID, eventID)
}

// NotifyWebhookClients fans a screening event out to every subscribed client.
// Delivery workflows are abandoned children, only their start is awaited.
func (w *webhookWorker) NotifyWebhookClients(ctx workflow.Context, event domain.ScreeningEvent) error {
	logger.InfoWf(ctx, "Fanning out screening event",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.String("screening_run_id", event.Data.RunID))

	lookupCtx := workflow.WithActivityOptions(ctx, lookupOptions())

	var clients []*schema.WebhookClient
	if err := workflow.ExecuteActivity(lookupCtx, w.executor.GetActiveWebhookClientsByEventType, event.EventType).Get(lookupCtx, &clients); err != nil {
		return err
	}
	if len(clients) == 0 {
		logger.InfoWf(ctx, "No webhook clients subscribed", zap.String("event_type", event.EventType))
		return nil
	}

	started := 0
	for _, client := range clients {
		childCtx := workflow.WithChildOptions(ctx, workflow.ChildWorkflowOptions{
			WorkflowID:            deliveryWorkflowID(client.ClientID, event.EventID),
			WorkflowRunTimeout:    deliveryWorkflowTimeout,
			WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
			ParentClosePolicy:     enums.PARENT_CLOSE_POLICY_ABANDON,
		})

		var execution workflow.Execution
		child := workflow.ExecuteChildWorkflow(childCtx, w.DeliverWebhook, client.ClientID, event)
		if err := child.GetChildWorkflowExecution().Get(ctx, &execution); err != nil {
			logger.WarnWf(ctx, "Failed to start webhook delivery",
				zap.String("client_id", client.ClientID),
				zap.Error(err))
			continue
		}
		started++
	}

	logger.InfoWf(ctx, "Screening event fanned out",
		zap.Int("subscribed", len(clients)),
		zap.Int("started", started))

	return nil
}

// DeliverWebhook delivers one event to one client. A client that disappeared
// or was deactivated since the fan-out is skipped without error.
func (w *webhookWorker) DeliverWebhook(ctx workflow.Context, clientID string, event domain.ScreeningEvent) error {
	lookupCtx := workflow.WithActivityOptions(ctx, lookupOptions())

	var client *schema.WebhookClient
	if err := workflow.ExecuteActivity(lookupCtx, w.executor.GetWebhookClientByID, clientID).Get(lookupCtx, &client); err != nil {
		return err
	}
	if client == nil || !client.IsActive {
		logger.InfoWf(ctx, "Webhook client gone or inactive, skipping",
			zap.String("client_id", clientID),
			zap.String("event_id", event.EventID))
		return nil
	}

	info := workflow.GetInfo(ctx)
	delivery := &schema.WebhookDelivery{
		ClientID:      client.ClientID,
		EventID:       event.EventID,
		EventType:     event.EventType,
		WorkflowID:    info.WorkflowExecution.ID,
		WorkflowRunID: info.WorkflowExecution.RunID,
	}

	var deliveryID uint64
	if err := workflow.ExecuteActivity(lookupCtx, w.executor.CreateWebhookDeliveryRecord, delivery, event).Get(lookupCtx, &deliveryID); err != nil {
		return err
	}

	deliveryCtx := workflow.WithActivityOptions(ctx, deliveryOptions(client.RetryMaxAttempts))

	var result webhook.DeliveryResult
	if err := workflow.ExecuteActivity(deliveryCtx, w.executor.DeliverWebhookHTTP, client, event, deliveryID).Get(deliveryCtx, &result); err != nil {
		return err
	}

	logger.InfoWf(ctx, "Webhook delivered",
		zap.String("client_id", clientID),
		zap.String("event_id", event.EventID),
		zap.Uint64("delivery_id", deliveryID),
		zap.Int("status_code", result.StatusCode))

	return nil
}

package workflows

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/adapter"
	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/store"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
	"github.com/feral-file/ff-token-gate/internal/webhook"
)

// Executor holds the activities of the webhook workflows
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error)

	GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error)

	// CreateWebhookDeliveryRecord stores a pending delivery with the event as payload
	CreateWebhookDeliveryRecord(ctx context.Context, delivery *schema.WebhookDelivery, event domain.ScreeningEvent) (uint64, error)

	// DeliverWebhookHTTP makes one signed POST and records the attempt.
	// Temporal owns the retries, a non-retryable error ends them early.
	DeliverWebhookHTTP(ctx context.Context, client *schema.WebhookClient, event domain.ScreeningEvent, deliveryID uint64) (webhook.DeliveryResult, error)
}

type executor struct {
	store      store.Store
	clock      adapter.Clock
	httpClient adapter.HTTPClient
	activity   adapter.Activity
}

func NewExecutor(st store.Store, clock adapter.Clock, httpClient adapter.HTTPClient, activity adapter.Activity) Executor {
	return &executor{
		store:      st,
		clock:      clock,
		httpClient: httpClient,
		activity:   activity,
	}
}

func (e *executor) GetActiveWebhookClientsByEventType(ctx context.Context, eventType string) ([]*schema.WebhookClient, error) {
	return e.store.GetActiveWebhookClientsByEventType(ctx, eventType)
}

func (e *executor) GetWebhookClientByID(ctx context.Context, clientID string) (*schema.WebhookClient, error) {
	return e.store.GetWebhookClientByID(ctx, clientID)
}

func (e *executor) CreateWebhookDeliveryRecord(ctx context.Context, delivery *schema.WebhookDelivery, event domain.ScreeningEvent) (uint64, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal webhook event: %w", err)
	}
	delivery.Payload = payload
	delivery.RunID = event.Data.RunID
	delivery.DeliveryStatus = schema.DeliveryPending

	if err := e.store.CreateWebhookDelivery(ctx, delivery); err != nil {
		return 0, err
	}
	return delivery.ID, nil
}

func (e *executor) DeliverWebhookHTTP(ctx context.Context, client *schema.WebhookClient, event domain.ScreeningEvent, deliveryID uint64) (webhook.DeliveryResult, error) {
	attempt := store.WebhookAttempt{Number: int(e.activity.GetInfo(ctx).Attempt)}
	ctx = logger.WithFields(ctx,
		zap.String("client_id", client.ClientID),
		zap.String("event_id", event.EventID),
		zap.Uint64("delivery_id", deliveryID))

	logger.InfoCtx(ctx, "Delivering webhook")

	req, err := webhook.Sign(client.WebhookSecret, event, e.clock.Now())
	if err != nil {
		attempt.Err = err
		e.record(ctx, deliveryID, attempt)
		return resultOf(attempt), temporal.NewNonRetryableApplicationError(err.Error(), "SignPayload", err)
	}

	resp, err := e.httpClient.PostWithHeadersNoRetry(ctx, client.WebhookURL, req.Headers, bytes.NewReader(req.Body))
	if err != nil {
		attempt.Err = err
		e.record(ctx, deliveryID, attempt)
		return resultOf(attempt), err
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "Failed to close webhook response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, webhook.MaxResponseBody))
	if err != nil {
		logger.WarnCtx(ctx, "Failed to read webhook response body", zap.Error(err))
	}
	attempt.ResponseStatus = &resp.StatusCode
	attempt.ResponseBody = string(body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		attempt.Delivered = true
		e.record(ctx, deliveryID, attempt)
		return resultOf(attempt), nil
	}

	attempt.Err = fmt.Errorf("HTTP %d", resp.StatusCode)
	e.record(ctx, deliveryID, attempt)
	if !webhook.Retryable(resp.StatusCode) {
		return resultOf(attempt), temporal.NewNonRetryableApplicationError(attempt.Err.Error(), "ClientRejected", attempt.Err)
	}
	return resultOf(attempt), attempt.Err
}

// record persists the attempt; a bookkeeping failure never fails the delivery
func (e *executor) record(ctx context.Context, deliveryID uint64, attempt store.WebhookAttempt) {
	if attempt.Err != nil {
		logger.WarnCtx(ctx, "Webhook delivery attempt failed", zap.Error(attempt.Err))
	}
	if err := e.store.RecordWebhookAttempt(ctx, deliveryID, attempt); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record webhook attempt: %w", err))
	}
}

func resultOf(attempt store.WebhookAttempt) webhook.DeliveryResult {
	result := webhook.DeliveryResult{
		Delivered: attempt.Delivered,
		Body:      attempt.ResponseBody,
	}
	if attempt.ResponseStatus != nil {
		result.StatusCode = *attempt.ResponseStatus
	}
	if attempt.Err != nil {
		result.Error = attempt.Err.Error()
	}
	return result
}

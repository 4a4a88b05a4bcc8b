package screening

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/eligibility"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/workflows"
)

// buildEvents returns the membership events followed by the run completion event
func (o *orchestrator) buildEvents(result *Result) []domain.ScreeningEvent {
	now := o.clock.Now()
	runID := result.RunID.String()

	newEvent := func(eventType string, data domain.ScreeningEventData) domain.ScreeningEvent {
		return domain.ScreeningEvent{
			EventID:   ulid.MustNewDefault(now).String(),
			EventType: eventType,
			Timestamp: now,
			Data:      data,
		}
	}

	membership := func(eventType string, members []eligibility.Member) []domain.ScreeningEvent {
		events := make([]domain.ScreeningEvent, 0, len(members))
		for _, m := range members {
			events = append(events, newEvent(eventType, domain.ScreeningEventData{
				RunID: runID,
				Membership: &domain.MembershipData{
					ProfileID: m.ProfileID.String(),
					Handle:    m.Handle,
					Total:     domain.AmountString(result.totals[m.ProfileID]),
				},
			}))
		}
		return events
	}

	var events []domain.ScreeningEvent
	if result.Status == domain.RunStatusSuccess {
		events = append(events, membership(domain.EventTypeMembershipAdded, result.NewlyEligible)...)
		events = append(events, membership(domain.EventTypeMembershipRemoved, result.Dropped)...)
	}

	events = append(events, newEvent(domain.EventTypeRunCompleted, domain.ScreeningEventData{
		RunID: runID,
		Run: &domain.RunData{
			Status:            result.Status,
			BlockNumber:       result.BlockNumber,
			ProfilesProcessed: result.ProfilesProcessed,
			WalletsProcessed:  result.WalletsProcessed,
			WalletsFailed:     result.WalletsFailed,
			EligibleCount:     result.EligibleCount,
			NewlyEligible:     len(result.NewlyEligible),
			Dropped:           len(result.Dropped),
			MessageSent:       result.MessageSent,
		},
	}))

	return events
}

// emitEvents publishes the run's events and starts webhook fan-out (fire-and-forget)
func (o *orchestrator) emitEvents(ctx context.Context, result *Result) {
	if o.publisher == nil && o.temporal == nil {
		return
	}

	for _, event := range o.buildEvents(result) {
		if o.publisher != nil {
			if err := o.publisher.PublishEvent(ctx, &event); err != nil {
				logger.ErrorCtx(ctx, err,
					zap.String("event_type", event.EventType),
					zap.String("event_id", event.EventID))
			}
		}
		if o.temporal != nil {
			o.triggerWebhook(ctx, event)
		}
	}
}

// triggerWebhook starts the webhook notification workflow for an event
func (o *orchestrator) triggerWebhook(ctx context.Context, event domain.ScreeningEvent) {
	workflowOptions := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("webhook-notify-%s-%s", event.EventType, event.EventID),
		TaskQueue:             o.config.WebhookTaskQueue,
		WorkflowRunTimeout:    30 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	w := workflows.NewWebhookWorker(nil)
	workflowRun, err := o.temporal.ExecuteWorkflow(ctx, workflowOptions, w.NotifyWebhookClients, event)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("event_type", event.EventType),
			zap.String("event_id", event.EventID))
		return
	}

	// workflowRun is nil with mocked orchestrators
	if workflowRun != nil {
		logger.InfoCtx(ctx, "Webhook notification workflow started",
			zap.String("event_type", event.EventType),
			zap.String("workflow_id", workflowRun.GetID()),
			zap.String("workflow_run_id", workflowRun.GetRunID()))
	}
}

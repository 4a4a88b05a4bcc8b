package temporal

import (
	"context"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
	"go.uber.org/zap"

	"github.com/feral-file/ff-token-gate/internal/logger"
)

// NewSentryActivityInterceptor gives every activity execution its own Sentry
// hub and logger fields, so logger.*Ctx calls inside webhook activities carry
// the activity and workflow they belong to
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &activityScopeInterceptor{}
}

type activityScopeInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (s *activityScopeInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &activityScopeInbound{
		ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{Next: next},
	}
}

type activityScopeInbound struct {
	interceptor.ActivityInboundInterceptorBase
}

func (s *activityScopeInbound) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	info := activity.GetInfo(ctx)
	return s.Next.ExecuteActivity(scopeActivity(ctx, info), in)
}

// scopeActivity tags a cloned hub and the logger fields of ctx with the activity info
func scopeActivity(ctx context.Context, info activity.Info) context.Context {
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("activity_type", info.ActivityType.Name)
		scope.SetTag("workflow_id", info.WorkflowExecution.ID)
		scope.SetTag("task_queue", info.TaskQueue)
	})

	ctx = sentry.SetHubOnContext(ctx, hub)
	return logger.WithFields(ctx,
		zap.String("activity_type", info.ActivityType.Name),
		zap.String("workflow_id", info.WorkflowExecution.ID),
		zap.Int32("activity_attempt", info.Attempt))
}

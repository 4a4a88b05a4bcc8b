package workflows_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/mocks"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
	"github.com/feral-file/ff-token-gate/internal/webhook"
	"github.com/feral-file/ff-token-gate/internal/workflows"
)

// WebhookWorkflowTestSuite is the test suite for webhook workflow tests
type WebhookWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env      *testsuite.TestWorkflowEnvironment
	ctrl     *gomock.Controller
	executor *mocks.MockExecutor
	worker   workflows.WebhookWorker
}

// eventMatcher matches an event after it went through the workflow data converter
func eventMatcher(expected domain.ScreeningEvent) func(domain.ScreeningEvent) bool {
	return func(actual domain.ScreeningEvent) bool {
		return actual.EventID == expected.EventID &&
			actual.EventType == expected.EventType &&
			actual.Timestamp.Equal(expected.Timestamp) &&
			actual.Data.RunID == expected.Data.RunID
	}
}

func membershipEvent() domain.ScreeningEvent {
	return domain.ScreeningEvent{
		EventID:   "01JG8XAMPLE1234567890123456",
		EventType: domain.EventTypeMembershipAdded,
		Timestamp: time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC),
		Data: domain.ScreeningEventData{
			RunID: "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11",
			Membership: &domain.MembershipData{
				ProfileID: "0d9c3f7a-8a2e-4c55-9d0c-3a1e1f7b2c44",
				Handle:    "alice",
				Total:     "1000000000000000000000000",
			},
		},
	}
}

func webhookClient(clientID string, active bool, maxAttempts int) *schema.WebhookClient {
	eventFilters, _ := json.Marshal([]string{"*"})
	return &schema.WebhookClient{
		ClientID:         clientID,
		WebhookURL:       "https://webhook.example.com/endpoint",
		WebhookSecret:    "secret123",
		EventFilters:     datatypes.JSON(eventFilters),
		IsActive:         active,
		RetryMaxAttempts: maxAttempts,
	}
}

// SetupTest is called before each test
func (s *WebhookWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.worker = workflows.NewWebhookWorker(s.executor)
}

// TearDownTest is called after each test
func (s *WebhookWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

func TestWebhookWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookWorkflowTestSuite))
}

// ====================================================================================
// NotifyWebhookClients Tests
// ====================================================================================

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_NoClients() {
	event := membershipEvent()

	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, event.EventType).
		Return([]*schema.WebhookClient{}, nil)

	s.env.ExecuteWorkflow(s.worker.NotifyWebhookClients, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_GetClientsError() {
	event := membershipEvent()

	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, event.EventType).
		Return(nil, errors.New("database error"))

	s.env.ExecuteWorkflow(s.worker.NotifyWebhookClients, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestNotifyWebhookClients_MultipleClients() {
	event := domain.ScreeningEvent{
		EventID:   "01JG8XAMPLE1234567890123457",
		EventType: domain.EventTypeRunCompleted,
		Timestamp: time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC),
		Data: domain.ScreeningEventData{
			RunID: "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11",
			Run:   &domain.RunData{Status: domain.RunStatusSuccess, EligibleCount: 2},
		},
	}

	clients := []*schema.WebhookClient{
		webhookClient("client-123", true, 5),
		webhookClient("client-456", true, 3),
	}

	s.env.OnActivity(s.executor.GetActiveWebhookClientsByEventType, mock.Anything, event.EventType).
		Return(clients, nil)

	s.env.OnWorkflow(s.worker.DeliverWebhook, mock.Anything, "client-123", mock.MatchedBy(eventMatcher(event))).Return(nil)
	s.env.OnWorkflow(s.worker.DeliverWebhook, mock.Anything, "client-456", mock.MatchedBy(eventMatcher(event))).Return(nil)

	s.env.ExecuteWorkflow(s.worker.NotifyWebhookClients, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

// ====================================================================================
// DeliverWebhook Tests
// ====================================================================================

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_Success() {
	clientID := "client-123"
	event := membershipEvent()
	client := webhookClient(clientID, true, 5)

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(client, nil)

	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.MatchedBy(eventMatcher(event))).
		Return(uint64(1), nil)

	s.env.OnActivity(s.executor.DeliverWebhookHTTP, mock.Anything, client, mock.MatchedBy(eventMatcher(event)), uint64(1)).
		Return(webhook.DeliveryResult{Delivered: true, StatusCode: 200, Body: `{"status":"received"}`}, nil)

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_ClientNotFound() {
	clientID := "non-existent-client"

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(nil, nil)

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, membershipEvent())

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_ClientNotActive() {
	clientID := "client-123"

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(webhookClient(clientID, false, 5), nil)

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, membershipEvent())

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_CreateDeliveryRecordError() {
	clientID := "client-123"
	event := membershipEvent()

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(webhookClient(clientID, true, 5), nil)

	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.MatchedBy(eventMatcher(event))).
		Return(uint64(0), errors.New("database error"))

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_DeliveryFailed() {
	clientID := "client-123"
	event := membershipEvent()
	maxAttempts := 3
	client := webhookClient(clientID, true, maxAttempts)

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(client, nil)

	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.MatchedBy(eventMatcher(event))).
		Return(uint64(1), nil)

	var activityCallCount int
	s.env.OnActivity(s.executor.DeliverWebhookHTTP, mock.Anything, client, mock.MatchedBy(eventMatcher(event)), uint64(1)).
		Return(func(ctx context.Context, client *schema.WebhookClient, event domain.ScreeningEvent, deliveryID uint64) (webhook.DeliveryResult, error) {
			activityCallCount++
			return webhook.DeliveryResult{StatusCode: 500}, errors.New("HTTP 500")
		}, nil)

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
	s.Equal(maxAttempts, activityCallCount, "delivery should use the client's attempt budget")
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_ClientRejectedStopsRetrying() {
	clientID := "client-123"
	event := membershipEvent()
	client := webhookClient(clientID, true, 5)

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(client, nil)
	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.MatchedBy(eventMatcher(event))).
		Return(uint64(1), nil)

	var calls int
	s.env.OnActivity(s.executor.DeliverWebhookHTTP, mock.Anything, client, mock.MatchedBy(eventMatcher(event)), uint64(1)).
		Return(func(ctx context.Context, client *schema.WebhookClient, event domain.ScreeningEvent, deliveryID uint64) (webhook.DeliveryResult, error) {
			calls++
			return webhook.DeliveryResult{StatusCode: 410}, temporal.NewNonRetryableApplicationError("HTTP 410", "ClientRejected", nil)
		}, nil)

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
	s.Equal(1, calls)
}

func (s *WebhookWorkflowTestSuite) TestDeliverWebhook_ZeroBudgetUsesDefault() {
	clientID := "client-123"
	event := membershipEvent()
	client := webhookClient(clientID, true, 0)

	s.env.OnActivity(s.executor.GetWebhookClientByID, mock.Anything, clientID).
		Return(client, nil)
	s.env.OnActivity(s.executor.CreateWebhookDeliveryRecord, mock.Anything, mock.AnythingOfType("*schema.WebhookDelivery"), mock.MatchedBy(eventMatcher(event))).
		Return(uint64(1), nil)

	var calls int
	s.env.OnActivity(s.executor.DeliverWebhookHTTP, mock.Anything, client, mock.MatchedBy(eventMatcher(event)), uint64(1)).
		Return(func(ctx context.Context, client *schema.WebhookClient, event domain.ScreeningEvent, deliveryID uint64) (webhook.DeliveryResult, error) {
			calls++
			return webhook.DeliveryResult{StatusCode: 503}, errors.New("HTTP 503")
		}, nil)

	s.env.ExecuteWorkflow(s.worker.DeliverWebhook, clientID, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
	s.Equal(5, calls)
}

package workflows_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/logger"
	"github.com/feral-file/ff-token-gate/internal/mocks"
	"github.com/feral-file/ff-token-gate/internal/store"
	"github.com/feral-file/ff-token-gate/internal/store/schema"
	"github.com/feral-file/ff-token-gate/internal/webhook"
	"github.com/feral-file/ff-token-gate/internal/workflows"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl             *gomock.Controller
	store            *mocks.MockStore
	clock            *mocks.MockClock
	httpClient       *mocks.MockHTTPClient
	temporalActivity *mocks.MockActivity
	executor         workflows.Executor
}

var testNow = time.Date(2030, 1, 15, 10, 0, 0, 0, time.UTC)

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:             ctrl,
		store:            mocks.NewMockStore(ctrl),
		clock:            mocks.NewMockClock(ctrl),
		httpClient:       mocks.NewMockHTTPClient(ctrl),
		temporalActivity: mocks.NewMockActivity(ctrl),
	}

	tm.executor = workflows.NewExecutor(tm.store, tm.clock, tm.httpClient, tm.temporalActivity)

	return tm
}

func testClient() *schema.WebhookClient {
	return &schema.WebhookClient{
		ClientID:      "client-123",
		WebhookURL:    "https://example.com/webhook",
		WebhookSecret: "secret-key",
	}
}

func testEvent() domain.ScreeningEvent {
	return domain.ScreeningEvent{
		EventID:   "01JG8XAMPLE1234567890123456",
		EventType: domain.EventTypeRunCompleted,
		Timestamp: testNow,
		Data: domain.ScreeningEventData{
			RunID: "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11",
			Run:   &domain.RunData{Status: domain.RunStatusSuccess, EligibleCount: 4},
		},
	}
}

func TestGetActiveWebhookClientsByEventType(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	expected := []*schema.WebhookClient{testClient()}
	m.store.EXPECT().
		GetActiveWebhookClientsByEventType(ctx, domain.EventTypeRunCompleted).
		Return(expected, nil)

	clients, err := m.executor.GetActiveWebhookClientsByEventType(ctx, domain.EventTypeRunCompleted)
	require.NoError(t, err)
	assert.Equal(t, expected, clients)
}

func TestGetWebhookClientByID_NotFound(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()

	m.store.EXPECT().GetWebhookClientByID(ctx, "missing").Return(nil, nil)

	client, err := m.executor.GetWebhookClientByID(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestCreateWebhookDeliveryRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the event as payload", func(t *testing.T) {
		m := setupTestExecutor(t)
		delivery := &schema.WebhookDelivery{
			ClientID:  "client-123",
			EventID:   testEvent().EventID,
			EventType: testEvent().EventType,
		}

		m.store.EXPECT().
			CreateWebhookDelivery(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *schema.WebhookDelivery) error {
				var decoded domain.ScreeningEvent
				require.NoError(t, json.Unmarshal(d.Payload, &decoded))
				assert.Equal(t, testEvent().EventID, decoded.EventID)
				assert.Equal(t, schema.DeliveryPending, d.DeliveryStatus)
				assert.Equal(t, testEvent().Data.RunID, d.RunID)
				d.ID = 42
				return nil
			})

		id, err := m.executor.CreateWebhookDeliveryRecord(ctx, delivery, testEvent())
		require.NoError(t, err)
		assert.Equal(t, uint64(42), id)
	})

	t.Run("store error", func(t *testing.T) {
		m := setupTestExecutor(t)
		expected := errors.New("database error")
		m.store.EXPECT().CreateWebhookDelivery(ctx, gomock.Any()).Return(expected)

		id, err := m.executor.CreateWebhookDeliveryRecord(ctx, &schema.WebhookDelivery{}, testEvent())
		assert.Equal(t, expected, err)
		assert.Equal(t, uint64(0), id)
	})
}

func TestDeliverWebhookHTTP_Delivered(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	client := testClient()
	event := testEvent()

	m.temporalActivity.EXPECT().GetInfo(gomock.Any()).Return(activity.Info{Attempt: 1})
	m.clock.EXPECT().Now().Return(testNow)
	m.httpClient.EXPECT().
		PostWithHeadersNoRetry(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body io.Reader) (*http.Response, error) {
			payload, err := io.ReadAll(body)
			require.NoError(t, err)

			timestamp, err := strconv.ParseInt(headers[webhook.HeaderTimestamp], 10, 64)
			require.NoError(t, err)
			assert.Equal(t, testNow.Unix(), timestamp)
			assert.Equal(t, event.EventID, headers[webhook.HeaderEventID])
			assert.Equal(t, event.EventType, headers[webhook.HeaderEventType])
			assert.True(t, webhook.VerifySignature(client.WebhookSecret, payload, headers[webhook.HeaderSignature], timestamp, event.EventID))

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"status":"ok"}`)),
			}, nil
		})
	m.store.EXPECT().
		RecordWebhookAttempt(gomock.Any(), uint64(789), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, attempt store.WebhookAttempt) error {
			assert.Equal(t, 1, attempt.Number)
			assert.True(t, attempt.Delivered)
			assert.Equal(t, schema.DeliveryDelivered, attempt.Status())
			assert.Equal(t, `{"status":"ok"}`, attempt.ResponseBody)
			assert.NoError(t, attempt.Err)
			return nil
		})

	result, err := m.executor.DeliverWebhookHTTP(ctx, client, event, 789)
	require.NoError(t, err)
	assert.True(t, result.Delivered)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestDeliverWebhookHTTP_TransportError(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	client := testClient()
	expected := errors.New("connection refused")

	m.temporalActivity.EXPECT().GetInfo(gomock.Any()).Return(activity.Info{Attempt: 2})
	m.clock.EXPECT().Now().Return(testNow)
	m.httpClient.EXPECT().
		PostWithHeadersNoRetry(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(nil, expected)
	m.store.EXPECT().
		RecordWebhookAttempt(gomock.Any(), uint64(789), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uint64, attempt store.WebhookAttempt) error {
			assert.Equal(t, 2, attempt.Number)
			assert.Equal(t, schema.DeliveryFailed, attempt.Status())
			assert.Nil(t, attempt.ResponseStatus)
			assert.Equal(t, expected, attempt.Err)
			return nil
		})

	result, err := m.executor.DeliverWebhookHTTP(ctx, client, testEvent(), 789)
	assert.Equal(t, expected, err)
	assert.False(t, result.Delivered)
	assert.Equal(t, expected.Error(), result.Error)
}

func TestDeliverWebhookHTTP_ServerErrorIsRetryable(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	client := testClient()

	m.temporalActivity.EXPECT().GetInfo(gomock.Any()).Return(activity.Info{Attempt: 1})
	m.clock.EXPECT().Now().Return(testNow)
	m.httpClient.EXPECT().
		PostWithHeadersNoRetry(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(&http.Response{
			StatusCode: http.StatusInternalServerError,
			Body:       io.NopCloser(bytes.NewBufferString(`{"error":"internal server error"}`)),
		}, nil)
	m.store.EXPECT().RecordWebhookAttempt(gomock.Any(), uint64(789), gomock.Any()).Return(nil)

	result, err := m.executor.DeliverWebhookHTTP(ctx, client, testEvent(), 789)
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	assert.False(t, errors.As(err, &appErr) && appErr.NonRetryable())
	assert.False(t, result.Delivered)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Contains(t, result.Body, "internal server error")
}

func TestDeliverWebhookHTTP_ClientErrorIsFinal(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	client := testClient()

	m.temporalActivity.EXPECT().GetInfo(gomock.Any()).Return(activity.Info{Attempt: 1})
	m.clock.EXPECT().Now().Return(testNow)
	m.httpClient.EXPECT().
		PostWithHeadersNoRetry(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(&http.Response{StatusCode: http.StatusGone, Body: io.NopCloser(bytes.NewReader(nil))}, nil)
	m.store.EXPECT().RecordWebhookAttempt(gomock.Any(), uint64(789), gomock.Any()).Return(nil)

	_, err := m.executor.DeliverWebhookHTTP(ctx, client, testEvent(), 789)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.True(t, appErr.NonRetryable())
	assert.Equal(t, "ClientRejected", appErr.Type())
}

func TestDeliverWebhookHTTP_RecordFailureDoesNotFailDelivery(t *testing.T) {
	m := setupTestExecutor(t)
	ctx := context.Background()
	client := testClient()

	m.temporalActivity.EXPECT().GetInfo(gomock.Any()).Return(activity.Info{Attempt: 1})
	m.clock.EXPECT().Now().Return(testNow)
	m.httpClient.EXPECT().
		PostWithHeadersNoRetry(gomock.Any(), client.WebhookURL, gomock.Any(), gomock.Any()).
		Return(&http.Response{StatusCode: http.StatusNoContent, Body: io.NopCloser(bytes.NewReader(nil))}, nil)
	m.store.EXPECT().
		RecordWebhookAttempt(gomock.Any(), uint64(789), gomock.Any()).
		Return(errors.New("database error"))

	result, err := m.executor.DeliverWebhookHTTP(ctx, client, testEvent(), 789)
	require.NoError(t, err)
	assert.True(t, result.Delivered)
}

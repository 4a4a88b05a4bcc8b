package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-token-gate/internal/domain"
	"github.com/feral-file/ff-token-gate/internal/messaging"
	"github.com/feral-file/ff-token-gate/internal/mocks"
	"github.com/feral-file/ff-token-gate/internal/providers/jetstream"
)

type publisherMocks struct {
	natsJS *mocks.MockNatsJetStream
	nc     *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupMocks(t *testing.T) *publisherMocks {
	ctrl := gomock.NewController(t)
	return &publisherMocks{
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		nc:     mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

var testConfig = jetstream.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "TOKEN_GATE",
	SubjectPrefix:  "tokengate",
	MaxReconnects:  5,
	ReconnectWait:  time.Second,
	ConnectionName: "screener",
}

func TestNewPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("ensures stream over the subject prefix", func(t *testing.T) {
		m := setupMocks(t)
		m.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(m.nc, m.js, nil)
		m.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cfg natsjs.StreamConfig) error {
				assert.Equal(t, "TOKEN_GATE", cfg.Name)
				assert.Equal(t, []string{"tokengate.>"}, cfg.Subjects)
				return nil
			})
		m.nc.EXPECT().ConnectedUrl().Return(testConfig.URL)

		pub, err := jetstream.NewPublisher(ctx, testConfig, m.natsJS)
		require.NoError(t, err)
		require.NotNil(t, pub)
	})

	t.Run("connect failure", func(t *testing.T) {
		m := setupMocks(t)
		m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

		pub, err := jetstream.NewPublisher(ctx, testConfig, m.natsJS)
		assert.Error(t, err)
		assert.Nil(t, pub)
	})

	t.Run("stream failure closes the connection", func(t *testing.T) {
		m := setupMocks(t)
		m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.nc, m.js, nil)
		m.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(errors.New("insufficient resources"))
		m.nc.EXPECT().Close()

		pub, err := jetstream.NewPublisher(ctx, testConfig, m.natsJS)
		assert.Error(t, err)
		assert.Nil(t, pub)
	})
}

func TestPublishEvent(t *testing.T) {
	ctx := context.Background()
	event := &domain.ScreeningEvent{
		EventID:   "01JG8XAMPLE1234567890123456",
		EventType: domain.EventTypeRunCompleted,
		Timestamp: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		Data: domain.ScreeningEventData{
			RunID: "4b8e2d8e-6f0a-4a38-9a53-6e0a1f3b9c11",
			Run:   &domain.RunData{Status: domain.RunStatusSuccess, EligibleCount: 3},
		},
	}

	newPublisher := func(t *testing.T, m *publisherMocks) messaging.Publisher {
		m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.nc, m.js, nil)
		m.js.EXPECT().CreateOrUpdateStream(gomock.Any(), gomock.Any()).Return(nil)
		m.nc.EXPECT().ConnectedUrl().Return(testConfig.URL)
		pub, err := jetstream.NewPublisher(ctx, testConfig, m.natsJS)
		require.NoError(t, err)
		return pub
	}

	t.Run("publishes on the event subject", func(t *testing.T) {
		m := setupMocks(t)
		pub := newPublisher(t, m)

		m.js.EXPECT().Publish(gomock.Any(), "tokengate.screening.run.completed", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
				var decoded domain.ScreeningEvent
				require.NoError(t, json.Unmarshal(data, &decoded))
				assert.Equal(t, event.EventID, decoded.EventID)
				assert.Equal(t, 3, decoded.Data.Run.EligibleCount)
				return &natsjs.PubAck{Stream: "TOKEN_GATE", Sequence: 1}, nil
			})

		require.NoError(t, pub.PublishEvent(ctx, event))
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		m := setupMocks(t)
		pub := newPublisher(t, m)

		m.js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("nats: timeout"))

		assert.Error(t, pub.PublishEvent(ctx, event))
	})

	t.Run("close drains the connection", func(t *testing.T) {
		m := setupMocks(t)
		pub := newPublisher(t, m)

		m.nc.EXPECT().Drain().Return(nil)
		pub.Close()
	})
}

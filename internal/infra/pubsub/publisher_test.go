package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/config"
	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.OrderEvent {
	return &service.OrderEvent{
		RequestID:   "req-1",
		Type:        service.OrderEventCreated,
		OrderID:     "order-1",
		ShopID:      "shop-1",
		CustomerID:  "customer-1",
		Status:      "pending",
		TotalAmount: 12.5,
		OccurredAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "order.created", received.Message.Attributes["event_type"])
	assert.Equal(t, "order-1", received.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OrderEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "order-1", event.OrderID)
	assert.Equal(t, 12.5, event.TotalAmount)
	assert.True(t, testEvent().OccurredAt.Equal(event.OccurredAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestKafkaPublisher_SendsKeyedMessage(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		assert.Equal(t, "order-events", msg.Topic)

		key, err := msg.Key.Encode()
		require.NoError(t, err)
		assert.Equal(t, "order-1", string(key))

		value, err := msg.Value.Encode()
		require.NoError(t, err)

		var event service.OrderEvent
		require.NoError(t, json.Unmarshal(value, &event))
		assert.Equal(t, service.OrderEventCreated, event.Type)

		return nil
	})

	publisher := newKafkaPublisherWithProducer(producer, "order-events", testLogger())
	require.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisherWithProducer(producer, "order-events", testLogger())
	err := publisher.PublishOrderEvent(context.Background(), testEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestNoopPublisher(t *testing.T) {
	publisher, err := newPublisher(context.Background(), nil, testLogger())
	require.NoError(t, err)
	assert.NoError(t, publisher.PublishOrderEvent(context.Background(), testEvent()))
}

func TestNewPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "nil config", cfg: nil},
		{name: "disabled", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderNone}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:1"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "kafka without brokers", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka}, wantErr: "at least one broker"},
		{name: "kafka without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderKafka, KafkaBrokers: []string{"b:9092"}}, wantErr: "topic is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "carrier-pigeon"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := newPublisher(context.Background(), tt.cfg, testLogger())
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}

package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// kafkaPublisher implements EventPublisher with a synchronous Kafka producer.
// Messages are keyed by order id so one order's events land on one partition.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaProducerConfig returns the producer settings used for order events.
func NewKafkaProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Return.Successes = true
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Version = sarama.V2_6_0_0

	return cfg
}

// NewKafkaPublisher connects a sync producer to the brokers.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (service.EventPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewKafkaProducerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return newKafkaPublisherWithProducer(producer, topic, logger), nil
}

func newKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishOrderEvent sends the event and waits for broker acknowledgement.
func (p *kafkaPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := make([]sarama.RecordHeader, 0, 4)
	for k, v := range eventAttributes(event) {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(event.OrderID),
		Value:   sarama.ByteEncoder(data),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to send message to kafka")
	}

	p.logger.DebugContext(ctx, "[Kafka] Event published",
		slog.String("type", string(event.Type)),
		slog.String("order_id", event.OrderID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

// Close flushes and closes the producer.
func (p *kafkaPublisher) Close() error {
	return errors.WithStack(p.producer.Close())
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/eventsync/ticket-service/internal/domain"
	"github.com/eventsync/ticket-service/pkg/kafka"
)

// KafkaTicketPublisher publishes ticket lifecycle events to a Kafka topic
type KafkaTicketPublisher struct {
	producer *kafka.Producer
	topic    string
}

// NewKafkaTicketPublisher creates a new KafkaTicketPublisher
func NewKafkaTicketPublisher(producer *kafka.Producer, topic string) *KafkaTicketPublisher {
	return &KafkaTicketPublisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish emits a ticket lifecycle event, keyed by ticket ID so events for
// the same ticket stay ordered
func (p *KafkaTicketPublisher) Publish(ctx context.Context, event *domain.TicketEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode ticket event: %w", err)
	}

	return p.producer.Produce(ctx, &kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.Key()),
		Value: payload,
		Headers: map[string]string{
			"event_type": string(event.Type),
		},
		Timestamp: event.OccurredAt,
	})
}

// Close flushes pending produces and closes the producer
func (p *KafkaTicketPublisher) Close() {
	p.producer.Close()
}

// NoOpTicketPublisher discards all events, used when Kafka is disabled
type NoOpTicketPublisher struct{}

// NewNoOpTicketPublisher creates a publisher that discards all events
func NewNoOpTicketPublisher() *NoOpTicketPublisher {
	return &NoOpTicketPublisher{}
}

// Publish discards the event
func (p *NoOpTicketPublisher) Publish(ctx context.Context, event *domain.TicketEvent) error {
	return nil
}

// Close is a no-op
func (p *NoOpTicketPublisher) Close() {}

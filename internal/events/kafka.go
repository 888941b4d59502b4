package events

import (
	"context"
	"encoding/json"
	"time"

	"boba-storefront/internal/service"

	"github.com/segmentio/kafka-go"
)

// KafkaBus publishes storefront events to a single topic, keyed by order
// number so events for one order stay ordered within a partition.
type KafkaBus struct {
	writer *kafka.Writer
}

func NewKafkaBus(brokers []string, topic string) *KafkaBus {
	return &KafkaBus{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

type envelope struct {
	Type       string `json:"type"`
	OccurredAt string `json:"occurred_at"`
	Payload    any    `json:"payload"`
}

func (b *KafkaBus) publish(ctx context.Context, eventType, key string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	value, err := json.Marshal(envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Payload:    payload,
	})
	if err != nil {
		return err
	}
	return b.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (b *KafkaBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	return b.publish(ctx, "order.created", e.OrderNumber, e)
}

func (b *KafkaBus) PublishOrderStatusChanged(ctx context.Context, e service.OrderStatusChangedEvent) error {
	return b.publish(ctx, "order.status_changed", e.OrderNumber, e)
}

func (b *KafkaBus) PublishPaymentInitiated(ctx context.Context, e service.PaymentInitiatedEvent) error {
	return b.publish(ctx, "payment.initiated", e.OrderNumber, e)
}

func (b *KafkaBus) Close() error {
	return b.writer.Close()
}

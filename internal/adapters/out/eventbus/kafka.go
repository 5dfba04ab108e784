package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"deliveryops/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher mirrors order status changes to a topic for downstream
// consumers. Other events are ignored. Messages are keyed by order id so a
// consumer sees the changes of one order in commit order.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaWriter builds a writer for topic on the given brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// NewKafkaPublisher wraps writer.
func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish writes order_status_changed events. The payload must be a
// ports.OrderStatusChangedPayload.
func (p *KafkaPublisher) Publish(ctx context.Context, name ports.EventName, payload any) error {
	if name != ports.OrderStatusChanged {
		return nil
	}

	changed, ok := payload.(ports.OrderStatusChangedPayload)
	if !ok {
		return fmt.Errorf("kafka: unexpected %s payload %T", name, payload)
	}

	value, err := json.Marshal(changed)
	if err != nil {
		return fmt.Errorf("kafka: encode %s: %w", name, err)
	}

	msg := kafka.Message{
		Key:   []byte(changed.OrderID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(name)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write %s: %w", name, err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

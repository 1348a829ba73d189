package events

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"gamestore/internal/domain"
	"github.com/segmentio/kafka-go"
)

// Publisher emits order lifecycle events to Kafka. A nil *Publisher is a
// valid no-op, so callers do not need to guard for a disabled broker.
type Publisher struct {
	writer *kafka.Writer
	logger *log.Logger
}

func NewPublisher(brokers []string, topic string, logger *log.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 5 * time.Second,
	}
	return &Publisher{writer: writer, logger: logger}
}

type orderCreatedEvent struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	TotalCents int64     `json:"totalCents"`
	Items      int       `json:"items"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderCreated publishes an order.created event keyed by user id.
func (p *Publisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	if p == nil {
		return nil
	}
	payload, err := json.Marshal(orderCreatedEvent{
		Type:       "order.created",
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.TotalCents,
		Items:      len(order.Items),
		CreatedAt:  order.CreatedAt,
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.UserID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}

package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"campus_feed/internal/domain"
)

// SignalApplier applies one reputation signal. Implementations must be
// idempotent on the signal ID so redelivered messages are harmless.
type SignalApplier interface {
	ApplySignal(ctx context.Context, signal domain.ReputationSignal) error
}

// SignalMessage is the wire form of an inbound engagement signal from
// the other campus services (article reads, note downloads, reports).
type SignalMessage struct {
	SignalID string            `json:"signal_id"`
	Kind     domain.SignalKind `json:"kind"`
	UserID   string            `json:"user_id"`
	Value    int               `json:"value"`
	Reverse  bool              `json:"reverse"`
}

type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	logger  *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("consuming engagement signals",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:    conn,
		channel: ch,
		queue:   cfg.QueueName,
		logger:  logger,
	}, nil
}

// Start consumes signals until the context is cancelled or the channel
// closes. Malformed messages are dropped; failed applications are
// requeued once via the redelivered flag.
func (r *RabbitMQ) Start(ctx context.Context, applier SignalApplier) error {
	deliveries, err := r.channel.Consume(
		r.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			r.handle(ctx, applier, d)
		}
	}
}

func (r *RabbitMQ) handle(ctx context.Context, applier SignalApplier, d amqp.Delivery) {
	var msg SignalMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		r.logger.Error("dropping malformed signal", "error", err)
		_ = d.Nack(false, false)
		return
	}

	err := applier.ApplySignal(ctx, domain.ReputationSignal{
		ID:      msg.SignalID,
		Kind:    msg.Kind,
		UserID:  msg.UserID,
		Value:   msg.Value,
		Reverse: msg.Reverse,
	})
	if err != nil {
		r.logger.Error("apply signal failed",
			"signal_id", msg.SignalID,
			"kind", msg.Kind,
			"redelivered", d.Redelivered,
			"error", err,
		)
		_ = d.Nack(false, !d.Redelivered)
		return
	}

	_ = d.Ack(false)
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

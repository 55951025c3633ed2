package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"campus_feed/internal/domain"
)

type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
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

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// EngagementMessage is the wire envelope for the engagement stream.
// Event is "reputation_signal" or "content_embed"; only the matching
// payload field is set.
type EngagementMessage struct {
	Event     string               `json:"event"`
	Signal    *SignalPayload       `json:"signal,omitempty"`
	Embed     *domain.ContentEmbed `json:"embed,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

type SignalPayload struct {
	SignalID string            `json:"signal_id"`
	Kind     domain.SignalKind `json:"kind"`
	UserID   string            `json:"user_id"`
	Delta    int               `json:"delta"`
	Reverse  bool              `json:"reverse"`
}

func (r *RabbitMQ) PublishSignal(ctx context.Context, signal domain.ReputationSignal, delta int) error {
	msg := EngagementMessage{
		Event: "reputation_signal",
		Signal: &SignalPayload{
			SignalID: signal.ID,
			Kind:     signal.Kind,
			UserID:   signal.UserID,
			Delta:    delta,
			Reverse:  signal.Reverse,
		},
		Timestamp: time.Now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published reputation signal",
		"signal_id", signal.ID,
		"kind", signal.Kind,
		"delta", delta,
	)
	return nil
}

func (r *RabbitMQ) PublishEmbed(ctx context.Context, e *domain.ContentEmbed) error {
	msg := EngagementMessage{
		Event:     "content_embed",
		Embed:     e,
		Timestamp: time.Now().UTC(),
	}
	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published embed",
		"embed_id", e.ID,
		"source", e.SourceID,
		"target", e.EmbeddedID,
	)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msg EngagementMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
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

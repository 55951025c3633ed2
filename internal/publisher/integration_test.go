//go:build integration

package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
	"github.com/testcontainers/testcontainers-go/wait"

	"campus_feed/internal/domain"
)

type RabbitMQIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *rabbitmq.RabbitMQContainer
	amqpURL   string
	logger    *slog.Logger
}

func (s *RabbitMQIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	container, err := rabbitmq.Run(s.ctx,
		"rabbitmq:3.13-management-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Server startup complete").
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	amqpURL, err := container.AmqpURL(s.ctx)
	s.Require().NoError(err)
	s.amqpURL = amqpURL
}

func (s *RabbitMQIntegrationSuite) TearDownSuite() {
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func TestRabbitMQIntegrationSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQIntegrationSuite))
}

func (s *RabbitMQIntegrationSuite) TestPublisher_Connection() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange",
		RoutingKey: "test-routing-key",
		QueueName:  "test-queue",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.NoError(err)
	s.NotNil(pub)

	err = pub.Close()
	s.NoError(err)
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishSignal() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-signal",
		RoutingKey: "test-routing-key-signal",
		QueueName:  "test-queue-signal",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	signal := domain.ReputationSignal{
		ID:     "cross_embed:ce_1",
		Kind:   domain.SignalCrossEmbed,
		UserID: "u1",
	}

	err = pub.PublishSignal(s.ctx, signal, 5)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	var received EngagementMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("reputation_signal", received.Event)
	s.Require().NotNil(received.Signal)
	s.Equal("cross_embed:ce_1", received.Signal.SignalID)
	s.Equal(domain.SignalCrossEmbed, received.Signal.Kind)
	s.Equal(5, received.Signal.Delta)
	s.Nil(received.Embed)
	s.False(received.Timestamp.IsZero())
}

func (s *RabbitMQIntegrationSuite) TestPublisher_PublishEmbed() {
	cfg := Config{
		URL:        s.amqpURL,
		Exchange:   "test-exchange-embed",
		RoutingKey: "test-routing-key-embed",
		QueueName:  "test-queue-embed",
	}

	pub, err := NewRabbitMQ(cfg, s.logger)
	s.Require().NoError(err)
	defer pub.Close()

	embed := &domain.ContentEmbed{
		ID:               "ce_1",
		SourceType:       "post",
		SourceID:         "fp_1",
		EmbeddedType:     domain.TargetArticle,
		EmbeddedID:       "ar_2",
		EmbeddedCampusID: "c1",
		CreatedByUserID:  "u1",
		CreatedAt:        time.Now().Truncate(time.Millisecond),
	}

	err = pub.PublishEmbed(s.ctx, embed)
	s.NoError(err)

	msg := s.consumeMessage(cfg)
	s.Require().NotNil(msg)

	s.Equal("application/json", msg.ContentType)
	s.Equal(uint8(amqp.Persistent), msg.DeliveryMode)

	var received EngagementMessage
	err = json.Unmarshal(msg.Body, &received)
	s.NoError(err)
	s.Equal("content_embed", received.Event)
	s.Require().NotNil(received.Embed)
	s.Equal("ce_1", received.Embed.ID)
	s.Equal("ar_2", received.Embed.EmbeddedID)
	s.Nil(received.Signal)
}

func (s *RabbitMQIntegrationSuite) consumeMessage(cfg Config) *amqp.Delivery {
	conn, err := amqp.Dial(s.amqpURL)
	s.Require().NoError(err)
	defer conn.Close()

	ch, err := conn.Channel()
	s.Require().NoError(err)
	defer ch.Close()

	msgs, err := ch.Consume(cfg.QueueName, "", true, false, false, false, nil)
	s.Require().NoError(err)

	select {
	case msg := <-msgs:
		return &msg
	case <-time.After(5 * time.Second):
		s.Fail("timed out waiting for message")
		return nil
	}
}

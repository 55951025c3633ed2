package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"campus_feed/internal/config"
	"campus_feed/internal/consumer"
	"campus_feed/internal/embed"
	"campus_feed/internal/publisher"
	"campus_feed/internal/ratelimit"
	"campus_feed/internal/scheduler"
	"campus_feed/internal/service"
	"campus_feed/internal/spam"
	"campus_feed/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rabbitMQ.Close()

	contentStore := postgres.NewContentStore(db)
	embedStore := postgres.NewEmbedStore(db)
	reputationStore := postgres.NewReputationStore(db)
	rateLimitStore := postgres.NewRateLimitStore(db)
	txManager := postgres.NewTransactionManager(db)

	gate := spam.NewGate(cfg.Spam.MinOriginalText)
	limiter := ratelimit.NewLimiter(rateLimitStore, reputationStore, map[ratelimit.ActionClass]ratelimit.Quota{
		ratelimit.ActionPost:       {BaseMax: cfg.RateLimits.Posts.BaseMax, Window: cfg.RateLimits.Posts.Window},
		ratelimit.ActionComment:    {BaseMax: cfg.RateLimits.Comments.BaseMax, Window: cfg.RateLimits.Comments.Window},
		ratelimit.ActionNoteUpload: {BaseMax: cfg.RateLimits.NoteUploads.BaseMax, Window: cfg.RateLimits.NoteUploads.Window},
	})
	validator := embed.NewValidator(embedStore, contentStore, embed.ValidatorConfig{
		MinOriginalText: cfg.Embeds.MinOriginalText,
		SelfEmbedWindow: cfg.Embeds.SelfEmbedWindow,
		SelfEmbedMax:    cfg.Embeds.SelfEmbedMax,
	})

	contentService := service.NewContentService(
		contentStore,
		embedStore,
		reputationStore,
		txManager,
		rabbitMQ,
		gate,
		limiter,
		validator,
		cfg.Reputation.FeaturedThreshold,
		logger,
	)

	signals, err := consumer.NewRabbitMQ(consumer.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.SignalRoutingKey,
		QueueName:  cfg.RabbitMQ.SignalQueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to open signal consumer", "error", err)
		os.Exit(1)
	}
	defer signals.Close()

	sched := scheduler.NewScheduler(
		contentStore,
		rateLimitStore,
		cfg.Maintenance.Interval,
		cfg.Maintenance.WindowRetention,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed daemon",
		"first_screen", cfg.Ranking.FirstScreenSize,
		"maintenance_interval", cfg.Maintenance.Interval,
	)

	go func() {
		if err := signals.Start(ctx, contentService); err != nil && err != context.Canceled {
			logger.Error("signal consumer stopped", "error", err)
			cancel()
		}
	}()

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

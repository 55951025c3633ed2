package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"campus_feed/internal/domain"
)

type ContentStore interface {
	Create(ctx context.Context, item *domain.ContentItem) error
	Get(ctx context.Context, id string) (*domain.ContentItem, error)
	ListFeedCandidates(ctx context.Context, campusID string, contentType *domain.ContentType, limit int) ([]domain.ContentItem, error)
	CreateComment(ctx context.Context, comment *domain.Comment) error
	ApplyEngagement(ctx context.Context, id string, likesDelta, commentsDelta int, score float64) error
	IncrementEmbedCount(ctx context.Context, id string) error
	AddReaction(ctx context.Context, postID, userID string) (bool, error)
	RemoveReaction(ctx context.Context, postID, userID string) (bool, error)
	ResolveTarget(ctx context.Context, typ domain.EmbedTargetType, id string) (*domain.EmbedTarget, error)
}

type EmbedStore interface {
	Create(ctx context.Context, e *domain.ContentEmbed) error
	GetBySource(ctx context.Context, sourceType, sourceID string) (*domain.ContentEmbed, error)
	CountRecentByUserAndTarget(ctx context.Context, userID, embeddedID string, since time.Time) (int, error)
}

type ReputationStore interface {
	// Apply adds delta to the user's score unless the signal ID was already
	// applied; it reports whether the delta took effect.
	Apply(ctx context.Context, signal domain.ReputationSignal, delta int) (bool, error)
	Reputation(ctx context.Context, userID string) (int, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishSignal(ctx context.Context, signal domain.ReputationSignal, delta int) error
	PublishEmbed(ctx context.Context, e *domain.ContentEmbed) error
	Close() error
}

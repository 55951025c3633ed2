package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"campus_feed/internal/domain"
	"campus_feed/internal/embed"
	"campus_feed/internal/ranking"
	"campus_feed/internal/ratelimit"
	"campus_feed/internal/reputation"
	"campus_feed/internal/spam"
)

// ContentService owns the write path: anti-spam and rate-limit gates,
// embed validation, the transactional content write, and the
// fire-and-forget reputation/event tail.
type ContentService struct {
	content ContentStore
	embeds  EmbedStore
	scores  ReputationStore
	tx      TransactionManager
	events  EventPublisher

	gate      *spam.Gate
	limiter   *ratelimit.Limiter
	validator *embed.Validator

	featuredThreshold int

	logger *slog.Logger
	now    func() time.Time
	newID  func(prefix string) string
	rand   *rand.Rand
}

func NewContentService(
	content ContentStore,
	embeds EmbedStore,
	scores ReputationStore,
	tx TransactionManager,
	events EventPublisher,
	gate *spam.Gate,
	limiter *ratelimit.Limiter,
	validator *embed.Validator,
	featuredThreshold int,
	logger *slog.Logger,
) *ContentService {
	return &ContentService{
		content:           content,
		embeds:            embeds,
		scores:            scores,
		tx:                tx,
		events:            events,
		gate:              gate,
		limiter:           limiter,
		validator:         validator,
		featuredThreshold: featuredThreshold,
		logger:            logger.With("component", "content"),
		now:               time.Now,
		newID:             NewID,
		rand:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewID builds a prefixed opaque identifier, e.g. "fp_1f9c...".
func NewID(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

type SubmitPostInput struct {
	CampusID     string
	AuthorUserID string
	Type         domain.ContentType
	Title        *string
	Body         string
	IsAnonymous  bool
	ExpiresAt    *time.Time
}

// SubmitPost runs the full write pipeline for a new post. Gate failures
// are terminal: nothing is persisted unless every gate passes.
func (s *ContentService) SubmitPost(ctx context.Context, in SubmitPostInput) (*domain.ContentItem, error) {
	fields := map[string]string{"body": in.Body}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if err := s.gate.CheckFields(fields); err != nil {
		return nil, err
	}
	if err := s.gate.CheckLinkFarming(in.Body); err != nil {
		return nil, err
	}

	if err := s.limiter.Allow(ctx, in.AuthorUserID, ratelimit.ActionPost); err != nil {
		return nil, err
	}

	postID := s.newID("fp")
	res, err := s.validator.Validate(ctx, "post", postID, in.AuthorUserID, in.CampusID, in.Body)
	if err != nil {
		if res != nil {
			s.logger.Debug("embed validation rejected post",
				"stage", res.Stage,
				"author", in.AuthorUserID,
			)
		}
		s.penalizeEmbedAbuse(ctx, err, "post", postID, in.AuthorUserID)
		return nil, err
	}

	now := s.now()
	item := &domain.ContentItem{
		ID:           postID,
		CampusID:     in.CampusID,
		AuthorUserID: in.AuthorUserID,
		Type:         in.Type,
		Title:        in.Title,
		Body:         in.Body,
		IsAnonymous:  in.IsAnonymous,
		Status:       domain.StatusActive,
		ExpiresAt:    in.ExpiresAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.IsAnonymous {
		handle := anonymousHandle(s.rand)
		item.AnonymousHandle = &handle
	}

	var created *domain.ContentEmbed
	if res.Ref != nil {
		item.EmbedCount = 1
		created = &domain.ContentEmbed{
			ID:               s.newID("ce"),
			SourceType:       "post",
			SourceID:         postID,
			EmbeddedType:     res.Ref.Type,
			EmbeddedID:       res.Ref.ID,
			EmbeddedCampusID: in.CampusID,
			CreatedByUserID:  in.AuthorUserID,
			CreatedAt:        now,
		}
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.content.Create(txCtx, item); err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		if created != nil {
			if err := s.embeds.Create(txCtx, created); err != nil {
				return fmt.Errorf("create embed: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created != nil {
		// Reward the embedded author when someone else references them.
		if res.Target != nil && res.Target.AuthorUserID != in.AuthorUserID {
			s.recordSignal(ctx, domain.ReputationSignal{
				ID:     "cross_embed:" + created.ID,
				Kind:   domain.SignalCrossEmbed,
				UserID: res.Target.AuthorUserID,
			})
		}
		if err := s.events.PublishEmbed(ctx, created); err != nil {
			s.logger.Error("publish embed event failed", "embed_id", created.ID, "error", err)
		}
	}

	return item, nil
}

type AttachEmbedInput struct {
	SourceType   string
	SourceID     string
	AuthorUserID string
	CampusID     string
	Text         string
}

// AttachEmbed validates and records an embed on content that already
// exists, e.g. a reference added to an article or note body. The source
// item's embed counter feeds its next score computation.
func (s *ContentService) AttachEmbed(ctx context.Context, in AttachEmbedInput) (*domain.ContentEmbed, error) {
	res, err := s.validator.Validate(ctx, in.SourceType, in.SourceID, in.AuthorUserID, in.CampusID, in.Text)
	if err != nil {
		if res != nil {
			s.logger.Debug("embed validation rejected",
				"stage", res.Stage,
				"source", in.SourceID,
				"author", in.AuthorUserID,
			)
		}
		s.penalizeEmbedAbuse(ctx, err, in.SourceType, in.SourceID, in.AuthorUserID)
		return nil, err
	}
	if res.Ref == nil {
		return nil, domain.NewError(domain.KindValidation, "No embed reference found")
	}

	embed := &domain.ContentEmbed{
		ID:               s.newID("ce"),
		SourceType:       in.SourceType,
		SourceID:         in.SourceID,
		EmbeddedType:     res.Ref.Type,
		EmbeddedID:       res.Ref.ID,
		EmbeddedCampusID: in.CampusID,
		CreatedByUserID:  in.AuthorUserID,
		CreatedAt:        s.now(),
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.embeds.Create(txCtx, embed); err != nil {
			return fmt.Errorf("create embed: %w", err)
		}
		if err := s.content.IncrementEmbedCount(txCtx, in.SourceID); err != nil {
			return fmt.Errorf("bump embed count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if res.Target != nil && res.Target.AuthorUserID != in.AuthorUserID {
		s.recordSignal(ctx, domain.ReputationSignal{
			ID:     "cross_embed:" + embed.ID,
			Kind:   domain.SignalCrossEmbed,
			UserID: res.Target.AuthorUserID,
		})
	}
	if err := s.events.PublishEmbed(ctx, embed); err != nil {
		s.logger.Error("publish embed event failed", "embed_id", embed.ID, "error", err)
	}

	return embed, nil
}

type SubmitCommentInput struct {
	PostID       string
	AuthorUserID string
	Body         string
	IsAnonymous  bool
}

func (s *ContentService) SubmitComment(ctx context.Context, in SubmitCommentInput) (*domain.Comment, error) {
	if err := s.gate.CheckFields(map[string]string{"comment": in.Body}); err != nil {
		return nil, err
	}
	if err := s.gate.CheckLinkFarming(in.Body); err != nil {
		return nil, err
	}

	if err := s.limiter.Allow(ctx, in.AuthorUserID, ratelimit.ActionComment); err != nil {
		return nil, err
	}

	post, err := s.content.Get(ctx, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}
	if post == nil {
		return nil, domain.NewError(domain.KindValidation, "Post not found")
	}

	now := s.now()
	comment := &domain.Comment{
		ID:           s.newID("fc"),
		PostID:       in.PostID,
		AuthorUserID: in.AuthorUserID,
		Body:         in.Body,
		IsAnonymous:  in.IsAnonymous,
		CreatedAt:    now,
	}
	if in.IsAnonymous {
		handle := anonymousHandle(s.rand)
		comment.AnonymousHandle = &handle
	}

	score := ranking.EngagementScore(
		post.LikesCount, post.CommentsCount+1, post.EmbedCount, post.CreatedAt, now,
	)

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.content.CreateComment(txCtx, comment); err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		if err := s.content.ApplyEngagement(txCtx, in.PostID, 0, 1, score); err != nil {
			return fmt.Errorf("bump comment count: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// ToggleReaction flips the caller's like on a post and reports the new
// state. Each state transition applies exactly one reputation delta to
// the post's author.
func (s *ContentService) ToggleReaction(ctx context.Context, userID, postID string) (bool, error) {
	post, err := s.content.Get(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("load post: %w", err)
	}
	if post == nil {
		return false, domain.NewError(domain.KindValidation, "Post not found")
	}

	now := s.now()

	created, err := s.content.AddReaction(ctx, postID, userID)
	if err != nil {
		return false, fmt.Errorf("add reaction: %w", err)
	}

	if created {
		score := ranking.EngagementScore(post.LikesCount+1, post.CommentsCount, post.EmbedCount, post.CreatedAt, now)
		if err := s.content.ApplyEngagement(ctx, postID, 1, 0, score); err != nil {
			return false, fmt.Errorf("bump like count: %w", err)
		}
		s.recordSignal(ctx, domain.ReputationSignal{
			ID:     s.newID("sg"),
			Kind:   domain.SignalLike,
			UserID: post.AuthorUserID,
		})
		return true, nil
	}

	if _, err := s.content.RemoveReaction(ctx, postID, userID); err != nil {
		return false, fmt.Errorf("remove reaction: %w", err)
	}
	score := ranking.EngagementScore(post.LikesCount-1, post.CommentsCount, post.EmbedCount, post.CreatedAt, now)
	if err := s.content.ApplyEngagement(ctx, postID, -1, 0, score); err != nil {
		return false, fmt.Errorf("drop like count: %w", err)
	}
	s.recordSignal(ctx, domain.ReputationSignal{
		ID:      s.newID("sg"),
		Kind:    domain.SignalLike,
		UserID:  post.AuthorUserID,
		Reverse: true,
	})
	return false, nil
}

// ApplySignal applies one reputation signal transactionally, deduplicated
// on the signal ID, and publishes the resulting event.
func (s *ContentService) ApplySignal(ctx context.Context, signal domain.ReputationSignal) error {
	delta := reputation.DeltaFor(signal)
	if delta == 0 {
		return nil
	}

	var applied bool
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		applied, err = s.scores.Apply(txCtx, signal, delta)
		return err
	})
	if err != nil {
		return fmt.Errorf("apply reputation signal: %w", err)
	}
	if !applied {
		return nil
	}

	if err := s.events.PublishSignal(ctx, signal, delta); err != nil {
		s.logger.Error("publish reputation event failed",
			"signal_id", signal.ID,
			"kind", signal.Kind,
			"error", err,
		)
	}
	return nil
}

// CanSubmitFeatured reads the current score and checks the featured-tier
// gate.
func (s *ContentService) CanSubmitFeatured(ctx context.Context, userID string) (bool, error) {
	score, err := s.scores.Reputation(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("read reputation: %w", err)
	}
	return reputation.CanSubmitFeatured(score, s.featuredThreshold), nil
}

// penalizeEmbedAbuse applies the self-embed spam penalty when the
// validator rejected for abuse. Any other rejection carries no penalty.
func (s *ContentService) penalizeEmbedAbuse(ctx context.Context, err error, sourceType, sourceID, userID string) {
	if !domain.IsKind(err, domain.KindEmbedAbuse) {
		return
	}
	s.recordSignal(ctx, domain.ReputationSignal{
		ID:     "self_embed_spam:" + sourceType + ":" + sourceID,
		Kind:   domain.SignalSelfEmbedSpam,
		UserID: userID,
	})
}

// recordSignal applies a signal fire-and-forget: a failed reputation
// update never rolls back the content write.
func (s *ContentService) recordSignal(ctx context.Context, signal domain.ReputationSignal) {
	if err := s.ApplySignal(ctx, signal); err != nil {
		s.logger.Error("reputation update lost",
			"signal_id", signal.ID,
			"kind", signal.Kind,
			"user", signal.UserID,
			"error", err,
		)
	}
}

var (
	handleAdjectives = []string{"Blue", "Red", "Green", "Golden", "Silver", "Dark", "Bright", "Swift", "Silent", "Wise"}
	handleNouns      = []string{"Bird", "Fox", "Wolf", "Eagle", "Lion", "Tiger", "Bear", "Owl", "Hawk", "Deer"}
)

// anonymousHandle builds a throwaway display name like "BlueBird123".
func anonymousHandle(r *rand.Rand) string {
	adj := handleAdjectives[r.Intn(len(handleAdjectives))]
	noun := handleNouns[r.Intn(len(handleNouns))]
	return fmt.Sprintf("%s%s%d", adj, noun, r.Intn(900)+100)
}

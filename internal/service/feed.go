package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"campus_feed/internal/config"
	"campus_feed/internal/domain"
	"campus_feed/internal/ranking"
)

// FeedService is the read path: it loads campus-scoped candidates,
// projects them into ranking form and orders them. Ranking never fails;
// an empty candidate set yields an empty feed.
type FeedService struct {
	content ContentStore
	ranker  *ranking.Ranker
	cfg     config.RankingConfig
	logger  *slog.Logger
	now     func() time.Time
}

func NewFeedService(content ContentStore, ranker *ranking.Ranker, cfg config.RankingConfig, logger *slog.Logger) *FeedService {
	return &FeedService{
		content: content,
		ranker:  ranker,
		cfg:     cfg,
		logger:  logger.With("component", "feed"),
		now:     time.Now,
	}
}

type FeedQuery struct {
	CampusID string
	Type     *domain.ContentType
	Sort     domain.SortMode
	Limit    int
}

func (s *FeedService) Feed(ctx context.Context, q FeedQuery) ([]domain.ContentItem, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	factor := s.cfg.CandidateFactor
	if factor <= 0 {
		factor = 2
	}

	// Overfetch so ranking has room to reorder beyond the page.
	candidates, err := s.content.ListFeedCandidates(ctx, q.CampusID, q.Type, limit*factor)
	if err != nil {
		return nil, fmt.Errorf("list feed candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	now := s.now()
	items := make([]domain.FeedItem, len(candidates))
	byID := make(map[string]domain.ContentItem, len(candidates))
	for i, c := range candidates {
		items[i] = domain.FeedItem{
			ID:              c.ID,
			Type:            c.Type,
			CreatedAt:       c.CreatedAt,
			EngagementScore: c.EngagementScore,
			LikesCount:      c.LikesCount,
			CommentsCount:   c.CommentsCount,
			EmbedCount:      c.EmbedCount,
			IsNew:           now.Sub(c.AuthorCreatedAt) < s.cfg.NewAuthorWindow,
		}
		byID[c.ID] = c
	}

	ranked := s.ranker.Rank(items, q.Sort, now)

	out := make([]domain.ContentItem, 0, limit)
	for _, item := range ranked {
		out = append(out, byID[item.ID])
		if len(out) == limit {
			break
		}
	}

	s.logger.Debug("feed ranked",
		"campus", q.CampusID,
		"sort", q.Sort,
		"candidates", len(candidates),
		"returned", len(out),
	)
	return out, nil
}

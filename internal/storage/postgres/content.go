package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"campus_feed/internal/domain"
)

type ContentStore struct {
	db *sqlx.DB
}

func NewContentStore(db *sqlx.DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) Create(ctx context.Context, item *domain.ContentItem) error {
	query := `
		INSERT INTO content_items (
			id, campus_id, author_user_id, content_type, title, body,
			is_anonymous, anonymous_handle, status, likes_count,
			comments_count, embed_count, engagement_score, expires_at,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
		)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.ID,
		item.CampusID,
		item.AuthorUserID,
		item.Type,
		item.Title,
		item.Body,
		item.IsAnonymous,
		item.AnonymousHandle,
		item.Status,
		item.LikesCount,
		item.CommentsCount,
		item.EmbedCount,
		item.EngagementScore,
		item.ExpiresAt,
		item.CreatedAt,
		item.UpdatedAt,
	)
	return err
}

func (s *ContentStore) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	query := `
		SELECT c.id, c.campus_id, c.author_user_id, c.content_type, c.title,
		       c.body, c.is_anonymous, c.anonymous_handle, c.status,
		       c.likes_count, c.comments_count, c.embed_count,
		       c.engagement_score, c.expires_at, c.created_at, c.updated_at,
		       u.created_at AS author_created_at
		FROM content_items c
		JOIN users u ON u.id = c.author_user_id
		WHERE c.id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ContentStore) ListFeedCandidates(ctx context.Context, campusID string, contentType *domain.ContentType, limit int) ([]domain.ContentItem, error) {
	query := `
		SELECT c.id, c.campus_id, c.author_user_id, c.content_type, c.title,
		       c.body, c.is_anonymous, c.anonymous_handle, c.status,
		       c.likes_count, c.comments_count, c.embed_count,
		       c.engagement_score, c.expires_at, c.created_at, c.updated_at,
		       u.created_at AS author_created_at
		FROM content_items c
		JOIN users u ON u.id = c.author_user_id
		WHERE c.campus_id = $1
		  AND c.status IN ('active', 'published', 'approved')
		  AND (c.expires_at IS NULL OR c.expires_at > NOW())`

	args := []interface{}{campusID}
	if contentType != nil {
		query += ` AND c.content_type = $2`
		args = append(args, *contentType)
	}
	// Campus updates sort first so the ranker's template slot always
	// sees them, regardless of their stored score.
	query += ` ORDER BY (c.content_type = 'campus_update') DESC, c.engagement_score DESC, c.created_at DESC`
	if contentType != nil {
		query += ` LIMIT $3`
	} else {
		query += ` LIMIT $2`
	}
	args = append(args, limit)

	var items []domain.ContentItem
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &items, query, args...)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ContentStore) CreateComment(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (
			id, post_id, author_user_id, body, is_anonymous,
			anonymous_handle, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		comment.ID,
		comment.PostID,
		comment.AuthorUserID,
		comment.Body,
		comment.IsAnonymous,
		comment.AnonymousHandle,
		comment.CreatedAt,
	)
	return err
}

// ApplyEngagement adjusts the counters and replaces the stored score in
// one statement, so concurrent likes and comments never lose updates.
func (s *ContentStore) ApplyEngagement(ctx context.Context, id string, likesDelta, commentsDelta int, score float64) error {
	query := `
		UPDATE content_items
		SET likes_count = likes_count + $2,
		    comments_count = comments_count + $3,
		    engagement_score = $4,
		    updated_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, likesDelta, commentsDelta, score)
	return err
}

func (s *ContentStore) IncrementEmbedCount(ctx context.Context, id string) error {
	query := `
		UPDATE content_items
		SET embed_count = embed_count + 1, updated_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	return err
}

// AddReaction inserts the like row and reports whether it was new. The
// primary key on (post_id, user_id) makes a repeated like a no-op.
func (s *ContentStore) AddReaction(ctx context.Context, postID, userID string) (bool, error) {
	query := `
		INSERT INTO reactions (post_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING`

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, postID, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *ContentStore) RemoveReaction(ctx context.Context, postID, userID string) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM reactions WHERE post_id = $1 AND user_id = $2`,
		postID, userID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// targetContentTypes maps a reference type to the content types it may
// point at. A /post reference covers the post-shaped types.
var targetContentTypes = map[domain.EmbedTargetType][]string{
	domain.TargetPost:    {string(domain.TypeSocialPost), string(domain.TypeMeme), string(domain.TypeCampusUpdate)},
	domain.TargetArticle: {string(domain.TypeArticle)},
	domain.TargetListing: {string(domain.TypeListing)},
	domain.TargetPoll:    {string(domain.TypePoll)},
}

func (s *ContentStore) ResolveTarget(ctx context.Context, typ domain.EmbedTargetType, id string) (*domain.EmbedTarget, error) {
	types, ok := targetContentTypes[typ]
	if !ok {
		return nil, nil
	}

	var target domain.EmbedTarget
	query := `
		SELECT campus_id, status, author_user_id
		FROM content_items
		WHERE id = $1 AND content_type = ANY($2)`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &target, query, id, pq.Array(types))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// ExpireLapsed flips active items past their expiry to expired and
// returns how many it touched.
func (s *ContentStore) ExpireLapsed(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE content_items
		SET status = 'expired', updated_at = NOW()
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at <= $1`,
		now,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"campus_feed/internal/domain"
)

type EmbedStore struct {
	db *sqlx.DB
}

func NewEmbedStore(db *sqlx.DB) *EmbedStore {
	return &EmbedStore{db: db}
}

func (s *EmbedStore) Create(ctx context.Context, e *domain.ContentEmbed) error {
	query := `
		INSERT INTO content_embeds (
			id, source_type, source_id, embedded_type, embedded_id,
			embedded_campus_id, created_by_user_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		e.ID,
		e.SourceType,
		e.SourceID,
		e.EmbeddedType,
		e.EmbeddedID,
		e.EmbeddedCampusID,
		e.CreatedByUserID,
		e.CreatedAt,
	)
	return err
}

func (s *EmbedStore) GetBySource(ctx context.Context, sourceType, sourceID string) (*domain.ContentEmbed, error) {
	var embed domain.ContentEmbed
	query := `
		SELECT id, source_type, source_id, embedded_type, embedded_id,
		       embedded_campus_id, created_by_user_id, created_at
		FROM content_embeds
		WHERE source_type = $1 AND source_id = $2`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &embed, query, sourceType, sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &embed, nil
}

func (s *EmbedStore) CountRecentByUserAndTarget(ctx context.Context, userID, embeddedID string, since time.Time) (int, error) {
	var count int
	query := `
		SELECT COUNT(*)
		FROM content_embeds
		WHERE created_by_user_id = $1 AND embedded_id = $2 AND created_at >= $3`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, userID, embeddedID, since)
	if err != nil {
		return 0, err
	}
	return count, nil
}

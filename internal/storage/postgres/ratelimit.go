package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"campus_feed/internal/ratelimit"
)

type RateLimitStore struct {
	db *sqlx.DB
}

func NewRateLimitStore(db *sqlx.DB) *RateLimitStore {
	return &RateLimitStore{db: db}
}

// Increment bumps the window counter and returns the new count. The
// upsert keeps concurrent submissions from under-counting.
func (s *RateLimitStore) Increment(ctx context.Context, userID string, action ratelimit.ActionClass, windowStart time.Time) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, `
		INSERT INTO rate_limit_windows (user_id, action, window_start, count)
		VALUES ($1, $2, $3, 1)
		ON CONFLICT (user_id, action, window_start) DO UPDATE SET
			count = rate_limit_windows.count + 1
		RETURNING count`,
		userID, action, windowStart,
	)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// PruneBefore drops window rows that can no longer affect any quota.
func (s *RateLimitStore) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM rate_limit_windows WHERE window_start < $1`, cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

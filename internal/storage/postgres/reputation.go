package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"campus_feed/internal/domain"
)

type ReputationStore struct {
	db *sqlx.DB
}

func NewReputationStore(db *sqlx.DB) *ReputationStore {
	return &ReputationStore{db: db}
}

// Apply records the signal and adds delta to the user's score. The
// signal ID is the idempotency key: a retried signal inserts nothing
// and leaves the score alone.
func (s *ReputationStore) Apply(ctx context.Context, signal domain.ReputationSignal, delta int) (bool, error) {
	ex := GetExecutor(ctx, s.db)

	res, err := ex.ExecContext(ctx, `
		INSERT INTO reputation_signals (id, kind, user_id, delta, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO NOTHING`,
		signal.ID, signal.Kind, signal.UserID, delta,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	_, err = ex.ExecContext(ctx, `
		INSERT INTO reputation_scores (user_id, score, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			score = reputation_scores.score + EXCLUDED.score,
			updated_at = NOW()`,
		signal.UserID, delta,
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *ReputationStore) Reputation(ctx context.Context, userID string) (int, error) {
	var score int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &score,
		`SELECT score FROM reputation_scores WHERE user_id = $1`, userID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return score, nil
}

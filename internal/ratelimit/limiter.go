// Package ratelimit enforces fixed-window, reputation-adjusted action
// quotas. The ceiling is recomputed from the current reputation on every
// call, never from a snapshot.
package ratelimit

import (
	"context"
	"fmt"
	"math"
	"time"

	"campus_feed/internal/domain"
	"campus_feed/internal/reputation"
)

type ActionClass string

const (
	ActionPost       ActionClass = "post"
	ActionComment    ActionClass = "comment"
	ActionNoteUpload ActionClass = "note_upload"
)

type Quota struct {
	BaseMax int
	Window  time.Duration
}

// WindowStore increments and returns the counter for the given fixed
// window, atomically.
type WindowStore interface {
	Increment(ctx context.Context, userID string, action ActionClass, windowStart time.Time) (int, error)
}

// ReputationReader returns the current persisted score, 0 for unknown
// users.
type ReputationReader interface {
	Reputation(ctx context.Context, userID string) (int, error)
}

type Limiter struct {
	windows    WindowStore
	reputation ReputationReader
	quotas     map[ActionClass]Quota
	now        func() time.Time
}

func NewLimiter(windows WindowStore, rep ReputationReader, quotas map[ActionClass]Quota) *Limiter {
	return &Limiter{
		windows:    windows,
		reputation: rep,
		quotas:     quotas,
		now:        time.Now,
	}
}

// Allow consumes one unit of the user's quota for the action class, or
// rejects with RATE_LIMIT_EXCEEDED. It never queues or delays.
func (l *Limiter) Allow(ctx context.Context, userID string, action ActionClass) error {
	quota, ok := l.quotas[action]
	if !ok {
		return fmt.Errorf("unknown action class %q", action)
	}

	score, err := l.reputation.Reputation(ctx, userID)
	if err != nil {
		return fmt.Errorf("read reputation: %w", err)
	}

	ceiling := int(math.Floor(float64(quota.BaseMax) * reputation.RateLimitMultiplier(score)))

	windowStart := l.now().Truncate(quota.Window)
	count, err := l.windows.Increment(ctx, userID, action, windowStart)
	if err != nil {
		return fmt.Errorf("increment rate window: %w", err)
	}

	if count > ceiling {
		return domain.NewErrorWithDetails(
			domain.KindRateLimitExceeded,
			"You have exceeded the rate limit. Please try again later.",
			map[string]any{"action": string(action), "ceiling": ceiling},
		)
	}
	return nil
}

// Ceiling exposes the effective quota for an action at the given score.
func (l *Limiter) Ceiling(action ActionClass, score int) int {
	quota := l.quotas[action]
	return int(math.Floor(float64(quota.BaseMax) * reputation.RateLimitMultiplier(score)))
}

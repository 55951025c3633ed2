package ranking

import (
	"math"
	"time"

	"campus_feed/internal/domain"
)

// Timing tunes how fast a content type spikes and how fast it fades.
type Timing struct {
	SpikeMultiplier float64
	DecayRate       float64 // fraction of score lost per hour
}

var contentTiming = map[domain.ContentType]Timing{
	domain.TypeMeme:       {SpikeMultiplier: 2, DecayRate: 0.1},
	domain.TypePoll:       {SpikeMultiplier: 1.5, DecayRate: 0.05},
	domain.TypeSocialPost: {SpikeMultiplier: 1, DecayRate: 0.03},
	domain.TypeArticle:    {SpikeMultiplier: 0.5, DecayRate: 0.01},
	domain.TypeNote:       {SpikeMultiplier: 0.8, DecayRate: 0.02},
}

// TimingFor returns the per-type curve. Unknown types get a flat curve
// (multiplier 1, no decay); that is a deliberate fallback, not an error.
func TimingFor(t domain.ContentType) Timing {
	if timing, ok := contentTiming[t]; ok {
		return timing
	}
	return Timing{SpikeMultiplier: 1, DecayRate: 0}
}

func hoursSince(createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// EngagementScore is the write-time score persisted on a content item
// whenever one of its counters changes: raw engagement under a hyperbolic
// time decay. It is intentionally a different curve from the read-time
// decay in RankingScore; ranking order depends on both staying as they are.
func EngagementScore(likes, comments, embeds int, createdAt, now time.Time) float64 {
	engagement := float64(likes) + 2*float64(comments) + 5*float64(embeds)
	return engagement / (1 + hoursSince(createdAt, now)*0.1)
}

// EmbedBoost rewards content that others have referenced.
func EmbedBoost(score float64, embedCount int) float64 {
	if embedCount == 0 {
		return score
	}
	return score * (1 + float64(embedCount)*0.2)
}

// NewAuthorBoost protects visibility of content from recently registered
// authors.
func NewAuthorBoost(score float64, isNew bool) float64 {
	if isNew {
		return score * 1.3
	}
	return score
}

// RankingScore is the read-time score used to order a feed: the stored
// engagement score under the per-type exponential decay, plus boosts.
// It is a pure function of the item and now; it never fails.
func RankingScore(item domain.FeedItem, now time.Time) float64 {
	timing := TimingFor(item.Type)
	score := item.EngagementScore
	score *= timing.SpikeMultiplier * math.Exp(-timing.DecayRate*hoursSince(item.CreatedAt, now))
	score = EmbedBoost(score, item.EmbedCount)
	score = NewAuthorBoost(score, item.IsNew)
	return score
}

// Package reputation holds the signal-to-delta table and the policies
// derived from a user's score: rate-limit multiplier bands and the
// featured-tier gate.
package reputation

import "campus_feed/internal/domain"

const (
	weightLike               = 1
	weightArticleRead        = 2
	weightArticleCompletion  = 5
	weightNoteDownload       = 3
	weightNoteRatingPositive = 4
	weightNoteRatingNegative = -2
	weightCrossEmbed         = 5
	weightSelfEmbedSpam      = -10
	weightReportAgainst      = -15
)

// FeaturedThreshold is the default minimum score for featured-tier
// submissions; deployments override it via reputation.featured_threshold.
const FeaturedThreshold = 100

// DeltaFor maps a signal to its signed score delta. note_rating branches
// on the rating value; unknown kinds contribute nothing.
func DeltaFor(signal domain.ReputationSignal) int {
	var delta int
	switch signal.Kind {
	case domain.SignalLike:
		delta = weightLike
	case domain.SignalArticleRead:
		delta = weightArticleRead
	case domain.SignalArticleCompletion:
		delta = weightArticleCompletion
	case domain.SignalNoteDownload:
		delta = weightNoteDownload
	case domain.SignalNoteRating:
		if signal.Value >= 4 {
			delta = weightNoteRatingPositive
		} else {
			delta = weightNoteRatingNegative
		}
	case domain.SignalCrossEmbed:
		delta = weightCrossEmbed
	case domain.SignalSelfEmbedSpam:
		delta = weightSelfEmbedSpam
	case domain.SignalReportAgainst:
		delta = weightReportAgainst
	}
	if signal.Reverse {
		delta = -delta
	}
	return delta
}

// RateLimitMultiplier maps a score into its multiplier band. Bands are
// inclusive on their lower edge and monotonically non-decreasing.
func RateLimitMultiplier(score int) float64 {
	switch {
	case score < 0:
		return 0.5
	case score < 50:
		return 1
	case score < 100:
		return 1.5
	case score < 250:
		return 2
	default:
		return 3
	}
}

// CanSubmitFeatured reports whether the score unlocks featured-tier
// submission. A non-positive threshold falls back to FeaturedThreshold.
func CanSubmitFeatured(score, threshold int) bool {
	if threshold <= 0 {
		threshold = FeaturedThreshold
	}
	return score >= threshold
}

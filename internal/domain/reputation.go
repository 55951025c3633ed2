package domain

type SignalKind string

const (
	SignalLike              SignalKind = "like"
	SignalArticleRead       SignalKind = "article_read"
	SignalArticleCompletion SignalKind = "article_completion"
	SignalNoteDownload      SignalKind = "note_download"
	SignalNoteRating        SignalKind = "note_rating"
	SignalCrossEmbed        SignalKind = "cross_embed"
	SignalSelfEmbedSpam     SignalKind = "self_embed_spam"
	SignalReportAgainst     SignalKind = "report_against"
)

// ReputationSignal is one discrete reputation event. ID is chosen by the
// caller and deduplicates the signal on retry: applying the same ID twice
// changes the score once.
type ReputationSignal struct {
	ID     string
	Kind   SignalKind
	UserID string

	// Value carries the rating for SignalNoteRating; ignored otherwise.
	Value int

	// Reverse negates the weight, e.g. when a like is withdrawn.
	Reverse bool
}

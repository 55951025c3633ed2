package domain

import "time"

type EmbedTargetType string

const (
	TargetPost    EmbedTargetType = "post"
	TargetArticle EmbedTargetType = "article"
	TargetListing EmbedTargetType = "marketplace_listing"
	TargetPoll    EmbedTargetType = "poll"
)

// EmbedRef is an internal reference parsed out of free text, before any
// validation has run against it.
type EmbedRef struct {
	Type EmbedTargetType
	ID   string
	URL  string
}

// EmbedTarget is the resolved view of a referenced item: just enough to
// run the campus, status and self-embed gates.
type EmbedTarget struct {
	CampusID     string        `db:"campus_id"`
	Status       ContentStatus `db:"status"`
	AuthorUserID string        `db:"author_user_id"`
}

// ContentEmbed is a validated cross-reference. At most one exists per
// (SourceType, SourceID); it is immutable once created.
type ContentEmbed struct {
	ID               string          `db:"id" json:"id"`
	SourceType       string          `db:"source_type" json:"source_type"`
	SourceID         string          `db:"source_id" json:"source_id"`
	EmbeddedType     EmbedTargetType `db:"embedded_type" json:"embedded_type"`
	EmbeddedID       string          `db:"embedded_id" json:"embedded_id"`
	EmbeddedCampusID string          `db:"embedded_campus_id" json:"embedded_campus_id"`
	CreatedByUserID  string          `db:"created_by_user_id" json:"created_by_user_id"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

package domain

import "time"

type ContentType string

const (
	TypeCampusUpdate ContentType = "campus_update"
	TypeMeme         ContentType = "meme"
	TypePoll         ContentType = "poll"
	TypeArticle      ContentType = "article"
	TypeNote         ContentType = "note"
	TypeSocialPost   ContentType = "social_post"
	TypeListing      ContentType = "marketplace_listing"
	TypeTimetable    ContentType = "timetable"
)

type ContentStatus string

const (
	StatusActive    ContentStatus = "active"
	StatusPublished ContentStatus = "published"
	StatusApproved  ContentStatus = "approved"
	StatusHidden    ContentStatus = "hidden"
	StatusRemoved   ContentStatus = "removed"
	StatusExpired   ContentStatus = "expired"
)

// Visible reports whether the status allows the item to be referenced
// or shown in a feed.
func (s ContentStatus) Visible() bool {
	return s == StatusActive || s == StatusPublished || s == StatusApproved
}

type ContentItem struct {
	ID              string        `db:"id"`
	CampusID        string        `db:"campus_id"`
	AuthorUserID    string        `db:"author_user_id"`
	Type            ContentType   `db:"content_type"`
	Title           *string       `db:"title"`
	Body            string        `db:"body"`
	IsAnonymous     bool          `db:"is_anonymous"`
	AnonymousHandle *string       `db:"anonymous_handle"`
	Status          ContentStatus `db:"status"`
	LikesCount      int           `db:"likes_count"`
	CommentsCount   int           `db:"comments_count"`
	EmbedCount      int           `db:"embed_count"`
	EngagementScore float64       `db:"engagement_score"`
	ExpiresAt       *time.Time    `db:"expires_at"`
	CreatedAt       time.Time     `db:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at"`

	// AuthorCreatedAt is joined from the author row at feed-read time
	// to decide the new-author boost.
	AuthorCreatedAt time.Time `db:"author_created_at"`
}

type Comment struct {
	ID              string    `db:"id"`
	PostID          string    `db:"post_id"`
	AuthorUserID    string    `db:"author_user_id"`
	Body            string    `db:"body"`
	IsAnonymous     bool      `db:"is_anonymous"`
	AnonymousHandle *string   `db:"anonymous_handle"`
	CreatedAt       time.Time `db:"created_at"`
}

type SortMode string

const (
	SortHot    SortMode = "hot"
	SortLatest SortMode = "latest"
	SortTop    SortMode = "top"
)

// FeedItem is the ranking-time projection of a ContentItem. It is built
// per feed call and discarded with the response.
type FeedItem struct {
	ID              string
	Type            ContentType
	CreatedAt       time.Time
	EngagementScore float64
	LikesCount      int
	CommentsCount   int
	EmbedCount      int
	IsNew           bool
}

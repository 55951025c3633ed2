//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"campus_feed/internal/domain"
	"campus_feed/internal/ratelimit"
	"campus_feed/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_core.up.sql"),
			filepath.Join(migrationsPath, "002_reputation_and_quotas.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM rate_limit_windows")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM reputation_signals")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM reputation_scores")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM content_embeds")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM reactions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM comments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM content_items")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM users")

	_, err := s.db.ExecContext(s.ctx, `
		INSERT INTO users (id, campus_id, display_name, created_at) VALUES
			('u1', 'c1', 'Author One', NOW() - INTERVAL '30 days'),
			('u2', 'c1', 'Author Two', NOW() - INTERVAL '1 day'),
			('u3', 'c2', 'Other Campus', NOW() - INTERVAL '30 days')`)
	s.Require().NoError(err)
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) newItem(id, userID string, t domain.ContentType) *domain.ContentItem {
	now := time.Now().Truncate(time.Microsecond)
	return &domain.ContentItem{
		ID:           id,
		CampusID:     "c1",
		AuthorUserID: userID,
		Type:         t,
		Title:        utils.Ptr("Title " + id),
		Body:         "body " + id,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (s *PostgresIntegrationSuite) TestContentStore_CreateAndGet() {
	store := NewContentStore(s.db)

	item := s.newItem("fp_1", "u1", domain.TypeSocialPost)
	s.NoError(store.Create(s.ctx, item))

	got, err := store.Get(s.ctx, "fp_1")
	s.NoError(err)
	s.Require().NotNil(got)
	s.Equal("fp_1", got.ID)
	s.Equal(domain.TypeSocialPost, got.Type)
	s.False(got.AuthorCreatedAt.IsZero())
}

func (s *PostgresIntegrationSuite) TestContentStore_GetMissing() {
	store := NewContentStore(s.db)

	got, err := store.Get(s.ctx, "fp_missing")
	s.NoError(err)
	s.Nil(got)
}

func (s *PostgresIntegrationSuite) TestContentStore_ListFeedCandidates() {
	store := NewContentStore(s.db)

	s.NoError(store.Create(s.ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)))
	s.NoError(store.Create(s.ctx, s.newItem("fp_2", "u1", domain.TypeMeme)))

	hidden := s.newItem("fp_3", "u1", domain.TypeSocialPost)
	hidden.Status = domain.StatusHidden
	s.NoError(store.Create(s.ctx, hidden))

	other := s.newItem("fp_4", "u3", domain.TypeSocialPost)
	other.CampusID = "c2"
	s.NoError(store.Create(s.ctx, other))

	items, err := store.ListFeedCandidates(s.ctx, "c1", nil, 10)
	s.NoError(err)
	s.Len(items, 2)
	for _, item := range items {
		s.Equal("c1", item.CampusID)
		s.True(item.Status.Visible())
	}
}

func (s *PostgresIntegrationSuite) TestContentStore_ListFeedCandidates_TypeFilter() {
	store := NewContentStore(s.db)

	s.NoError(store.Create(s.ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)))
	s.NoError(store.Create(s.ctx, s.newItem("fp_2", "u1", domain.TypeMeme)))

	meme := domain.TypeMeme
	items, err := store.ListFeedCandidates(s.ctx, "c1", &meme, 10)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("fp_2", items[0].ID)
}

func (s *PostgresIntegrationSuite) TestContentStore_ListFeedCandidates_SkipsExpired() {
	store := NewContentStore(s.db)

	lapsed := s.newItem("fp_1", "u1", domain.TypeCampusUpdate)
	lapsed.ExpiresAt = utils.Ptr(time.Now().Add(-time.Hour))
	s.NoError(store.Create(s.ctx, lapsed))

	upcoming := s.newItem("fp_2", "u1", domain.TypeCampusUpdate)
	upcoming.ExpiresAt = utils.Ptr(time.Now().Add(time.Hour))
	s.NoError(store.Create(s.ctx, upcoming))

	items, err := store.ListFeedCandidates(s.ctx, "c1", nil, 10)
	s.NoError(err)
	s.Require().Len(items, 1)
	s.Equal("fp_2", items[0].ID)
}

func (s *PostgresIntegrationSuite) TestContentStore_ApplyEngagement() {
	store := NewContentStore(s.db)
	s.NoError(store.Create(s.ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)))

	s.NoError(store.ApplyEngagement(s.ctx, "fp_1", 1, 0, 1.5))
	s.NoError(store.ApplyEngagement(s.ctx, "fp_1", 0, 2, 4.5))

	got, err := store.Get(s.ctx, "fp_1")
	s.NoError(err)
	s.Equal(1, got.LikesCount)
	s.Equal(2, got.CommentsCount)
	s.Equal(4.5, got.EngagementScore)
}

func (s *PostgresIntegrationSuite) TestContentStore_Reactions() {
	store := NewContentStore(s.db)
	s.NoError(store.Create(s.ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)))

	created, err := store.AddReaction(s.ctx, "fp_1", "u2")
	s.NoError(err)
	s.True(created)

	created, err = store.AddReaction(s.ctx, "fp_1", "u2")
	s.NoError(err)
	s.False(created, "a duplicate like inserts nothing")

	removed, err := store.RemoveReaction(s.ctx, "fp_1", "u2")
	s.NoError(err)
	s.True(removed)

	removed, err = store.RemoveReaction(s.ctx, "fp_1", "u2")
	s.NoError(err)
	s.False(removed)
}

func (s *PostgresIntegrationSuite) TestContentStore_ResolveTarget() {
	store := NewContentStore(s.db)
	s.NoError(store.Create(s.ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)))

	target, err := store.ResolveTarget(s.ctx, domain.TargetPost, "fp_1")
	s.NoError(err)
	s.Require().NotNil(target)
	s.Equal("c1", target.CampusID)
	s.Equal("u1", target.AuthorUserID)

	// Wrong reference type for the item.
	target, err = store.ResolveTarget(s.ctx, domain.TargetArticle, "fp_1")
	s.NoError(err)
	s.Nil(target)

	target, err = store.ResolveTarget(s.ctx, domain.TargetPost, "fp_missing")
	s.NoError(err)
	s.Nil(target)
}

func (s *PostgresIntegrationSuite) TestContentStore_ExpireLapsed() {
	store := NewContentStore(s.db)

	lapsed := s.newItem("fp_1", "u1", domain.TypeCampusUpdate)
	lapsed.ExpiresAt = utils.Ptr(time.Now().Add(-time.Minute))
	s.NoError(store.Create(s.ctx, lapsed))

	fresh := s.newItem("fp_2", "u1", domain.TypeCampusUpdate)
	fresh.ExpiresAt = utils.Ptr(time.Now().Add(time.Hour))
	s.NoError(store.Create(s.ctx, fresh))

	n, err := store.ExpireLapsed(s.ctx, time.Now())
	s.NoError(err)
	s.Equal(int64(1), n)

	got, err := store.Get(s.ctx, "fp_1")
	s.NoError(err)
	s.Equal(domain.StatusExpired, got.Status)
}

func (s *PostgresIntegrationSuite) TestEmbedStore_CreateAndGetBySource() {
	contentStore := NewContentStore(s.db)
	store := NewEmbedStore(s.db)
	s.NoError(contentStore.Create(s.ctx, s.newItem("fp_src", "u1", domain.TypeSocialPost)))

	embed := &domain.ContentEmbed{
		ID:               "ce_1",
		SourceType:       "post",
		SourceID:         "fp_src",
		EmbeddedType:     domain.TargetArticle,
		EmbeddedID:       "ar_1",
		EmbeddedCampusID: "c1",
		CreatedByUserID:  "u1",
		CreatedAt:        time.Now().Truncate(time.Microsecond),
	}
	s.NoError(store.Create(s.ctx, embed))

	got, err := store.GetBySource(s.ctx, "post", "fp_src")
	s.NoError(err)
	s.Require().NotNil(got)
	s.Equal("ar_1", got.EmbeddedID)

	got, err = store.GetBySource(s.ctx, "post", "fp_other")
	s.NoError(err)
	s.Nil(got)
}

func (s *PostgresIntegrationSuite) TestEmbedStore_CountRecentByUserAndTarget() {
	contentStore := NewContentStore(s.db)
	store := NewEmbedStore(s.db)
	now := time.Now().Truncate(time.Microsecond)

	for i, age := range []time.Duration{time.Hour, 2 * time.Hour, 48 * time.Hour} {
		id := string(rune('a' + i))
		s.NoError(contentStore.Create(s.ctx, s.newItem("fp_"+id, "u1", domain.TypeSocialPost)))
		s.NoError(store.Create(s.ctx, &domain.ContentEmbed{
			ID:               "ce_" + id,
			SourceType:       "post",
			SourceID:         "fp_" + id,
			EmbeddedType:     domain.TargetPost,
			EmbeddedID:       "fp_target",
			EmbeddedCampusID: "c1",
			CreatedByUserID:  "u1",
			CreatedAt:        now.Add(-age),
		}))
	}

	count, err := store.CountRecentByUserAndTarget(s.ctx, "u1", "fp_target", now.Add(-24*time.Hour))
	s.NoError(err)
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestReputationStore_ApplyAndRead() {
	store := NewReputationStore(s.db)

	applied, err := store.Apply(s.ctx, domain.ReputationSignal{
		ID: "sig_1", Kind: domain.SignalCrossEmbed, UserID: "u1",
	}, 5)
	s.NoError(err)
	s.True(applied)

	applied, err = store.Apply(s.ctx, domain.ReputationSignal{
		ID: "sig_2", Kind: domain.SignalLike, UserID: "u1",
	}, 1)
	s.NoError(err)
	s.True(applied)

	score, err := store.Reputation(s.ctx, "u1")
	s.NoError(err)
	s.Equal(6, score)
}

func (s *PostgresIntegrationSuite) TestReputationStore_DuplicateSignal() {
	store := NewReputationStore(s.db)

	signal := domain.ReputationSignal{ID: "sig_1", Kind: domain.SignalCrossEmbed, UserID: "u1"}

	applied, err := store.Apply(s.ctx, signal, 5)
	s.NoError(err)
	s.True(applied)

	applied, err = store.Apply(s.ctx, signal, 5)
	s.NoError(err)
	s.False(applied, "a replayed signal must not change the score")

	score, err := store.Reputation(s.ctx, "u1")
	s.NoError(err)
	s.Equal(5, score)
}

func (s *PostgresIntegrationSuite) TestReputationStore_UnknownUserIsZero() {
	store := NewReputationStore(s.db)

	score, err := store.Reputation(s.ctx, "u1")
	s.NoError(err)
	s.Equal(0, score)
}

func (s *PostgresIntegrationSuite) TestRateLimitStore_Increment() {
	store := NewRateLimitStore(s.db)
	window := time.Now().Truncate(24 * time.Hour)

	for want := 1; want <= 3; want++ {
		count, err := store.Increment(s.ctx, "u1", ratelimit.ActionPost, window)
		s.NoError(err)
		s.Equal(want, count)
	}

	// Another window counts separately.
	count, err := store.Increment(s.ctx, "u1", ratelimit.ActionPost, window.Add(24*time.Hour))
	s.NoError(err)
	s.Equal(1, count)

	count, err = store.Increment(s.ctx, "u1", ratelimit.ActionComment, window)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestRateLimitStore_PruneBefore() {
	store := NewRateLimitStore(s.db)
	now := time.Now().Truncate(time.Hour)

	_, err := store.Increment(s.ctx, "u1", ratelimit.ActionPost, now.Add(-72*time.Hour))
	s.NoError(err)
	_, err = store.Increment(s.ctx, "u1", ratelimit.ActionPost, now)
	s.NoError(err)

	n, err := store.PruneBefore(s.ctx, now.Add(-48*time.Hour))
	s.NoError(err)
	s.Equal(int64(1), n)
}

func (s *PostgresIntegrationSuite) TestTransaction_Commit() {
	tm := NewTransactionManager(s.db)
	contentStore := NewContentStore(s.db)
	embedStore := NewEmbedStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := contentStore.Create(ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)); err != nil {
			return err
		}
		return embedStore.Create(ctx, &domain.ContentEmbed{
			ID:               "ce_1",
			SourceType:       "post",
			SourceID:         "fp_1",
			EmbeddedType:     domain.TargetPost,
			EmbeddedID:       "fp_1",
			EmbeddedCampusID: "c1",
			CreatedByUserID:  "u1",
			CreatedAt:        time.Now(),
		})
	})
	s.NoError(err)

	var count int
	s.NoError(s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM content_embeds"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestTransaction_Rollback() {
	tm := NewTransactionManager(s.db)
	contentStore := NewContentStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if err := contentStore.Create(ctx, s.newItem("fp_1", "u1", domain.TypeSocialPost)); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Error(err)

	got, err := contentStore.Get(s.ctx, "fp_1")
	s.NoError(err)
	s.Nil(got)
}

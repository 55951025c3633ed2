package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"campus_feed/internal/config"
	"campus_feed/internal/domain"
	"campus_feed/internal/ranking"
	"campus_feed/internal/service/mocks"
)

type FeedServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	content *mocks.MockContentStore
	service *FeedService
	now     time.Time
}

func (s *FeedServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.content = mocks.NewMockContentStore(s.ctrl)
	s.now = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ranker := ranking.NewRanker(7, func() int { return 3 })
	s.service = NewFeedService(s.content, ranker, config.RankingConfig{
		FirstScreenSize: 7,
		NewAuthorWindow: 7 * 24 * time.Hour,
		CandidateFactor: 2,
	}, logger)
	s.service.now = func() time.Time { return s.now }
}

func (s *FeedServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeedServiceTestSuite))
}

func (s *FeedServiceTestSuite) candidate(id string, t domain.ContentType, score float64, age time.Duration) domain.ContentItem {
	return domain.ContentItem{
		ID:              id,
		CampusID:        "c1",
		Type:            t,
		Status:          domain.StatusActive,
		EngagementScore: score,
		CreatedAt:       s.now.Add(-age),
		AuthorCreatedAt: s.now.Add(-30 * 24 * time.Hour),
	}
}

func (s *FeedServiceTestSuite) TestFeed_EmptyCampus() {
	ctx := context.Background()
	s.content.EXPECT().ListFeedCandidates(ctx, "c1", nil, 40).Return(nil, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1"})
	s.NoError(err)
	s.Empty(out)
}

func (s *FeedServiceTestSuite) TestFeed_FirstScreenTemplate() {
	ctx := context.Background()
	candidates := []domain.ContentItem{
		s.candidate("fp_post", domain.TypeSocialPost, 90, time.Hour),
		s.candidate("fp_update", domain.TypeCampusUpdate, 0, time.Hour),
		s.candidate("fp_meme", domain.TypeMeme, 50, time.Hour),
		s.candidate("fp_note", domain.TypeNote, 40, time.Hour),
	}
	s.content.EXPECT().ListFeedCandidates(ctx, "c1", nil, 40).Return(candidates, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1", Sort: domain.SortHot})
	s.NoError(err)
	s.Require().Len(out, 4)
	s.Equal("fp_update", out[0].ID)
	s.Equal("fp_meme", out[1].ID)
	s.Equal("fp_note", out[2].ID)
	s.Equal("fp_post", out[3].ID)
}

func (s *FeedServiceTestSuite) TestFeed_NewAuthorBoostFlows() {
	ctx := context.Background()
	// Same stored score and age: only the author account age differs.
	old := s.candidate("fp_old", domain.TypeSocialPost, 10, time.Hour)
	fresh := s.candidate("fp_fresh", domain.TypeSocialPost, 10, time.Hour)
	fresh.AuthorCreatedAt = s.now.Add(-24 * time.Hour)

	s.content.EXPECT().ListFeedCandidates(ctx, "c1", nil, 40).
		Return([]domain.ContentItem{old, fresh}, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1", Sort: domain.SortHot})
	s.NoError(err)
	s.Require().Len(out, 2)
	s.Equal("fp_fresh", out[0].ID)
}

func (s *FeedServiceTestSuite) TestFeed_LimitAndOverfetch() {
	ctx := context.Background()
	candidates := make([]domain.ContentItem, 10)
	for i := range candidates {
		candidates[i] = s.candidate(
			string(rune('a'+i)), domain.TypeSocialPost, float64(100-i), time.Hour,
		)
	}
	s.content.EXPECT().ListFeedCandidates(ctx, "c1", nil, 10).Return(candidates, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1", Limit: 5})
	s.NoError(err)
	s.Len(out, 5)
}

func (s *FeedServiceTestSuite) TestFeed_ZeroCandidateFactorDefaulted() {
	ctx := context.Background()
	s.service.cfg = config.RankingConfig{}

	s.content.EXPECT().ListFeedCandidates(ctx, "c1", nil, 40).
		Return([]domain.ContentItem{s.candidate("fp_1", domain.TypeSocialPost, 5, time.Hour)}, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1"})
	s.NoError(err)
	s.Len(out, 1)
}

func (s *FeedServiceTestSuite) TestFeed_TypeFilterPassedThrough() {
	ctx := context.Background()
	noteType := domain.TypeNote
	s.content.EXPECT().ListFeedCandidates(ctx, "c1", &noteType, 40).
		Return([]domain.ContentItem{s.candidate("fn_1", domain.TypeNote, 5, time.Hour)}, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1", Type: &noteType})
	s.NoError(err)
	s.Len(out, 1)
}

func (s *FeedServiceTestSuite) TestFeed_LatestSort() {
	ctx := context.Background()
	candidates := []domain.ContentItem{
		s.candidate("fp_older", domain.TypeSocialPost, 500, 5*time.Hour),
		s.candidate("fp_newer", domain.TypeSocialPost, 1, time.Minute),
	}
	s.content.EXPECT().ListFeedCandidates(ctx, "c1", nil, 40).Return(candidates, nil)

	out, err := s.service.Feed(ctx, FeedQuery{CampusID: "c1", Sort: domain.SortLatest})
	s.NoError(err)
	s.Require().Len(out, 2)
	s.Equal("fp_newer", out[0].ID)
}

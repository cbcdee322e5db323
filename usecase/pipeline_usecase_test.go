package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"content-pipeline/domain/dto"
	"content-pipeline/domain/model"
	"content-pipeline/infrastructure/persistence"
	"content-pipeline/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	accounts  *MockAccountRepository
	trends    *MockTrendRepository
	videos    *MockVideoRepository
	analytics *MockAnalyticsRepository
	sounds    *MockTrendingSoundRepository
	cache     *MockTrendCache
	uc        usecase.IPipelineUsecase
}

func newFixture() *fixture {
	f := &fixture{
		accounts:  new(MockAccountRepository),
		trends:    new(MockTrendRepository),
		videos:    new(MockVideoRepository),
		analytics: new(MockAnalyticsRepository),
		sounds:    new(MockTrendingSoundRepository),
		cache:     new(MockTrendCache),
	}
	f.uc = usecase.NewPipelineUsecase(f.accounts, f.trends, f.videos, f.analytics, f.sounds, f.cache)
	return f
}

func TestRegisterAccount_DefaultsAndTimestamps(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.accounts.On("Create", ctx, mock.AnythingOfType("*model.Account")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Account).ID = 1 }).
		Return(nil)

	acct, err := f.uc.RegisterAccount(ctx, dto.CreateAccountRequest{Platform: "TikTok", Username: " acct1 ", Niche: "comedy"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), acct.ID)
	assert.Equal(t, "tiktok", acct.Platform)
	assert.Equal(t, "acct1", acct.Username)
	assert.Equal(t, model.AccountStatusActive, acct.Status)
	assert.False(t, acct.CreatedAt.IsZero())
	assert.Equal(t, acct.CreatedAt, acct.UpdatedAt)
	f.accounts.AssertExpectations(t)
}

func TestRegisterAccount_InvalidStatus(t *testing.T) {
	f := newFixture()

	_, err := f.uc.RegisterAccount(context.Background(), dto.CreateAccountRequest{Platform: "tiktok", Username: "a", Niche: "n", Status: "retired"})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
	f.accounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterAccount_PropagatesUniqueViolation(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	violation := fmt.Errorf("%w: username", persistence.ErrUniqueViolation)
	f.accounts.On("Create", ctx, mock.Anything).Return(violation)

	_, err := f.uc.RegisterAccount(ctx, dto.CreateAccountRequest{Platform: "tiktok", Username: "acct1", Niche: "comedy"})
	require.ErrorIs(t, err, persistence.ErrUniqueViolation)
}

func TestUpdateAccountStatus(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.accounts.On("UpdateStatus", ctx, int64(3), model.AccountStatusPaused).Return(nil)

	require.NoError(t, f.uc.UpdateAccountStatus(ctx, 3, "Paused"))
	require.ErrorIs(t, f.uc.UpdateAccountStatus(ctx, 3, "gone"), usecase.ErrInvalidInput)
	f.accounts.AssertExpectations(t)
}

func TestAddTrend_InvalidatesCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.trends.On("Create", ctx, mock.AnythingOfType("*model.Trend")).Return(nil)
	f.cache.On("Invalidate", ctx).Return()

	trend, err := f.uc.AddTrend(ctx, dto.CreateTrendRequest{Title: "cat memes", Source: "reddit", Niche: "comedy", Score: 0.8})
	require.NoError(t, err)
	assert.Equal(t, "cat memes", trend.Title)
	f.cache.AssertExpectations(t)
}

func TestAddTrend_FailureKeepsCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.trends.On("Create", ctx, mock.Anything).Return(persistence.ErrUniqueViolation)

	_, err := f.uc.AddTrend(ctx, dto.CreateTrendRequest{Title: "cat memes", Source: "reddit", Niche: "comedy"})
	require.ErrorIs(t, err, persistence.ErrUniqueViolation)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestTopTrends_ReadThrough(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	stored := []model.Trend{{ID: 2, Title: "high", Score: 0.9}, {ID: 1, Title: "low", Score: 0.1}}
	f.cache.On("GetTop", ctx, "comedy", 10).Return(nil, false).Once()
	f.trends.On("ListTop", ctx, "comedy", 10).Return(stored, nil).Once()
	f.cache.On("SetTop", ctx, "comedy", 10, stored).Return().Once()

	got, err := f.uc.TopTrends(ctx, "comedy", 10)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	f.cache.On("GetTop", ctx, "comedy", 10).Return(stored, true).Once()
	got, err = f.uc.TopTrends(ctx, "comedy", 10)
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	f.trends.AssertNumberOfCalls(t, "ListTop", 1)
	f.cache.AssertExpectations(t)
}

func TestDraftVideo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.videos.On("Create", ctx, mock.AnythingOfType("*model.Video")).Return(nil)

	video, err := f.uc.DraftVideo(ctx, dto.CreateVideoRequest{AccountID: 1, Script: "...", FileType: "short"})
	require.NoError(t, err)
	assert.Equal(t, model.VideoStatusDraft, video.Status)
	assert.Nil(t, video.TrendID)
	assert.Nil(t, video.UploadedAt)

	_, err = f.uc.DraftVideo(ctx, dto.CreateVideoRequest{AccountID: 0, Script: "...", FileType: "short"})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
	f.videos.AssertNumberOfCalls(t, "Create", 1)
}

func TestMarkVideoUploaded(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	path := "/media/video/1.mp4"
	f.videos.On("MarkUploaded", ctx, int64(1), &path, at).Return(nil)

	require.NoError(t, f.uc.MarkVideoUploaded(ctx, 1, dto.MarkUploadedRequest{VideoPath: &path, UploadedAt: &at}))
	f.videos.AssertExpectations(t)
}

func TestRecordAnalytics(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.analytics.On("Record", ctx, mock.AnythingOfType("*model.Analytics")).Return(nil).Twice()

	for i := 0; i < 2; i++ {
		snap, err := f.uc.RecordAnalytics(ctx, 5, dto.RecordAnalyticsRequest{Views: int64(100 * (i + 1))})
		require.NoError(t, err)
		assert.Equal(t, int64(5), snap.VideoID)
	}

	_, err := f.uc.RecordAnalytics(ctx, 5, dto.RecordAnalyticsRequest{Likes: -3})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
	f.analytics.AssertExpectations(t)
}

func TestAnalyticsSummary_UnknownVideo(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.videos.On("GetByID", ctx, int64(9)).Return(nil, persistence.ErrNotFound)

	_, err := f.uc.AnalyticsSummary(ctx, 9)
	require.ErrorIs(t, err, persistence.ErrNotFound)
	f.analytics.AssertNotCalled(t, "Summary", mock.Anything, mock.Anything)
}

func TestAddTrendingSound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.sounds.On("Create", ctx, mock.AnythingOfType("*model.TrendingSound")).Return(nil)

	sound, err := f.uc.AddTrendingSound(ctx, dto.CreateSoundRequest{SoundID: "snd-1", Title: "beat", Vibe: "Hype", UsageCount: 3})
	require.NoError(t, err)
	assert.Equal(t, "hype", sound.Vibe)

	_, err = f.uc.AddTrendingSound(ctx, dto.CreateSoundRequest{SoundID: "snd-2", Title: "beat", Vibe: "hype", UsageCount: -1})
	require.ErrorIs(t, err, usecase.ErrInvalidInput)
}

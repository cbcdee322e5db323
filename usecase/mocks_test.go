package usecase_test

import (
	"context"
	"time"

	"content-pipeline/domain/model"

	"github.com/stretchr/testify/mock"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Create(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) List(ctx context.Context, platform string, limit, offset int) ([]model.Account, error) {
	args := m.Called(ctx, platform, limit, offset)
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateStatus(ctx context.Context, id int64, status model.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockTrendRepository struct{ mock.Mock }

func (m *MockTrendRepository) Create(ctx context.Context, trend *model.Trend) error {
	args := m.Called(ctx, trend)
	return args.Error(0)
}

func (m *MockTrendRepository) GetByID(ctx context.Context, id int64) (*model.Trend, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trend), args.Error(1)
}

func (m *MockTrendRepository) GetByTitle(ctx context.Context, title string) (*model.Trend, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trend), args.Error(1)
}

func (m *MockTrendRepository) ListTop(ctx context.Context, niche string, limit int) ([]model.Trend, error) {
	args := m.Called(ctx, niche, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Trend), args.Error(1)
}

type MockVideoRepository struct{ mock.Mock }

func (m *MockVideoRepository) Create(ctx context.Context, video *model.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Video), args.Error(1)
}

func (m *MockVideoRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.Video, error) {
	args := m.Called(ctx, accountID, limit, offset)
	return args.Get(0).([]model.Video), args.Error(1)
}

func (m *MockVideoRepository) UpdateStatus(ctx context.Context, id int64, status model.VideoStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVideoRepository) MarkUploaded(ctx context.Context, id int64, videoPath *string, at time.Time) error {
	args := m.Called(ctx, id, videoPath, at)
	return args.Error(0)
}

type MockAnalyticsRepository struct{ mock.Mock }

func (m *MockAnalyticsRepository) Record(ctx context.Context, snapshot *model.Analytics) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) ListByVideo(ctx context.Context, videoID int64) ([]model.Analytics, error) {
	args := m.Called(ctx, videoID)
	return args.Get(0).([]model.Analytics), args.Error(1)
}

func (m *MockAnalyticsRepository) Summary(ctx context.Context, videoID int64) (*model.AnalyticsSummary, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AnalyticsSummary), args.Error(1)
}

type MockTrendingSoundRepository struct{ mock.Mock }

func (m *MockTrendingSoundRepository) Create(ctx context.Context, sound *model.TrendingSound) error {
	args := m.Called(ctx, sound)
	return args.Error(0)
}

func (m *MockTrendingSoundRepository) GetBySoundID(ctx context.Context, soundID string) (*model.TrendingSound, error) {
	args := m.Called(ctx, soundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TrendingSound), args.Error(1)
}

func (m *MockTrendingSoundRepository) ListByVibe(ctx context.Context, vibe string, limit int) ([]model.TrendingSound, error) {
	args := m.Called(ctx, vibe, limit)
	return args.Get(0).([]model.TrendingSound), args.Error(1)
}

func (m *MockTrendingSoundRepository) IncrementUsage(ctx context.Context, soundID string) error {
	args := m.Called(ctx, soundID)
	return args.Error(0)
}

type MockTrendCache struct{ mock.Mock }

func (m *MockTrendCache) GetTop(ctx context.Context, niche string, limit int) ([]model.Trend, bool) {
	args := m.Called(ctx, niche, limit)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]model.Trend), args.Bool(1)
}

func (m *MockTrendCache) SetTop(ctx context.Context, niche string, limit int, trends []model.Trend) {
	m.Called(ctx, niche, limit, trends)
}

func (m *MockTrendCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}

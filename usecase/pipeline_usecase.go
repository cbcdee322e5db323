package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"content-pipeline/domain/dto"
	"content-pipeline/domain/model"
	"content-pipeline/domain/repository"
	"content-pipeline/infrastructure/cache"
	"content-pipeline/infrastructure/logger"
	"content-pipeline/infrastructure/utils"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput wraps every validation failure raised before the store is touched.
var ErrInvalidInput = errors.New("invalid input")

type IPipelineUsecase interface {
	RegisterAccount(ctx context.Context, req dto.CreateAccountRequest) (*model.Account, error)
	GetAccount(ctx context.Context, id int64) (*model.Account, error)
	ListAccounts(ctx context.Context, platform string, limit, offset int) ([]model.Account, error)
	UpdateAccountStatus(ctx context.Context, id int64, status string) error

	AddTrend(ctx context.Context, req dto.CreateTrendRequest) (*model.Trend, error)
	TopTrends(ctx context.Context, niche string, limit int) ([]model.Trend, error)

	DraftVideo(ctx context.Context, req dto.CreateVideoRequest) (*model.Video, error)
	GetVideo(ctx context.Context, id int64) (*model.Video, error)
	ListAccountVideos(ctx context.Context, accountID int64, limit, offset int) ([]model.Video, error)
	UpdateVideoStatus(ctx context.Context, id int64, status string) error
	MarkVideoUploaded(ctx context.Context, id int64, req dto.MarkUploadedRequest) error

	RecordAnalytics(ctx context.Context, videoID int64, req dto.RecordAnalyticsRequest) (*model.Analytics, error)
	ListAnalytics(ctx context.Context, videoID int64) ([]model.Analytics, error)
	AnalyticsSummary(ctx context.Context, videoID int64) (*model.AnalyticsSummary, error)

	AddTrendingSound(ctx context.Context, req dto.CreateSoundRequest) (*model.TrendingSound, error)
	ListTrendingSounds(ctx context.Context, vibe string, limit int) ([]model.TrendingSound, error)
	UseTrendingSound(ctx context.Context, soundID string) error
}

type pipelineUsecase struct {
	accounts  repository.IAccount
	trends    repository.ITrend
	videos    repository.IVideo
	analytics repository.IAnalytics
	sounds    repository.ITrendingSound
	cache     cache.ITrendCache
	validate  *validator.Validate
	now       func() time.Time
}

func NewPipelineUsecase(
	accounts repository.IAccount,
	trends repository.ITrend,
	videos repository.IVideo,
	analytics repository.IAnalytics,
	sounds repository.ITrendingSound,
	trendCache cache.ITrendCache,
) IPipelineUsecase {
	if trendCache == nil {
		trendCache = cache.NewTrendCache(nil, 0)
	}
	return &pipelineUsecase{
		accounts:  accounts,
		trends:    trends,
		videos:    videos,
		analytics: analytics,
		sounds:    sounds,
		cache:     trendCache,
		validate:  validator.New(),
		now:       utils.GetCurrentTime,
	}
}

func (u *pipelineUsecase) check(record interface{}) error {
	if err := u.validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	return nil
}

func (u *pipelineUsecase) RegisterAccount(ctx context.Context, req dto.CreateAccountRequest) (*model.Account, error) {
	status := model.AccountStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if status == "" {
		status = model.AccountStatusActive
	}
	now := u.now()
	account := &model.Account{
		Platform:  strings.ToLower(strings.TrimSpace(req.Platform)),
		Username:  strings.TrimSpace(req.Username),
		Niche:     strings.TrimSpace(req.Niche),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.check(account); err != nil {
		return nil, err
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"account_id": account.ID,
		"platform":   account.Platform,
	}).Info("account registered")
	return account, nil
}

func (u *pipelineUsecase) GetAccount(ctx context.Context, id int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, id)
}

func (u *pipelineUsecase) ListAccounts(ctx context.Context, platform string, limit, offset int) ([]model.Account, error) {
	return u.accounts.List(ctx, strings.ToLower(platform), limit, offset)
}

func (u *pipelineUsecase) UpdateAccountStatus(ctx context.Context, id int64, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if err := u.validate.Var(status, "required,oneof=active paused suspended"); err != nil {
		return fmt.Errorf("%w: account status %q", ErrInvalidInput, status)
	}
	return u.accounts.UpdateStatus(ctx, id, model.AccountStatus(status))
}

func (u *pipelineUsecase) AddTrend(ctx context.Context, req dto.CreateTrendRequest) (*model.Trend, error) {
	trend := &model.Trend{
		Title:     strings.TrimSpace(req.Title),
		Source:    strings.TrimSpace(req.Source),
		Niche:     strings.TrimSpace(req.Niche),
		Score:     req.Score,
		CreatedAt: u.now(),
	}
	if err := u.check(trend); err != nil {
		return nil, err
	}
	if err := u.trends.Create(ctx, trend); err != nil {
		return nil, err
	}
	u.cache.Invalidate(ctx)
	return trend, nil
}

func (u *pipelineUsecase) TopTrends(ctx context.Context, niche string, limit int) ([]model.Trend, error) {
	if cached, ok := u.cache.GetTop(ctx, niche, limit); ok {
		return cached, nil
	}
	trends, err := u.trends.ListTop(ctx, niche, limit)
	if err != nil {
		return nil, err
	}
	u.cache.SetTop(ctx, niche, limit, trends)
	return trends, nil
}

func (u *pipelineUsecase) DraftVideo(ctx context.Context, req dto.CreateVideoRequest) (*model.Video, error) {
	status := model.VideoStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if status == "" {
		status = model.VideoStatusDraft
	}
	now := u.now()
	video := &model.Video{
		AccountID: req.AccountID,
		TrendID:   req.TrendID,
		Script:    req.Script,
		FileType:  strings.TrimSpace(req.FileType),
		Status:    status,
		AudioPath: req.AudioPath,
		VideoPath: req.VideoPath,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.check(video); err != nil {
		return nil, err
	}
	if err := u.videos.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (u *pipelineUsecase) GetVideo(ctx context.Context, id int64) (*model.Video, error) {
	return u.videos.GetByID(ctx, id)
}

func (u *pipelineUsecase) ListAccountVideos(ctx context.Context, accountID int64, limit, offset int) ([]model.Video, error) {
	if _, err := u.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return u.videos.ListByAccount(ctx, accountID, limit, offset)
}

func (u *pipelineUsecase) UpdateVideoStatus(ctx context.Context, id int64, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if err := u.validate.Var(status, "required,oneof=draft rendered uploaded failed"); err != nil {
		return fmt.Errorf("%w: video status %q", ErrInvalidInput, status)
	}
	return u.videos.UpdateStatus(ctx, id, model.VideoStatus(status))
}

func (u *pipelineUsecase) MarkVideoUploaded(ctx context.Context, id int64, req dto.MarkUploadedRequest) error {
	at := u.now()
	if req.UploadedAt != nil {
		at = req.UploadedAt.UTC()
	}
	if err := u.videos.MarkUploaded(ctx, id, req.VideoPath, at); err != nil {
		return err
	}
	logger.GetLogger().WithField("video_id", id).Info("video marked uploaded")
	return nil
}

func (u *pipelineUsecase) RecordAnalytics(ctx context.Context, videoID int64, req dto.RecordAnalyticsRequest) (*model.Analytics, error) {
	snapshot := &model.Analytics{
		VideoID:   videoID,
		Views:     req.Views,
		Likes:     req.Likes,
		Comments:  req.Comments,
		Shares:    req.Shares,
		CreatedAt: u.now(),
	}
	if err := u.check(snapshot); err != nil {
		return nil, err
	}
	if err := u.analytics.Record(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (u *pipelineUsecase) ListAnalytics(ctx context.Context, videoID int64) ([]model.Analytics, error) {
	return u.analytics.ListByVideo(ctx, videoID)
}

func (u *pipelineUsecase) AnalyticsSummary(ctx context.Context, videoID int64) (*model.AnalyticsSummary, error) {
	if _, err := u.videos.GetByID(ctx, videoID); err != nil {
		return nil, err
	}
	return u.analytics.Summary(ctx, videoID)
}

func (u *pipelineUsecase) AddTrendingSound(ctx context.Context, req dto.CreateSoundRequest) (*model.TrendingSound, error) {
	sound := &model.TrendingSound{
		SoundID:    strings.TrimSpace(req.SoundID),
		Title:      strings.TrimSpace(req.Title),
		Vibe:       strings.ToLower(strings.TrimSpace(req.Vibe)),
		UsageCount: req.UsageCount,
		FilePath:   req.FilePath,
		CreatedAt:  u.now(),
	}
	if err := u.check(sound); err != nil {
		return nil, err
	}
	if err := u.sounds.Create(ctx, sound); err != nil {
		return nil, err
	}
	return sound, nil
}

func (u *pipelineUsecase) ListTrendingSounds(ctx context.Context, vibe string, limit int) ([]model.TrendingSound, error) {
	return u.sounds.ListByVibe(ctx, strings.ToLower(vibe), limit)
}

func (u *pipelineUsecase) UseTrendingSound(ctx context.Context, soundID string) error {
	return u.sounds.IncrementUsage(ctx, soundID)
}

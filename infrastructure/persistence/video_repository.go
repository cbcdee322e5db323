package persistence

import (
	"context"
	"fmt"
	"time"

	"content-pipeline/domain/model"
	"content-pipeline/domain/repository"
	"content-pipeline/infrastructure/logger"

	"gorm.io/gorm"
)

type VideoRepository struct{ db *gorm.DB }

func NewVideoRepository(db *gorm.DB) repository.IVideo { return &VideoRepository{db: db} }

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	if err := r.db.WithContext(ctx).Omit("Account", "Trend").Create(video).Error; err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error":      err,
			"account_id": video.AccountID,
			"trend_id":   video.TrendID,
		}).Error("create video failed")
		return classify(err)
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	var v model.Video
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, classify(err)
	}
	return &v, nil
}

func (r *VideoRepository) ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.Video, error) {
	limit, offset = normalizePage(limit, offset)
	out := make([]model.Video, 0, limit)
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *VideoRepository) UpdateStatus(ctx context.Context, id int64, status model.VideoStatus) error {
	return r.update(ctx, id, map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
}

func (r *VideoRepository) MarkUploaded(ctx context.Context, id int64, videoPath *string, at time.Time) error {
	now := time.Now().UTC()
	values := map[string]interface{}{
		"status":      string(model.VideoStatusUploaded),
		"uploaded_at": at.UTC(),
		"updated_at":  now,
	}
	if videoPath != nil {
		values["video_path"] = *videoPath
	}
	return r.update(ctx, id, values)
}

func (r *VideoRepository) update(ctx context.Context, id int64, values map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: video %d", ErrNotFound, id)
	}
	return nil
}

package persistence

import (
	"context"
	"fmt"

	"content-pipeline/domain/model"
	"content-pipeline/domain/repository"
	"content-pipeline/infrastructure/logger"

	"gorm.io/gorm"
)

type TrendingSoundRepository struct{ db *gorm.DB }

func NewTrendingSoundRepository(db *gorm.DB) repository.ITrendingSound {
	return &TrendingSoundRepository{db: db}
}

func (r *TrendingSoundRepository) Create(ctx context.Context, sound *model.TrendingSound) error {
	if err := r.db.WithContext(ctx).Create(sound).Error; err != nil {
		logger.GetLogger().WithField("error", err).WithField("sound_id", sound.SoundID).Error("create trending sound failed")
		return classify(err)
	}
	return nil
}

func (r *TrendingSoundRepository) GetBySoundID(ctx context.Context, soundID string) (*model.TrendingSound, error) {
	var s model.TrendingSound
	if err := r.db.WithContext(ctx).Where("sound_id = ?", soundID).First(&s).Error; err != nil {
		return nil, classify(err)
	}
	return &s, nil
}

func (r *TrendingSoundRepository) ListByVibe(ctx context.Context, vibe string, limit int) ([]model.TrendingSound, error) {
	limit, _ = normalizePage(limit, 0)
	q := r.db.WithContext(ctx).Order("usage_count DESC").Order("id ASC").Limit(limit)
	if vibe != "" {
		q = q.Where("vibe = ?", vibe)
	}
	out := make([]model.TrendingSound, 0, limit)
	if err := q.Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *TrendingSoundRepository) IncrementUsage(ctx context.Context, soundID string) error {
	res := r.db.WithContext(ctx).Model(&model.TrendingSound{}).
		Where("sound_id = ?", soundID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1))
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: sound %s", ErrNotFound, soundID)
	}
	return nil
}

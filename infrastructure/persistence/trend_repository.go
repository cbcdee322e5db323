package persistence

import (
	"context"

	"content-pipeline/domain/model"
	"content-pipeline/domain/repository"
	"content-pipeline/infrastructure/logger"

	"gorm.io/gorm"
)

type TrendRepository struct{ db *gorm.DB }

func NewTrendRepository(db *gorm.DB) repository.ITrend { return &TrendRepository{db: db} }

func (r *TrendRepository) Create(ctx context.Context, trend *model.Trend) error {
	if err := r.db.WithContext(ctx).Create(trend).Error; err != nil {
		logger.GetLogger().WithField("error", err).WithField("title", trend.Title).Error("create trend failed")
		return classify(err)
	}
	return nil
}

func (r *TrendRepository) GetByID(ctx context.Context, id int64) (*model.Trend, error) {
	var t model.Trend
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, classify(err)
	}
	return &t, nil
}

func (r *TrendRepository) GetByTitle(ctx context.Context, title string) (*model.Trend, error) {
	var t model.Trend
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&t).Error; err != nil {
		return nil, classify(err)
	}
	return &t, nil
}

func (r *TrendRepository) ListTop(ctx context.Context, niche string, limit int) ([]model.Trend, error) {
	limit, _ = normalizePage(limit, 0)
	q := r.db.WithContext(ctx).Order("score DESC").Order("id ASC").Limit(limit)
	if niche != "" {
		q = q.Where("niche = ?", niche)
	}
	out := make([]model.Trend, 0, limit)
	if err := q.Find(&out).Error; err != nil {
		return nil, classify(err)
	}
	return out, nil
}

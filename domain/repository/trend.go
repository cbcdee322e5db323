package repository

import (
	"context"

	"content-pipeline/domain/model"
)

type ITrend interface {
	Create(ctx context.Context, trend *model.Trend) error
	GetByID(ctx context.Context, id int64) (*model.Trend, error)
	GetByTitle(ctx context.Context, title string) (*model.Trend, error)
	// ListTop returns the highest scored trends; an empty niche matches every niche.
	ListTop(ctx context.Context, niche string, limit int) ([]model.Trend, error)
}

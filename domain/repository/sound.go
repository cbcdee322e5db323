package repository

import (
	"context"

	"content-pipeline/domain/model"
)

type ITrendingSound interface {
	Create(ctx context.Context, sound *model.TrendingSound) error
	GetBySoundID(ctx context.Context, soundID string) (*model.TrendingSound, error)
	ListByVibe(ctx context.Context, vibe string, limit int) ([]model.TrendingSound, error)
	IncrementUsage(ctx context.Context, soundID string) error
}

package repository

import (
	"context"
	"time"

	"content-pipeline/domain/model"
)

type IVideo interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id int64) (*model.Video, error)
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]model.Video, error)
	UpdateStatus(ctx context.Context, id int64, status model.VideoStatus) error
	// MarkUploaded sets status uploaded, stamps uploaded_at and optionally replaces video_path.
	MarkUploaded(ctx context.Context, id int64, videoPath *string, at time.Time) error
}

// IAnalytics stores engagement snapshots. Snapshots are append-only.
type IAnalytics interface {
	Record(ctx context.Context, snapshot *model.Analytics) error
	ListByVideo(ctx context.Context, videoID int64) ([]model.Analytics, error)
	Summary(ctx context.Context, videoID int64) (*model.AnalyticsSummary, error)
}

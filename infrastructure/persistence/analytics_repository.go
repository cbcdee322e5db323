package persistence

import (
	"context"
	"database/sql"

	"content-pipeline/domain/model"
	"content-pipeline/domain/repository"
	"content-pipeline/infrastructure/logger"

	"gorm.io/gorm"
)

// AnalyticsRepository appends snapshots through gorm and aggregates them with plain SQL.
type AnalyticsRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewAnalyticsRepository(db *gorm.DB, sqlDB *sql.DB) repository.IAnalytics {
	return &AnalyticsRepository{db: db, sqlDB: sqlDB}
}

func (r *AnalyticsRepository) Record(ctx context.Context, snapshot *model.Analytics) error {
	if err := r.db.WithContext(ctx).Omit("Video").Create(snapshot).Error; err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", snapshot.VideoID).Error("record analytics failed")
		return classify(err)
	}
	return nil
}

func (r *AnalyticsRepository) ListByVideo(ctx context.Context, videoID int64) ([]model.Analytics, error) {
	out := make([]model.Analytics, 0)
	err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("created_at ASC").Order("id ASC").
		Find(&out).Error
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

const summaryQuery = `SELECT COUNT(1), COALESCE(MAX(views), 0), COALESCE(MAX(likes), 0), COALESCE(MAX(comments), 0), COALESCE(MAX(shares), 0)
	FROM analytics WHERE video_id = ?`

// Summary returns the snapshot count and the peak of every counter for a video.
// Counters are cumulative, so the peak is the latest known value.
func (r *AnalyticsRepository) Summary(ctx context.Context, videoID int64) (*model.AnalyticsSummary, error) {
	s := &model.AnalyticsSummary{VideoID: videoID}
	row := r.sqlDB.QueryRowContext(ctx, summaryQuery, videoID)
	if err := row.Scan(&s.Snapshots, &s.Views, &s.Likes, &s.Comments, &s.Shares); err != nil {
		logger.GetLogger().WithField("error", err).WithField("video_id", videoID).Error("analytics summary failed")
		return nil, classify(err)
	}
	return s, nil
}

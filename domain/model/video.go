package model

import "time"

type VideoStatus string

const (
	VideoStatusDraft    VideoStatus = "draft"
	VideoStatusRendered VideoStatus = "rendered"
	VideoStatusUploaded VideoStatus = "uploaded"
	VideoStatusFailed   VideoStatus = "failed"
)

// Video belongs to exactly one Account and optionally to one Trend.
type Video struct {
	ID         int64       `json:"id" gorm:"primaryKey"`
	AccountID  int64       `json:"account_id" gorm:"not null;index" validate:"required,gt=0"`
	TrendID    *int64      `json:"trend_id,omitempty" gorm:"index" validate:"omitempty,gt=0"`
	Script     string      `json:"script" gorm:"type:text;not null" validate:"required"`
	FileType   string      `json:"file_type" gorm:"not null" validate:"required"`
	Status     VideoStatus `json:"status" gorm:"not null" validate:"required,oneof=draft rendered uploaded failed"`
	AudioPath  *string     `json:"audio_path,omitempty"`
	VideoPath  *string     `json:"video_path,omitempty"`
	CreatedAt  time.Time   `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time   `json:"updated_at" gorm:"not null"`
	UploadedAt *time.Time  `json:"uploaded_at,omitempty"`

	Account *Account `json:"-" gorm:"foreignKey:AccountID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Trend   *Trend   `json:"-" gorm:"foreignKey:TrendID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Video) TableName() string {
	return "videos"
}

// Analytics is one engagement snapshot of a Video. A video accumulates many snapshots over time.
type Analytics struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	VideoID   int64     `json:"video_id" gorm:"not null;index" validate:"required,gt=0"`
	Views     int64     `json:"views" gorm:"not null;default:0;check:views >= 0" validate:"gte=0"`
	Likes     int64     `json:"likes" gorm:"not null;default:0;check:likes >= 0" validate:"gte=0"`
	Comments  int64     `json:"comments" gorm:"not null;default:0;check:comments >= 0" validate:"gte=0"`
	Shares    int64     `json:"shares" gorm:"not null;default:0;check:shares >= 0" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`

	Video *Video `json:"-" gorm:"foreignKey:VideoID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Analytics) TableName() string {
	return "analytics"
}

// AnalyticsSummary aggregates every snapshot recorded for a video.
type AnalyticsSummary struct {
	VideoID   int64 `json:"video_id"`
	Snapshots int64 `json:"snapshots"`
	Views     int64 `json:"views"`
	Likes     int64 `json:"likes"`
	Comments  int64 `json:"comments"`
	Shares    int64 `json:"shares"`
}

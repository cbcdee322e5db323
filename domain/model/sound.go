package model

import "time"

// TrendingSound is an audio track currently popular on a platform, keyed by the platform's sound id.
type TrendingSound struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	SoundID    string    `json:"sound_id" gorm:"not null;unique" validate:"required"`
	Title      string    `json:"title" gorm:"not null" validate:"required"`
	Vibe       string    `json:"vibe" gorm:"not null" validate:"required"`
	UsageCount int64     `json:"usage_count" gorm:"not null;check:usage_count >= 0" validate:"gte=0"`
	FilePath   *string   `json:"file_path,omitempty"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
}

func (TrendingSound) TableName() string {
	return "trending_sounds"
}

package model

import "time"

// Trend is a scraped topic ranked by Score. Title is unique.
type Trend struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null;unique" validate:"required"`
	Source    string    `json:"source" gorm:"not null" validate:"required"`
	Niche     string    `json:"niche" gorm:"not null" validate:"required"`
	Score     float64   `json:"score" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (Trend) TableName() string {
	return "trends"
}

package model

import "time"

type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "active"
	AccountStatusPaused    AccountStatus = "paused"
	AccountStatusSuspended AccountStatus = "suspended"
)

// Account is a platform account the pipeline publishes to. Username is unique across platforms.
type Account struct {
	ID        int64         `json:"id" gorm:"primaryKey"`
	Platform  string        `json:"platform" gorm:"not null" validate:"required"`
	Username  string        `json:"username" gorm:"not null;unique" validate:"required"`
	Niche     string        `json:"niche" gorm:"not null" validate:"required"`
	Status    AccountStatus `json:"status" gorm:"not null" validate:"required,oneof=active paused suspended"`
	CreatedAt time.Time     `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time     `json:"updated_at" gorm:"not null"`
}

func (Account) TableName() string {
	return "accounts"
}

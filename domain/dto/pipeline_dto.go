package dto

import "time"

// CreateAccountRequest registers a platform account
type CreateAccountRequest struct {
	Platform string `json:"platform" binding:"required"`
	Username string `json:"username" binding:"required"`
	Niche    string `json:"niche" binding:"required"`
	Status   string `json:"status"` // defaults to active
}

// CreateTrendRequest stores a scraped trend
type CreateTrendRequest struct {
	Title  string  `json:"title" binding:"required"`
	Source string  `json:"source" binding:"required"`
	Niche  string  `json:"niche" binding:"required"`
	Score  float64 `json:"score"`
}

// CreateVideoRequest drafts a video for an account, optionally tied to a trend
type CreateVideoRequest struct {
	AccountID int64   `json:"account_id" binding:"required"`
	TrendID   *int64  `json:"trend_id,omitempty"`
	Script    string  `json:"script" binding:"required"`
	FileType  string  `json:"file_type" binding:"required"`
	Status    string  `json:"status"` // defaults to draft
	AudioPath *string `json:"audio_path,omitempty"`
	VideoPath *string `json:"video_path,omitempty"`
}

// UpdateStatusRequest moves an account or video to another lifecycle status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// MarkUploadedRequest records a finished platform upload
type MarkUploadedRequest struct {
	VideoPath  *string    `json:"video_path,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`
}

// RecordAnalyticsRequest is one engagement snapshot
type RecordAnalyticsRequest struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// CreateSoundRequest stores a trending sound
type CreateSoundRequest struct {
	SoundID    string  `json:"sound_id" binding:"required"`
	Title      string  `json:"title" binding:"required"`
	Vibe       string  `json:"vibe" binding:"required"`
	UsageCount int64   `json:"usage_count"`
	FilePath   *string `json:"file_path,omitempty"`
}

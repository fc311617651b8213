package models

import "time"

// Notification создается только как побочный эффект переходов
// жизненного цикла (ставка подана, найм, завершение и т.д.)
type Notification struct {
	BaseModel
	UserID       string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         string     `gorm:"not null" json:"type"`
	Title        string     `gorm:"not null" json:"title"`
	Message      string     `json:"message"`
	RelatedJobID *string    `gorm:"type:uuid" json:"related_job_id"`
	RelatedBidID *string    `gorm:"type:uuid" json:"related_bid_id"`
	IsRead       bool       `gorm:"default:false;index" json:"is_read"`
	ReadAt       *time.Time `json:"read_at"`
}

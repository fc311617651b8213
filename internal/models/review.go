package models

// Review - отзыв участника завершенного задания о второй стороне.
// Один отзыв на (job, reviewer).
type Review struct {
	BaseModel
	JobID      string `gorm:"type:uuid;not null;index;uniqueIndex:idx_reviews_job_reviewer" json:"job_id"`
	ReviewerID string `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_job_reviewer" json:"reviewer_id"`
	RevieweeID string `gorm:"type:uuid;not null;index" json:"reviewee_id"`
	Rating     int    `gorm:"not null" json:"rating"` // 1..5
	Comment    string `json:"comment"`
}

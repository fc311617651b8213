package models

// Bid - предложение фрилансера по открытому заданию.
// Композитный уникальный индекс запрещает повторную ставку того же
// фрилансера на то же задание на уровне БД (защита от TOCTOU-гонки).
type Bid struct {
	BaseModel
	JobID        string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_job_freelancer" json:"job_id"`
	FreelancerID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_bids_job_freelancer" json:"freelancer_id"`
	Amount       float64   `gorm:"not null" json:"amount"`
	Proposal     string    `gorm:"not null" json:"proposal"`
	DeliveryTime int       `gorm:"not null" json:"delivery_time"` // в днях
	Status       BidStatus `gorm:"not null;index;default:pending" json:"status"`
}

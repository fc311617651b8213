package models

// Message - сообщение между клиентом и нанятым фрилансером в рамках задания
type Message struct {
	BaseModel
	JobID      string `gorm:"type:uuid;not null;index" json:"job_id"`
	SenderID   string `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Content    string `gorm:"not null" json:"content"`
	IsRead     bool   `gorm:"default:false" json:"is_read"`
}

package repositories

import (
	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
)

type MessageRepository interface {
	Create(db *gorm.DB, message *models.Message) error
	ListByJob(db *gorm.DB, jobID string) ([]models.Message, error)
	// MarkConversationRead помечает прочитанными все входящие сообщения
	// получателя в рамках задания
	MarkConversationRead(db *gorm.DB, jobID, receiverID string) error
}

type MessageRepositoryImpl struct{}

func NewMessageRepository() MessageRepository {
	return &MessageRepositoryImpl{}
}

func (r *MessageRepositoryImpl) Create(db *gorm.DB, message *models.Message) error {
	return db.Create(message).Error
}

func (r *MessageRepositoryImpl) ListByJob(db *gorm.DB, jobID string) ([]models.Message, error) {
	var messages []models.Message
	err := db.
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) MarkConversationRead(db *gorm.DB, jobID, receiverID string) error {
	return db.Model(&models.Message{}).
		Where("job_id = ? AND receiver_id = ? AND is_read = ?", jobID, receiverID, false).
		Update("is_read", true).Error
}

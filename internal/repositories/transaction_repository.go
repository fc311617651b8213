package repositories

import (
	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
)

type TransactionRepository interface {
	Create(db *gorm.DB, tx *models.Transaction) error
	ListByUser(db *gorm.DB, userID string) ([]models.Transaction, error)
}

type TransactionRepositoryImpl struct{}

func NewTransactionRepository() TransactionRepository {
	return &TransactionRepositoryImpl{}
}

func (r *TransactionRepositoryImpl) Create(db *gorm.DB, tx *models.Transaction) error {
	return db.Create(tx).Error
}

// ListByUser возвращает транзакции, где пользователь - любая из сторон
func (r *TransactionRepositoryImpl) ListByUser(db *gorm.DB, userID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := db.
		Where("client_id = ? OR freelancer_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

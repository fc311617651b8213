package repositories

import (
	"errors"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
)

var (
	ErrBidNotFound  = errors.New("bid not found")
	ErrDuplicateBid = errors.New("duplicate bid")
)

// BidListCriteria - фильтры листинга ставок фрилансера
type BidListCriteria struct {
	Status string
	Limit  int
	Offset int
}

type BidRepository interface {
	Create(db *gorm.DB, bid *models.Bid) error
	FindByID(db *gorm.DB, id string) (*models.Bid, error)
	ExistsForJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (bool, error)
	ListByJob(db *gorm.DB, jobID string, status string) ([]models.Bid, error)
	ListByFreelancer(db *gorm.DB, freelancerID string, criteria BidListCriteria) ([]models.Bid, int64, error)
	UpdateStatus(db *gorm.DB, bidID string, status models.BidStatus) error
	// RejectOthers переводит в rejected все ставки задания, кроме принятой
	RejectOthers(db *gorm.DB, jobID, acceptedBidID string) error
	// RejectPending переводит в rejected все pending-ставки задания
	// (используется при отмене задания)
	RejectPending(db *gorm.DB, jobID string) error
}

type BidRepositoryImpl struct{}

func NewBidRepository() BidRepository {
	return &BidRepositoryImpl{}
}

func (r *BidRepositoryImpl) Create(db *gorm.DB, bid *models.Bid) error {
	err := db.Create(bid).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Композитный уникальный индекс (job_id, freelancer_id) закрывает
		// гонку двух одновременных Submit
		return ErrDuplicateBid
	}
	return err
}

func (r *BidRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Bid, error) {
	var bid models.Bid
	err := db.First(&bid, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBidNotFound
		}
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepositoryImpl) ExistsForJobAndFreelancer(db *gorm.DB, jobID, freelancerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Bid{}).
		Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *BidRepositoryImpl) ListByJob(db *gorm.DB, jobID string, status string) ([]models.Bid, error) {
	query := db.Where("job_id = ?", jobID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bids []models.Bid
	err := query.Order("created_at DESC").Find(&bids).Error
	return bids, err
}

func (r *BidRepositoryImpl) ListByFreelancer(db *gorm.DB, freelancerID string, criteria BidListCriteria) ([]models.Bid, int64, error) {
	query := db.Model(&models.Bid{}).Where("freelancer_id = ?", freelancerID)
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bids []models.Bid
	err := query.
		Order("created_at DESC").
		Limit(criteria.Limit).
		Offset(criteria.Offset).
		Find(&bids).Error
	if err != nil {
		return nil, 0, err
	}
	return bids, total, nil
}

func (r *BidRepositoryImpl) UpdateStatus(db *gorm.DB, bidID string, status models.BidStatus) error {
	return db.Model(&models.Bid{}).
		Where("id = ?", bidID).
		Update("status", status).Error
}

func (r *BidRepositoryImpl) RejectOthers(db *gorm.DB, jobID, acceptedBidID string) error {
	return db.Model(&models.Bid{}).
		Where("job_id = ? AND id <> ?", jobID, acceptedBidID).
		Update("status", models.BidStatusRejected).Error
}

func (r *BidRepositoryImpl) RejectPending(db *gorm.DB, jobID string) error {
	return db.Model(&models.Bid{}).
		Where("job_id = ? AND status = ?", jobID, models.BidStatusPending).
		Update("status", models.BidStatusRejected).Error
}

package repositories

import (
	"errors"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
)

var ErrDuplicateReview = errors.New("duplicate review")

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	ExistsForJobAndReviewer(db *gorm.DB, jobID, reviewerID string) (bool, error)
	ListByReviewee(db *gorm.DB, revieweeID string) ([]models.Review, error)
	AverageRating(db *gorm.DB, revieweeID string) (float64, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	err := db.Create(review).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateReview
	}
	return err
}

func (r *ReviewRepositoryImpl) ExistsForJobAndReviewer(db *gorm.DB, jobID, reviewerID string) (bool, error) {
	var count int64
	err := db.Model(&models.Review{}).
		Where("job_id = ? AND reviewer_id = ?", jobID, reviewerID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepositoryImpl) ListByReviewee(db *gorm.DB, revieweeID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.
		Where("reviewee_id = ?", revieweeID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) AverageRating(db *gorm.DB, revieweeID string) (float64, error) {
	var avg *float64
	err := db.Model(&models.Review{}).
		Where("reviewee_id = ?", revieweeID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type ReviewService struct {
	reviewRepo          repositories.ReviewRepository
	jobRepo             repositories.JobRepository
	notificationService *NotificationService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	jobRepo repositories.JobRepository,
	notificationService *NotificationService,
) *ReviewService {
	return &ReviewService{
		reviewRepo:          reviewRepo,
		jobRepo:             jobRepo,
		notificationService: notificationService,
	}
}

// Create оставляет отзыв о второй стороне завершенного задания.
// Рецензент - клиент или нанятый фрилансер, второй участник становится
// получателем отзыва. Один отзыв на (задание, рецензент).
func (s *ReviewService) Create(ctx context.Context, db *gorm.DB, reviewerID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.Status != models.JobStatusCompleted {
		return nil, apperrors.ErrInvalidStatus("reviews", "Reviews are allowed only for completed jobs")
	}
	if job.HiredFreelancerID == nil {
		return nil, apperrors.ErrNoFreelancer
	}

	var revieweeID string
	switch reviewerID {
	case job.ClientID:
		revieweeID = *job.HiredFreelancerID
	case *job.HiredFreelancerID:
		revieweeID = job.ClientID
	default:
		return nil, apperrors.ErrReviewNotAllowed
	}

	exists, err := s.reviewRepo.ExistsForJobAndReviewer(db, job.ID, reviewerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateReview
	}

	review := &models.Review{
		JobID:      job.ID,
		ReviewerID: reviewerID,
		RevieweeID: revieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		if errors.Is(err, repositories.ErrDuplicateReview) {
			return nil, apperrors.ErrDuplicateReview
		}
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.Emit(ctx, db, &models.Notification{
		UserID:       revieweeID,
		Type:         models.NotificationTypeReviewReceived,
		Title:        "New Review Received",
		Message:      fmt.Sprintf("You received a %d-star review for \"%s\".", review.Rating, job.Title),
		RelatedJobID: &job.ID,
	})

	return review, nil
}

func (s *ReviewService) ListForUser(db *gorm.DB, userID string) (*dto.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.ListByReviewee(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	avg, err := s.reviewRepo.AverageRating(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReviewListResponse{
		Reviews:       reviews,
		AverageRating: avg,
	}, nil
}

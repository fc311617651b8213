package services

import (
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

// PaymentService готовит платежи по завершенным заданиям.
// Деньги не двигает: создает pending-транзакцию и отдает данные для
// внешнего платежного процессора.
type PaymentService struct {
	transactionRepo repositories.TransactionRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	feeRate         float64
	currency        string
}

func NewPaymentService(
	transactionRepo repositories.TransactionRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	cfg *config.Config,
) *PaymentService {
	return &PaymentService{
		transactionRepo: transactionRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		feeRate:         cfg.Payments.PlatformFeeRate,
		currency:        cfg.Payments.Currency,
	}
}

func (s *PaymentService) Prepare(db *gorm.DB, clientID string, req *dto.PreparePaymentRequest) (*dto.PaymentPrepared, error) {
	job, err := s.jobRepo.FindByID(db, req.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if job.ClientID != clientID {
		return nil, apperrors.ErrNotJobOwner
	}
	if job.Status != models.JobStatusCompleted {
		return nil, apperrors.ErrJobNotCompleted
	}
	if job.HiredFreelancerID == nil {
		return nil, apperrors.ErrNoFreelancer
	}

	platformFee := job.Budget * s.feeRate
	tx := &models.Transaction{
		JobID:            job.ID,
		ClientID:         job.ClientID,
		FreelancerID:     *job.HiredFreelancerID,
		Amount:           job.Budget,
		PlatformFee:      platformFee,
		FreelancerPayout: job.Budget - platformFee,
		Status:           models.TransactionStatusPending,
	}
	if err := s.transactionRepo.Create(db, tx); err != nil {
		return nil, apperrors.InternalError(err)
	}

	customerName := ""
	if client, err := s.profileRepo.FindByID(db, clientID); err == nil {
		customerName = client.FullName
	}

	return &dto.PaymentPrepared{
		Success:       true,
		TransactionID: tx.ID,
		PaymentData: dto.PaymentData{
			// внешний процессор принимает сумму в минорных единицах
			Amount:       int64(math.Round(job.Budget * 100)),
			Currency:     s.currency,
			Description:  fmt.Sprintf("Payment for job: %s", job.Title),
			CustomerName: customerName,
		},
		Message: "Payment prepared successfully",
	}, nil
}

func (s *PaymentService) ListMine(db *gorm.DB, userID string) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return transactions, nil
}

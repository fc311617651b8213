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

// MessageService - переписка клиента и нанятого фрилансера в рамках задания
type MessageService struct {
	messageRepo         repositories.MessageRepository
	jobRepo             repositories.JobRepository
	notificationService *NotificationService
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	jobRepo repositories.JobRepository,
	notificationService *NotificationService,
) *MessageService {
	return &MessageService{
		messageRepo:         messageRepo,
		jobRepo:             jobRepo,
		notificationService: notificationService,
	}
}

// counterpart возвращает второго участника переписки по заданию.
// Ошибка, если вызывающий не участник или фрилансер еще не нанят.
func (s *MessageService) counterpart(db *gorm.DB, jobID, userID string) (*models.Job, string, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, "", apperrors.ErrJobNotFound
		}
		return nil, "", apperrors.InternalError(err)
	}
	if job.HiredFreelancerID == nil {
		return nil, "", apperrors.ErrNoFreelancer
	}

	switch userID {
	case job.ClientID:
		return job, *job.HiredFreelancerID, nil
	case *job.HiredFreelancerID:
		return job, job.ClientID, nil
	default:
		return nil, "", apperrors.ErrNotParticipant
	}
}

func (s *MessageService) Send(ctx context.Context, db *gorm.DB, senderID string, req *dto.SendMessageRequest) (*models.Message, error) {
	job, receiverID, err := s.counterpart(db, req.JobID, senderID)
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		JobID:      job.ID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
	}
	if err := s.messageRepo.Create(db, message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.Emit(ctx, db, &models.Notification{
		UserID:       receiverID,
		Type:         models.NotificationTypeNewMessage,
		Title:        "New Message",
		Message:      fmt.Sprintf("You have a new message about \"%s\".", job.Title),
		RelatedJobID: &job.ID,
	})

	return message, nil
}

func (s *MessageService) ListForJob(db *gorm.DB, jobID, userID string) ([]models.Message, error) {
	if _, _, err := s.counterpart(db, jobID, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.ListByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

// MarkRead помечает прочитанными входящие сообщения вызывающего по заданию
func (s *MessageService) MarkRead(db *gorm.DB, jobID, userID string) error {
	if _, _, err := s.counterpart(db, jobID, userID); err != nil {
		return err
	}
	if err := s.messageRepo.MarkConversationRead(db, jobID, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

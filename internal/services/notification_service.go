package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/realtime"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	publisher        *realtime.Publisher
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	publisher *realtime.Publisher,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		publisher:        publisher,
	}
}

// Emit создает уведомление вне транзакции вызывающей операции.
// Сбой доставки не должен ломать основную операцию, поэтому ошибка
// логируется и никогда не возвращается наверх.
func (s *NotificationService) Emit(ctx context.Context, db *gorm.DB, notification *models.Notification) {
	if err := s.notificationRepo.Create(db, notification); err != nil {
		logger.CtxError(ctx, "failed to create notification",
			"error", err,
			"user_id", notification.UserID,
			"type", notification.Type,
		)
		return
	}

	if s.publisher.Enabled() {
		s.publisher.PublishNotification(ctx, notification)
	}
}

// NotificationList - страница уведомлений пользователя с числом непрочитанных
type NotificationList struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count"`
	Pagination    dto.Pagination        `json:"pagination"`
}

func (s *NotificationService) List(db *gorm.DB, userID string, query dto.NotificationListQuery) (*NotificationList, error) {
	criteria := repositories.NotificationCriteria{
		UnreadOnly: query.UnreadOnly,
		Limit:      query.Limit,
		Offset:     query.Offset,
	}
	if criteria.Limit <= 0 {
		criteria.Limit = 20
	}

	notifications, total, err := s.notificationRepo.ListByUser(db, userID, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &NotificationList{
		Notifications: notifications,
		UnreadCount:   unread,
		Pagination:    dto.NewPagination(total, criteria.Limit, criteria.Offset),
	}, nil
}

func (s *NotificationService) MarkRead(db *gorm.DB, userID, notificationID string) error {
	notification, err := s.notificationRepo.FindByID(db, notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.InternalError(err)
	}

	if notification.UserID != userID {
		return apperrors.ErrNotYourNotification
	}

	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkAsRead(db, notificationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllAsRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// PurgeRead удаляет прочитанные уведомления старше retention-окна.
// Вызывается фоновым воркером.
func (s *NotificationService) PurgeRead(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.notificationRepo.DeleteReadOlderThan(db, cutoff)
}

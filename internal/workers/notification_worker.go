package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/services"
)

// NotificationWorker чистит прочитанные уведомления старше retention-окна
type NotificationWorker struct {
	db                  *gorm.DB
	notificationService *services.NotificationService
	retention           time.Duration
}

func NewNotificationWorker(db *gorm.DB, notificationService *services.NotificationService, retentionDays int) *NotificationWorker {
	return &NotificationWorker{
		db:                  db,
		notificationService: notificationService,
		retention:           time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start запускает фоновые задачи для уведомлений
func (w *NotificationWorker) Start(ctx context.Context) {
	go w.purgeReadNotifications(ctx)
}

func (w *NotificationWorker) purgeReadNotifications(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		case <-ticker.C:
			deleted, err := w.notificationService.PurgeRead(w.db, w.retention)
			if err != nil {
				logger.Error("Error purging read notifications", "error", err)
			} else if deleted > 0 {
				logger.Info("Purged read notifications", "count", deleted)
			}
		}
	}
}

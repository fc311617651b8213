package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
)

// Publisher рассылает события уведомлений в Redis pub/sub.
// Подписчики (фронтенд-гейтвей, воркеры) слушают канал notifications:<user_id>.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// Enabled сообщает, настроен ли транспорт.
func (p *Publisher) Enabled() bool {
	return p != nil && p.rdb != nil
}

// PublishNotification публикует созданное уведомление в канал пользователя.
// Ошибки публикации логируются и не прерывают основной поток.
func (p *Publisher) PublishNotification(ctx context.Context, n *models.Notification) {
	if !p.Enabled() {
		return
	}

	payload, err := json.Marshal(n)
	if err != nil {
		logger.Error("failed to marshal notification for publish", "error", err, "notification_id", n.ID)
		return
	}

	channel := fmt.Sprintf("notifications:%s", n.UserID)
	if err := p.rdb.Publish(ctx, channel, payload).Err(); err != nil {
		logger.Warn("failed to publish notification", "error", err, "channel", channel)
	}
}

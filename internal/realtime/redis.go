package realtime

import (
	"github.com/redis/go-redis/v9"

	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/logger"
)

// NewRedis создает клиент Redis по конфигурации.
// Возвращает nil, если адрес не задан - realtime-канал опционален.
func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	logger.Info("Redis client created", "addr", cfg.Redis.Addr)
	return rdb
}

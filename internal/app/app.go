package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"freelancehub_backend/database"
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/handlers"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/realtime"
	"freelancehub_backend/internal/routes"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/validator"
	"freelancehub_backend/internal/workers"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notificationWorker := workers.NewNotificationWorker(gormDB, serviceContainer.NotificationService, cfg.Notifications.RetentionDays)
	notificationWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	publisher := realtime.NewPublisher(realtime.NewRedis(cfg))
	if !publisher.Enabled() {
		logger.Warn("Redis is not configured, realtime notification mirror disabled")
	}

	serviceContainer := services.NewServiceContainer(cfg, publisher)
	appHandlers := initializeHandlers(serviceContainer)
	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter, serviceContainer
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, services.ProfileService),
		JobHandler:          handlers.NewJobHandler(baseHandler, services.JobService),
		BidHandler:          handlers.NewBidHandler(baseHandler, services.BidService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		PaymentHandler:      handlers.NewPaymentHandler(baseHandler, services.PaymentService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, services.ReviewService),
		MessageHandler:      handlers.NewMessageHandler(baseHandler, services.MessageService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst).Limit())
	router.Use(middleware.DBMiddleware(db))
	return router
}

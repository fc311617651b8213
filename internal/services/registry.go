package services

import (
	"freelancehub_backend/internal/config"
	"freelancehub_backend/internal/realtime"
	"freelancehub_backend/internal/repositories"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	ProfileService      *ProfileService
	JobService          *JobService
	BidService          *BidService
	NotificationService *NotificationService
	PaymentService      *PaymentService
	ReviewService       *ReviewService
	MessageService      *MessageService
}

func NewServiceContainer(cfg *config.Config, publisher *realtime.Publisher) *ServiceContainer {
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	bidRepo := repositories.NewBidRepository()
	notificationRepo := repositories.NewNotificationRepository()
	transactionRepo := repositories.NewTransactionRepository()
	reviewRepo := repositories.NewReviewRepository()
	messageRepo := repositories.NewMessageRepository()

	notificationService := NewNotificationService(notificationRepo, publisher)
	profileService := NewProfileService(profileRepo)

	return &ServiceContainer{
		ProfileService:      profileService,
		JobService:          NewJobService(jobRepo, bidRepo, profileRepo, profileService, notificationService),
		BidService:          NewBidService(bidRepo, jobRepo, profileRepo, profileService, notificationService),
		NotificationService: notificationService,
		PaymentService:      NewPaymentService(transactionRepo, jobRepo, profileRepo, cfg),
		ReviewService:       NewReviewService(reviewRepo, jobRepo, notificationService),
		MessageService:      NewMessageService(messageRepo, jobRepo, notificationService),
	}
}

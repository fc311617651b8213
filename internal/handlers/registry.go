package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	BidHandler          *BidHandler
	NotificationHandler *NotificationHandler
	PaymentHandler      *PaymentHandler
	ReviewHandler       *ReviewHandler
	MessageHandler      *MessageHandler
}

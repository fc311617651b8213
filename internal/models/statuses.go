package models

type ProfileRole string
type JobStatus string
type BidStatus string
type TransactionStatus string

const (
	ProfileRoleClient     ProfileRole = "client"
	ProfileRoleFreelancer ProfileRole = "freelancer"

	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"

	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"

	TransactionStatusPending  TransactionStatus = "pending"
	TransactionStatusPaid     TransactionStatus = "paid"
	TransactionStatusFailed   TransactionStatus = "failed"
	TransactionStatusRefunded TransactionStatus = "refunded"
)

// Типы уведомлений. NotificationTypeBidAccepted используется и для
// уведомления "не выбран" - так делал исходный продукт, и клиенты на это
// завязаны.
const (
	NotificationTypeBidPlaced      = "bid_placed"
	NotificationTypeBidAccepted    = "bid_accepted"
	NotificationTypeJobCompleted   = "job_completed"
	NotificationTypeJobCancelled   = "job_cancelled"
	NotificationTypeReviewReceived = "review_received"
	NotificationTypeNewMessage     = "new_message"
)

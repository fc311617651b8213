package dto

import "time"

// --- Profiles ---

type CreateProfileRequest struct {
	Role         string   `json:"role" validate:"required,is-profile-role"`
	FullName     string   `json:"full_name" validate:"required,max=200"`
	Bio          string   `json:"bio" validate:"max=2000"`
	Skills       []string `json:"skills" validate:"max=50"`
	HourlyRate   float64  `json:"hourly_rate" validate:"gte=0"`
	PortfolioURL string   `json:"portfolio_url" validate:"omitempty,url"`
	AvatarURL    string   `json:"avatar_url" validate:"omitempty,url"`
	Location     string   `json:"location" validate:"max=200"`
}

// UpdateProfileRequest намеренно не содержит role: роль неизменяема
type UpdateProfileRequest struct {
	FullName     string   `json:"full_name" validate:"required,max=200"`
	Bio          string   `json:"bio" validate:"max=2000"`
	Skills       []string `json:"skills" validate:"max=50"`
	HourlyRate   float64  `json:"hourly_rate" validate:"gte=0"`
	PortfolioURL string   `json:"portfolio_url" validate:"omitempty,url"`
	AvatarURL    string   `json:"avatar_url" validate:"omitempty,url"`
	Location     string   `json:"location" validate:"max=200"`
}

// --- Jobs ---

type CreateJobRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Description    string    `json:"description" validate:"required"`
	Budget         float64   `json:"budget" validate:"required,gt=0"`
	Deadline       time.Time `json:"deadline" validate:"required"`
	RequiredSkills []string  `json:"required_skills" validate:"max=50"`
}

type JobListQuery struct {
	Status string `form:"status" validate:"omitempty,is-job-status"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" validate:"omitempty,min=0"`
}

// --- Bids ---

type SubmitBidRequest struct {
	JobID        string  `json:"job_id" validate:"required,uuid"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Proposal     string  `json:"proposal" validate:"required"`
	DeliveryTime int     `json:"delivery_time" validate:"required,gt=0"` // дни
}

type BidListQuery struct {
	Status string `form:"status" validate:"omitempty,is-bid-status"`
	Limit  int    `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" validate:"omitempty,min=0"`
}

// --- Notifications ---

type NotificationListQuery struct {
	UnreadOnly bool `form:"unread_only"`
	Limit      int  `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int  `form:"offset" validate:"omitempty,min=0"`
}

// --- Payments ---

type PreparePaymentRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// --- Reviews ---

type CreateReviewRequest struct {
	JobID   string `json:"job_id" validate:"required,uuid"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// --- Messages ---

type SendMessageRequest struct {
	JobID   string `json:"job_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,max=5000"`
}

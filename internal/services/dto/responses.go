package dto

import "freelancehub_backend/internal/models"

// Pagination - метаданные листинга, контракт прежнего API:
// {total, limit, offset, hasMore}
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

func NewPagination(total int64, limit, offset int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}
}

// JobResponse - задание с краткой формой клиента
type JobResponse struct {
	models.Job
	Client *models.ProfileSummary `json:"client,omitempty"`
}

// BidWithFreelancer - ставка с краткой формой фрилансера
// (листинг ставок для владельца задания)
type BidWithFreelancer struct {
	models.Bid
	Freelancer *models.ProfileSummary `json:"freelancer,omitempty"`
}

// JobSummary - краткая форма задания для листинга ставок фрилансера
type JobSummary struct {
	ID       string                 `json:"id"`
	Title    string                 `json:"title"`
	Budget   float64                `json:"budget"`
	Status   models.JobStatus       `json:"status"`
	ClientID string                 `json:"client_id"`
	Client   *models.ProfileSummary `json:"client,omitempty"`
}

// BidWithJob - ставка с кратким заданием и его клиентом
type BidWithJob struct {
	models.Bid
	Job *JobSummary `json:"job,omitempty"`
}

// HireResult - итог найма
type HireResult struct {
	Message      string `json:"message"`
	JobID        string `json:"job_id"`
	FreelancerID string `json:"freelancer_id"`
}

// PaymentData - данные для внешнего платежного процессора
type PaymentData struct {
	Amount       int64  `json:"amount"` // в минорных единицах валюты
	Currency     string `json:"currency"`
	Description  string `json:"description"`
	CustomerName string `json:"customer_name"`
}

// PaymentPrepared - итог подготовки платежа
type PaymentPrepared struct {
	Success       bool        `json:"success"`
	TransactionID string      `json:"transaction_id"`
	PaymentData   PaymentData `json:"payment_data"`
	Message       string      `json:"message"`
}

// ReviewListResponse - отзывы о пользователе с агрегатом
type ReviewListResponse struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
}

package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок маркетплейса.
Таксономия: Unauthorized(401), Forbidden(403), NotFound(404),
ValidationFailed/InvalidStatus/Conflict(400), InternalError(500).
*/

// =========================================================================
// Фабричные функции (оборачивание ошибок репозитория)
// =========================================================================

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(resource string) *AppError {
	return New(CodeNotFound, "resource", resource+" not found", http.StatusNotFound)
}

// ErrConflict - фабрика для конфликтов.
// Внимание: контракт API маппит Conflict на 400, а не на 409
// (дубликат ставки - это ошибка запроса, а не состояния ресурса).
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для операций, недопустимых в текущем
// состоянии жизненного цикла (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation - фабрика для прочих невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// =========================================================================
// Предопределенные переменные (частые, статичные ошибки)
// =========================================================================

var (
	// Профили
	ErrProfileNotFound = New(CodeNotFound, "profiles", "Profile not found", http.StatusNotFound)
	ErrProfileExists   = New(CodeAlreadyExists, "profiles", "Profile already exists", http.StatusConflict)
	ErrProfileBlocked  = New(CodeForbidden, "profiles", "Account is blocked", http.StatusForbidden)

	// Задания
	ErrJobNotFound     = New(CodeNotFound, "jobs", "Job not found", http.StatusNotFound)
	ErrNotJobOwner     = New(CodeForbidden, "jobs", "Only the job owner can perform this action", http.StatusForbidden)
	ErrJobNotOpen      = ErrInvalidStatus("jobs", "Job is no longer open")
	ErrOnlyClients     = New(CodeForbidden, "jobs", "Only clients can create jobs", http.StatusForbidden)
	ErrNoFreelancer    = ErrInvalidStatus("jobs", "No freelancer hired for this job")
	ErrJobNotCompleted = ErrInvalidStatus("payments", "Payment can only be prepared for completed jobs")

	// Ставки
	ErrBidNotFound     = New(CodeNotFound, "bids", "Bid not found", http.StatusNotFound)
	ErrOnlyFreelancers = New(CodeForbidden, "bids", "Only freelancers can submit bids", http.StatusForbidden)
	ErrDuplicateBid    = ErrConflict("bids", "You have already bid on this job")

	// Уведомления
	ErrNotificationNotFound = New(CodeNotFound, "notifications", "Notification not found", http.StatusNotFound)
	ErrNotYourNotification  = New(CodeForbidden, "notifications", "Cannot modify other users notifications", http.StatusForbidden)

	// Отзывы и сообщения
	ErrReviewNotAllowed = New(CodeForbidden, "reviews", "Only job participants can leave a review", http.StatusForbidden)
	ErrDuplicateReview  = ErrConflict("reviews", "You have already reviewed this job")
	ErrNotParticipant   = New(CodeForbidden, "messages", "Only job participants can exchange messages", http.StatusForbidden)
)

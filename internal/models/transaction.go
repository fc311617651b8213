package models

// Transaction - подготовленный платеж по завершенному заданию.
// Деньги этот сервис не двигает: запись остается в pending до прихода
// внешнего платежного процессора.
// Инвариант: PlatformFee + FreelancerPayout == Amount.
type Transaction struct {
	BaseModel
	JobID            string            `gorm:"type:uuid;not null;index" json:"job_id"`
	ClientID         string            `gorm:"type:uuid;not null;index" json:"client_id"`
	FreelancerID     string            `gorm:"type:uuid;not null;index" json:"freelancer_id"`
	Amount           float64           `gorm:"not null" json:"amount"`
	PlatformFee      float64           `gorm:"not null" json:"platform_fee"`
	FreelancerPayout float64           `gorm:"not null" json:"freelancer_payout"`
	Status           TransactionStatus `gorm:"not null;default:pending" json:"status"`
}

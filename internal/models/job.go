package models

import (
	"time"

	"gorm.io/datatypes"
)

// Job - опубликованное задание.
// Инвариант: HiredFreelancerID заполнен тогда и только тогда, когда
// Status ∈ {in_progress, completed}.
type Job struct {
	BaseModel
	ClientID          string         `gorm:"type:uuid;not null;index" json:"client_id"`
	Title             string         `gorm:"not null" json:"title"`
	Description       string         `gorm:"not null" json:"description"`
	Budget            float64        `gorm:"not null" json:"budget"`
	Deadline          time.Time      `json:"deadline"`
	RequiredSkills    datatypes.JSON `gorm:"type:jsonb" json:"required_skills"`
	Status            JobStatus      `gorm:"not null;index;default:open" json:"status"`
	HiredFreelancerID *string        `gorm:"type:uuid" json:"hired_freelancer_id"`
}

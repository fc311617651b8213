package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile - учетная запись участника маркетплейса.
// ID совпадает с идентификатором пользователя у внешнего Identity Provider,
// поэтому BaseModel здесь не используется: ID приходит извне.
type Profile struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Role         ProfileRole    `gorm:"not null" json:"role"` // role неизменяема после создания
	FullName     string         `gorm:"not null" json:"full_name"`
	Bio          string         `json:"bio"`
	Skills       datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	HourlyRate   float64        `json:"hourly_rate"`
	PortfolioURL string         `json:"portfolio_url"`
	AvatarURL    string         `json:"avatar_url"`
	Location     string         `json:"location"`
	IsBlocked    bool           `gorm:"default:false" json:"is_blocked"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProfileSummary - краткая форма профиля для встраивания в ответы
// (списки ставок, карточки заданий)
type ProfileSummary struct {
	ID         string         `json:"id"`
	FullName   string         `json:"full_name"`
	AvatarURL  string         `json:"avatar_url"`
	Skills     datatypes.JSON `json:"skills,omitempty"`
	Bio        string         `json:"bio,omitempty"`
	HourlyRate float64        `json:"hourly_rate,omitempty"`
}

func (p *Profile) Summary() ProfileSummary {
	return ProfileSummary{
		ID:         p.ID,
		FullName:   p.FullName,
		AvatarURL:  p.AvatarURL,
		Skills:     p.Skills,
		Bio:        p.Bio,
		HourlyRate: p.HourlyRate,
	}
}

package models

import "time"

// Perfil de fidelidade, um por telefone de cliente
type LoyaltyProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Phone     string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Name      string `gorm:"size:100" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	Points            int `gorm:"default:0" json:"points"`
	TotalAppointments int `gorm:"default:0" json:"total_appointments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

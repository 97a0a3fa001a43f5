package models

import "time"

type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Username     string `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`

	Active  bool `gorm:"default:true" json:"active"`
	IsAdmin bool `gorm:"default:false" json:"is_admin"`

	// Agenda pessoal; quando vazio vale a configuração global
	OpenTime        string  `gorm:"size:5" json:"open_time"`
	CloseTime       string  `gorm:"size:5" json:"close_time"`
	SlotIntervalMin int     `json:"slot_interval_min"`
	MonthlyGoal     float64 `json:"monthly_goal"`

	AssignedServices []Service `gorm:"many2many:barber_services;" json:"assigned_services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
